package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/skillhive/workforce/internal/clock"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	"github.com/skillhive/workforce/internal/mentorship/domain"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Node      *snowflake.Node
	Profiles  domain.ProfileRepository
	Requests  domain.RequestRepository
	Matches   domain.MatchRepository
	Skills    skilldomain.Repository
	Employees employeedomain.Service
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	node      *snowflake.Node
	profiles  domain.ProfileRepository
	requests  domain.RequestRepository
	matches   domain.MatchRepository
	skills    skilldomain.Repository
	employees employeedomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("mentorship.service"),
		clock:     p.Clock,
		node:      p.Node,
		profiles:  p.Profiles,
		requests:  p.Requests,
		matches:   p.Matches,
		skills:    p.Skills,
		employees: p.Employees,
	}
}

func (s *Service) ListMentors(ctx context.Context, req domain.ListMentorsRequest) ([]domain.MentorView, error) {
	// A mentee filter gates the listing on seniority and hides the mentee
	// from their own results. An unknown mentee is a lookup failure, not an
	// empty listing.
	menteeID := ""
	menteeLevel := 0
	if req.MenteeID != "" {
		mentee, err := s.employees.GetProfile(ctx, req.MenteeID)
		if err != nil {
			return nil, err
		}
		menteeID = mentee.ID
		menteeLevel = mentee.PositionLevel
	}

	directory, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	profileByEmployee := make(map[string]domain.MentorshipProfile, len(profiles))
	for _, profile := range profiles {
		profileByEmployee[profile.EmployeeID] = profile
	}

	views := make([]domain.MentorView, 0, len(directory))
	for _, entry := range directory {
		if menteeID != "" && entry.ID == menteeID {
			continue
		}

		emp, err := s.employees.GetProfile(ctx, entry.ID)
		if err != nil {
			if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
				continue
			}
			return nil, err
		}
		if req.MenteeID != "" && emp.PositionLevel <= menteeLevel {
			continue
		}

		// Employees without a stored profile still appear, at the default
		// capacity with a zero rating.
		profile, ok := profileByEmployee[emp.ID]
		if !ok {
			profile = domain.DefaultProfile(emp.ID)
		}

		view, err := s.mentorView(ctx, profile, emp)
		if err != nil {
			return nil, err
		}
		if req.SkillArea != "" && !matchesSkillArea(emp.Skills, view.ExpertiseAreas, req.SkillArea) {
			continue
		}
		if req.Department != "" &&
			!strings.EqualFold(view.Department, req.Department) &&
			!strings.EqualFold(emp.DepartmentID, req.Department) {
			continue
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Rating != views[j].Rating {
			return views[i].Rating > views[j].Rating
		}
		return views[i].Name < views[j].Name
	})
	return views, nil
}

func (s *Service) GetMentor(ctx context.Context, mentorID string) (domain.MentorView, error) {
	emp, err := s.employees.GetProfile(ctx, mentorID)
	if err != nil {
		if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
			return domain.MentorView{}, domain.ErrMentorNotFound
		}
		return domain.MentorView{}, err
	}

	profile, err := s.profiles.Get(ctx, s.db, emp.ID)
	if err != nil {
		return domain.MentorView{}, err
	}
	if profile == nil || !profile.IsMentor {
		return domain.MentorView{}, domain.ErrMentorNotFound
	}
	return s.mentorView(ctx, *profile, emp)
}

func (s *Service) CreateRequest(ctx context.Context, req domain.CreateRequestInput) (domain.RequestView, error) {
	menteeID, err := s.employees.Resolve(ctx, req.MenteeID)
	if err != nil {
		return domain.RequestView{}, err
	}
	mentorID, err := s.employees.Resolve(ctx, req.MentorID)
	if err != nil {
		if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
			return domain.RequestView{}, domain.ErrMentorNotFound
		}
		return domain.RequestView{}, err
	}

	goals := req.Goals
	if goals == nil {
		goals = []string{}
	}

	var created domain.MentorMatchRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.profiles.Get(ctx, tx, mentorID)
		if err != nil {
			return err
		}
		if profile != nil && !profile.HasCapacity() {
			return domain.ErrMentorAtCapacity
		}

		existing, err := s.requests.List(ctx, tx, domain.RequestFilter{
			MenteeID:       menteeID,
			IncludeDeleted: true,
		})
		if err != nil {
			return err
		}
		for _, prior := range existing {
			switch prior.Status {
			case domain.StatusDeleted:
				continue
			case domain.StatusAccepted:
				return domain.ErrActiveMentorExists
			case domain.StatusPending:
				if prior.MentorID == mentorID {
					return domain.ErrDuplicatePendingRequest
				}
				return domain.ErrPendingRequestExists
			}
		}

		mentor, err := s.employees.GetProfile(ctx, mentorID)
		if err != nil {
			return err
		}
		mentee, err := s.employees.GetProfile(ctx, menteeID)
		if err != nil {
			return err
		}
		if mentor.PositionLevel <= mentee.PositionLevel {
			return domain.ErrSeniorityGate
		}

		score, err := s.matchScore(ctx, mentor, mentee, goals)
		if err != nil {
			return err
		}

		created = domain.MentorMatchRequest{
			ID:         s.node.Generate(),
			MenteeID:   menteeID,
			MentorID:   mentorID,
			MatchScore: score,
			Payload: datatypes.NewJSONType(domain.RequestPayload{
				Message: req.Message,
				Goals:   goals,
			}),
			Status:    domain.StatusPending,
			CreatedAt: s.clock.Now(),
		}
		return s.requests.Insert(ctx, tx, &created)
	})
	if err != nil {
		return domain.RequestView{}, err
	}

	s.log.Info("mentorship request created",
		zap.String("request_id", created.ID.String()),
		zap.String("mentee_id", created.MenteeID),
		zap.String("mentor_id", created.MentorID),
		zap.Float64("match_score", created.MatchScore),
	)
	return s.requestView(ctx, created), nil
}

func (s *Service) ListRequests(ctx context.Context, req domain.ListRequestsInput) ([]domain.RequestView, error) {
	mentorID, err := s.resolveFilterID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	menteeID, err := s.resolveFilterID(ctx, req.MenteeID)
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.List(ctx, s.db, domain.RequestFilter{
		MentorID:       mentorID,
		MenteeID:       menteeID,
		IncludeDeleted: req.IncludeDeleted,
	})
	if err != nil {
		return nil, err
	}
	return s.requestViews(ctx, requests), nil
}

func (s *Service) UpdateRequestStatus(ctx context.Context, req domain.UpdateRequestStatusInput) (domain.RequestView, error) {
	if req.Status != domain.StatusAccepted && req.Status != domain.StatusDeclined {
		return domain.RequestView{}, domain.ErrInvalidStatus
	}

	var updated domain.MentorMatchRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		request, err := s.requests.Get(ctx, tx, req.RequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrRequestNotFound
		}
		if !domain.CanTransition(request.Status, req.Status) {
			return domain.ErrInvalidStatusTransition
		}

		now := s.clock.Now()
		payload := request.Payload.Data()
		if req.ResponseMessage != "" {
			message := req.ResponseMessage
			payload.ResponseMessage = &message
		}
		payload.RespondedAt = &now

		if req.Status == domain.StatusAccepted {
			// Capacity is re-checked here so two concurrent accepts cannot
			// both land on a mentor with a single open slot.
			profile, err := s.profiles.Get(ctx, tx, request.MentorID)
			if err != nil {
				return err
			}
			if profile != nil {
				if !profile.HasCapacity() {
					return domain.ErrMentorAtCapacity
				}
				if err := s.profiles.IncrementMentees(ctx, tx, request.MentorID, 1); err != nil {
					return err
				}
			}

			focus := payload.Goals
			if focus == nil {
				focus = []string{}
			}
			match := domain.MentorshipMatch{
				ID:         s.node.Generate(),
				MentorID:   request.MentorID,
				MenteeID:   request.MenteeID,
				Score:      request.MatchScore,
				FocusAreas: datatypes.JSONSlice[string](focus),
				Status:     domain.MatchStatusActive,
				CreatedAt:  now,
			}
			if err := s.matches.Insert(ctx, tx, &match); err != nil {
				return err
			}
		}

		request.Status = req.Status
		request.Payload = datatypes.NewJSONType(payload)
		if err := s.requests.Update(ctx, tx, request); err != nil {
			return err
		}
		updated = *request
		return nil
	})
	if err != nil {
		return domain.RequestView{}, err
	}

	s.log.Info("mentorship request resolved",
		zap.String("request_id", updated.ID.String()),
		zap.String("status", updated.Status),
	)
	return s.requestView(ctx, updated), nil
}

func (s *Service) DeleteRequest(ctx context.Context, requestID snowflake.ID, menteeID string) error {
	// The caller must be a known employee; ownership is checked against the
	// resolved id so aliases work here too.
	owner, err := s.employees.Resolve(ctx, menteeID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		request, err := s.requests.Get(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrRequestNotFound
		}
		if request.MenteeID != owner {
			return domain.ErrNotRequestOwner
		}
		if request.Status == domain.StatusAccepted {
			return domain.ErrAcceptedNotDeletable
		}
		if !domain.CanTransition(request.Status, domain.StatusDeleted) {
			return domain.ErrInvalidStatusTransition
		}

		request.Status = domain.StatusDeleted
		return s.requests.Update(ctx, tx, request)
	})
}

func (s *Service) ListPairs(ctx context.Context, req domain.ListPairsInput) ([]domain.PairView, error) {
	mentorID, err := s.resolveFilterID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	menteeID, err := s.resolveFilterID(ctx, req.MenteeID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matches.List(ctx, s.db, domain.MatchFilter{
		MentorID: mentorID,
		MenteeID: menteeID,
	})
	if err != nil {
		return nil, err
	}

	cache := newProfileCache(s.employees)
	views := make([]domain.PairView, 0, len(matches))
	for _, match := range matches {
		mentor := cache.get(ctx, match.MentorID)
		mentee := cache.get(ctx, match.MenteeID)
		focus := []string(match.FocusAreas)
		if focus == nil {
			focus = []string{}
		}
		views = append(views, domain.PairView{
			PairID:     fmt.Sprintf("PAIR%03d", match.ID),
			MentorID:   match.MentorID,
			MentorName: mentor.Name,
			MentorRole: mentor.Role,
			MenteeID:   match.MenteeID,
			MenteeName: mentee.Name,
			MenteeRole: mentee.Role,
			StartDate:  match.CreatedAt,
			FocusAreas: focus,
			Status:     match.Status,
		})
	}
	return views, nil
}

func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	profiles, err := s.profiles.List(ctx, s.db)
	if err != nil {
		return domain.Statistics{}, err
	}
	matches, err := s.matches.List(ctx, s.db, domain.MatchFilter{})
	if err != nil {
		return domain.Statistics{}, err
	}
	requests, err := s.requests.List(ctx, s.db, domain.RequestFilter{IncludeDeleted: true})
	if err != nil {
		return domain.Statistics{}, err
	}

	stats := domain.Statistics{UnderservedSkills: []string{}}
	for _, match := range matches {
		if match.Status == domain.MatchStatusActive {
			stats.TotalActivePairs++
		}
	}
	// Every profile row counts toward the mentor totals, mirroring the
	// directory scan in ListMentors rather than the is_mentor flag.
	for _, profile := range profiles {
		stats.TotalMentors++
		if profile.HasCapacity() {
			stats.AvailableMentors++
		}
	}

	// The average covers every scored request ever made, deleted included,
	// so it reflects match quality over the program's full history.
	var sum float64
	var scored int
	for _, request := range requests {
		if request.Status == domain.StatusPending {
			stats.TotalMenteesSeeking++
		}
		if request.MatchScore > 0 {
			sum += request.MatchScore
			scored++
		}
	}
	if scored > 0 {
		stats.AverageMatchScore = math.Round(sum/float64(scored)*100) / 100
	}
	return stats, nil
}

func (s *Service) mentorView(ctx context.Context, profile domain.MentorshipProfile, emp employeedomain.Profile) (domain.MentorView, error) {
	areas, err := s.expertiseAreas(ctx, emp.Skills)
	if err != nil {
		return domain.MentorView{}, err
	}

	years := 0
	if emp.HireDate != nil {
		years = int(s.clock.Now().Sub(*emp.HireDate).Hours() / (24 * 365))
		if years < 0 {
			years = 0
		}
	}

	return domain.MentorView{
		EmployeeID:        emp.ID,
		Name:              emp.Name,
		Role:              emp.Role,
		Department:        emp.DepartmentName,
		ExpertiseAreas:    areas,
		Rating:            profile.Rating,
		MenteesCount:      profile.MenteesCount,
		MaxMentees:        profile.Capacity,
		IsAvailable:       profile.HasCapacity(),
		Bio:               profile.Personality,
		YearsOfExperience: years,
		Achievements:      []string{},
	}, nil
}

// expertiseAreas resolves a skill-weight map to display names in a stable,
// id-sorted order.
func (s *Service) expertiseAreas(ctx context.Context, skills map[string]int) ([]string, error) {
	if len(skills) == 0 {
		return []string{}, nil
	}
	ids := make([]string, 0, len(skills))
	for id := range skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return s.skillNames(ctx, ids)
}

func (s *Service) skillNames(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	names, err := s.skills.MapNames(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, names[id])
	}
	return out, nil
}

// resolveFilterID resolves aliases for query filters but keeps unknown ids
// as-is; an unknown id simply matches nothing.
func (s *Service) resolveFilterID(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	resolved, err := s.employees.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
			return id, nil
		}
		return "", err
	}
	return resolved, nil
}

func (s *Service) requestView(ctx context.Context, request domain.MentorMatchRequest) domain.RequestView {
	views := s.requestViews(ctx, []domain.MentorMatchRequest{request})
	return views[0]
}

func (s *Service) requestViews(ctx context.Context, requests []domain.MentorMatchRequest) []domain.RequestView {
	cache := newProfileCache(s.employees)
	views := make([]domain.RequestView, 0, len(requests))
	for _, request := range requests {
		payload := request.Payload.Data()
		goals := payload.Goals
		if goals == nil {
			goals = []string{}
		}
		mentee := cache.get(ctx, request.MenteeID)
		mentor := cache.get(ctx, request.MentorID)
		views = append(views, domain.RequestView{
			RequestID:   fmt.Sprintf("REQ%03d", request.ID),
			MenteeID:    request.MenteeID,
			MenteeName:  mentee.Name,
			MenteeRole:  mentee.Role,
			MentorID:    request.MentorID,
			MentorName:  mentor.Name,
			Message:     payload.Message,
			Goals:       goals,
			Status:      request.Status,
			CreatedAt:   request.CreatedAt,
			RespondedAt: payload.RespondedAt,
		})
	}
	return views
}

// matchesSkillArea accepts a raw skill-map key outright, then falls back to
// a case-insensitive substring match over the resolved display names.
func matchesSkillArea(skills map[string]int, areas []string, skillArea string) bool {
	needle := strings.TrimSpace(skillArea)
	if needle == "" {
		return true
	}
	if _, ok := skills[needle]; ok {
		return true
	}
	lower := strings.ToLower(needle)
	for _, area := range areas {
		if strings.Contains(strings.ToLower(area), lower) {
			return true
		}
	}
	return false
}

// profileCache memoizes directory lookups while a view list is assembled.
// Missing employees render with empty names rather than failing the list.
type profileCache struct {
	employees employeedomain.Service
	profiles  map[string]employeedomain.Profile
}

func newProfileCache(employees employeedomain.Service) *profileCache {
	return &profileCache{
		employees: employees,
		profiles:  map[string]employeedomain.Profile{},
	}
}

func (c *profileCache) get(ctx context.Context, id string) employeedomain.Profile {
	if profile, ok := c.profiles[id]; ok {
		return profile
	}
	profile, err := c.employees.GetProfile(ctx, id)
	if err != nil {
		profile = employeedomain.Profile{ID: id}
	}
	c.profiles[id] = profile
	return profile
}
