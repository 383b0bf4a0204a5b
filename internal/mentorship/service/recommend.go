package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	"github.com/skillhive/workforce/internal/mentorship/domain"
)

const defaultMaxRecommendations = 5

// experienceRanks buckets seniority labels for the recommendation gap
// heuristic; it is coarser than the position-level map on purpose.
var experienceRanks = map[string]int{
	"junior":    1,
	"mid":       2,
	"senior":    3,
	"principal": 4,
}

func experienceRank(level string, fallback int) int {
	if rank, ok := experienceRanks[strings.ToLower(strings.TrimSpace(level))]; ok {
		return rank
	}
	return fallback
}

// Recommend scores every available mentor against the mentee's desired
// skills and returns the top matches, best first. Without desired skills
// there is nothing to weigh, so the result is empty.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendInput) ([]domain.Recommendation, error) {
	if len(req.DesiredSkills) == 0 {
		return []domain.Recommendation{}, nil
	}

	mentee, err := s.profileOrZero(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	menteeRank := experienceRank(mentee.Level, 1)
	recommendations := make([]domain.Recommendation, 0, len(profiles))
	for _, profile := range profiles {
		if !profile.IsMentor {
			continue
		}
		if profile.EmployeeID == mentee.ID {
			continue
		}

		emp, err := s.employees.GetProfile(ctx, profile.EmployeeID)
		if err != nil {
			if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
				continue
			}
			return nil, err
		}

		overlap := make([]string, 0, len(req.DesiredSkills))
		for _, skill := range req.DesiredSkills {
			if _, ok := emp.Skills[skill]; ok {
				overlap = append(overlap, skill)
			}
		}

		score := float64(len(overlap)) / float64(len(req.DesiredSkills)) * 40

		mentorRank := experienceRank(emp.Level, 2)
		switch gap := mentorRank - menteeRank; {
		case gap >= 2:
			score += 30
		case gap == 1:
			score += 20
		default:
			score += 10
		}

		reasons := []string{}
		if len(overlap) > 0 {
			reasons = append(reasons, fmt.Sprintf("Expert in %d of your desired skills", len(overlap)))
		}
		if profile.Rating >= 4.5 {
			reasons = append(reasons, fmt.Sprintf("Highly rated mentor (%.1f/5)", profile.Rating))
		}
		if emp.DepartmentID != "" && emp.DepartmentID == mentee.DepartmentID {
			score += 15
			reasons = append(reasons, "Same department - understands your context")
		}
		if profile.HasCapacity() {
			score += 15
		}

		focus, err := s.skillNames(ctx, overlap)
		if err != nil {
			return nil, err
		}

		recommendations = append(recommendations, domain.Recommendation{
			MentorID:   emp.ID,
			MentorName: emp.Name,
			MatchScore: math.Round(score*100) / 100,
			Reasons:    reasons,
			FocusAreas: focus,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	limit := req.MaxResults
	if limit <= 0 {
		limit = defaultMaxRecommendations
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}
