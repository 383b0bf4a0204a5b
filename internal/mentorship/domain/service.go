package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Not-found conditions; surfaced as 404.
var (
	ErrMentorNotFound  = errors.New("mentor_not_found")
	ErrRequestNotFound = errors.New("request_not_found")
)

// Business-rule violations; surfaced as 400 with a reason string.
var (
	ErrMentorAtCapacity        = errors.New("mentor_at_capacity")
	ErrActiveMentorExists      = errors.New("active_mentor_exists")
	ErrDuplicatePendingRequest = errors.New("duplicate_pending_request")
	ErrPendingRequestExists    = errors.New("pending_request_exists")
	ErrSeniorityGate           = errors.New("mentor_not_senior_enough")
	ErrNotRequestOwner         = errors.New("not_request_owner")
	ErrAcceptedNotDeletable    = errors.New("accepted_request_not_deletable")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrInvalidStatus           = errors.New("invalid_status")
)

type MentorView struct {
	EmployeeID        string   `json:"employeeId"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Department        string   `json:"department"`
	ExpertiseAreas    []string `json:"expertiseAreas"`
	Rating            float64  `json:"rating"`
	MenteesCount      int      `json:"menteesCount"`
	MaxMentees        int      `json:"maxMentees"`
	IsAvailable       bool     `json:"isAvailable"`
	Bio               string   `json:"bio"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Achievements      []string `json:"achievements"`
}

type RequestView struct {
	RequestID   string     `json:"requestId"`
	MenteeID    string     `json:"menteeId"`
	MenteeName  string     `json:"menteeName"`
	MenteeRole  string     `json:"menteeRole"`
	MentorID    string     `json:"mentorId"`
	MentorName  string     `json:"mentorName"`
	Message     string     `json:"message"`
	Goals       []string   `json:"goals"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt"`
}

type PairView struct {
	PairID             string     `json:"pairId"`
	MentorID           string     `json:"mentorId"`
	MentorName         string     `json:"mentorName"`
	MentorRole         string     `json:"mentorRole"`
	MenteeID           string     `json:"menteeId"`
	MenteeName         string     `json:"menteeName"`
	MenteeRole         string     `json:"menteeRole"`
	StartDate          time.Time  `json:"startDate"`
	FocusAreas         []string   `json:"focusAreas"`
	Status             string     `json:"status"`
	ProgressPercentage int        `json:"progressPercentage"`
	SessionsCompleted  int        `json:"sessionsCompleted"`
	LastMeetingDate    *time.Time `json:"lastMeetingDate"`
	NextMeetingDate    *time.Time `json:"nextMeetingDate"`
}

type Recommendation struct {
	MentorID   string   `json:"mentorId"`
	MentorName string   `json:"mentorName"`
	MatchScore float64  `json:"matchScore"`
	Reasons    []string `json:"reasons"`
	FocusAreas []string `json:"focusAreas"`
}

type Statistics struct {
	TotalActivePairs    int      `json:"totalActivePairs"`
	TotalMentors        int      `json:"totalMentors"`
	AvailableMentors    int      `json:"availableMentors"`
	TotalMenteesSeeking int      `json:"totalMenteesSeeking"`
	AverageMatchScore   float64  `json:"averageMatchScore"`
	CompletionRate      float64  `json:"completionRate"`
	UnderservedSkills   []string `json:"underservedSkills"`
}

type ListMentorsRequest struct {
	MenteeID   string
	SkillArea  string
	Department string
}

type CreateRequestInput struct {
	MenteeID string
	MentorID string
	Message  string
	Goals    []string
}

type UpdateRequestStatusInput struct {
	RequestID       snowflake.ID
	Status          string
	ResponseMessage string
}

type ListRequestsInput struct {
	MentorID       string
	MenteeID       string
	IncludeDeleted bool
}

type ListPairsInput struct {
	MentorID string
	MenteeID string
}

type RecommendInput struct {
	EmployeeID    string
	CareerGoals   []string
	DesiredSkills []string
	MaxResults    int
}

type Service interface {
	ListMentors(ctx context.Context, req ListMentorsRequest) ([]MentorView, error)
	GetMentor(ctx context.Context, mentorID string) (MentorView, error)
	EstimateMatchScore(ctx context.Context, mentorID, menteeID string, goals []string) (float64, error)
	Recommend(ctx context.Context, req RecommendInput) ([]Recommendation, error)
	CreateRequest(ctx context.Context, req CreateRequestInput) (RequestView, error)
	ListRequests(ctx context.Context, req ListRequestsInput) ([]RequestView, error)
	UpdateRequestStatus(ctx context.Context, req UpdateRequestStatusInput) (RequestView, error)
	DeleteRequest(ctx context.Context, requestID snowflake.ID, menteeID string) error
	ListPairs(ctx context.Context, req ListPairsInput) ([]PairView, error)
	Statistics(ctx context.Context) (Statistics, error)
}
