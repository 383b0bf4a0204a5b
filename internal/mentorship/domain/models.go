package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Request statuses form a closed set: a pending request resolves exactly once
// into accepted, declined, or deleted; all three are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
	StatusDeleted  = "deleted"
)

// MatchStatusActive is the initial status of a pair created by an accept.
const MatchStatusActive = "active"

// DefaultCapacity applies when a mentor has no capacity profile row.
const DefaultCapacity = 3

// DefaultProfile stands in for an employee with no stored profile row.
// Every employee can mentor at the default capacity until a profile says
// otherwise.
func DefaultProfile(employeeID string) MentorshipProfile {
	return MentorshipProfile{EmployeeID: employeeID, Capacity: DefaultCapacity}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusAccepted, StatusDeclined, StatusDeleted:
		return true
	default:
		return false
	}
}

// CanTransition reports whether from→to is a permitted status transition.
// Only pending requests may move; terminal states admit no further change.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusAccepted, StatusDeclined, StatusDeleted:
		return true
	default:
		return false
	}
}

type MentorshipProfile struct {
	EmployeeID   string  `gorm:"primaryKey" json:"employee_id"`
	IsMentor     bool    `gorm:"not null;default:false" json:"is_mentor"`
	Capacity     int     `gorm:"not null;default:3" json:"capacity"`
	MenteesCount int     `gorm:"not null;default:0" json:"mentees_count"`
	Rating       float64 `gorm:"not null;default:0" json:"rating"`
	Personality  string  `json:"personality,omitempty"`
}

func (MentorshipProfile) TableName() string { return "mentorship_profiles" }

func (p MentorshipProfile) HasCapacity() bool {
	return p.MenteesCount < p.Capacity
}

// RequestPayload is the structured message envelope embedded in a request
// row. It must round-trip losslessly through the JSON column.
type RequestPayload struct {
	Message         string     `json:"message"`
	Goals           []string   `json:"goals"`
	ResponseMessage *string    `json:"responseMessage"`
	RespondedAt     *time.Time `json:"respondedAt"`
}

type MentorMatchRequest struct {
	ID         snowflake.ID                        `gorm:"primaryKey" json:"id"`
	MenteeID   string                              `gorm:"not null;index" json:"mentee_id"`
	MentorID   string                              `gorm:"not null;index" json:"mentor_id"`
	MatchScore float64                             `gorm:"not null;default:0" json:"match_score"`
	Payload    datatypes.JSONType[RequestPayload]  `gorm:"column:payload" json:"payload"`
	Status     string                              `gorm:"not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time                           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (MentorMatchRequest) TableName() string { return "mentor_match_requests" }

type MentorshipMatch struct {
	ID         snowflake.ID                `gorm:"primaryKey" json:"id"`
	MentorID   string                      `gorm:"not null;index" json:"mentor_id"`
	MenteeID   string                      `gorm:"not null;index" json:"mentee_id"`
	Score      float64                     `gorm:"not null;default:0" json:"score"`
	FocusAreas datatypes.JSONSlice[string] `json:"focus_areas"`
	Status     string                      `gorm:"not null;default:'active'" json:"status"`
	CreatedAt  time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (MentorshipMatch) TableName() string { return "mentorship_matches" }
