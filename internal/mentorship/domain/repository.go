package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type RequestFilter struct {
	MentorID       string
	MenteeID       string
	IncludeDeleted bool
}

type MatchFilter struct {
	MentorID string
	MenteeID string
}

type ProfileRepository interface {
	Get(ctx context.Context, db *gorm.DB, employeeID string) (*MentorshipProfile, error)
	List(ctx context.Context, db *gorm.DB) ([]MentorshipProfile, error)
	// IncrementMentees bumps the mentee counter with a single statement.
	IncrementMentees(ctx context.Context, db *gorm.DB, employeeID string, delta int) error
}

type RequestRepository interface {
	Get(ctx context.Context, db *gorm.DB, id snowflake.ID) (*MentorMatchRequest, error)
	List(ctx context.Context, db *gorm.DB, filter RequestFilter) ([]MentorMatchRequest, error)
	Insert(ctx context.Context, db *gorm.DB, request *MentorMatchRequest) error
	Update(ctx context.Context, db *gorm.DB, request *MentorMatchRequest) error
}

type MatchRepository interface {
	List(ctx context.Context, db *gorm.DB, filter MatchFilter) ([]MentorshipMatch, error)
	Insert(ctx context.Context, db *gorm.DB, match *MentorshipMatch) error
}
