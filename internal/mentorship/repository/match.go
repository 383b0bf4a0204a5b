package repository

import (
	"context"

	"github.com/skillhive/workforce/internal/mentorship/domain"
	"gorm.io/gorm"
)

type matchRepo struct{}

func ProvideMatches() domain.MatchRepository {
	return &matchRepo{}
}

func (r *matchRepo) List(ctx context.Context, db *gorm.DB, filter domain.MatchFilter) ([]domain.MentorshipMatch, error) {
	stmt := db.WithContext(ctx).Model(&domain.MentorshipMatch{})
	if filter.MentorID != "" {
		stmt = stmt.Where("mentor_id = ?", filter.MentorID)
	}
	if filter.MenteeID != "" {
		stmt = stmt.Where("mentee_id = ?", filter.MenteeID)
	}

	var matches []domain.MentorshipMatch
	err := stmt.
		Order("created_at desc, id desc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepo) Insert(ctx context.Context, db *gorm.DB, match *domain.MentorshipMatch) error {
	return db.WithContext(ctx).Create(match).Error
}
