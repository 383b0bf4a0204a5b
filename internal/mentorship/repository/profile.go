package repository

import (
	"context"
	"errors"

	"github.com/skillhive/workforce/internal/mentorship/domain"
	"gorm.io/gorm"
)

type profileRepo struct{}

func ProvideProfiles() domain.ProfileRepository {
	return &profileRepo{}
}

func (r *profileRepo) Get(ctx context.Context, db *gorm.DB, employeeID string) (*domain.MentorshipProfile, error) {
	var profile domain.MentorshipProfile
	err := db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) List(ctx context.Context, db *gorm.DB) ([]domain.MentorshipProfile, error) {
	var profiles []domain.MentorshipProfile
	err := db.WithContext(ctx).
		Order("employee_id asc").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepo) IncrementMentees(ctx context.Context, db *gorm.DB, employeeID string, delta int) error {
	return db.WithContext(ctx).
		Model(&domain.MentorshipProfile{}).
		Where("employee_id = ?", employeeID).
		UpdateColumn("mentees_count", gorm.Expr("mentees_count + ?", delta)).Error
}
