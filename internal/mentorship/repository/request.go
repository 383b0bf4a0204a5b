package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/skillhive/workforce/internal/mentorship/domain"
	"gorm.io/gorm"
)

type requestRepo struct{}

func ProvideRequests() domain.RequestRepository {
	return &requestRepo{}
}

func (r *requestRepo) Get(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.MentorMatchRequest, error) {
	var request domain.MentorMatchRequest
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) List(ctx context.Context, db *gorm.DB, filter domain.RequestFilter) ([]domain.MentorMatchRequest, error) {
	stmt := db.WithContext(ctx).Model(&domain.MentorMatchRequest{})
	if filter.MentorID != "" {
		stmt = stmt.Where("mentor_id = ?", filter.MentorID)
	}
	if filter.MenteeID != "" {
		stmt = stmt.Where("mentee_id = ?", filter.MenteeID)
	}
	if !filter.IncludeDeleted {
		stmt = stmt.Where("status <> ?", domain.StatusDeleted)
	}

	var requests []domain.MentorMatchRequest
	err := stmt.
		Order("created_at desc, id desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepo) Insert(ctx context.Context, db *gorm.DB, request *domain.MentorMatchRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *requestRepo) Update(ctx context.Context, db *gorm.DB, request *domain.MentorMatchRequest) error {
	return db.WithContext(ctx).
		Model(&domain.MentorMatchRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"status":  request.Status,
			"payload": request.Payload,
		}).Error
}
