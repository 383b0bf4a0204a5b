package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/skillhive/workforce/internal/skill/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Get(ctx context.Context, db *gorm.DB, id string) (*domain.Skill, error) {
	var skill domain.Skill
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&skill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Skill, error) {
	stmt := db.WithContext(ctx).Model(&domain.Skill{})
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		stmt = stmt.Where("name LIKE ?", "%"+keyword+"%")
	}

	var skills []domain.Skill
	if err := stmt.Order("name asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *repo) MapNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var skills []domain.Skill
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&skills).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		names[id] = id
	}
	for _, skill := range skills {
		names[skill.ID] = skill.Name
	}
	return names, nil
}
