package domain

import (
	"context"

	"gorm.io/gorm"
)

type Skill struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"index" json:"category"`
}

func (Skill) TableName() string { return "skills" }

type ListFilter struct {
	Category string
	Keyword  string
}

type Repository interface {
	Get(ctx context.Context, db *gorm.DB, id string) (*Skill, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Skill, error)
	// MapNames resolves skill ids to display names; unknown ids map to
	// themselves so callers can render unconditionally.
	MapNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error)
}
