package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Get(ctx context.Context, db *gorm.DB, id string) (*Employee, error)
	List(ctx context.Context, db *gorm.DB) ([]Employee, error)
	ListWithDepartment(ctx context.Context, db *gorm.DB) ([]Summary, error)
	GetDepartment(ctx context.Context, db *gorm.DB, id string) (*Department, error)
}
