package repository

import (
	"context"
	"errors"

	"github.com/skillhive/workforce/internal/employee/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Get(ctx context.Context, db *gorm.DB, id string) (*domain.Employee, error) {
	var employee domain.Employee
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := db.WithContext(ctx).
		Order("name asc").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repo) ListWithDepartment(ctx context.Context, db *gorm.DB) ([]domain.Summary, error) {
	var rows []domain.Summary
	err := db.WithContext(ctx).Raw(
		`SELECT e.id, e.name, e.role, e.department_id, d.name AS department_name, e.level, e.position_level
		 FROM employees e
		 LEFT JOIN departments d ON d.id = e.department_id
		 ORDER BY e.name`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) GetDepartment(ctx context.Context, db *gorm.DB, id string) (*domain.Department, error) {
	var department domain.Department
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}
