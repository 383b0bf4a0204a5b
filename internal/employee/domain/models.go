package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Department struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
}

func (Department) TableName() string { return "departments" }

type Employee struct {
	ID            string            `gorm:"primaryKey" json:"id"`
	Name          string            `gorm:"not null" json:"name"`
	Role          string            `json:"role"`
	DepartmentID  string            `gorm:"index" json:"department_id"`
	Level         string            `json:"level"`
	PositionLevel int               `gorm:"not null;default:1" json:"position_level"`
	SkillsMap     datatypes.JSONMap `gorm:"type:jsonb" json:"skills_map,omitempty"`
	HireDate      *time.Time        `json:"hire_date,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

// BeforeSave keeps the derived position level in step with the seniority label.
func (e *Employee) BeforeSave(_ *gorm.DB) error {
	if e.PositionLevel <= 0 {
		e.PositionLevel = DerivePositionLevel(e.Level)
	}
	return nil
}
