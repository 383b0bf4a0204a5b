package domain

import (
	"context"
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee_not_found")

// Profile is the directory view of a single employee with the derived
// position level and decoded skill-weight map.
type Profile struct {
	ID             string         `json:"employeeId"`
	Name           string         `json:"name"`
	Role           string         `json:"role"`
	DepartmentID   string         `json:"departmentId"`
	DepartmentName string         `json:"department"`
	Level          string         `json:"level"`
	PositionLevel  int            `json:"positionLevel"`
	Skills         map[string]int `json:"skills"`
	HireDate       *time.Time     `json:"hireDate,omitempty"`
}

// Summary is the directory listing row (department name joined in).
type Summary struct {
	ID             string `json:"employeeId"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"department"`
	Level          string `json:"level"`
	PositionLevel  int    `json:"positionLevel"`
}

type Service interface {
	// Resolve returns the canonical employee id for a canonical id or a
	// known alias form.
	Resolve(ctx context.Context, id string) (string, error)
	GetProfile(ctx context.Context, id string) (Profile, error)
	List(ctx context.Context) ([]Summary, error)
}
