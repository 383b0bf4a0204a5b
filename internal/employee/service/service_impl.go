package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/skillhive/workforce/internal/employee/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("employee.service"),
		repo: p.Repo,
	}
}

func (s *Service) Resolve(ctx context.Context, id string) (string, error) {
	employee, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	return employee.ID, nil
}

func (s *Service) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	employee, err := s.lookup(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		ID:            employee.ID,
		Name:          employee.Name,
		Role:          employee.Role,
		DepartmentID:  employee.DepartmentID,
		Level:         employee.Level,
		PositionLevel: employee.PositionLevel,
		Skills:        decodeSkills(employee.SkillsMap),
		HireDate:      employee.HireDate,
	}
	if profile.PositionLevel <= 0 {
		profile.PositionLevel = domain.DerivePositionLevel(employee.Level)
	}

	department, err := s.repo.GetDepartment(ctx, s.db, employee.DepartmentID)
	if err != nil {
		return domain.Profile{}, err
	}
	if department != nil {
		profile.DepartmentName = department.Name
	} else {
		profile.DepartmentName = employee.DepartmentID
	}

	return profile, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	rows, err := s.repo.ListWithDepartment(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].PositionLevel <= 0 {
			rows[i].PositionLevel = domain.DerivePositionLevel(rows[i].Level)
		}
		if rows[i].DepartmentName == "" {
			rows[i].DepartmentName = rows[i].DepartmentID
		}
	}
	return rows, nil
}

// lookup tries the canonical id first and falls back to the single known
// alias form (legacy "EP" prefix with an unpadded numeric suffix).
func (s *Service) lookup(ctx context.Context, id string) (*domain.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrEmployeeNotFound
	}

	employee, err := s.repo.Get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		return employee, nil
	}

	if canonical, ok := normalizeAlias(id); ok {
		employee, err = s.repo.Get(ctx, s.db, canonical)
		if err != nil {
			return nil, err
		}
		if employee != nil {
			return employee, nil
		}
	}

	return nil, domain.ErrEmployeeNotFound
}

// normalizeAlias maps legacy "EP<digits>" identifiers to the canonical
// "EMP" form with the numeric suffix zero-padded to at least three digits.
func normalizeAlias(id string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(id))
	if !strings.HasPrefix(upper, "EP") {
		return "", false
	}
	digits := upper[len("EP"):]
	if digits == "" {
		return "", false
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}

	width := len(strings.TrimLeft(digits, "0"))
	if width == 0 {
		width = 1
	}
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("EMP%0*d", width, value), true
}

// decodeSkills converts a raw JSON skill map to weights. Values read back
// from the store arrive as json.Number because the column scanner decodes
// with UseNumber; fresh in-memory maps carry plain Go numerics.
func decodeSkills(raw map[string]interface{}) map[string]int {
	if len(raw) == 0 {
		return map[string]int{}
	}
	skills := make(map[string]int, len(raw))
	for id, weight := range raw {
		switch v := weight.(type) {
		case json.Number:
			if n, err := v.Int64(); err == nil {
				skills[id] = int(n)
			} else if f, err := v.Float64(); err == nil {
				skills[id] = int(f)
			}
		case float64:
			skills[id] = int(v)
		case int:
			skills[id] = v
		case int64:
			skills[id] = int(v)
		}
	}
	return skills
}
