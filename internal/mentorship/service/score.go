package service

import (
	"context"
	"errors"
	"strings"

	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
)

const (
	baseMatchScore  = 40.0
	departmentBonus = 10.0
	goalSkillBonus  = 10.0
	maxMatchScore   = 100.0
)

// EstimateMatchScore is a read-only preview of the heuristic applied when a
// request is created. Unknown employee ids score as blank profiles instead
// of failing.
func (s *Service) EstimateMatchScore(ctx context.Context, mentorID, menteeID string, goals []string) (float64, error) {
	mentor, err := s.profileOrZero(ctx, mentorID)
	if err != nil {
		return 0, err
	}
	mentee, err := s.profileOrZero(ctx, menteeID)
	if err != nil {
		return 0, err
	}
	return s.matchScore(ctx, mentor, mentee, goals)
}

func (s *Service) matchScore(ctx context.Context, mentor, mentee employeedomain.Profile, goals []string) (float64, error) {
	score := baseMatchScore
	if mentor.DepartmentID != "" && mentor.DepartmentID == mentee.DepartmentID {
		score += departmentBonus
	}

	if len(goals) > 0 && len(mentor.Skills) > 0 {
		areas, err := s.expertiseAreas(ctx, mentor.Skills)
		if err != nil {
			return 0, err
		}
		for _, goal := range goals {
			if goalMatchesSkill(goal, areas) {
				score += goalSkillBonus
			}
		}
	}

	if score > maxMatchScore {
		score = maxMatchScore
	}
	return score, nil
}

func (s *Service) profileOrZero(ctx context.Context, id string) (employeedomain.Profile, error) {
	profile, err := s.employees.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, employeedomain.ErrEmployeeNotFound) {
			return employeedomain.Profile{ID: id}, nil
		}
		return employeedomain.Profile{}, err
	}
	return profile, nil
}

// goalMatchesSkill treats a goal as covered when it and a skill name contain
// each other in either direction, case-insensitively.
func goalMatchesSkill(goal string, areas []string) bool {
	g := strings.ToLower(strings.TrimSpace(goal))
	if g == "" {
		return false
	}
	for _, area := range areas {
		a := strings.ToLower(area)
		if a == "" {
			continue
		}
		if strings.Contains(a, g) || strings.Contains(g, a) {
			return true
		}
	}
	return false
}
