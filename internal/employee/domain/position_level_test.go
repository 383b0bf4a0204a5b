package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePositionLevel(t *testing.T) {
	cases := map[string]int{
		"Intern":     1,
		"apprentice": 1,
		"Trainee":    1,
		"Junior":     2,
		"Associate":  2,
		"Specialist": 3,
		"Mid":        3,
		"mid-level":  3,
		"Mid Level":  3,
		"Consultant": 3,
		"Senior":     4,
		"Lead":       5,
		"Manager":    5,
		"Principal":  6,
		"Director":   6,
		"Head":       6,
		"VP":         7,
		"Executive":  7,
		"Chief":      8,
	}
	for label, want := range cases {
		assert.Equal(t, want, DerivePositionLevel(label), label)
	}
}

func TestDerivePositionLevelDefaults(t *testing.T) {
	assert.Equal(t, DefaultPositionLevel, DerivePositionLevel(""))
	assert.Equal(t, DefaultPositionLevel, DerivePositionLevel("  "))
	assert.Equal(t, DefaultPositionLevel, DerivePositionLevel("Wizard"))
}

func TestDerivePositionLevelNormalizes(t *testing.T) {
	assert.Equal(t, 4, DerivePositionLevel("  SENIOR "))
	assert.Equal(t, 3, DerivePositionLevel("MID LEVEL"))
}
