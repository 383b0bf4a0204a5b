package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateMatchScoreBaseline(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	// No goals, different departments: base score only.
	score, err := svc.EstimateMatchScore(ctx, "EMP102", "EMP100", nil)
	require.NoError(t, err)
	assert.Equal(t, 40.0, score)

	// Same department adds the department bonus.
	score, err = svc.EstimateMatchScore(ctx, "EMP101", "EMP100", nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, score)
}

func TestEstimateMatchScoreGoalMatching(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	// "System Design" resolves through the skill catalog; "python" matches
	// case-insensitively; "Quantum Computing" matches nothing.
	score, err := svc.EstimateMatchScore(ctx, "EMP101", "EMP100", []string{
		"System Design", "python", "Quantum Computing",
	})
	require.NoError(t, err)
	assert.Equal(t, 70.0, score)
}

func TestEstimateMatchScoreClamped(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	goals := []string{
		"Python", "Python basics", "Advanced Python", "Python tooling",
		"System Design", "Design of systems", "Python everywhere",
	}
	score, err := svc.EstimateMatchScore(ctx, "EMP101", "EMP100", goals)
	require.NoError(t, err)
	assert.LessOrEqual(t, score, 100.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestEstimateMatchScoreUnknownEmployees(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	score, err := svc.EstimateMatchScore(ctx, "EMP999", "EMP998", []string{"Anything"})
	require.NoError(t, err)
	assert.Equal(t, 40.0, score)
}
