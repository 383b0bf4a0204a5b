package service

import (
	"context"
	"testing"

	"github.com/skillhive/workforce/internal/mentorship/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendRanksMentors(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	recs, err := svc.Recommend(ctx, domain.RecommendInput{
		EmployeeID:    "EMP100",
		DesiredSkills: []string{"Python", "Machine Learning"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)

	best := recs[0]
	assert.Equal(t, "EMP101", best.MentorID)
	assert.Equal(t, 80.0, best.MatchScore)
	assert.Contains(t, best.Reasons, "Expert in 1 of your desired skills")
	assert.Contains(t, best.Reasons, "Highly rated mentor (4.8/5)")
	assert.Contains(t, best.Reasons, "Same department - understands your context")
	assert.Equal(t, []string{"Python"}, best.FocusAreas)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
	for _, rec := range recs {
		assert.NotEqual(t, "EMP100", rec.MentorID)
	}
}

func TestRecommendHonorsMaxResults(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	recs, err := svc.Recommend(ctx, domain.RecommendInput{
		EmployeeID:    "EMP100",
		DesiredSkills: []string{"Python"},
		MaxResults:    2,
	})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecommendWithoutDesiredSkills(t *testing.T) {
	svc, db := setupService(t)
	seedDirectory(t, db)
	ctx := context.Background()

	recs, err := svc.Recommend(ctx, domain.RecommendInput{EmployeeID: "EMP100"})
	require.NoError(t, err)
	assert.Empty(t, recs)
}
