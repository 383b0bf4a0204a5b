package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/skillhive/workforce/internal/employee/domain"
	"github.com/skillhive/workforce/internal/employee/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Department{}, &domain.Employee{}))

	svc := New(Params{
		DB:   db,
		Log:  zaptest.NewLogger(t),
		Repo: repository.Provide(),
	})
	return svc, db
}

func seedEmployees(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Department{ID: "DEPT001", Name: "Engineering"}).Error)

	employees := []domain.Employee{
		{ID: "EMP007", Name: "Nora Quinn", Role: "Software Engineer", DepartmentID: "DEPT001", Level: "Mid",
			SkillsMap: datatypes.JSONMap{"Python": 3, "SQL": 4}},
		{ID: "EMP012", Name: "Omar Haddad", Role: "Junior Engineer", DepartmentID: "DEPT001", Level: "Junior"},
		{ID: "EMP1234", Name: "Pia Lindgren", Role: "Director", DepartmentID: "DEPT404", Level: "Director"},
	}
	for i := range employees {
		require.NoError(t, db.Create(&employees[i]).Error)
	}
}

func TestResolveCanonicalID(t *testing.T) {
	svc, db := setupService(t)
	seedEmployees(t, db)
	ctx := context.Background()

	id, err := svc.Resolve(ctx, "EMP007")
	require.NoError(t, err)
	assert.Equal(t, "EMP007", id)

	id, err = svc.Resolve(ctx, "  EMP012 ")
	require.NoError(t, err)
	assert.Equal(t, "EMP012", id)
}

func TestResolveLegacyAlias(t *testing.T) {
	svc, db := setupService(t)
	seedEmployees(t, db)
	ctx := context.Background()

	cases := map[string]string{
		"EP7":    "EMP007",
		"ep7":    "EMP007",
		"EP007":  "EMP007",
		"EP12":   "EMP012",
		"EP0012": "EMP012",
		"EP1234": "EMP1234",
	}
	for alias, want := range cases {
		id, err := svc.Resolve(ctx, alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, id, alias)
	}
}

func TestResolveNotFound(t *testing.T) {
	svc, db := setupService(t)
	seedEmployees(t, db)
	ctx := context.Background()

	for _, id := range []string{"EMP999", "EP999", "EPX", ""} {
		_, err := svc.Resolve(ctx, id)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound, id)
	}
}

func TestGetProfile(t *testing.T) {
	svc, db := setupService(t)
	seedEmployees(t, db)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "EP7")
	require.NoError(t, err)
	assert.Equal(t, "EMP007", profile.ID)
	assert.Equal(t, "Nora Quinn", profile.Name)
	assert.Equal(t, "Engineering", profile.DepartmentName)
	assert.Equal(t, 3, profile.PositionLevel)
	assert.Equal(t, map[string]int{"Python": 3, "SQL": 4}, profile.Skills)

	// Unknown department id falls back to the raw id.
	profile, err = svc.GetProfile(ctx, "EMP1234")
	require.NoError(t, err)
	assert.Equal(t, "DEPT404", profile.DepartmentName)
	assert.Equal(t, 6, profile.PositionLevel)
}

func TestDecodeSkillsNumberForms(t *testing.T) {
	// Stored rows scan back with json.Number values; freshly built maps
	// carry plain numerics. Both must decode to the same weights.
	decoded := decodeSkills(map[string]interface{}{
		"Python":        json.Number("5"),
		"System Design": json.Number("4.0"),
		"SQL":           float64(3),
		"Go":            2,
	})
	assert.Equal(t, map[string]int{
		"Python":        5,
		"System Design": 4,
		"SQL":           3,
		"Go":            2,
	}, decoded)

	assert.Empty(t, decodeSkills(nil))
}

func TestListEmployees(t *testing.T) {
	svc, db := setupService(t)
	seedEmployees(t, db)
	ctx := context.Background()

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	byID := map[string]domain.Summary{}
	for _, row := range rows {
		byID[row.ID] = row
	}
	assert.Equal(t, "Engineering", byID["EMP007"].DepartmentName)
	assert.Equal(t, "DEPT404", byID["EMP1234"].DepartmentName)
	assert.Equal(t, 2, byID["EMP012"].PositionLevel)
}
