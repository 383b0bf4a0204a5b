package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/skillhive/workforce/internal/clock"
	"github.com/skillhive/workforce/internal/config"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	employeerepository "github.com/skillhive/workforce/internal/employee/repository"
	employeeservice "github.com/skillhive/workforce/internal/employee/service"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
	mentorshiprepository "github.com/skillhive/workforce/internal/mentorship/repository"
	mentorshipservice "github.com/skillhive/workforce/internal/mentorship/service"
	"github.com/skillhive/workforce/internal/observability"
	obsmetrics "github.com/skillhive/workforce/internal/observability/metrics"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
	skillrepository "github.com/skillhive/workforce/internal/skill/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeedomain.Department{},
		&employeedomain.Employee{},
		&skilldomain.Skill{},
		&mentorshipdomain.MentorshipProfile{},
		&mentorshipdomain.MentorMatchRequest{},
		&mentorshipdomain.MentorshipMatch{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	employees := employeeservice.New(employeeservice.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: employeerepository.Provide(),
	})
	mentoring := mentorshipservice.New(mentorshipservice.Params{
		DB:        db,
		Log:       zap.NewNop(),
		Clock:     clock.NewFakeClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)),
		Node:      node,
		Profiles:  mentorshiprepository.ProvideProfiles(),
		Requests:  mentorshiprepository.ProvideRequests(),
		Matches:   mentorshiprepository.ProvideMatches(),
		Skills:    skillrepository.Provide(),
		Employees: employees,
	})

	cfg := config.Config{Environment: "test"}
	engine := NewEngine(observability.LoadConfig(cfg), obsmetrics.NewHTTPMetrics())
	srv := NewServer(ServerParams{
		Gin:          engine,
		Cfg:          cfg,
		DB:           db,
		EmployeeSvc:  employees,
		SkillRepo:    skillrepository.Provide(),
		MentoringSvc: mentoring,
	})
	return srv, db
}

func seedHTTPFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&employeedomain.Department{ID: "DEPT001", Name: "Engineering"}).Error)
	require.NoError(t, db.Create(&skilldomain.Skill{ID: "SKILL010", Name: "System Design", Category: "Architecture"}).Error)

	employees := []employeedomain.Employee{
		{ID: "EMP100", Name: "Ava Flores", Role: "Junior Engineer", DepartmentID: "DEPT001", Level: "Junior"},
		{ID: "EMP101", Name: "Ben Okafor", Role: "Senior Engineer", DepartmentID: "DEPT001", Level: "Senior",
			SkillsMap: datatypes.JSONMap{"SKILL010": 5}},
		{ID: "EMP102", Name: "Cara Ito", Role: "Lead Engineer", DepartmentID: "DEPT001", Level: "Lead"},
	}
	for i := range employees {
		require.NoError(t, db.Create(&employees[i]).Error)
	}
	profiles := []mentorshipdomain.MentorshipProfile{
		{EmployeeID: "EMP101", IsMentor: true, Capacity: 3, Rating: 4.8},
		{EmployeeID: "EMP102", IsMentor: true, Capacity: 3, Rating: 4.2},
	}
	for i := range profiles {
		require.NoError(t, db.Create(&profiles[i]).Error)
	}
}

func doRequest(srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := setupServer(t)
	rec := doRequest(srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateRequestEndpoint(t *testing.T) {
	srv, db := setupServer(t)
	seedHTTPFixture(t, db)

	rec := doRequest(srv, http.MethodPost, "/api/v1/mentoring/request", gin.H{
		"menteeId": "EMP100",
		"mentorId": "EMP101",
		"message":  "please mentor me",
		"goals":    []string{"System Design"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data mentorshipdomain.RequestView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, mentorshipdomain.StatusPending, resp.Data.Status)
	assert.True(t, strings.HasPrefix(resp.Data.RequestID, "REQ"))
	assert.Equal(t, []string{"System Design"}, resp.Data.Goals)

	// A second request while one is pending is a business-rule violation.
	rec = doRequest(srv, http.MethodPost, "/api/v1/mentoring/request", gin.H{
		"menteeId": "EMP100",
		"mentorId": "EMP102",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "pending_request_exists", payload.Type)
	assert.Contains(t, payload.Message, "pending mentorship request")
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	srv, db := setupServer(t)
	seedHTTPFixture(t, db)

	rec := doRequest(srv, http.MethodPost, "/api/v1/mentoring/request", gin.H{
		"menteeId": "EMP100",
		"mentorId": "EMP101",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Data mentorshipdomain.RequestView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(srv, http.MethodPut, "/api/v1/mentoring/requests/"+created.Data.RequestID, gin.H{
		"status":          "accepted",
		"responseMessage": "welcome aboard",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Deleting the accepted request is rejected with a reason string.
	rec = doRequest(srv, http.MethodDelete,
		"/api/v1/mentoring/requests/"+created.Data.RequestID+"?mentee_id=EMP100", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "Accepted requests cannot be deleted", payload.Message)

	rec = doRequest(srv, http.MethodGet, "/api/v1/mentoring/pairs?mentor_id=EMP101", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pairs struct {
		Data []mentorshipdomain.PairView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pairs))
	require.Len(t, pairs.Data, 1)
	assert.Equal(t, "EMP100", pairs.Data[0].MenteeID)
}

func TestErrorMapping(t *testing.T) {
	srv, db := setupServer(t)
	seedHTTPFixture(t, db)

	rec := doRequest(srv, http.MethodGet, "/api/v1/mentoring/mentors/EMP999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Type)

	// Listing mentors for an unknown mentee is a 404, not an empty list.
	rec = doRequest(srv, http.MethodGet, "/api/v1/mentoring/mentors?mentee_id=EMP999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Type)

	rec = doRequest(srv, http.MethodGet, "/api/v1/employees/EMP999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing required body fields map to invalid_request.
	rec = doRequest(srv, http.MethodPost, "/api/v1/mentoring/request", gin.H{"menteeId": "EMP100"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Type)

	// Delete without the owning mentee id is invalid.
	rec = doRequest(srv, http.MethodDelete, "/api/v1/mentoring/requests/REQ123", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Type)

	// Unparseable request ids read as a missing request.
	rec = doRequest(srv, http.MethodPut, "/api/v1/mentoring/requests/notanid", gin.H{"status": "accepted"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMentorsEndpoint(t *testing.T) {
	srv, db := setupServer(t)
	seedHTTPFixture(t, db)

	rec := doRequest(srv, http.MethodGet, "/api/v1/mentoring/mentors?mentee_id=EMP100", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []mentorshipdomain.MentorView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "EMP101", resp.Data[0].EmployeeID)
	assert.Contains(t, resp.Data[0].ExpertiseAreas, "System Design")
}

func TestSkillsEndpoint(t *testing.T) {
	srv, db := setupServer(t)
	seedHTTPFixture(t, db)

	rec := doRequest(srv, http.MethodGet, "/api/v1/skills?q=system", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []skilldomain.Skill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "System Design", resp.Data[0].Name)
}
