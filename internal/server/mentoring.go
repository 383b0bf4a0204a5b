package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
)

type createMentorshipRequestBody struct {
	MenteeID string   `json:"menteeId"`
	MentorID string   `json:"mentorId"`
	Message  string   `json:"message"`
	Goals    []string `json:"goals"`
}

type updateMentorshipRequestBody struct {
	Status          string `json:"status"`
	ResponseMessage string `json:"responseMessage"`
}

type recommendMentorsBody struct {
	EmployeeID    string   `json:"employeeId"`
	CareerGoals   []string `json:"careerGoals"`
	DesiredSkills []string `json:"desiredSkills"`
	MaxResults    int      `json:"maxResults"`
}

func (s *Server) ListMentors(c *gin.Context) {
	var query struct {
		MenteeID   string `form:"mentee_id"`
		SkillArea  string `form:"skill_area"`
		Department string `form:"department"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.ListMentors(c.Request.Context(), mentorshipdomain.ListMentorsRequest{
		MenteeID:   strings.TrimSpace(query.MenteeID),
		SkillArea:  strings.TrimSpace(query.SkillArea),
		Department: strings.TrimSpace(query.Department),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMentor(c *gin.Context) {
	resp, err := s.mentoringSvc.GetMentor(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RecommendMentors(c *gin.Context) {
	var req recommendMentorsBody
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.Recommend(c.Request.Context(), mentorshipdomain.RecommendInput{
		EmployeeID:    strings.TrimSpace(req.EmployeeID),
		CareerGoals:   req.CareerGoals,
		DesiredSkills: req.DesiredSkills,
		MaxResults:    req.MaxResults,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateMentorshipRequest(c *gin.Context) {
	var req createMentorshipRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.MenteeID) == "" || strings.TrimSpace(req.MentorID) == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.CreateRequest(c.Request.Context(), mentorshipdomain.CreateRequestInput{
		MenteeID: strings.TrimSpace(req.MenteeID),
		MentorID: strings.TrimSpace(req.MentorID),
		Message:  req.Message,
		Goals:    req.Goals,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMentorshipRequests(c *gin.Context) {
	var query struct {
		MentorID       string `form:"mentor_id"`
		MenteeID       string `form:"mentee_id"`
		IncludeDeleted bool   `form:"include_deleted"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.ListRequests(c.Request.Context(), mentorshipdomain.ListRequestsInput{
		MentorID:       strings.TrimSpace(query.MentorID),
		MenteeID:       strings.TrimSpace(query.MenteeID),
		IncludeDeleted: query.IncludeDeleted,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMentorshipRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c.Param("id"))
	if !ok {
		AbortWithError(c, mentorshipdomain.ErrRequestNotFound)
		return
	}

	var req updateMentorshipRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.UpdateRequestStatus(c.Request.Context(), mentorshipdomain.UpdateRequestStatusInput{
		RequestID:       requestID,
		Status:          strings.ToLower(strings.TrimSpace(req.Status)),
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMentorshipRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c.Param("id"))
	if !ok {
		AbortWithError(c, mentorshipdomain.ErrRequestNotFound)
		return
	}

	menteeID := strings.TrimSpace(c.Query("mentee_id"))
	if menteeID == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.mentoringSvc.DeleteRequest(c.Request.Context(), requestID, menteeID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListMentorshipPairs(c *gin.Context) {
	var query struct {
		MentorID string `form:"mentor_id"`
		MenteeID string `form:"mentee_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.mentoringSvc.ListPairs(c.Request.Context(), mentorshipdomain.ListPairsInput{
		MentorID: strings.TrimSpace(query.MentorID),
		MenteeID: strings.TrimSpace(query.MenteeID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MentoringStatistics(c *gin.Context) {
	resp, err := s.mentoringSvc.Statistics(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// parseRequestID accepts both the presentation form ("REQ007") and the raw
// numeric id.
func parseRequestID(raw string) (snowflake.ID, bool) {
	trimmed := strings.TrimSpace(raw)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "REQ") {
		trimmed = upper[len("REQ"):]
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return snowflake.ID(value), true
}
