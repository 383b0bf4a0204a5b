package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return ErrInvalidRequest
}

// businessRuleMessages are the reason strings returned with a 400 when a
// request violates a matching or lifecycle rule.
var businessRuleMessages = map[error]string{
	mentorshipdomain.ErrMentorAtCapacity:        "Mentor has reached their capacity",
	mentorshipdomain.ErrActiveMentorExists:      "You already have an active mentor",
	mentorshipdomain.ErrDuplicatePendingRequest: "You already have a pending request to this mentor",
	mentorshipdomain.ErrPendingRequestExists:    "You already have a pending mentorship request. Please wait for a response or cancel your existing request.",
	mentorshipdomain.ErrSeniorityGate:           "Mentor must have a higher position level than the mentee",
	mentorshipdomain.ErrNotRequestOwner:         "You can only modify your own mentorship requests",
	mentorshipdomain.ErrAcceptedNotDeletable:    "Accepted requests cannot be deleted",
	mentorshipdomain.ErrInvalidStatusTransition: "Only pending requests can be updated",
	mentorshipdomain.ErrInvalidStatus:           "Status must be accepted or declined",
}

var notFoundMessages = map[error]string{
	employeedomain.ErrEmployeeNotFound:  "Employee not found",
	mentorshipdomain.ErrMentorNotFound:  "Mentor not found",
	mentorshipdomain.ErrRequestNotFound: "Mentorship request not found",
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	for sentinel, message := range businessRuleMessages {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, errorPayload{
				Type:    sentinel.Error(),
				Message: message,
			}
		}
	}

	for sentinel, message := range notFoundMessages {
		if errors.Is(err, sentinel) {
			return http.StatusNotFound, errorPayload{
				Type:    "not_found",
				Message: message,
			}
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid request",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status == http.StatusNotFound:
		return "not_found", payload.Type
	case status == http.StatusBadRequest:
		return "business_rule", payload.Type
	default:
		return "internal_error", payload.Type
	}
}
