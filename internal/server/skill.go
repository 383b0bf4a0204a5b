package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
)

func (s *Server) ListSkills(c *gin.Context) {
	var query struct {
		Category string `form:"category"`
		Keyword  string `form:"q"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.skillRepo.List(c.Request.Context(), s.db, skilldomain.ListFilter{
		Category: strings.TrimSpace(query.Category),
		Keyword:  strings.TrimSpace(query.Keyword),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
