package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListEmployees(c *gin.Context) {
	resp, err := s.employeeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEmployeeProfile(c *gin.Context) {
	resp, err := s.employeeSvc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
