package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"signalist/internal/digest"
	"signalist/internal/model"
)

type DigestRunner interface {
	Run(ctx context.Context) model.JobResult
}

type WelcomeRunner interface {
	Run(ctx context.Context, event digest.SignupEvent) model.JobResult
}

type UserCounter interface {
	DigestUserCount() (int, error)
}

type JobHandler struct {
	digest  DigestRunner
	welcome WelcomeRunner
	users   UserCounter
}

func NewJobHandler(digestRunner DigestRunner, welcomeRunner WelcomeRunner, users UserCounter) *JobHandler {
	return &JobHandler{digest: digestRunner, welcome: welcomeRunner, users: users}
}

func (h *JobHandler) RunDailyNews(c *gin.Context) {
	res := h.digest.Run(c.Request.Context())
	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) SendWelcome(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Email == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and name are required"})
		return
	}

	res := h.welcome.Run(c.Request.Context(), digest.SignupEvent{
		Email:             req.Email,
		Name:              req.Name,
		Country:           req.Country,
		InvestmentGoals:   req.InvestmentGoals,
		RiskTolerance:     req.RiskTolerance,
		PreferredIndustry: req.PreferredIndustry,
	})
	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) GetHealth(c *gin.Context) {
	_, err := h.users.DigestUserCount()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
