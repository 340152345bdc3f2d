// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/technoverse/registration-portal/internal/team/model"
	"github.com/technoverse/registration-portal/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req teamModel.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed. Required fields are missing."})
		return
	}

	_, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrPaymentInfoMissing):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Transaction ID is required when payment is enabled."})
		case errors.Is(err, teamModel.ErrTeamExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed. The team name might already be taken."})
		default:
			h.logger.Errorw("error registering team", "team_name", req.TeamName, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Team registered successfully and is now waitlisted."})
}

// List handles GET /api/admin/teams.
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error fetching teams", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching teams"})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// Approve handles PUT /api/admin/teams/:id/approve.
func (h *Handler) Approve(c *gin.Context) {
	id := c.Param("id")

	team, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
			return
		}
		h.logger.Errorw("error approving team", "team_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error approving team"})
		return
	}

	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /api/admin/teams/:id.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
			return
		}
		h.logger.Errorw("error deleting team", "team_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Team deleted successfully."})
}
