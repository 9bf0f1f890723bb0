package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio-backend/internal/shared/server/middleware"
	"studio-backend/internal/shared/server/respond"
	"studio-backend/internal/teams"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches project routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.POST("/projects", h.create)
}

func (h *Handler) list(c *gin.Context) {
	teamID := c.Query("teamId")
	if _, err := uuid.Parse(teamID); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "teamId must be a valid uuid", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), teamID, userID)
	if err != nil {
		switch {
		case errors.Is(err, teams.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "team_not_found", "team not found", nil)
		case errors.Is(err, teams.ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "access to this team is denied", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list projects", nil)
		}
		return
	}

	out := make([]ProjectResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toResponse(s))
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": out})
}

type createProjectRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if _, err := uuid.Parse(req.TeamID); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "teamId must be a valid uuid", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	project, err := h.Svc.Create(c.Request.Context(), req.TeamID, req.Name, userID)
	if err != nil {
		switch {
		case errors.Is(err, teams.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "team_not_found", "team not found", nil)
		case errors.Is(err, teams.ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "you cannot create projects in another user's personal team", nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, "project_already_exists", "a project with this name already exists in this team", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required and must be at most 100 characters", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create project", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"project": toCreatedResponse(project)})
}
