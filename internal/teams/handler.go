package teams

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/shared/server/middleware"
	"studio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches team routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/teams", h.list)
	rg.POST("/teams", h.create)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list teams", nil)
		return
	}

	out := make([]TeamResponse, 0, len(items))
	for _, team := range items {
		out = append(out, toResponse(team))
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": out})
}

type createTeamRequest struct {
	Name string `json:"name"`
}

func (h *Handler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	team, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, "team_already_exists", "team name already exists", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required and must be at most 50 characters", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create team", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"team": toResponse(team)})
}
