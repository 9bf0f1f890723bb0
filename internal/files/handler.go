package files

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studio-backend/internal/shared/metrics"
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

// RegisterRoutes attaches file routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files", h.list)
	rg.POST("/files", h.create)
	rg.GET("/files/:id", h.get)
	rg.PUT("/files/:id", h.update)
}

func (h *Handler) list(c *gin.Context) {
	projectID := c.Query("projectId")
	if _, err := uuid.Parse(projectID); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "projectId must be a valid uuid", nil)
		return
	}
	c.Set("projectId", projectID)

	items, err := h.Svc.List(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list files", nil)
		return
	}

	out := make([]FileListItem, 0, len(items))
	for _, f := range items {
		out = append(out, toListItem(f))
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": out})
}

type createFileRequest struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Template  string `json:"template"`
}

func (h *Handler) create(c *gin.Context) {
	var req createFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if _, err := uuid.Parse(req.ProjectID); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "projectId must be a valid uuid", nil)
		return
	}
	c.Set("projectId", req.ProjectID)

	f, err := h.Svc.Create(c.Request.Context(), req.ProjectID, req.Name, req.Template)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			respond.Error(c, http.StatusNotFound, "project_not_found", "project not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported template", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create file", nil)
		}
		return
	}

	c.Set("fileId", f.ID)
	respond.JSON(c, http.StatusCreated, gin.H{"file": toResponse(f)})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("fileId", id)

	f, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "file_not_found", "file not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "file id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch file", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(f))
}

type updateFileRequest struct {
	SchemaJSON       json.RawMessage `json:"schema_json"`
	ExpectedRevision int64           `json:"expected_revision"`
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("fileId", id)

	var req updateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ExpectedRevision < 1 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "expected_revision must be a positive integer", nil)
		return
	}

	writer := middleware.UserNameFromContext(c)
	if writer == "" {
		writer = middleware.UserEmailFromContext(c)
	}

	start := time.Now()
	result, err := h.Svc.Update(c.Request.Context(), id, req.ExpectedRevision, req.SchemaJSON, writer)
	metrics.ObserveFileUpdateDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.As(err, &conflict):
			metrics.IncFileUpdateConflicted()
			respond.Error(c, http.StatusConflict, "revision_conflict", "revision conflict", ConflictDetails{
				CurrentRevision:   conflict.CurrentRevision,
				CurrentSchemaJSON: conflict.CurrentSchema,
				UpdatedBy:         conflict.UpdatedBy,
				UpdatedAt:         conflict.UpdatedAt,
			})
		case errors.Is(err, ErrNotFound):
			metrics.IncFileUpdateNotFound()
			respond.Error(c, http.StatusNotFound, "file_not_found", "file not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "schema_json must be an object and expected_revision must be positive", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update file", nil)
		}
		return
	}

	metrics.IncFileUpdateSucceeded()
	respond.JSON(c, http.StatusOK, UpdateResponse{
		Revision:  result.Revision,
		UpdatedAt: result.UpdatedAt,
		UpdatedBy: result.UpdatedBy,
	})
}
