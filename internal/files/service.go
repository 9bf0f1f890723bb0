package files

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio-backend/internal/shared/util"
)

const defaultFileName = "Untitled"

// ProjectChecker reports whether a project exists; creation refuses to attach
// files to missing projects.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID string) (bool, error)
}

// Service contains business logic for files. All mutation of a file's
// schema/revision tuple goes through Update; nothing else may write those
// columns.
type Service struct {
	Repo     Repo
	Projects ProjectChecker
}

// UpdateResult is returned on a successful conditional update.
type UpdateResult struct {
	Revision  int64
	UpdatedAt time.Time
	UpdatedBy *string
}

// Get returns the current snapshot of a file.
func (s *Service) Get(ctx context.Context, id string) (File, error) {
	if strings.TrimSpace(id) == "" {
		return File{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns the files of a project, most recently updated first.
func (s *Service) List(ctx context.Context, projectID string) ([]File, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByProject(ctx, projectID)
}

// Create makes a new file at revision 1 with the template's default schema.
func (s *Service) Create(ctx context.Context, projectID, name, template string) (File, error) {
	if strings.TrimSpace(projectID) == "" {
		return File{}, ErrInvalidInput
	}

	if s.Projects != nil {
		ok, err := s.Projects.Exists(ctx, projectID)
		if err != nil {
			return File{}, err
		}
		if !ok {
			return File{}, ErrProjectNotFound
		}
	}

	schema, err := TemplateDefaults(template)
	if err != nil {
		return File{}, err
	}

	name = util.SanitizeName(name)
	if name == "" {
		name = defaultFileName
	}

	now := time.Now().UTC()
	f := File{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Name:          name,
		Template:      template,
		SchemaVersion: DefaultSchemaVersion,
		Schema:        schema,
		Revision:      1,
		UpdatedBy:     nil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Update replaces a file's schema wholesale, but only if the caller has
// observed the current revision. On a lost race it returns a *ConflictError
// carrying the state that won; it never retries on the caller's behalf.
func (s *Service) Update(ctx context.Context, id string, expectedRevision int64, schema json.RawMessage, writer string) (UpdateResult, error) {
	if strings.TrimSpace(id) == "" {
		return UpdateResult{}, ErrInvalidInput
	}
	if expectedRevision < 1 {
		return UpdateResult{}, ErrInvalidInput
	}
	if !isJSONObject(schema) {
		return UpdateResult{}, ErrInvalidInput
	}

	var updatedBy *string
	if w := strings.TrimSpace(writer); w != "" {
		updatedBy = &w
	}

	updated, applied, err := s.Repo.UpdateIfRevision(ctx, id, expectedRevision, schema, updatedBy, time.Now().UTC())
	if err != nil {
		return UpdateResult{}, err
	}
	if applied {
		return UpdateResult{
			Revision:  updated.Revision,
			UpdatedAt: updated.UpdatedAt,
			UpdatedBy: updated.UpdatedBy,
		}, nil
	}

	// The guard failed: either the file is gone or another writer advanced
	// the revision. Re-read to tell the two apart and to hand the caller the
	// state it must reconcile against.
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return UpdateResult{}, ErrNotFound
		}
		return UpdateResult{}, err
	}
	return UpdateResult{}, &ConflictError{
		CurrentRevision: current.Revision,
		CurrentSchema:   current.Schema,
		UpdatedBy:       current.UpdatedBy,
		UpdatedAt:       current.UpdatedAt,
	}
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
