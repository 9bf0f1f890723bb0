package files

import (
	"encoding/json"
	"time"
)

// FileResponse is the outward-facing representation of a file.
type FileResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Template      string          `json:"template"`
	SchemaVersion string          `json:"schema_version"`
	SchemaJSON    json.RawMessage `json:"schema_json"`
	Revision      int64           `json:"revision"`
	UpdatedBy     *string         `json:"updated_by"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FileListItem omits the schema payload for listings.
type FileListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	Revision  int64     `json:"revision"`
	UpdatedBy *string   `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateResponse is returned after a successful revisioned update.
type UpdateResponse struct {
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy *string   `json:"updated_by"`
}

// ConflictDetails is attached to the 409 error body so the losing writer can
// reconcile against the state that won.
type ConflictDetails struct {
	CurrentRevision   int64           `json:"current_revision"`
	CurrentSchemaJSON json.RawMessage `json:"current_schema_json"`
	UpdatedBy         *string         `json:"updated_by"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func toResponse(f File) FileResponse {
	return FileResponse{
		ID:            f.ID,
		Name:          f.Name,
		Template:      f.Template,
		SchemaVersion: f.SchemaVersion,
		SchemaJSON:    f.Schema,
		Revision:      f.Revision,
		UpdatedBy:     f.UpdatedBy,
		UpdatedAt:     f.UpdatedAt,
	}
}

func toListItem(f File) FileListItem {
	return FileListItem{
		ID:        f.ID,
		Name:      f.Name,
		Template:  f.Template,
		Revision:  f.Revision,
		UpdatedBy: f.UpdatedBy,
		UpdatedAt: f.UpdatedAt,
	}
}
