package files

import (
	"encoding/json"
	"time"
)

// File is a screen document. Schema is opaque to this package; the builder
// owns its contents. Revision is the optimistic-lock token: it starts at 1
// and advances by exactly 1 on every successful update.
type File struct {
	ID            string
	ProjectID     string
	Name          string
	Template      string
	SchemaVersion string
	Schema        json.RawMessage
	Revision      int64
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
