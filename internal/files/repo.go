package files

import (
	"context"
	"encoding/json"
	"time"
)

// Repo defines persistence operations for files.
//
// UpdateIfRevision is the conditional-write primitive: it must apply the new
// schema, bump the revision and stamp the writer in a single atomic storage
// operation guarded by "stored revision == expectedRevision". When the guard
// fails (stale revision or missing row) it reports applied=false without
// mutating anything; distinguishing the two cases is the service's job.
type Repo interface {
	Create(ctx context.Context, f File) error
	GetByID(ctx context.Context, id string) (File, error)
	ListByProject(ctx context.Context, projectID string) ([]File, error)
	UpdateIfRevision(ctx context.Context, id string, expectedRevision int64, schema json.RawMessage, updatedBy *string, updatedAt time.Time) (File, bool, error)
}
