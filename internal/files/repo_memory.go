package files

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. The mutex stands in for
// the storage engine's statement-level atomicity: the revision compare and
// the increment in UpdateIfRevision happen under one critical section.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]File // file id -> file
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]File),
	}
}

// Create stores a new file.
func (r *MemoryRepo) Create(ctx context.Context, f File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.Revision == 0 {
		f.Revision = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[f.ID] = f
	return nil
}

// GetByID returns a file by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.data[id]
	if !ok {
		return File{}, ErrNotFound
	}
	return f, nil
}

// ListByProject returns a project's files, most recently updated first.
func (r *MemoryRepo) ListByProject(ctx context.Context, projectID string) ([]File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []File
	for _, f := range r.data {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// UpdateIfRevision applies the schema only when the stored revision matches.
func (r *MemoryRepo) UpdateIfRevision(ctx context.Context, id string, expectedRevision int64, schema json.RawMessage, updatedBy *string, updatedAt time.Time) (File, bool, error) {
	if err := ctx.Err(); err != nil {
		return File{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.data[id]
	if !ok || f.Revision != expectedRevision {
		return File{}, false, nil
	}

	f.Schema = append(json.RawMessage(nil), schema...)
	f.Revision++
	f.UpdatedBy = updatedBy
	f.UpdatedAt = updatedAt
	r.data[id] = f
	return f, true, nil
}

var _ Repo = (*MemoryRepo)(nil)
