package teams

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Team // team id -> team
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Team),
	}
}

// Create stores a new team, enforcing name uniqueness.
func (r *MemoryRepo) Create(ctx context.Context, team Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == team.Name {
			return ErrAlreadyExists
		}
	}
	r.data[team.ID] = team
	return nil
}

// GetByID returns a team by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Team, error) {
	if err := ctx.Err(); err != nil {
		return Team{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.data[id]
	if !ok {
		return Team{}, ErrNotFound
	}
	return team, nil
}

// List returns teams in creation order.
func (r *MemoryRepo) List(ctx context.Context) ([]Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Team, 0, len(r.data))
	for _, team := range r.data {
		out = append(out, team)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
