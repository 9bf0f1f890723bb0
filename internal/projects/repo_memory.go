package projects

import (
	"context"
	"sort"
	"sync"

	"studio-backend/internal/files"
)

// FileLister supplies the file aggregates for project listings.
type FileLister interface {
	ListByProject(ctx context.Context, projectID string) ([]files.File, error)
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	data  map[string]Project // project id -> project
	files FileLister
}

// NewMemoryRepo constructs a MemoryRepo. The file lister may be nil when
// previews are not needed.
func NewMemoryRepo(fileLister FileLister) *MemoryRepo {
	return &MemoryRepo{
		data:  make(map[string]Project),
		files: fileLister,
	}
}

// Create stores a new project, enforcing per-team name uniqueness.
func (r *MemoryRepo) Create(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.TeamID == project.TeamID && existing.NameNormalized == project.NameNormalized {
			return ErrAlreadyExists
		}
	}
	r.data[project.ID] = project
	return nil
}

// Exists reports whether a project with the given ID exists.
func (r *MemoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[id]
	return ok, nil
}

// ListByTeam returns a team's projects with file aggregates, most recently
// updated first.
func (r *MemoryRepo) ListByTeam(ctx context.Context, teamID string) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var selected []Project
	for _, project := range r.data {
		if project.TeamID == teamID {
			selected = append(selected, project)
		}
	}
	r.mu.RUnlock()

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].UpdatedAt.After(selected[j].UpdatedAt)
	})

	out := make([]Summary, 0, len(selected))
	for _, project := range selected {
		s := Summary{Project: project}
		if r.files != nil {
			projectFiles, err := r.files.ListByProject(ctx, project.ID)
			if err != nil {
				return nil, err
			}
			s.FileCount = len(projectFiles)
			for i, f := range projectFiles {
				if i == previewLimit {
					break
				}
				s.Previews = append(s.Previews, FilePreview{ID: f.ID, Name: f.Name, Template: f.Template})
			}
		}
		out = append(out, s)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
