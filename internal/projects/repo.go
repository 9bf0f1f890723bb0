package projects

import "context"

const previewLimit = 4

// Repo defines persistence operations for projects.
type Repo interface {
	Create(ctx context.Context, project Project) error
	Exists(ctx context.Context, id string) (bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Summary, error)
}
