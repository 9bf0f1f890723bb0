package teams

import "context"

// Repo defines persistence operations for teams.
type Repo interface {
	Create(ctx context.Context, team Team) error
	GetByID(ctx context.Context, id string) (Team, error)
	List(ctx context.Context) ([]Team, error)
}
