package projects

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studio-backend/internal/shared/util"
	"studio-backend/internal/teams"
)

const maxNameLength = 100

// Service contains business logic for projects. Team visibility (personal
// teams are private to their owner) is enforced here, on both reads and
// writes.
type Service struct {
	Repo  Repo
	Teams *teams.Service
}

// NewService constructs a Service.
func NewService(repo Repo, teamsSvc *teams.Service) *Service {
	return &Service{Repo: repo, Teams: teamsSvc}
}

// List returns a team's projects, provided the user may see the team.
func (s *Service) List(ctx context.Context, teamID, userID string) ([]Summary, error) {
	if _, err := s.Teams.GetVisible(ctx, teamID, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByTeam(ctx, teamID)
}

// Create makes a new project in a team the user may write to.
func (s *Service) Create(ctx context.Context, teamID, name, userID string) (Project, error) {
	if _, err := s.Teams.GetVisible(ctx, teamID, userID); err != nil {
		return Project{}, err
	}

	sanitized := util.SanitizeName(name)
	if sanitized == "" || len([]rune(sanitized)) > maxNameLength {
		return Project{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	project := Project{
		ID:             uuid.NewString(),
		TeamID:         teamID,
		Name:           sanitized,
		NameNormalized: util.NormalizeName(name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Exists reports whether a project exists; used by the files service before
// attaching a new file.
func (s *Service) Exists(ctx context.Context, projectID string) (bool, error) {
	return s.Repo.Exists(ctx, projectID)
}
