package teams

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio-backend/internal/shared/util"
)

const maxNameLength = 50

// Service contains business logic for teams.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns the teams visible to a user: every shared team plus the
// user's own personal team.
func (s *Service) List(ctx context.Context, userID string) ([]Team, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Team, 0, len(all))
	for _, team := range all {
		if team.Type == TypePersonal && !ownedBy(team, userID) {
			continue
		}
		out = append(out, team)
	}
	return out, nil
}

// GetVisible returns a team if the user may see it.
func (s *Service) GetVisible(ctx context.Context, id, userID string) (Team, error) {
	team, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Team{}, err
	}
	if team.Type == TypePersonal && !ownedBy(team, userID) {
		return Team{}, ErrForbidden
	}
	return team, nil
}

// Create makes a new shared team.
func (s *Service) Create(ctx context.Context, name string) (Team, error) {
	name = util.SanitizeName(name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return Team{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	team := Team{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      TypeShared,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, team); err != nil {
		return Team{}, err
	}
	return team, nil
}

func ownedBy(team Team, userID string) bool {
	if team.OwnerID == nil {
		return false
	}
	return strings.TrimSpace(userID) != "" && *team.OwnerID == userID
}
