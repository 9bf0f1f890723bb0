package teams

import "time"

// TeamResponse is the outward-facing representation of a team.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(team Team) TeamResponse {
	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Type:      team.Type,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}
