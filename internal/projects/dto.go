package projects

import "time"

// PreviewResponse is a file preview on a project card.
type PreviewResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// ProjectResponse is the outward-facing representation of a project.
type ProjectResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	TeamID    string            `json:"team_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	FileCount int               `json:"file_count"`
	Previews  []PreviewResponse `json:"previews"`
}

func toResponse(s Summary) ProjectResponse {
	previews := make([]PreviewResponse, 0, len(s.Previews))
	for _, p := range s.Previews {
		previews = append(previews, PreviewResponse{ID: p.ID, Name: p.Name, Template: p.Template})
	}
	return ProjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		TeamID:    s.TeamID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		FileCount: s.FileCount,
		Previews:  previews,
	}
}

func toCreatedResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		TeamID:    p.TeamID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		FileCount: 0,
		Previews:  []PreviewResponse{},
	}
}
