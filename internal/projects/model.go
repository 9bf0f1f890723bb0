package projects

import "time"

// Project belongs to a team and groups files. NameNormalized is the
// accent-stripped lowercase form used for per-team uniqueness.
type Project struct {
	ID             string
	TeamID         string
	Name           string
	NameNormalized string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FilePreview is the thumbnail info shown on project cards.
type FilePreview struct {
	ID       string
	Name     string
	Template string
}

// Summary is a project with the aggregates the listing screen needs.
type Summary struct {
	Project
	FileCount int
	Previews  []FilePreview
}
