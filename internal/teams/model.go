package teams

import "time"

const (
	TypeShared   = "shared"
	TypePersonal = "personal"
)

// Team groups projects. Personal teams belong to a single user and are
// hidden from everyone else.
type Team struct {
	ID        string
	Name      string
	Type      string
	OwnerID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
