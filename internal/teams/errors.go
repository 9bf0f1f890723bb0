package teams

import "errors"

var (
	ErrNotFound      = errors.New("team not found")
	ErrAlreadyExists = errors.New("team name already exists")
	ErrForbidden     = errors.New("access to this team is denied")
	ErrInvalidInput  = errors.New("invalid input")
)
