package projects

import "errors"

var (
	ErrNotFound      = errors.New("project not found")
	ErrAlreadyExists = errors.New("project name already exists in this team")
	ErrInvalidInput  = errors.New("invalid input")
)
