package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound        = errors.New("file not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// ConflictError reports a lost optimistic-concurrency race. It carries the
// state that actually won so the caller can reconcile without another read.
type ConflictError struct {
	CurrentRevision int64
	CurrentSchema   json.RawMessage
	UpdatedBy       *string
	UpdatedAt       time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("revision conflict: current revision is %d", e.CurrentRevision)
}
