package account

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound reports that no stored record matched the query.
var ErrAccountNotFound = errors.New("account not found")

// DuplicateError reports an add that collided with an existing record on
// the full (id, platform, sdk, model) uniqueness key.
type DuplicateError struct {
	ID                   string
	Platform, SDK, Model string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate account %s (adapter: %s/%s/%s)", e.ID, e.Platform, e.SDK, e.Model)
}

// PersistenceError wraps an I/O or decode failure on the backing file.
// The on-disk collection is never left partially written: every save goes
// through a temp file and rename.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
