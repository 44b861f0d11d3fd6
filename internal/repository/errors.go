// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrAlreadyWatched indicates a business-rule rejection that
// handlers surface as HTTP 400 with its message verbatim, while
// ErrDuplicate signals a unique-key conflict (HTTP 409).
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested row does not exist, or a
// scoped lookup does not match (e.g. a movie id owned by another user).
// Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or rename collides with an
// existing unique name. Handlers translate this into HTTP 409.
var ErrDuplicate = errors.New("already exists")

// ErrAlreadyWatched is returned when a movie that is already in the
// "Watched" status is marked as watched again. The message is shown to
// the user as-is, so keep it human readable.
var ErrAlreadyWatched = errors.New("Movie is already marked as watched")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
