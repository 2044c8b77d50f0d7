package wish

import (
	"errors"
)

// Domain errors
var (
	ErrEmptyName = errors.New("wish name cannot be empty")
)

// Entry is a student's proposal for an event next month.
// Content is optional and kept verbatim, including the empty string.
// INVARIANT: entries are never mutated once appended to a wishlist.
type Entry struct {
	Name    string
	Content string
}

// Validate checks that the required name is present.
// PRE: none
// POST: returns ErrEmptyName if Name is the empty string, nil otherwise
// INVARIANT: any non-empty name is accepted verbatim, whitespace included
func (e *Entry) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	return nil
}
