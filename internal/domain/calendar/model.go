package calendar

import (
	"errors"
)

// Max length constants.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyName          = errors.New("event name cannot be empty")
	ErrNameTooLong        = errors.New("event name cannot exceed 200 characters")
	ErrEmptyDate          = errors.New("event date cannot be empty")
	ErrDescriptionTooLong = errors.New("event description cannot exceed 2000 characters")
)

// Event is a school event shown on this month's page.
// Date is a display label ("October 9"), not a parsed date.
// INVARIANT: events are static and read-only.
type Event struct {
	Date        string
	Name        string
	Description string
}

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Event) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if len(e.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if e.Date == "" {
		return ErrEmptyDate
	}
	if len(e.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// ThisMonth lists the events announced by the council for the current month.
var ThisMonth = []Event{
	{
		Date:        "October 9",
		Name:        "Love Hangul Campaign",
		Description: "Korean word contest and a pledge to use kind words",
	},
	{
		Date:        "October 25",
		Name:        "Dokdo Day",
		Description: "Dokdo quiz and a flash mob",
	},
}
