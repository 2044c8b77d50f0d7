package holiday

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultCount is how many commemorative days the prompt asks for.
const DefaultCount = 3

// Domain errors
var (
	ErrEmptyMonth    = errors.New("target month cannot be zero")
	ErrEmptyCountry  = errors.New("country cannot be empty")
	ErrEmptyLanguage = errors.New("language cannot be empty")
)

// Request describes which month's commemorative days students want to learn about.
type Request struct {
	Month    time.Time // any instant inside the target month
	Country  string
	Language string
}

// Validate checks if the Request has valid data.
// PRE: Request struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Request) Validate() error {
	if r.Month.IsZero() {
		return ErrEmptyMonth
	}
	if strings.TrimSpace(r.Country) == "" {
		return ErrEmptyCountry
	}
	if strings.TrimSpace(r.Language) == "" {
		return ErrEmptyLanguage
	}
	return nil
}

// Prompt renders the natural-language request sent to the text generator.
// PRE: r.Validate() == nil
// INVARIANT: Request fields are not mutated
func (r *Request) Prompt() string {
	return fmt.Sprintf(
		"Pick about %d educational commemorative days or national holidays in %s "+
			"that elementary-school students in %s would benefit from knowing about. "+
			"Show them as a short list with each date and a brief explanation of its meaning. "+
			"Answer in %s.",
		DefaultCount, r.Month.Format("January 2006"), r.Country, r.Language,
	)
}
