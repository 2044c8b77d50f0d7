package suggestion

import (
	"errors"
)

// Categories offered by the suggestion box.
const (
	CategoryFacilities = "Facilities"
	CategoryMeals      = "Meals"
	CategoryFriends    = "Friends"
	CategoryOther      = "Other"
)

// DefaultCategory is preselected in the suggestion form.
const DefaultCategory = CategoryFacilities

// Categories lists every category in display order.
var Categories = []string{CategoryFacilities, CategoryMeals, CategoryFriends, CategoryOther}

// Domain errors
var (
	ErrEmptyText       = errors.New("suggestion text cannot be empty")
	ErrInvalidCategory = errors.New("suggestion category must be one of: Facilities, Meals, Friends, Other")
)

// Entry is an anonymous suggestion-box item.
// It carries no author information and is never shown back to students.
type Entry struct {
	Category string
	Text     string
}

// Validate checks the category and the required text.
// PRE: none
// POST: returns nil if valid, the first violation otherwise
func (e *Entry) Validate() error {
	if !IsValidCategory(e.Category) {
		return ErrInvalidCategory
	}
	if e.Text == "" {
		return ErrEmptyText
	}
	return nil
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
