package suggestion_test

import (
	"errors"
	"testing"

	"council/internal/domain/suggestion"
)

// TestEntry_Validate tests validation of suggestion entries.
func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   suggestion.Entry
		wantErr error
	}{
		{"valid meals", suggestion.Entry{Category: suggestion.CategoryMeals, Text: "More fruit please"}, nil},
		{"valid other", suggestion.Entry{Category: suggestion.CategoryOther, Text: "Longer recess"}, nil},
		{"empty text", suggestion.Entry{Category: suggestion.CategoryFacilities, Text: ""}, suggestion.ErrEmptyText},
		{"whitespace text", suggestion.Entry{Category: suggestion.CategoryFriends, Text: "\n\t "}, nil},
		{"unknown category", suggestion.Entry{Category: "Homework", Text: "Less of it"}, suggestion.ErrInvalidCategory},
		{"empty category", suggestion.Entry{Category: "", Text: "Fix the swings"}, suggestion.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Entry.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultCategory_IsFirst verifies the form default is the first listed category.
func TestDefaultCategory_IsFirst(t *testing.T) {
	if suggestion.Categories[0] != suggestion.DefaultCategory {
		t.Errorf("Categories[0] = %q, want %q", suggestion.Categories[0], suggestion.DefaultCategory)
	}
	if len(suggestion.Categories) != 4 {
		t.Errorf("len(Categories) = %d, want 4", len(suggestion.Categories))
	}
}
