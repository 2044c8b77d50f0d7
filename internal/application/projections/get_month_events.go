package projections

import (
	"time"

	"council/internal/domain/calendar"
)

// GetMonthEventsQuery carries query parameters.
type GetMonthEventsQuery struct {
	Now time.Time
}

// GetMonthEventsResult carries the query result.
type GetMonthEventsResult struct {
	MonthLabel string
	Events     []calendar.Event
}

// QueryGetMonthEvents returns this month's label and the council's static events.
// PRE: none
// POST: Events is a copy; callers cannot alter the catalogue
func QueryGetMonthEvents(query GetMonthEventsQuery) GetMonthEventsResult {
	events := make([]calendar.Event, len(calendar.ThisMonth))
	copy(events, calendar.ThisMonth)
	return GetMonthEventsResult{
		MonthLabel: calendar.MonthLabel(query.Now),
		Events:     events,
	}
}
