package web

import (
	"net/http"

	"council/internal/application/projections"
)

// eventsHint is shown under every event.
const eventsHint = "💡 Please join in!"

type eventsView struct {
	projections.GetMonthEventsResult
	Hint string
}

// handleEvents handles GET / and GET /events.
// POST: this month's events rendered in catalogue order
func (v *views) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, "GET")
		return
	}
	result := projections.QueryGetMonthEvents(projections.GetMonthEventsQuery{Now: timeNow()})
	renderPage(w, r, "events.html", MenuEvents, result.MonthLabel+" school events", eventsView{
		GetMonthEventsResult: result,
		Hint:                 eventsHint,
	})
}
