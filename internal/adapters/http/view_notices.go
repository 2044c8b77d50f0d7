package web

import (
	"net/http"

	"council/internal/domain/notice"
)

// handleNotices handles GET /notices.
func (v *views) handleNotices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, "GET")
		return
	}
	renderPage(w, r, "notices.html", MenuNotices, "Announcements", notice.Board)
}
