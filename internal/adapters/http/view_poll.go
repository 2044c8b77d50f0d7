package web

import (
	"errors"
	"net/http"

	"council/internal/application/orchestrators"
	"council/internal/domain/poll"
)

type pollView struct {
	Poll     poll.Poll
	Selected poll.Choice
	Ack      *poll.Acknowledgment
}

// handlePoll handles GET and POST /poll.
// A vote is acknowledged and forgotten; nothing is counted.
// POST: 400 when the choice is not one of the poll options
func (v *views) handlePoll(w http.ResponseWriter, r *http.Request) {
	p := poll.MonthlyPoll
	view := pollView{Poll: p, Selected: p.Default()}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		ack, err := orchestrators.ExecuteCastVote(r.Context(), orchestrators.CastVoteCommand{
			Choice: r.PostFormValue("choice"),
		}, orchestrators.CastVoteDeps{Poll: p})
		if errors.Is(err, poll.ErrUnknownChoice) {
			badRequest(w, r, err)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		view.Selected = ack.Choice
		view.Ack = &ack
	default:
		methodNotAllowed(w, "GET, POST")
		return
	}

	renderPage(w, r, "poll.html", MenuPoll, p.Title, view)
}
