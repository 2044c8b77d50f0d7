package web

import (
	"errors"
	"net/http"

	"council/internal/application/orchestrators"
	suggestionDomain "council/internal/domain/suggestion"
)

// suggestionReceipt confirms an accepted suggestion.
const suggestionReceipt = "Delivered to the student council."

type suggestionsView struct {
	Categories []string
	Selected   string
	Receipt    string
}

// handleSuggestions handles GET and POST /suggestions.
// Earlier suggestions are never shown back, not even to their author.
// PRE: session middleware ran
// POST: non-empty text appended to the session box; 400 on a tampered category
func (v *views) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	store, err := sessionStoreFrom(r)
	if err != nil {
		internalError(w, err)
		return
	}
	view := suggestionsView{
		Categories: suggestionDomain.Categories,
		Selected:   suggestionDomain.DefaultCategory,
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		result, err := orchestrators.ExecuteSubmitSuggestion(r.Context(), orchestrators.SubmitSuggestionCommand{
			Category: r.PostFormValue("category"),
			Text:     r.PostFormValue("text"),
		}, orchestrators.SubmitSuggestionDeps{
			Store:  store,
			Sender: v.deps.Sender,
			Inbox:  v.deps.Inbox,
		})
		if errors.Is(err, suggestionDomain.ErrInvalidCategory) {
			badRequest(w, r, err)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		if result.Accepted {
			view.Receipt = suggestionReceipt
		}
	default:
		methodNotAllowed(w, "GET, POST")
		return
	}

	renderPage(w, r, "suggestions.html", MenuSuggestions, "Student council suggestion box", view)
}
