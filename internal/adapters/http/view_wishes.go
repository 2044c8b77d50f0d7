package web

import (
	"net/http"

	"council/internal/adapters/textgen"
	"council/internal/application/orchestrators"
	"council/internal/application/projections"
	wishDomain "council/internal/domain/wish"
)

// Form actions accepted by the wishes view.
const (
	actionHolidays = "holidays"
	actionWish     = "wish"
)

// wishToast confirms an accepted wish.
const wishToast = "✅ Great idea, it has been received!"

type wishesView struct {
	NextMonthLabel string
	Wishes         []wishDomain.Entry
	Holidays       *textgen.Result
	Toast          string
}

// handleWishes handles GET and POST /wishes.
// POST action=holidays asks the text generator for next month's commemorative days;
// POST action=wish appends a wish to the session wishlist.
// PRE: session middleware ran
// POST: the page lists every wish of the session in submission order
func (v *views) handleWishes(w http.ResponseWriter, r *http.Request) {
	store, err := sessionStoreFrom(r)
	if err != nil {
		internalError(w, err)
		return
	}
	ctx := r.Context()
	var view wishesView

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		switch r.PostFormValue("action") {
		case actionHolidays:
			res := orchestrators.ExecuteSuggestHolidays(ctx, orchestrators.SuggestHolidaysQuery{
				Now:      timeNow(),
				Country:  v.deps.Country,
				Language: v.deps.Language,
			}, orchestrators.SuggestHolidaysDeps{Generator: v.deps.Generator})
			view.Holidays = &res
		case actionWish:
			result, err := orchestrators.ExecuteSubmitWish(ctx, orchestrators.SubmitWishCommand{
				Name:    r.PostFormValue("name"),
				Content: r.PostFormValue("content"),
			}, orchestrators.SubmitWishDeps{Store: store})
			if err != nil {
				internalError(w, err)
				return
			}
			if result.Accepted {
				view.Toast = wishToast
			}
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}
	default:
		methodNotAllowed(w, "GET, POST")
		return
	}

	board, err := projections.QueryGetWishBoard(ctx, projections.GetWishBoardQuery{Now: timeNow()}, projections.GetWishBoardDeps{Store: store})
	if err != nil {
		internalError(w, err)
		return
	}
	view.NextMonthLabel = board.NextMonthLabel
	view.Wishes = board.Wishes
	renderPage(w, r, "wishes.html", MenuWishes, board.NextMonthLabel+" event ideas", view)
}
