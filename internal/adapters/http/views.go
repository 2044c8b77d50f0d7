package web

import (
	"net/http"

	"council/internal/adapters/email"
	"council/internal/adapters/textgen"
)

// Deps holds everything the views need beyond the caller's session.
type Deps struct {
	Generator textgen.Generator
	Sender    email.Sender
	Inbox     string
	Country   string
	Language  string
}

// views renders the five menu destinations.
type views struct {
	deps Deps
}

// register installs every view on the dispatcher.
func (v *views) register(d *Dispatcher) {
	d.Register(MenuEvents, http.HandlerFunc(v.handleEvents))
	d.Register(MenuWishes, http.HandlerFunc(v.handleWishes))
	d.Register(MenuSuggestions, http.HandlerFunc(v.handleSuggestions))
	d.Register(MenuNotices, http.HandlerFunc(v.handleNotices))
	d.Register(MenuPoll, http.HandlerFunc(v.handlePoll))
}
