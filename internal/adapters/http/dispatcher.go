package web

import (
	"net/http"
	"strings"
)

// Menu identifies one of the side-menu destinations.
type Menu string

// Side-menu destinations, in display order.
const (
	MenuEvents      Menu = "events"
	MenuWishes      Menu = "wishes"
	MenuSuggestions Menu = "suggestions"
	MenuNotices     Menu = "notices"
	MenuPoll        Menu = "poll"
)

// MenuItem is one entry of the side menu.
type MenuItem struct {
	Menu  Menu
	Label string
}

// Path returns the URL the menu entry links to.
func (m MenuItem) Path() string {
	if m.Menu == MenuEvents {
		return "/"
	}
	return "/" + string(m.Menu)
}

// SideMenu lists every destination with its label.
var SideMenu = []MenuItem{
	{MenuEvents, "📅 This month's events"},
	{MenuWishes, "🌱 Next month's wishes"},
	{MenuSuggestions, "📮 Suggestions"},
	{MenuNotices, "📢 Notices"},
	{MenuPoll, "📊 Survey"},
}

// Dispatcher maps each menu to the handler that renders it.
// INVARIANT: a request runs exactly one registered handler, or none (404)
type Dispatcher struct {
	handlers map[Menu]http.Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Menu]http.Handler)}
}

// Register installs the render handler for a menu, replacing any previous one.
// PRE: h is non-nil
func (d *Dispatcher) Register(m Menu, h http.Handler) {
	d.handlers[m] = h
}

// Dispatch runs the handler registered for m.
// POST: exactly one handler ran and true is returned, or a 404 was written and false is returned
func (d *Dispatcher) Dispatch(m Menu, w http.ResponseWriter, r *http.Request) bool {
	h, ok := d.handlers[m]
	if !ok {
		http.NotFound(w, r)
		return false
	}
	h.ServeHTTP(w, r)
	return true
}

// MenuFromPath resolves "/" and "/{menu}" to a menu. Trailing or doubled
// slashes do not match.
func MenuFromPath(path string) (Menu, bool) {
	if path == "/" {
		return MenuEvents, true
	}
	name, ok := strings.CutPrefix(path, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	for _, item := range SideMenu {
		if string(item.Menu) == name {
			return item.Menu, true
		}
	}
	return "", false
}

// ServeHTTP routes the request path to its menu handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m, ok := MenuFromPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	d.Dispatch(m, w, r)
}
