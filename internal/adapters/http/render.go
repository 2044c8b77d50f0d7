package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"council/internal/adapters/http/middleware"
	sessionStore "council/internal/adapters/storage/session"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// timeNow is a variable for testability.
var timeNow = time.Now

// errNoSession means the session middleware did not run.
var errNoSession = errors.New("no session in request context")

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var funcMap = template.FuncMap{
	"renderMarkdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
	// css marks a preset colour as safe for a style attribute.
	"css": func(s string) template.CSS { return template.CSS(s) },
}

// pageTemplates holds one parsed layout+page set per view.
var pageTemplates = mustParsePages("events.html", "wishes.html", "suggestions.html", "notices.html", "poll.html")

func mustParsePages(names ...string) map[string]*template.Template {
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		pages[name] = template.Must(template.New("layout.html").Funcs(funcMap).
			ParseFS(templateFiles, "templates/layout.html", "templates/"+name))
	}
	return pages
}

// page is the data every view hands to the layout.
type page struct {
	Title      string
	Active     Menu
	Menu       []MenuItem
	CSRFField  template.HTML
	RenderedAt string
	View       any
}

// renderPage executes a view template inside the shared layout.
// Output is buffered so a template error never leaves a half-written page.
func renderPage(w http.ResponseWriter, r *http.Request, templateName string, active Menu, title string, view any) {
	tpl, ok := pageTemplates[templateName]
	if !ok {
		internalError(w, fmt.Errorf("unknown template %q", templateName))
		return
	}
	data := page{
		Title:      title,
		Active:     active,
		Menu:       SideMenu,
		CSRFField:  csrf.TemplateField(r),
		RenderedAt: timeNow().Format("2006-01-02 15:04"),
		View:       view,
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		internalError(w, fmt.Errorf("render %s: %w", templateName, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// sessionStoreFrom returns the caller's session-scoped store.
func sessionStoreFrom(r *http.Request) (sessionStore.Store, error) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return sess.Store, nil
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	ref := generateID()
	slog.Error("internal_error", "error", err.Error(), "ref", ref)
	http.Error(w, "internal server error (ref "+ref+")", http.StatusInternalServerError)
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// badRequest reports a tampered form value.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	slog.Warn("bad_form_value", "path", r.URL.Path, "error", err.Error())
	http.Error(w, "bad request", http.StatusBadRequest)
}
