// Package web renders the server-side explorer page.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/motorscope/internal/explorer"
	"github.com/HerbHall/motorscope/internal/metrics"
	"github.com/HerbHall/motorscope/internal/server"
)

//go:embed templates/*.html
var templateFS embed.FS

// Site carries the page metadata.
type Site struct {
	Name         string
	CanonicalURL string
}

// Page is the data passed to the explorer template.
type Page struct {
	Site       Site
	Title      string
	Selection  *explorer.Selection
	Options    explorer.FiltersResponse
	Entries    []explorer.Ranked
	Highlights explorer.Highlights
}

// Handler serves the explorer page.
type Handler struct {
	engine  *explorer.Engine
	metrics *metrics.Metrics
	site    Site
	tmpl    *template.Template
	logger  *zap.Logger
}

// NewHandler parses the embedded templates. m may be nil.
func NewHandler(engine *explorer.Engine, m *metrics.Metrics, site Site, logger *zap.Logger) (*Handler, error) {
	tmpl, err := template.New("explorer").Funcs(template.FuncMap{
		"score": explorer.FormatScore,
		"join":  strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{engine: engine, metrics: m, site: site, tmpl: tmpl, logger: logger}, nil
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
}

// applyQuery sets each selection value from the query, keeping the default
// for any value that does not parse.
func (h *Handler) applyQuery(sel *explorer.Selection, q url.Values) {
	if fuel, err := explorer.ParseFuelFilter(q.Get("fuel")); err != nil {
		h.logger.Debug("ignoring fuel filter", zap.Error(err))
	} else {
		sel.SetFuelFilter(fuel)
	}
	if mode, err := explorer.ParsePriorityMode(q.Get("priority")); err != nil {
		h.logger.Debug("ignoring priority mode", zap.Error(err))
	} else {
		sel.SetPriorityMode(mode)
	}
	sel.SetSearchTerm(q.Get("q"))
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sel, err := h.engine.Select()
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	h.applyQuery(sel, r.URL.Query())

	hl, err := h.engine.Highlights()
	if err != nil {
		h.logger.Error("failed to compute highlights", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	ranked := sel.Ranked()
	h.metrics.ObserveQuery(sel.FuelFilter().String(), sel.PriorityMode().String(), len(ranked))

	page := Page{
		Site:       h.site,
		Title:      "Meilleurs moteurs essence récents (2021-2024) | Comparatif complet",
		Selection:  sel,
		Options:    explorer.Options(),
		Entries:    ranked,
		Highlights: hl,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		h.logger.Error("failed to render explorer", zap.Error(err))
		server.InternalError(w, "failed to render page", r.URL.Path)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
