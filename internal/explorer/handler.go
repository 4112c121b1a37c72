package explorer

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/HerbHall/motorscope/internal/metrics"
	"github.com/HerbHall/motorscope/internal/server"
	"github.com/HerbHall/motorscope/pkg/catalog"
)

// EnginesResponse is the response for GET /api/v1/engines.
type EnginesResponse struct {
	Fuel     FuelFilter   `json:"fuel"`
	Priority PriorityMode `json:"priority"`
	Query    string       `json:"query"`
	Count    int          `json:"count"`
	Entries  []Ranked     `json:"entries"`
}

// FilterOption describes one selectable fuel filter.
type FilterOption struct {
	Value FuelFilter `json:"value"`
	Label string     `json:"label"`
}

// ModeOption describes one selectable priority mode.
type ModeOption struct {
	Value       PriorityMode `json:"value"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// FiltersResponse is the response for GET /api/v1/filters.
type FiltersResponse struct {
	Fuels []FilterOption `json:"fuels"`
	Modes []ModeOption   `json:"modes"`
}

// Handler serves the engine ranking API.
type Handler struct {
	engine  *Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new explorer API handler. m may be nil.
func NewHandler(engine *Engine, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, metrics: m, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/engines", h.handleListEngines)
	mux.HandleFunc("GET /api/v1/engines/{id}", h.handleGetEngine)
	mux.HandleFunc("GET /api/v1/highlights", h.handleHighlights)
	mux.HandleFunc("GET /api/v1/filters", h.handleFilters)
}

// ApplyQuery sets fuel, priority and q from query values onto sel. Both enum
// values are parsed before any setter runs, so sel is unchanged on error.
func ApplyQuery(sel *Selection, q url.Values) error {
	fuel, err := ParseFuelFilter(q.Get("fuel"))
	if err != nil {
		return err
	}
	mode, err := ParsePriorityMode(q.Get("priority"))
	if err != nil {
		return err
	}
	sel.SetFuelFilter(fuel)
	sel.SetPriorityMode(mode)
	sel.SetSearchTerm(q.Get("q"))
	return nil
}

// handleListEngines returns the ranked engine list for one selection.
//
//	@Summary		Rank engines
//	@Description	Returns engines matching the fuel filter and search term, sorted by descending score under the priority mode. Equal scores keep catalog order.
//	@Tags			engines
//	@Produce		json
//	@Param			fuel query string false "Fuel filter (all, essence, hybride, mild-hybrid)" default(all)
//	@Param			priority query string false "Priority mode (performance, efficiency, innovation)" default(innovation)
//	@Param			q query string false "Case-insensitive search on name, manufacturer, and equipped models"
//	@Success		200 {object} EnginesResponse
//	@Failure		400 {object} server.Problem
//	@Failure		500 {object} server.Problem
//	@Router			/engines [get]
func (h *Handler) handleListEngines(w http.ResponseWriter, r *http.Request) {
	sel, err := h.engine.Select()
	if err != nil {
		h.logger.Error("failed to rank engines", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	if err := ApplyQuery(sel, r.URL.Query()); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	ranked := sel.Ranked()
	h.metrics.ObserveQuery(sel.FuelFilter().String(), sel.PriorityMode().String(), len(ranked))

	writeJSON(w, http.StatusOK, EnginesResponse{
		Fuel:     sel.FuelFilter(),
		Priority: sel.PriorityMode(),
		Query:    sel.SearchTerm(),
		Count:    len(ranked),
		Entries:  ranked,
	})
}

// handleGetEngine returns a single engine.
//
//	@Summary		Get engine
//	@Tags			engines
//	@Produce		json
//	@Param			id path string true "Engine ID"
//	@Success		200 {object} catalog.Engine
//	@Failure		404 {object} server.Problem
//	@Failure		500 {object} server.Problem
//	@Router			/engines/{id} [get]
func (h *Handler) handleGetEngine(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, err := h.engine.Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			server.NotFound(w, "engine "+id+" not found", r.URL.Path)
			return
		}
		h.logger.Error("failed to load catalog", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleHighlights returns the hero callouts.
//
//	@Summary		Catalog highlights
//	@Description	Returns the most efficient engine, the most recent launch, and the editorial spotlights.
//	@Tags			engines
//	@Produce		json
//	@Success		200 {object} Highlights
//	@Failure		500 {object} server.Problem
//	@Router			/highlights [get]
func (h *Handler) handleHighlights(w http.ResponseWriter, r *http.Request) {
	hl, err := h.engine.Highlights()
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, hl)
}

// handleFilters lists the selectable filters and modes.
//
//	@Summary		List filters
//	@Tags			engines
//	@Produce		json
//	@Success		200 {object} FiltersResponse
//	@Router			/filters [get]
func (h *Handler) handleFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Options())
}

// Options returns the filter and mode choices in display order.
func Options() FiltersResponse {
	resp := FiltersResponse{
		Fuels: make([]FilterOption, 0, len(FuelFilters)),
		Modes: make([]ModeOption, 0, len(PriorityModes)),
	}
	for _, f := range FuelFilters {
		resp.Fuels = append(resp.Fuels, FilterOption{Value: f, Label: f.Label()})
	}
	for _, m := range PriorityModes {
		resp.Modes = append(resp.Modes, ModeOption{Value: m, Label: m.Label(), Description: m.Description()})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
