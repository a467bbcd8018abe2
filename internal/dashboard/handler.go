package dashboard

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vilaca/profile-detective/internal/api"
	"github.com/vilaca/profile-detective/internal/domain"
	"github.com/vilaca/profile-detective/internal/profile"
	"github.com/vilaca/profile-detective/internal/search"
)

// Handler handles HTTP requests for the profile lookup page and API.
// The server keeps no lookup state between requests: every request that
// carries a username runs its own search.Controller.
type Handler struct {
	renderer Renderer
	logger   Logger
	client   api.ProfileClient
	recorder search.Recorder
	location *time.Location
}

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Renderer Renderer
	Logger   Logger
	Client   api.ProfileClient
	Recorder search.Recorder // optional
	Location *time.Location  // joined-date zone; nil means time.Local
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		client:   cfg.Client,
		recorder: cfg.Recorder,
		location: cfg.Location,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/api/health", h.handleHealth)
	r.Get("/api/users", h.handleLookupAPI)
	r.Get("/api/users/{username}", h.handleLookupAPI)
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Errorw("failed to render health", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleIndex serves the search page. A username query parameter triggers a
// lookup; without one the page is rendered in the idle state.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := PageView{State: domain.IdleState()}

	if query := r.URL.Query(); query.Has("username") {
		view.Query = query.Get("username")
		view.State = h.lookup(r, view.Query)
		view.Card = h.cardFor(view.State)
	}

	// Render into a buffer so a template failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := h.renderer.RenderIndex(&buf, view); err != nil {
		h.logger.Errorw("failed to render index", "error", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleLookupAPI returns the lookup result as JSON.
// The username comes from the path, or from the username query parameter.
func (h *Handler) handleLookupAPI(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		username = r.URL.Query().Get("username")
	}

	state := h.lookup(r, username)
	resp := LookupResponse{
		Query:  state.Query(),
		Status: state.Status(),
		Card:   h.cardFor(state),
	}
	resp.Profile, _ = state.Profile()
	resp.Error, _ = state.ErrorMessage()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(statusCodeFor(state))

	if err := h.renderer.RenderLookupJSON(w, resp); err != nil {
		h.logger.Errorw("failed to encode lookup response", "error", err)
	}
}

// lookup runs one submission for username on a fresh controller.
func (h *Handler) lookup(r *http.Request, username string) domain.SearchState {
	controller := search.NewController(search.ControllerConfig{
		Client:   h.client,
		Logger:   h.logger,
		Recorder: h.recorder,
	})
	controller.SetQuery(username)
	state := controller.Submit(r.Context())

	h.logger.Infow("profile lookup",
		"request_id", middleware.GetReqID(r.Context()),
		"username", state.Query(),
		"status", state.Status(),
	)
	return state
}

func (h *Handler) cardFor(state domain.SearchState) *profile.Card {
	record, ok := state.Profile()
	if !ok {
		return nil
	}
	card := profile.NewCard(record, h.location)
	return &card
}

// statusCodeFor maps a terminal state to the API status code.
func statusCodeFor(state domain.SearchState) int {
	kind := state.ErrorKind()
	switch {
	case kind == nil:
		return http.StatusOK
	case errors.Is(kind, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
