package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/napolitain/fractaline-stonks/internal/countdown"
	"github.com/napolitain/fractaline-stonks/internal/loader"
	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/schedule"
	"github.com/napolitain/fractaline-stonks/internal/solver"
	"github.com/napolitain/fractaline-stonks/internal/store"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// server answers the planner API over HTTP
type server struct {
	store  store.Store
	season string
	clock  func() time.Time
}

func newServer(st store.Store, season string, clock func() time.Time) *server {
	return &server{store: st, season: season, clock: clock}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/resets", s.handleResets)
		r.Get("/countdown", s.handleCountdown)
		r.Post("/projection", s.handleProjection)
		r.Post("/compare", s.handleCompare)

		r.Route("/overrides", func(r chi.Router) {
			r.Get("/", s.handleListOverrides)
			r.Delete("/", s.handleClearOverrides)
			r.Post("/{index}/toggle", s.handleToggle)
		})
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// parseNow reads ?now= or falls back to the server clock
func (s *server) parseNow(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("now")
	if raw == "" {
		return s.clock().UTC(), nil
	}
	return parseInstant(raw)
}

func parseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid now %q: want RFC3339", raw)
	}
	return t.UTC(), nil
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

// ResetView is one upcoming reset as listed by /api/resets
type ResetView struct {
	Index      int           `json:"index"`
	At         time.Time     `json:"at"`
	WindowEnd  time.Time     `json:"windowEnd"`
	Action     models.Action `json:"action"`
	Overridden bool          `json:"overridden"`
}

// ResetsResponse is the body of /api/resets
type ResetsResponse struct {
	Now       time.Time        `json:"now"`
	SeasonEnd time.Time        `json:"seasonEnd"`
	Advice    solver.Advice    `json:"advice"`
	Countdown countdown.Result `json:"countdown"`
	Resets    []ResetView      `json:"resets"`
}

func (s *server) handleResets(w http.ResponseWriter, r *http.Request) {
	now, err := s.parseNow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	overrides, err := s.store.Overrides(r.Context(), s.season)
	if err != nil {
		slog.Error("load overrides", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load overrides")
		return
	}

	checkpoints := models.IndexCheckpoints(schedule.GenerateCheckpoints(now, schedule.SeasonEnd))
	resets := make([]ResetView, 0, len(checkpoints))
	for _, cp := range checkpoints {
		_, end := schedule.ResetWindow(cp.At)
		_, overridden := overrides[cp.Index]
		resets = append(resets, ResetView{
			Index:      cp.Index,
			At:         cp.At,
			WindowEnd:  end,
			Action:     solver.ResolveAction(cp.Index, overrides, solver.TrailingWindow),
			Overridden: overridden,
		})
	}

	respondJSON(w, http.StatusOK, ResetsResponse{
		Now:       now,
		SeasonEnd: schedule.SeasonEnd,
		Advice:    solver.Advise(len(checkpoints), solver.TrailingWindow),
		Countdown: countdown.Breakdown(now, schedule.SeasonEnd),
		Resets:    resets,
	})
}

func (s *server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	now, err := s.parseNow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, countdown.Breakdown(now, schedule.SeasonEnd))
}

// ProjectionRequest is the body of /api/projection and /api/compare. When
// Overrides is omitted the stored overrides apply.
type ProjectionRequest struct {
	State     loader.SnapshotJSON `json:"state"`
	Overrides map[string]string   `json:"overrides,omitempty"`
	Now       string              `json:"now,omitempty"`
}

type projectionInput struct {
	state     models.ResourceState
	overrides models.Overrides
	now       time.Time
}

func (s *server) decodeProjection(w http.ResponseWriter, r *http.Request) (projectionInput, int, error) {
	var req ProjectionRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return projectionInput{}, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
	}
	if err := loader.ValidateSnapshot(req.State); err != nil {
		return projectionInput{}, http.StatusBadRequest, err
	}

	in := projectionInput{state: req.State.ToState(), now: s.clock().UTC()}
	if req.Now != "" {
		t, err := parseInstant(req.Now)
		if err != nil {
			return projectionInput{}, http.StatusBadRequest, err
		}
		in.now = t
	}

	if req.Overrides != nil {
		overrides, err := loader.OverridesFromMap(req.Overrides)
		if err != nil {
			return projectionInput{}, http.StatusBadRequest, err
		}
		in.overrides = overrides
		return in, http.StatusOK, nil
	}

	overrides, err := s.store.Overrides(r.Context(), s.season)
	if err != nil {
		slog.Error("load overrides", "error", err)
		return projectionInput{}, http.StatusInternalServerError, errors.New("failed to load overrides")
	}
	in.overrides = overrides
	return in, http.StatusOK, nil
}

func (s *server) handleProjection(w http.ResponseWriter, r *http.Request) {
	in, status, err := s.decodeProjection(w, r)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, solver.ProjectSeason(in.state, in.now, in.overrides))
}

// StrategyView summarises one compared strategy
type StrategyView struct {
	Name    string               `json:"name"`
	Best    bool                 `json:"best"`
	Actions []models.Action      `json:"actions"`
	Final   models.ResourceState `json:"final"`
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	in, status, err := s.decodeProjection(w, r)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}

	checkpoints := schedule.GenerateCheckpoints(in.now, schedule.SeasonEnd)
	best, results := solver.CompareStrategies(in.state, checkpoints, in.overrides, solver.TrailingWindow)

	views := make([]StrategyView, 0, len(results))
	for _, res := range results {
		views = append(views, StrategyView{
			Name:    res.Strategy.Name,
			Best:    res.Strategy.Name == best.Strategy.Name,
			Actions: res.Projection.Actions(),
			Final:   res.Projection.Final,
		})
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *server) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := s.store.Overrides(r.Context(), s.season)
	if err != nil {
		slog.Error("load overrides", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load overrides")
		return
	}
	respondJSON(w, http.StatusOK, overrides)
}

func (s *server) handleClearOverrides(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context(), s.season); err != nil {
		slog.Error("clear overrides", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to clear overrides")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleResponse reports the action now in effect at a reset
type ToggleResponse struct {
	Index  int           `json:"index"`
	Action models.Action `json:"action"`
}

func (s *server) handleToggle(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid reset index %q", raw))
		return
	}

	action, err := s.store.Toggle(r.Context(), s.season, index, solver.TrailingWindow)
	if err != nil {
		slog.Error("toggle override", "index", index, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to toggle override")
		return
	}
	slog.Info("override toggled", "season", s.season, "index", index, "action", action)
	respondJSON(w, http.StatusOK, ToggleResponse{Index: index, Action: action})
}
