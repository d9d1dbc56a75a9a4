// Package http serves the winnow dashboard: a JSON API over live solver
// sessions, plus a server-sent event stream per game.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/winnow/internal/dto"
	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/metrics"
	"github.com/aretw0/winnow/internal/runtime"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
	"github.com/aretw0/winnow/pkg/session"
	"github.com/aretw0/winnow/pkg/words"
	"github.com/go-chi/chi/v5"
)

// Config wires the handler's collaborators. Dict is required; everything
// else has a default.
type Config struct {
	// Dict is the accepted word list. All words share one length.
	Dict []domain.Word

	// GuessLimit is the default guess budget for new sessions.
	GuessLimit int

	// Pool is the default guess pool policy for new sessions.
	Pool domain.PoolPolicy

	// Opening fixes the default first guess; empty lets the solver
	// compute one.
	Opening domain.Word

	// Book caches computed openings across sessions. Optional.
	Book ports.OpeningBook

	// Metrics, when set, exposes GET /metrics and counts solver activity.
	Metrics *metrics.Metrics

	Logger  *slog.Logger
	Version string
}

// sessionSample caps how many surviving candidates a session view lists.
const sessionSample = 100

// gameSession pairs a live game with the engine built for it. Session
// options may override the server defaults, so every session carries its
// own engine.
type gameSession struct {
	engine *runtime.Engine
	game   *runtime.Game
	assist bool
}

// Server holds the live sessions and their event streams.
type Server struct {
	cfg      Config
	sessions *session.Manager[*gameSession]
	streams  *StreamManager
	logger   *slog.Logger
}

// NewHandler builds the dashboard API for the given configuration.
func NewHandler(cfg Config) (http.Handler, error) {
	if len(cfg.Dict) == 0 {
		return nil, fmt.Errorf("dashboard requires a word list: %w", domain.ErrEmptyGuessPool)
	}
	if cfg.GuessLimit <= 0 {
		cfg.GuessLimit = runtime.DefaultGuessLimit
	}
	if cfg.Pool == "" {
		cfg.Pool = domain.PoolCandidates
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}

	server := &Server{
		cfg:      cfg,
		sessions: session.NewManager[*gameSession](session.WithLogger(cfg.Logger)),
		streams:  NewStreamManager(cfg.Logger),
		logger:   cfg.Logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.handleHealth)
	r.Get("/info", server.handleInfo)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", server.handleCreate)
		r.Get("/", server.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", server.handleGet)
			r.Delete("/", server.handleDelete)
			r.Post("/guess", server.handleGuess)
			r.Post("/auto", server.handleAuto)
			r.Get("/suggest", server.handleSuggest)
			r.Get("/history", server.handleHistory)
			r.Get("/letters", server.handleLetters)
			r.Get("/events", server.handleEvents)
		})
	})

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) letters() int {
	return len(s.cfg.Dict[0])
}

// randomSolution picks the hidden word uniformly from the dictionary.
func (s *Server) randomSolution() domain.Word {
	return s.cfg.Dict[rand.IntN(len(s.cfg.Dict))]
}

// engineFor builds the solver engine for one session, applying any
// overrides the client sent on top of the server defaults.
func (s *Server) engineFor(opts *dto.SessionOptions) (*runtime.Engine, error) {
	limit := s.cfg.GuessLimit
	if opts.Guesses < 0 {
		return nil, badRequest("guesses must be positive")
	}
	if opts.Guesses > 0 {
		limit = opts.Guesses
	}

	pool := s.cfg.Pool
	if opts.Pool != "" {
		parsed, err := domain.ParsePoolPolicy(opts.Pool)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		pool = parsed
	}

	opening := s.cfg.Opening
	if opts.Opening != "" {
		parsed, err := domain.ParseWord(opts.Opening, s.letters())
		if err != nil {
			return nil, badRequest(err.Error())
		}
		opening = parsed
	}

	hooks := s.streamHooks()
	if s.cfg.Metrics != nil {
		hooks = s.cfg.Metrics.Hooks(hooks)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithGuessLimit(limit),
		runtime.WithPoolPolicy(pool),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithLogger(s.logger),
	}
	if opening != "" {
		engineOpts = append(engineOpts, runtime.WithOpeningWord(opening))
	}
	if s.cfg.Book != nil {
		engineOpts = append(engineOpts, runtime.WithOpeningBook(s.cfg.Book))
	}
	return runtime.NewEngine(engineOpts...), nil
}

// streamHooks forwards solver lifecycle events to SSE subscribers.
func (s *Server) streamHooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			s.broadcast(e.SessionID, e)
		},
		OnFinish: func(ctx context.Context, e *domain.FinishEvent) {
			s.broadcast(e.SessionID, e)
		},
	}
}

func (s *Server) broadcast(sessionID string, event any) {
	if sessionID == "" {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("failed to marshal event", "err", err)
		return
	}
	s.streams.Broadcast(sessionID, string(payload))
}

// handleCreate starts a session. The body is optional; an empty body
// yields a random solution with the server defaults.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	raw := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, badRequest("invalid request body"))
		return
	}
	opts, err := dto.DecodeSessionOptions(raw)
	if err != nil {
		s.respondError(w, badRequest(err.Error()))
		return
	}

	engine, err := s.engineFor(opts)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var game *runtime.Game
	switch {
	case opts.Assist && opts.Solution != "":
		s.respondError(w, badRequest("assist sessions cannot fix a solution"))
		return
	case opts.Assist:
		game, err = engine.NewAssist(s.cfg.Dict)
	case opts.Solution != "":
		var solution domain.Word
		solution, err = domain.ParseWord(opts.Solution, s.letters())
		if err != nil {
			s.respondError(w, badRequest(err.Error()))
			return
		}
		game, err = engine.NewGame(s.cfg.Dict, solution)
	default:
		game, err = engine.NewGame(s.cfg.Dict, s.randomSolution())
	}
	if err != nil {
		s.respondError(w, err)
		return
	}

	gs := &gameSession{engine: engine, game: game, assist: opts.Assist}
	id := s.sessions.Create(gs)
	game.ID = id
	if s.cfg.Metrics != nil {
		s.cfg.Metrics.Sessions.Inc()
	}
	s.logger.Info("session created", "session_id", id, "assist", opts.Assist)
	s.writeJSON(w, http.StatusCreated, s.sessionResponse(id, gs))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"sessions": s.sessions.List()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var resp SessionResponse
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		resp = s.sessionResponse(id, gs)
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.Delete(id); err != nil {
		s.respondError(w, err)
		return
	}
	if s.cfg.Metrics != nil {
		s.cfg.Metrics.Sessions.Dec()
	}
	s.logger.Info("session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleGuess plays one round. Solution sessions compute the feedback;
// assist sessions require it in the request.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, badRequest("invalid request body"))
		return
	}

	var resp SessionResponse
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		guess, err := domain.ParseWord(req.Guess, s.letters())
		if err != nil {
			return badRequest(err.Error())
		}
		if gs.assist {
			if req.Feedback == "" {
				return badRequest("assist sessions require feedback with every guess")
			}
			feedback, err := domain.ParsePattern(req.Feedback)
			if err != nil {
				return badRequest(err.Error())
			}
			if _, err := gs.engine.ApplyFeedback(r.Context(), gs.game, guess, feedback); err != nil {
				return err
			}
		} else {
			if req.Feedback != "" {
				return badRequest("feedback is computed by the server for solution sessions")
			}
			if _, err := gs.engine.Guess(r.Context(), gs.game, guess); err != nil {
				return err
			}
		}
		resp = s.sessionResponse(id, gs)
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleAuto plays one round with the engine's own best guess, the API
// form of a "make guess" button. Clients loop it to watch a full solve.
func (s *Server) handleAuto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var resp SessionResponse
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		if gs.assist {
			return badRequest("assist sessions cannot auto-solve")
		}
		guess, _, err := gs.engine.Suggest(r.Context(), gs.game)
		if err != nil {
			return err
		}
		if _, err := gs.engine.Guess(r.Context(), gs.game, guess); err != nil {
			return err
		}
		resp = s.sessionResponse(id, gs)
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	start := time.Now()
	var resp SuggestResponse
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		guess, gain, err := gs.engine.Suggest(r.Context(), gs.game)
		if err != nil {
			return err
		}
		resp = SuggestResponse{Guess: guess, Gain: gain, Candidates: gs.game.Candidates().Len()}
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	if s.cfg.Metrics != nil {
		s.cfg.Metrics.ObserveSelection(time.Since(start))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var resp []RecordResponse
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		resp = mapHistory(gs.game.History())
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"history": resp})
}

// handleLetters reports how the surviving candidates distribute over
// their first letter, for the dashboard's frequency chart.
func (s *Server) handleLetters(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var counts map[string]int
	err := s.sessions.WithLock(id, func(gs *gameSession) error {
		counts = words.LeadingLetterCounts(gs.game.Candidates().Words())
		return nil
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"letters": counts})
}

// handleEvents streams session lifecycle events over SSE. An optional
// ?types= filter keeps only the named event types.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.sessions.Get(id); err != nil {
		s.respondError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SSE: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe(id)
	defer cancel()

	s.logger.Info("SSE: subscribed", "session_id", id)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	var types []string
	if raw := r.URL.Query().Get("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE: client disconnected", "session_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if !matchesType(msg, types) {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// matchesType keeps a message when no filter is set or its type is listed.
func matchesType(msg string, types []string) bool {
	if len(types) == 0 {
		return true
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(msg), &probe); err != nil {
		return true
	}
	for _, t := range types {
		if strings.TrimSpace(t) == probe.Type {
			return true
		}
	}
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":        "winnow-dashboard",
		"version":    s.cfg.Version,
		"letters":    s.letters(),
		"dictionary": len(s.cfg.Dict),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// httpError pins a status code to a message before it leaves a handler.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &httpError{status: http.StatusBadRequest, msg: msg}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	var he *httpError
	if errors.As(err, &he) {
		s.writeJSON(w, he.status, map[string]string{"error": he.msg})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotInDictionary):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrLengthMismatch),
		errors.Is(err, domain.ErrNoCandidates),
		errors.Is(err, domain.ErrEmptyGuessPool):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// GuessRequest is the body of POST /sessions/{id}/guess.
type GuessRequest struct {
	Guess string `json:"guess"`

	// Feedback carries the observed pattern for assist sessions, in
	// c/p/a notation.
	Feedback string `json:"feedback,omitempty"`
}

// SessionResponse is the API view of one session.
type SessionResponse struct {
	ID          string           `json:"id"`
	Letters     int              `json:"letters"`
	Status      domain.Status    `json:"status"`
	GuessesLeft int              `json:"guesses_left"`
	Candidates  int              `json:"candidates"`
	EntropyBits float64          `json:"entropy_bits"`
	Assist      bool             `json:"assist"`
	History     []RecordResponse `json:"history"`

	// Sample lists surviving candidates, capped at sessionSample.
	Sample []domain.Word `json:"sample,omitempty"`

	Reason *string `json:"reason,omitempty"`
}

// RecordResponse is the API view of one recorded guess.
type RecordResponse struct {
	Guess     domain.Word `json:"guess"`
	Feedback  string      `json:"feedback"`
	Notation  string      `json:"notation"`
	Remaining int         `json:"remaining"`
	Gain      float64     `json:"gain"`
}

// SuggestResponse is the body of GET /sessions/{id}/suggest.
type SuggestResponse struct {
	Guess      domain.Word `json:"guess"`
	Gain       float64     `json:"gain"`
	Candidates int         `json:"candidates"`
}

func (s *Server) sessionResponse(id string, gs *gameSession) SessionResponse {
	g := gs.game
	resp := SessionResponse{
		ID:          id,
		Letters:     g.Letters(),
		Status:      g.Status(),
		GuessesLeft: g.Remaining(),
		Candidates:  g.Candidates().Len(),
		EntropyBits: g.Entropy(),
		Assist:      gs.assist,
		History:     mapHistory(g.History()),
		Sample:      g.Candidates().Sample(sessionSample),
	}
	if reason := g.Result().Reason; reason != nil {
		resp.Reason = ptr(reason.Error())
	}
	return resp
}

func mapHistory(history domain.History) []RecordResponse {
	out := make([]RecordResponse, len(history))
	for i, rec := range history {
		out[i] = RecordResponse{
			Guess:     rec.Guess,
			Feedback:  rec.Feedback.Letters(),
			Notation:  rec.Feedback.Notation(rec.Guess),
			Remaining: rec.Remaining,
			Gain:      rec.Gain,
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
