package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/repforge/internal/draft"
	"github.com/claude/repforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

// defaultUserID scopes all data until multi-user auth lands. Access
// control is handled by the tailnet plus the API key on writes.
const defaultUserID = 1

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	drafts *draft.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. The draft store
// may be nil, in which case the autosave endpoints report unavailable.
func New(db *storage.DB, drafts *draft.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		drafts: drafts,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/workout-types", s.handleWorkoutTypes)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/exercises/{id}", s.handleGetExercise)
	s.router.Get("/api/v1/programs", s.handleListPrograms)
	s.router.Get("/api/v1/programs/{id}", s.handleGetProgram)
	s.router.Get("/api/v1/results", s.handleListResults)
	s.router.Get("/api/v1/results/{id}", s.handleGetResult)
	s.router.Get("/api/v1/stats", s.handleStats)

	// Write endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/exercises", s.handleSeedExercises)
		r.Post("/api/v1/programs", s.handleCreateProgram)
		r.Put("/api/v1/programs/{id}", s.handleUpdateProgram)
		r.Delete("/api/v1/programs/{id}", s.handleDeleteProgram)
		r.Post("/api/v1/results/start", s.handleStartResult)
		r.Put("/api/v1/results/{id}", s.handleUpdateResult)
		r.Post("/api/v1/results/{id}/finish", s.handleFinishResult)

		r.Get("/api/v1/drafts", s.handleListDrafts)
		r.Get("/api/v1/drafts/{id}", s.handleGetDraft)
		r.Put("/api/v1/drafts/{id}", s.handleSaveDraft)
		r.Delete("/api/v1/drafts/{id}", s.handleDeleteDraft)
	})
}
