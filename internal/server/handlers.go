package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/repforge/internal/builder"
	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/storage"
	"github.com/claude/repforge/internal/workout"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// workoutTypeView is the catalog entry served to clients: the type key
// plus its constraints and display metadata.
type workoutTypeView struct {
	Type        workout.Type        `json:"type"`
	Category    string              `json:"category"`
	Constraints workout.Constraints `json:"constraints"`
	Info        workout.Info        `json:"info"`
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	views := make([]workoutTypeView, 0, len(workout.All()))
	for _, t := range workout.All() {
		views = append(views, workoutTypeView{
			Type:        t,
			Category:    t.Category(),
			Constraints: workout.ConstraintsFor(t),
			Info:        workout.InfoFor(t),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.Exercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	ex, err := s.db.Exercise(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleSeedExercises(w http.ResponseWriter, r *http.Request) {
	var exercises []models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercises); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	inserted, err := s.db.SeedExercises(r.Context(), exercises)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"inserted": inserted})
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.db.Programs(r.Context(), defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if programs == nil {
		programs = []storage.ProgramSummary{}
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, err := s.db.GetProgram(r.Context(), id, defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeValidProgram(w, r)
	if !ok {
		return
	}
	created, err := s.db.CreateProgram(r.Context(), defaultUserID, p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, ok := s.decodeValidProgram(w, r)
	if !ok {
		return
	}
	updated, err := s.db.UpdateProgram(r.Context(), id, defaultUserID, p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteProgram(r.Context(), id, defaultUserID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeValidProgram decodes a program payload and runs it through the
// builder's save validation so malformed programs never reach storage.
func (s *Server) decodeValidProgram(w http.ResponseWriter, r *http.Request) (models.Program, bool) {
	var p models.Program
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return models.Program{}, false
	}

	b, err := builder.Load(r.Context(), p, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return models.Program{}, false
	}
	validated, err := b.Build()
	if err != nil {
		var verrs builder.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validationErrors": verrs})
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return models.Program{}, false
	}
	return validated, true
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps storage errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrResultFinished):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.log.Error("storage error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
