package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/stats"
)

// startResultRequest begins a server-side result record for a live
// session. The title is denormalized so history survives program
// edits; the session id may be absent for ad-hoc workouts.
type startResultRequest struct {
	Session models.Session `json:"session"`
}

func (s *Server) handleStartResult(w http.ResponseWriter, r *http.Request) {
	var req startResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	id, err := s.db.StartSession(r.Context(), defaultUserID, req.Session, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleUpdateResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var update models.ResultUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.db.UpdateResult(r.Context(), id, update); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFinishResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.db.FinishResult(r.Context(), id, time.Now()); err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.db.Result(r.Context(), id, defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	result, err := s.db.Result(r.Context(), id, defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.db.ResultsByUser(r.Context(), defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if results == nil {
		results = []models.WorkoutResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

// statsResponse aggregates the user's full history into the overview
// served to progress dashboards.
type statsResponse struct {
	TotalWorkouts    int                    `json:"totalWorkouts"`
	TotalVolume      float64                `json:"totalVolume"`
	TotalReps        int                    `json:"totalReps"`
	TotalDurationSec int                    `json:"totalDurationSec"`
	AverageQuality   float64                `json:"averageQuality"`
	CurrentStreak    int                    `json:"currentStreak"`
	LongestStreak    int                    `json:"longestStreak"`
	ThisWeek         int                    `json:"thisWeek"`
	PersonalRecords  []stats.PersonalRecord `json:"personalRecords"`
	ByWeekday        [7]int                 `json:"byWeekday"`
	ByWorkoutType    map[string]int         `json:"byWorkoutType"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	results, err := s.db.ResultsByUser(r.Context(), defaultUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	now := time.Now()
	resp := statsResponse{
		TotalWorkouts:    len(results),
		TotalVolume:      stats.TotalVolume(results),
		TotalReps:        stats.TotalReps(results),
		TotalDurationSec: int(stats.TotalDuration(results).Seconds()),
		AverageQuality:   stats.AverageQuality(results),
		CurrentStreak:    stats.CurrentStreak(results, now),
		LongestStreak:    stats.LongestStreak(results),
		ThisWeek:         stats.ThisWeek(results, now),
		PersonalRecords:  stats.PersonalRecords(results),
		ByWeekday:        stats.ByWeekday(results),
		ByWorkoutType:    stats.ByWorkoutType(results),
	}
	if resp.PersonalRecords == nil {
		resp.PersonalRecords = []stats.PersonalRecord{}
	}
	writeJSON(w, http.StatusOK, resp)
}
