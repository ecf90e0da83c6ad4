package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/repforge/internal/models"
)

// Draft endpoints persist builder autosave snapshots. Unlike program
// saves, drafts skip validation entirely; a half-built program is the
// expected payload.

func (s *Server) draftsAvailable(w http.ResponseWriter) bool {
	if s.drafts == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "draft store not configured"})
		return false
	}
	return true
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	if !s.draftsAvailable(w) {
		return
	}
	entries, err := s.drafts.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	if !s.draftsAvailable(w) {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, found, err := s.drafts.Load(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "draft not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	if !s.draftsAvailable(w) {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var p models.Program
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	p.ID = id
	if err := s.drafts.Save(p); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if !s.draftsAvailable(w) {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.drafts.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
