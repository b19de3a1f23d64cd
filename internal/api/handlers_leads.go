package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
	"github.com/leadflow/leadflow/internal/store"
)

func (s *Server) handleDailyLeads(w http.ResponseWriter, r *http.Request, user *model.User) {
	day := time.Now().UTC().Format(store.DateFormat)
	leads, err := s.store.DailyLeads(r.Context(), user.ID, day, s.dailyLimit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if leads == nil {
		leads = []model.DeliveredLead{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

func (s *Server) handleUserLeads(w http.ResponseWriter, r *http.Request, user *model.User) {
	var filter store.LeadHistoryFilter
	if status := r.URL.Query().Get("status"); status != "" {
		if !model.ValidLeadStatus(status) {
			s.writeError(w, apperr.New(apperr.CodeValidation, "unknown status filter"))
			return
		}
		filter.Status = &status
	}

	leads, err := s.store.UserLeads(r.Context(), user.ID, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if leads == nil {
		leads = []model.DeliveredLead{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

// leadStatusRequest is the POST /lead_status body.
type leadStatusRequest struct {
	LeadID         int64  `json:"lead_id"`
	Status         string `json:"status"`
	NextActionDate string `json:"next_action_date"`
}

func (s *Server) handleLeadStatus(w http.ResponseWriter, r *http.Request, user *model.User) {
	var req leadStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.LeadID == 0 || req.Status == "" {
		s.writeError(w, apperr.New(apperr.CodeValidation, "lead_id and status are required"))
		return
	}
	if !model.ValidLeadStatus(req.Status) {
		s.writeError(w, apperr.New(apperr.CodeValidation, "status must be not_interested, maybe or interested"))
		return
	}
	if req.NextActionDate != "" {
		if _, err := time.Parse(store.DateFormat, req.NextActionDate); err != nil {
			s.writeError(w, apperr.New(apperr.CodeValidation, "next_action_date must be YYYY-MM-DD"))
			return
		}
	}

	err := s.store.UpdateLeadStatus(r.Context(), user.ID, req.LeadID, req.Status, req.NextActionDate)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// noteRequest is the POST /notes body.
type noteRequest struct {
	LeadID  int64  `json:"lead_id"`
	Content string `json:"content"`
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request, user *model.User) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.LeadID == 0 {
		s.writeError(w, apperr.New(apperr.CodeValidation, "lead_id is required"))
		return
	}

	if _, err := s.store.AddNote(r.Context(), user.ID, req.LeadID, req.Content); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request, user *model.User) {
	leadID, err := strconv.ParseInt(r.URL.Query().Get("lead_id"), 10, 64)
	if err != nil || leadID == 0 {
		s.writeError(w, apperr.New(apperr.CodeValidation, "lead_id query parameter is required"))
		return
	}

	notes, err := s.store.NotesForLead(r.Context(), user.ID, leadID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if notes == nil {
		notes = []model.Note{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notes": notes})
}
