package api

import (
	"encoding/json"
	"net/http"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/auth"
	"github.com/leadflow/leadflow/internal/model"
)

// registerRequest is the POST /register body.
type registerRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Phone           string   `json:"phone"`
	CompanyName     string   `json:"company_name"`
	CompanyOverview string   `json:"company_overview"`
	Timezone        string   `json:"timezone"`
	Countries       []string `json:"countries"`
	Categories      []int64  `json:"categories"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.auth.Register(r.Context(), auth.RegisterParams{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		CompanyName:     req.CompanyName,
		CompanyOverview: req.CompanyOverview,
		Timezone:        req.Timezone,
		Countries:       req.Countries,
		Categories:      req.Categories,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ *model.User) {
	if err := s.auth.Logout(r.Context(), requestToken(r)); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON decodes the request body into dst, reporting malformed JSON
// as a validation error.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.CodeValidation, "invalid JSON body", err)
	}
	return nil
}
