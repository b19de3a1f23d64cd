package api

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/model"
	"github.com/leadflow/leadflow/internal/store"
)

// profileResponse is the GET /user/profile body. Category preferences are
// resolved to their names so the front end can render them directly.
type profileResponse struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	CompanyName     string            `json:"company_name"`
	CompanyOverview string            `json:"company_overview"`
	Timezone        string            `json:"timezone"`
	Countries       []string          `json:"countries"`
	Categories      []profileCategory `json:"categories"`
}

type profileCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, user *model.User) {
	resp := profileResponse{
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		CompanyName:     user.CompanyName,
		CompanyOverview: user.CompanyOverview,
		Timezone:        user.Timezone,
		Countries:       user.CountryPreferences,
		Categories:      []profileCategory{},
	}
	if resp.Countries == nil {
		resp.Countries = []string{}
	}

	if len(user.CategoryPreferences) > 0 {
		categories, err := s.store.CategoriesByIDs(r.Context(), user.CategoryPreferences)
		if err != nil {
			s.writeError(w, err)
			return
		}
		for _, c := range categories {
			resp.Categories = append(resp.Categories, profileCategory{ID: c.ID, Name: c.Name})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// profileUpdateRequest is the PUT /user/profile body. Absent fields keep
// their current value.
type profileUpdateRequest struct {
	Phone           *string   `json:"phone"`
	CompanyName     *string   `json:"company_name"`
	CompanyOverview *string   `json:"company_overview"`
	Timezone        *string   `json:"timezone"`
	Countries       *[]string `json:"countries"`
	Categories      *[]int64  `json:"categories"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, user *model.User) {
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.store.UpdateUserProfile(r.Context(), user.ID, store.ProfileUpdate{
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
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
