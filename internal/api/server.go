// Package api exposes the JSON HTTP interface: registration, login, the
// daily lead batch, lead history, status and note tracking, and the user
// profile, plus the embedded static front end.
package api

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/leadflow/leadflow/internal/auth"
	"github.com/leadflow/leadflow/internal/store"
)

// Server is the HTTP API server.
type Server struct {
	store      store.Store
	auth       *auth.Service
	logger     *zap.Logger
	router     *mux.Router
	dailyLimit int
}

// New creates a Server with all routes registered. static is the embedded
// front-end filesystem, served at the root path; pass nil to disable it.
func New(st store.Store, authSvc *auth.Service, logger *zap.Logger, dailyLimit int, static fs.FS) *Server {
	s := &Server{
		store:      st,
		auth:       authSvc,
		logger:     logger,
		router:     mux.NewRouter(),
		dailyLimit: dailyLimit,
	}
	s.routes(static)
	return s
}

func (s *Server) routes(static fs.FS) {
	s.router.Use(s.logRequests, allowCORS)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	s.router.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	s.router.HandleFunc("/logout", s.withUser(s.handleLogout)).Methods(http.MethodPost)
	s.router.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)

	s.router.HandleFunc("/leads/daily", s.withUser(s.handleDailyLeads)).Methods(http.MethodGet)
	s.router.HandleFunc("/leads", s.withUser(s.handleUserLeads)).Methods(http.MethodGet)
	s.router.HandleFunc("/lead_status", s.withUser(s.handleLeadStatus)).Methods(http.MethodPost)
	s.router.HandleFunc("/notes", s.withUser(s.handleAddNote)).Methods(http.MethodPost)
	s.router.HandleFunc("/notes", s.withUser(s.handleListNotes)).Methods(http.MethodGet)

	s.router.HandleFunc("/user/profile", s.withUser(s.handleGetProfile)).Methods(http.MethodGet)
	// POST is accepted as a fallback for clients that cannot send PUT.
	s.router.HandleFunc("/user/profile", s.withUser(s.handleUpdateProfile)).
		Methods(http.MethodPut, http.MethodPost)

	s.router.PathPrefix("/").HandlerFunc(handlePreflight).Methods(http.MethodOptions)

	if static != nil {
		s.router.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
