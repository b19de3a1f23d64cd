// Package auth implements registration, login, and token-based session
// authentication on top of the store.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
	"github.com/leadflow/leadflow/internal/store"
)

// Service provides credential and session operations.
type Service struct {
	store      store.Store
	sessionTTL time.Duration
	bcryptCost int
}

// NewService creates an auth service. Sessions issued by Login expire after
// sessionTTL.
func NewService(st store.Store, sessionTTL time.Duration, bcryptCost int) *Service {
	return &Service{
		store:      st,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// RegisterParams holds the fields accepted at registration.
type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	Phone           string
	CompanyName     string
	CompanyOverview string
	Timezone        string
	Countries       []string
	Categories      []int64
}

// Register creates a new user account with a hashed password.
// A duplicate email yields a conflict error.
func (s *Service) Register(ctx context.Context, p RegisterParams) error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		p.Password == "" {
		return apperr.New(apperr.CodeValidation, "name, email and password are required")
	}

	hash, err := HashPassword(p.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := model.User{
		Name:                strings.TrimSpace(p.Name),
		Email:               strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:               p.Phone,
		PasswordHash:        hash,
		CompanyName:         p.CompanyName,
		CompanyOverview:     p.CompanyOverview,
		Timezone:            p.Timezone,
		CountryPreferences:  p.Countries,
		CategoryPreferences: p.Categories,
	}

	_, err = s.store.CreateUser(ctx, user)
	return err
}

// Login checks the user's credentials and issues an opaque session token.
// A wrong email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", apperr.New(apperr.CodeValidation, "email and password are required")
	}

	invalid := apperr.New(apperr.CodeUnauthorized, "invalid credentials")

	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return "", invalid
		}
		return "", err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", invalid
	}

	now := time.Now().UTC()
	session := model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return "", err
	}

	return session.Token, nil
}

// Logout invalidates the session token. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Authenticate resolves a session token to its user. Missing and expired
// sessions are both reported as unauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperr.New(apperr.CodeUnauthorized, "authentication required")
	}

	session, err := s.store.GetSession(ctx, token)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.Wrap(apperr.CodeUnauthorized, "invalid or expired session", err)
		}
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, session.UserID)
	if err != nil {
		// The session references a user that no longer exists.
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return nil, apperr.Wrap(apperr.CodeUnauthorized, "invalid or expired session", err)
		}
		return nil, err
	}

	return user, nil
}
