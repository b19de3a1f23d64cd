package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
)

// CreateSession inserts a new session record.
func (s *SQLiteStore) CreateSession(ctx context.Context, session model.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`,
		session.Token, session.UserID,
		session.CreatedAt.UTC(), session.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

// GetSession looks up a session by token. Expired sessions are deleted on
// lookup and reported as not found.
func (s *SQLiteStore) GetSession(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := s.db.GetContext(ctx, &session, "SELECT * FROM sessions WHERE token = ?", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.CodeNotFound, "session not found", err)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
			return nil, fmt.Errorf("deleting expired session: %w", err)
		}
		return nil, apperr.New(apperr.CodeNotFound, "session expired")
	}

	return &session, nil
}

// DeleteSession removes a session by token. Deleting a missing session is
// not an error.
func (s *SQLiteStore) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
