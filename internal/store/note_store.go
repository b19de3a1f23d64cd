package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
)

// AddNote appends a timestamped note to a delivered lead. Notes are never
// edited or merged; each call creates a new entry. The lead must have been
// assigned to the user, and empty content is rejected.
func (s *SQLiteStore) AddNote(ctx context.Context, userID, leadID int64, content string) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.CodeValidation, "note content must not be empty")
	}

	assigned, err := s.leadAssigned(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperr.New(apperr.CodeNotFound, "lead not found for this user")
	}

	note := model.Note{
		UserID:    userID,
		LeadID:    leadID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (user_id, lead_id, content, created_at) VALUES (?, ?, ?, ?)",
		note.UserID, note.LeadID, note.Content, note.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("adding note for lead %d: %w", leadID, err)
	}

	note.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new note id: %w", err)
	}
	return &note, nil
}

// NotesForLead retrieves the user's notes for a lead, oldest first.
func (s *SQLiteStore) NotesForLead(ctx context.Context, userID, leadID int64) ([]model.Note, error) {
	var notes []model.Note
	err := s.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND lead_id = ? ORDER BY created_at ASC, id ASC",
		userID, leadID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying notes for lead %d: %w", leadID, err)
	}
	return notes, nil
}
