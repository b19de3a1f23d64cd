package store

import (
	"context"
	"fmt"
	"time"

	"github.com/leadflow/leadflow/internal/apperr"
)

// UpdateLeadStatus sets the user's status for a delivered lead, overwriting
// any previous value. The lead must have been assigned to the user; a lead
// never delivered to them is reported as not found. Repeat calls with the
// same values are idempotent.
func (s *SQLiteStore) UpdateLeadStatus(ctx context.Context, userID, leadID int64, status, nextActionDate string) error {
	assigned, err := s.leadAssigned(ctx, userID, leadID)
	if err != nil {
		return err
	}
	if !assigned {
		return apperr.New(apperr.CodeNotFound, "lead not found for this user")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO lead_statuses (user_id, lead_id, status, next_action_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, lead_id) DO UPDATE SET
			status = excluded.status,
			next_action_date = excluded.next_action_date,
			updated_at = excluded.updated_at`,
		userID, leadID, status, nextActionDate, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("updating status for lead %d: %w", leadID, err)
	}
	return nil
}

// leadAssigned reports whether the lead has ever been delivered to the user.
func (s *SQLiteStore) leadAssigned(ctx context.Context, userID, leadID int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM assignments WHERE user_id = ? AND lead_id = ?",
		userID, leadID,
	)
	if err != nil {
		return false, fmt.Errorf("checking assignment: %w", err)
	}
	return count > 0, nil
}
