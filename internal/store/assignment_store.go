package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/leadflow/leadflow/internal/model"
)

// deliveredLeadQuery joins a user's assignments with the lead, company,
// category, and status tables to produce DeliveredLead rows.
const deliveredLeadQuery = `
	SELECT
		l.id AS lead_id, l.full_name, l.email, l.phone, l.country,
		c.name AS company, cat.name AS category,
		c.overview AS company_overview, c.website_url AS company_website,
		a.assigned_on AS delivery_date,
		COALESCE(ls.status, '') AS status,
		COALESCE(ls.next_action_date, '') AS next_action_date
	FROM assignments a
	JOIN leads l ON a.lead_id = l.id
	JOIN companies c ON l.company_id = c.id
	JOIN categories cat ON c.category_id = cat.id
	LEFT JOIN lead_statuses ls ON ls.user_id = a.user_id AND ls.lead_id = a.lead_id`

// DailyLeads returns the user's assignment set for the given day, creating
// it on first call. The set is idempotent per calendar day: once created it
// is never replaced, and repeat calls return the identical leads.
//
// Two simultaneous first calls race on the daily_batches primary key; the
// loser reads back and returns the winner's set.
func (s *SQLiteStore) DailyLeads(ctx context.Context, userID int64, day string, limit int) ([]model.DeliveredLead, error) {
	var batches int
	err := s.db.GetContext(ctx, &batches,
		"SELECT COUNT(*) FROM daily_batches WHERE user_id = ? AND assigned_on = ?",
		userID, day,
	)
	if err != nil {
		return nil, fmt.Errorf("checking daily batch: %w", err)
	}

	if batches == 0 {
		if err := s.createDailyBatch(ctx, userID, day, limit); err != nil {
			if !isUniqueViolation(err) {
				return nil, err
			}
			// A concurrent request created the batch first; fall through
			// and return its set.
		}
	}

	return s.leadsForDay(ctx, userID, day)
}

// createDailyBatch inserts the batch marker for (user, day) and assigns up
// to limit unseen leads matching the user's preferences, all in one
// transaction. A unique violation on the marker means another request won
// the race; the caller must read the existing set instead.
func (s *SQLiteStore) createDailyBatch(ctx context.Context, userID int64, day string, limit int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning assignment transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO daily_batches (user_id, assigned_on, created_at) VALUES (?, ?, ?)",
		userID, day, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("creating daily batch: %w", err)
	}

	user, err := scanUser(tx.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = ?", userID))
	if err != nil {
		return fmt.Errorf("loading preferences for user %d: %w", userID, err)
	}

	leadIDs, err := selectCandidates(ctx, tx, user, limit)
	if err != nil {
		return err
	}

	for _, leadID := range leadIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO assignments (user_id, lead_id, assigned_on) VALUES (?, ?, ?)",
			userID, leadID, day,
		)
		if err != nil {
			return fmt.Errorf("assigning lead %d: %w", leadID, err)
		}
	}

	return tx.Commit()
}

// selectCandidates picks up to limit leads matching the user's country and
// category preferences that have never been assigned to them, in ascending
// lead ID order. The fixed ordering makes assignment reproducible for a
// given catalog state and prior history.
func selectCandidates(ctx context.Context, tx *sqlx.Tx, user *model.User, limit int) ([]int64, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT l.id FROM leads l
		JOIN companies c ON l.company_id = c.id
		WHERE l.id NOT IN (SELECT lead_id FROM assignments WHERE user_id = ?)`
	args := []interface{}{user.ID}

	if len(user.CountryPreferences) > 0 {
		query += " AND l.country IN (?)"
		args = append(args, user.CountryPreferences)
	}
	if len(user.CategoryPreferences) > 0 {
		query += " AND c.category_id IN (?)"
		args = append(args, user.CategoryPreferences)
	}
	query += " ORDER BY l.id ASC LIMIT ?"
	args = append(args, limit)

	query, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("building candidate query: %w", err)
	}

	var leadIDs []int64
	if err := tx.SelectContext(ctx, &leadIDs, query, expanded...); err != nil {
		return nil, fmt.Errorf("selecting candidate leads: %w", err)
	}
	return leadIDs, nil
}

// leadsForDay returns the delivered leads assigned to the user on the given
// day, in ascending lead ID order.
func (s *SQLiteStore) leadsForDay(ctx context.Context, userID int64, day string) ([]model.DeliveredLead, error) {
	var leads []model.DeliveredLead
	err := s.db.SelectContext(ctx, &leads,
		deliveredLeadQuery+" WHERE a.user_id = ? AND a.assigned_on = ? ORDER BY l.id ASC",
		userID, day,
	)
	if err != nil {
		return nil, fmt.Errorf("querying daily leads: %w", err)
	}
	return leads, nil
}

// UserLeads retrieves the user's full delivered-lead history, optionally
// filtered by status, newest delivery day first then lead name.
func (s *SQLiteStore) UserLeads(ctx context.Context, userID int64, filter LeadHistoryFilter) ([]model.DeliveredLead, error) {
	query := deliveredLeadQuery + " WHERE a.user_id = ?"
	args := []interface{}{userID}

	if filter.Status != nil {
		query += " AND ls.status = ?"
		args = append(args, *filter.Status)
	}
	query += " ORDER BY a.assigned_on DESC, l.full_name ASC"

	var leads []model.DeliveredLead
	if err := s.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("querying lead history: %w", err)
	}
	return leads, nil
}
