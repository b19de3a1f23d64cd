package model

import "time"

// Note is a single timestamped text entry a user attached to a delivered
// lead. Notes are append-only: never edited, merged, or deleted.
type Note struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	LeadID    int64     `json:"lead_id" db:"lead_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
