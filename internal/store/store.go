package store

import (
	"context"

	"github.com/leadflow/leadflow/internal/model"
)

// DateFormat is the calendar-day format used for delivery and follow-up
// dates throughout the store.
const DateFormat = "2006-01-02"

// LeadHistoryFilter controls filtering for a user's delivered-lead history.
type LeadHistoryFilter struct {
	Status *string // one of the model.LeadStatus* values, or nil (all)
}

// ProfileUpdate is a partial update of a user's profile. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	Phone           *string
	CompanyName     *string
	CompanyOverview *string
	Timezone        *string
	Countries       *[]string
	Categories      *[]int64
}

// Store defines the persistence interface for users, sessions, the seeded
// lead catalog, daily assignments, and per-lead status and notes.
type Store interface {
	// === Users ===

	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id int64, upd ProfileUpdate) error

	// === Sessions ===

	CreateSession(ctx context.Context, session model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error

	// === Catalog ===

	Categories(ctx context.Context) ([]model.Category, error)
	CategoriesByIDs(ctx context.Context, ids []int64) ([]model.Category, error)
	SeedCatalog(ctx context.Context, categories []model.Category, companies []model.Company, leads []model.Lead) error

	// === Daily assignment ===

	// DailyLeads returns the user's assignment set for the given calendar
	// day (DateFormat), creating it if it does not exist yet. Repeat calls
	// for the same day return the identical set. The limit caps how many
	// new leads a first call may assign.
	DailyLeads(ctx context.Context, userID int64, day string, limit int) ([]model.DeliveredLead, error)

	// UserLeads returns the user's full delivered-lead history, newest
	// delivery day first.
	UserLeads(ctx context.Context, userID int64, filter LeadHistoryFilter) ([]model.DeliveredLead, error)

	// === Status and notes ===

	UpdateLeadStatus(ctx context.Context, userID, leadID int64, status, nextActionDate string) error
	AddNote(ctx context.Context, userID, leadID int64, content string) (*model.Note, error)
	NotesForLead(ctx context.Context, userID, leadID int64) ([]model.Note, error)

	Close() error
}
