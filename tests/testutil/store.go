package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leadflow/leadflow/internal/model"
	"github.com/leadflow/leadflow/internal/seed"
	"github.com/leadflow/leadflow/internal/store"
)

// NewTestStore creates a SQLiteStore backed by a temporary file with all
// migrations applied. A file is used instead of :memory: because the
// connection pool opens multiple connections, and each in-memory connection
// would see its own empty database. The store is closed automatically when
// the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "leadflow_test.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// SeedCatalog populates the test store with the standard seed catalog:
// 7 categories, 7 companies, and 20 leads.
func SeedCatalog(t *testing.T, s *store.SQLiteStore) {
	t.Helper()

	err := s.SeedCatalog(context.Background(), seed.Categories(), seed.Companies(), seed.Leads())
	if err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
}

// CreateUser inserts a user with the given email and preferences and
// returns its ID.
func CreateUser(t *testing.T, s *store.SQLiteStore, email string, countries []string, categories []int64) int64 {
	t.Helper()

	id, err := s.CreateUser(context.Background(), model.User{
		Name:                "Test User",
		Email:               email,
		PasswordHash:        "x",
		CountryPreferences:  countries,
		CategoryPreferences: categories,
	})
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return id
}
