package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
)

// CreateUser inserts a new user and returns its generated ID.
// A duplicate email yields a conflict error.
func (s *SQLiteStore) CreateUser(ctx context.Context, user model.User) (int64, error) {
	countries, err := json.Marshal(user.CountryPreferences)
	if err != nil {
		return 0, fmt.Errorf("marshaling country preferences: %w", err)
	}
	categories, err := json.Marshal(user.CategoryPreferences)
	if err != nil {
		return 0, fmt.Errorf("marshaling category preferences: %w", err)
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Timezone == "" {
		user.Timezone = "UTC"
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (
			name, email, phone, password_hash,
			company_name, company_overview, timezone,
			country_preferences, category_preferences, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.Phone, user.PasswordHash,
		user.CompanyName, user.CompanyOverview, user.Timezone,
		string(countries), string(categories), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Wrap(apperr.CodeConflict, "user with this email already exists", err)
		}
		return 0, fmt.Errorf("creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new user id: %w", err)
	}
	return id, nil
}

// GetUserByID retrieves a single user by ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.CodeNotFound, "user not found", err)
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.CodeNotFound, "user not found", err)
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

// UpdateUserProfile applies a partial profile update. Nil fields in upd
// keep their current value.
func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	var sets []string
	var args []interface{}

	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.CompanyName != nil {
		sets = append(sets, "company_name = ?")
		args = append(args, *upd.CompanyName)
	}
	if upd.CompanyOverview != nil {
		sets = append(sets, "company_overview = ?")
		args = append(args, *upd.CompanyOverview)
	}
	if upd.Timezone != nil {
		sets = append(sets, "timezone = ?")
		args = append(args, *upd.Timezone)
	}
	if upd.Countries != nil {
		countries, err := json.Marshal(*upd.Countries)
		if err != nil {
			return fmt.Errorf("marshaling country preferences: %w", err)
		}
		sets = append(sets, "country_preferences = ?")
		args = append(args, string(countries))
	}
	if upd.Categories != nil {
		categories, err := json.Marshal(*upd.Categories)
		if err != nil {
			return fmt.Errorf("marshaling category preferences: %w", err)
		}
		sets = append(sets, "category_preferences = ?")
		args = append(args, string(categories))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user %d: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.New(apperr.CodeNotFound, "user not found")
	}
	return nil
}

// scanUser scans a user row, decoding the JSON preference columns.
func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*model.User, error) {
	var (
		user       model.User
		countries  string
		categories string
	)

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
		&user.CompanyName, &user.CompanyOverview, &user.Timezone,
		&countries, &categories, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if countries != "" {
		if err := json.Unmarshal([]byte(countries), &user.CountryPreferences); err != nil {
			return nil, fmt.Errorf("unmarshaling country preferences: %w", err)
		}
	}
	if categories != "" {
		if err := json.Unmarshal([]byte(categories), &user.CategoryPreferences); err != nil {
			return nil, fmt.Errorf("unmarshaling category preferences: %w", err)
		}
	}

	return &user, nil
}
