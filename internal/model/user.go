package model

import "time"

// User is a registered account that receives daily lead batches.
type User struct {
	// ID is the internal numeric identifier for this user.
	ID int64 `json:"id" db:"id"`

	// Name is the user's display name.
	Name string `json:"name" db:"name"`

	// Email is the unique login identifier.
	Email string `json:"email" db:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone" db:"phone"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to JSON.
	PasswordHash string `json:"-" db:"password_hash"`

	// CompanyName is the user's own MLM company, if any.
	CompanyName string `json:"company_name" db:"company_name"`

	// CompanyOverview is a free-text description of that company.
	CompanyOverview string `json:"company_overview" db:"company_overview"`

	// Timezone is an IANA zone name used for display purposes.
	Timezone string `json:"timezone" db:"timezone"`

	// CountryPreferences restricts daily lead picks to these countries.
	// Empty means no country filter.
	CountryPreferences []string `json:"countries" db:"-"`

	// CategoryPreferences restricts daily lead picks to these category IDs.
	// Empty means no category filter.
	CategoryPreferences []int64 `json:"categories" db:"-"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
