package model

// Category is a product vertical that companies belong to.
// Categories are seeded reference data and never change at runtime.
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Company is an MLM company a lead is associated with.
// Companies are seeded reference data.
type Company struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	CategoryID int64  `json:"category_id" db:"category_id"`
	Overview   string `json:"overview" db:"overview"`
	WebsiteURL string `json:"website_url" db:"website_url"`
	Country    string `json:"country" db:"country"`
}
