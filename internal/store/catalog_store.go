package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leadflow/leadflow/internal/model"
)

// Categories retrieves all seeded categories, ordered by name.
func (s *SQLiteStore) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return categories, nil
}

// CategoriesByIDs retrieves the categories with the given IDs, ordered by ID.
// Unknown IDs are silently skipped.
func (s *SQLiteStore) CategoriesByIDs(ctx context.Context, ids []int64) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM categories WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, fmt.Errorf("building category query: %w", err)
	}

	var categories []model.Category
	if err := s.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("querying categories by id: %w", err)
	}
	return categories, nil
}

// SeedCatalog populates the category, company, and lead tables if they are
// empty. Each table is seeded independently, so a partially seeded database
// is completed rather than duplicated. The whole seed runs in one
// transaction.
func (s *SQLiteStore) SeedCatalog(
	ctx context.Context,
	categories []model.Category,
	companies []model.Company,
	leads []model.Lead,
) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM categories"); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count == 0 {
		for _, c := range categories {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO categories (name, description) VALUES (?, ?)",
				c.Name, c.Description,
			)
			if err != nil {
				return fmt.Errorf("seeding category %q: %w", c.Name, err)
			}
		}
	}

	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM companies"); err != nil {
		return fmt.Errorf("counting companies: %w", err)
	}
	if count == 0 {
		for _, c := range companies {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO companies (name, category_id, overview, website_url, country)
				VALUES (?, ?, ?, ?, ?)`,
				c.Name, c.CategoryID, c.Overview, c.WebsiteURL, c.Country,
			)
			if err != nil {
				return fmt.Errorf("seeding company %q: %w", c.Name, err)
			}
		}
	}

	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM leads"); err != nil {
		return fmt.Errorf("counting leads: %w", err)
	}
	if count == 0 {
		for _, l := range leads {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO leads (full_name, email, phone, country, company_id, source_info)
				VALUES (?, ?, ?, ?, ?, ?)`,
				l.FullName, l.Email, l.Phone, l.Country, l.CompanyID, l.SourceInfo,
			)
			if err != nil {
				return fmt.Errorf("seeding lead %q: %w", l.FullName, err)
			}
		}
	}

	return tx.Commit()
}
