package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// RunMigrations creates the database schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			deductible BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS incomes (
			id SERIAL PRIMARY KEY,
			business_id TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			description TEXT,
			received_at DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			business_id TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			description TEXT,
			incurred_at DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS quarterly_submissions (
			id SERIAL PRIMARY KEY,
			business_id TEXT NOT NULL,
			tax_year INTEGER NOT NULL,
			quarter INTEGER NOT NULL CHECK (quarter BETWEEN 1 AND 4),
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (business_id, tax_year, quarter)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_incomes_business_received ON incomes(business_id, received_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_business_incurred ON expenses(business_id, incurred_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

// SeedCategories inserts the statutory expense categories with their
// deductible flags. Existing rows are updated so flag changes propagate.
func SeedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, cat := range models.AllCategories {
		_, err := pool.Exec(ctx, `
			INSERT INTO categories (name, deductible)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET deductible = EXCLUDED.deductible
		`, string(cat), cat.Deductible())
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat, err)
		}
	}
	return nil
}
