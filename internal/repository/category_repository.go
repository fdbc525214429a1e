package repository

import (
	"context"
	"fmt"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/database"
)

// CategoryRow is one seeded statutory category as stored.
type CategoryRow struct {
	ID         int
	Name       string
	Deductible bool
}

// CategoryRepository handles category database operations.
type CategoryRepository struct {
	db database.PGXDB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db database.PGXDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll retrieves all categories.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]CategoryRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, deductible FROM categories ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []CategoryRow
	for rows.Next() {
		var cat CategoryRow
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Deductible); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// GetByName retrieves a category by its statutory name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*CategoryRow, error) {
	var cat CategoryRow
	err := r.db.QueryRow(ctx, `
		SELECT id, name, deductible FROM categories WHERE name = $1
	`, name).Scan(&cat.ID, &cat.Name, &cat.Deductible)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &cat, nil
}
