// Package repository provides database access for ledger entries and
// submission records.
package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/database"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// IncomeRepository handles income database operations.
type IncomeRepository struct {
	db database.PGXDB
}

// NewIncomeRepository creates a new IncomeRepository.
func NewIncomeRepository(db database.PGXDB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// Create adds a new income entry.
func (r *IncomeRepository) Create(ctx context.Context, income *models.Income) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO incomes (business_id, amount, description, received_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, income.BusinessID, income.Amount, income.Description, income.ReceivedAt,
	).Scan(&income.ID, &income.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// TotalByQuarter sums income received within the quarter window.
func (r *IncomeRepository) TotalByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (decimal.Decimal, error) {
	p := period.PeriodOf(ty, q)
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM incomes
		WHERE business_id = $1 AND received_at >= $2 AND received_at <= $3
	`, businessID, p.StartDate, p.EndDate).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total quarter income: %w", err)
	}
	return total, nil
}

// CountByQuarter counts income entries received within the quarter window.
func (r *IncomeRepository) CountByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (int, error) {
	p := period.PeriodOf(ty, q)
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM incomes
		WHERE business_id = $1 AND received_at >= $2 AND received_at <= $3
	`, businessID, p.StartDate, p.EndDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quarter income: %w", err)
	}
	return count, nil
}

// TotalByYear sums income received within the whole tax year.
func (r *IncomeRepository) TotalByYear(ctx context.Context, businessID string, ty models.TaxYear) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM incomes
		WHERE business_id = $1 AND received_at >= $2 AND received_at <= $3
	`, businessID, ty.StartDate(), ty.EndDate()).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total year income: %w", err)
	}
	return total, nil
}
