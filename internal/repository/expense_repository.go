package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/database"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// ExpenseRepository handles expense database operations.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create adds a new expense entry. The category must be one of the seeded
// statutory categories.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (business_id, amount, category_id, description, incurred_at)
		VALUES ($1, $2, (SELECT id FROM categories WHERE name = $3), $4, $5)
		RETURNING id, created_at
	`, expense.BusinessID, expense.Amount, string(expense.Category),
		expense.Description, expense.IncurredAt,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// FindByQuarter retrieves all expenses incurred within the quarter window,
// deductible or not. Category filtering is the aggregation engine's job.
func (r *ExpenseRepository) FindByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) ([]models.Expense, error) {
	p := period.PeriodOf(ty, q)
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.business_id, e.amount, c.name, e.description, e.incurred_at, e.created_at
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.business_id = $1 AND e.incurred_at >= $2 AND e.incurred_at <= $3
		ORDER BY e.incurred_at, e.id
	`, businessID, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query quarter expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		var category string
		if err := rows.Scan(&exp.ID, &exp.BusinessID, &exp.Amount, &category,
			&exp.Description, &exp.IncurredAt, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		exp.Category = models.ExpenseCategory(category)
		expenses = append(expenses, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// DeductibleTotalByQuarter sums deductible expenses incurred within the
// quarter window.
func (r *ExpenseRepository) DeductibleTotalByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (decimal.Decimal, error) {
	p := period.PeriodOf(ty, q)
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.business_id = $1 AND e.incurred_at >= $2 AND e.incurred_at <= $3 AND c.deductible
	`, businessID, p.StartDate, p.EndDate).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total deductible expenses: %w", err)
	}
	return total, nil
}

// DeductibleTotalByYear sums deductible expenses over the whole tax year.
func (r *ExpenseRepository) DeductibleTotalByYear(ctx context.Context, businessID string, ty models.TaxYear) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.business_id = $1 AND e.incurred_at >= $2 AND e.incurred_at <= $3 AND c.deductible
	`, businessID, ty.StartDate(), ty.EndDate()).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total year deductible expenses: %w", err)
	}
	return total, nil
}
