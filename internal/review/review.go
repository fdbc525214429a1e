// Package review aggregates a quarter's ledger entries into the figures the
// quarterly submission screens display. Income and expense data come from
// injected lookups; this package owns no storage.
package review

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// IncomeLookup supplies income totals per quarter from the ledger.
type IncomeLookup interface {
	TotalByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (decimal.Decimal, error)
	CountByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (int, error)
}

// ExpenseLookup supplies raw expense records and deductible totals per quarter.
type ExpenseLookup interface {
	FindByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) ([]models.Expense, error)
	DeductibleTotalByQuarter(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (decimal.Decimal, error)
}

// SubmissionLookup reports whether a quarter already has a recorded submission.
type SubmissionLookup interface {
	HasSubmission(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (bool, error)
}

// Builder assembles QuarterlyReviewData from the injected lookups.
type Builder struct {
	incomes  IncomeLookup
	expenses ExpenseLookup
}

// NewBuilder creates a Builder over the given lookups.
func NewBuilder(incomes IncomeLookup, expenses ExpenseLookup) *Builder {
	return &Builder{incomes: incomes, expenses: expenses}
}

// BuildQuarterlyReview aggregates one quarter. Only deductible categories
// contribute to totals and appear in the category map; sums are exact
// decimal additions with no intermediate rounding. Callers must not invoke
// this for FUTURE quarters, whose totals are reported as absent instead.
func (b *Builder) BuildQuarterlyReview(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (*models.QuarterlyReviewData, error) {
	totalIncome, err := b.incomes.TotalByQuarter(ctx, businessID, ty, q)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quarter income: %w", err)
	}
	incomeCount, err := b.incomes.CountByQuarter(ctx, businessID, ty, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count quarter income: %w", err)
	}

	records, err := b.expenses.FindByQuarter(ctx, businessID, ty, q)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quarter expenses: %w", err)
	}

	byCategory := make(map[models.ExpenseCategory]models.CategorySummary)
	totalExpenses := decimal.Zero
	expenseCount := 0
	for _, rec := range records {
		if !rec.Category.Deductible() {
			continue
		}
		summary := byCategory[rec.Category]
		summary.Amount = summary.Amount.Add(rec.Amount)
		summary.TransactionCount++
		byCategory[rec.Category] = summary

		totalExpenses = totalExpenses.Add(rec.Amount)
		expenseCount++
	}

	p := period.PeriodOf(ty, q)
	return &models.QuarterlyReviewData{
		TaxYear:                 ty,
		Quarter:                 q,
		TotalIncome:             totalIncome,
		IncomeTransactionCount:  incomeCount,
		TotalExpenses:           totalExpenses,
		ExpenseTransactionCount: expenseCount,
		ExpensesByCategory:      byCategory,
		NetProfit:               totalIncome.Sub(totalExpenses),
		PeriodStart:             p.StartDate,
		PeriodEnd:               p.EndDate,
	}, nil
}
