package review

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/display"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// QuarterOverview is one row of the tax-year overview screen. Totals are
// nil for FUTURE quarters: not yet known, as opposed to known to be zero.
type QuarterOverview struct {
	Quarter       models.Quarter
	Label         string
	DateRangeText string
	DeadlineText  string
	Status        models.QuarterStatus
	IsCurrent     bool
	TotalIncome   *decimal.Decimal
	TotalExpenses *decimal.Decimal
}

// Overview assembles the per-quarter rows of a tax year.
type Overview struct {
	incomes     IncomeLookup
	expenses    ExpenseLookup
	submissions SubmissionLookup
	clock       period.Clock
}

// NewOverview creates an Overview over the given lookups and clock.
func NewOverview(incomes IncomeLookup, expenses ExpenseLookup, submissions SubmissionLookup, clock period.Clock) *Overview {
	return &Overview{incomes: incomes, expenses: expenses, submissions: submissions, clock: clock}
}

// BuildYearOverview derives the four quarter rows for a tax year: labels,
// deadline text, status, the is-current flag and totals. FUTURE quarters
// short-circuit before any ledger lookup.
func (o *Overview) BuildYearOverview(ctx context.Context, businessID string, ty models.TaxYear) ([]QuarterOverview, error) {
	now := o.clock.Now()

	rows := make([]QuarterOverview, 0, len(models.AllQuarters))
	for _, p := range period.QuartersOf(ty) {
		submitted, err := o.submissions.HasSubmission(ctx, businessID, ty, p.Quarter)
		if err != nil {
			return nil, fmt.Errorf("failed to check submission for %s: %w", p.Quarter, err)
		}

		row := QuarterOverview{
			Quarter:       p.Quarter,
			Label:         display.QuarterLabel(p.Quarter, ty),
			DateRangeText: display.DateRangeText(p),
			DeadlineText:  display.DeadlineText(p),
			Status:        period.StatusOf(now, p, submitted),
			IsCurrent:     period.IsCurrent(now, p),
		}

		if row.Status != models.StatusFuture {
			income, err := o.incomes.TotalByQuarter(ctx, businessID, ty, p.Quarter)
			if err != nil {
				return nil, fmt.Errorf("failed to look up income for %s: %w", p.Quarter, err)
			}
			expenses, err := o.expenses.DeductibleTotalByQuarter(ctx, businessID, ty, p.Quarter)
			if err != nil {
				return nil, fmt.Errorf("failed to look up expenses for %s: %w", p.Quarter, err)
			}
			row.TotalIncome = &income
			row.TotalExpenses = &expenses
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// DialogFor builds the dialog for one overview row.
func (row QuarterOverview) DialogFor(p period.QuarterPeriod) display.Dialog {
	income := decimal.Zero
	expenses := decimal.Zero
	if row.TotalIncome != nil {
		income = *row.TotalIncome
	}
	if row.TotalExpenses != nil {
		expenses = *row.TotalExpenses
	}
	return display.DialogFor(row.Status, p, income, expenses)
}
