package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// fakeIncomeLookup serves canned income totals per quarter.
type fakeIncomeLookup struct {
	totals map[models.Quarter]decimal.Decimal
	counts map[models.Quarter]int
	err    error
}

func (f *fakeIncomeLookup) TotalByQuarter(_ context.Context, _ string, _ models.TaxYear, q models.Quarter) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.totals[q], nil
}

func (f *fakeIncomeLookup) CountByQuarter(_ context.Context, _ string, _ models.TaxYear, q models.Quarter) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[q], nil
}

// fakeExpenseLookup serves canned expense records per quarter.
type fakeExpenseLookup struct {
	records map[models.Quarter][]models.Expense
	err     error
}

func (f *fakeExpenseLookup) FindByQuarter(_ context.Context, _ string, _ models.TaxYear, q models.Quarter) ([]models.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[q], nil
}

func (f *fakeExpenseLookup) DeductibleTotalByQuarter(_ context.Context, _ string, _ models.TaxYear, q models.Quarter) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, rec := range f.records[q] {
		if rec.Category.Deductible() {
			total = total.Add(rec.Amount)
		}
	}
	return total, nil
}

// fakeSubmissionLookup marks a set of quarters as submitted.
type fakeSubmissionLookup struct {
	submitted map[models.Quarter]bool
}

func (f *fakeSubmissionLookup) HasSubmission(_ context.Context, _ string, _ models.TaxYear, q models.Quarter) (bool, error) {
	return f.submitted[q], nil
}

func expense(amount string, cat models.ExpenseCategory) models.Expense {
	return models.Expense{
		Amount:     decimal.RequireFromString(amount),
		Category:   cat,
		IncurredAt: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func taxYear2025(t *testing.T) models.TaxYear {
	t.Helper()
	ty, err := models.NewTaxYear(2025)
	require.NoError(t, err)
	return ty
}

func TestBuildQuarterlyReview(t *testing.T) {
	t.Parallel()

	ty := taxYear2025(t)

	t.Run("aggregates by category", func(t *testing.T) {
		t.Parallel()
		incomes := &fakeIncomeLookup{
			totals: map[models.Quarter]decimal.Decimal{models.Q1: decimal.RequireFromString("5000.00")},
			counts: map[models.Quarter]int{models.Q1: 3},
		}
		expenses := &fakeExpenseLookup{
			records: map[models.Quarter][]models.Expense{
				models.Q1: {
					expense("500", models.CategoryOfficeCosts),
					expense("300", models.CategoryOfficeCosts),
					expense("200", models.CategoryTravel),
				},
			},
		}

		data, err := NewBuilder(incomes, expenses).BuildQuarterlyReview(context.Background(), "biz-1", ty, models.Q1)
		require.NoError(t, err)

		require.True(t, decimal.RequireFromString("5000.00").Equal(data.TotalIncome))
		require.Equal(t, 3, data.IncomeTransactionCount)
		require.True(t, decimal.RequireFromString("1000").Equal(data.TotalExpenses))
		require.Equal(t, 3, data.ExpenseTransactionCount)
		require.True(t, decimal.RequireFromString("4000").Equal(data.NetProfit))
		require.False(t, data.IsNilReturn())

		require.Len(t, data.ExpensesByCategory, 2)
		office := data.ExpensesByCategory[models.CategoryOfficeCosts]
		require.True(t, decimal.RequireFromString("800").Equal(office.Amount))
		require.Equal(t, 2, office.TransactionCount)
		travel := data.ExpensesByCategory[models.CategoryTravel]
		require.True(t, decimal.RequireFromString("200").Equal(travel.Amount))
		require.Equal(t, 1, travel.TransactionCount)

		require.Equal(t, time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC), data.PeriodStart)
		require.Equal(t, time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC), data.PeriodEnd)
	})

	t.Run("excludes non-deductible categories entirely", func(t *testing.T) {
		t.Parallel()
		incomes := &fakeIncomeLookup{
			totals: map[models.Quarter]decimal.Decimal{models.Q1: decimal.RequireFromString("1000")},
			counts: map[models.Quarter]int{models.Q1: 1},
		}
		expenses := &fakeExpenseLookup{
			records: map[models.Quarter][]models.Expense{
				models.Q1: {
					expense("250", models.CategoryTravel),
					expense("900", models.CategoryDepreciation),
					expense("150", models.CategoryBusinessEntertainment),
				},
			},
		}

		data, err := NewBuilder(incomes, expenses).BuildQuarterlyReview(context.Background(), "biz-1", ty, models.Q1)
		require.NoError(t, err)

		require.True(t, decimal.RequireFromString("250").Equal(data.TotalExpenses))
		require.Equal(t, 1, data.ExpenseTransactionCount)
		require.Len(t, data.ExpensesByCategory, 1)
		require.NotContains(t, data.ExpensesByCategory, models.CategoryDepreciation)
		require.NotContains(t, data.ExpensesByCategory, models.CategoryBusinessEntertainment)
	})

	t.Run("nil return when both totals are zero", func(t *testing.T) {
		t.Parallel()
		incomes := &fakeIncomeLookup{totals: map[models.Quarter]decimal.Decimal{}, counts: map[models.Quarter]int{}}
		expenses := &fakeExpenseLookup{}

		data, err := NewBuilder(incomes, expenses).BuildQuarterlyReview(context.Background(), "biz-1", ty, models.Q2)
		require.NoError(t, err)
		require.True(t, data.IsNilReturn())
		require.Empty(t, data.ExpensesByCategory)
	})

	t.Run("loss quarter is not a nil return", func(t *testing.T) {
		t.Parallel()
		incomes := &fakeIncomeLookup{totals: map[models.Quarter]decimal.Decimal{}, counts: map[models.Quarter]int{}}
		expenses := &fakeExpenseLookup{
			records: map[models.Quarter][]models.Expense{
				models.Q1: {expense("120.50", models.CategoryOfficeCosts)},
			},
		}

		data, err := NewBuilder(incomes, expenses).BuildQuarterlyReview(context.Background(), "biz-1", ty, models.Q1)
		require.NoError(t, err)
		require.False(t, data.IsNilReturn())
		require.True(t, decimal.RequireFromString("-120.50").Equal(data.NetProfit))
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		t.Parallel()
		lookupErr := errors.New("ledger unavailable")
		incomes := &fakeIncomeLookup{err: lookupErr}
		expenses := &fakeExpenseLookup{}

		_, err := NewBuilder(incomes, expenses).BuildQuarterlyReview(context.Background(), "biz-1", ty, models.Q1)
		require.ErrorIs(t, err, lookupErr)
	})
}
