package display

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

func q1Period(t *testing.T) period.QuarterPeriod {
	t.Helper()
	ty, err := models.NewTaxYear(2025)
	require.NoError(t, err)
	return period.PeriodOf(ty, models.Q1)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	ty, err := models.NewTaxYear(2025)
	require.NoError(t, err)

	require.Equal(t, "Q1 2025/26", QuarterLabel(models.Q1, ty))
	require.Equal(t, "Q4 2025/26", QuarterLabel(models.Q4, ty))
	require.Equal(t, "Tax Year: 2025/26", TaxYearLabel(ty))
	require.Equal(t, "Due by 31 January 2027", DueByText(ty))
}

func TestDateTexts(t *testing.T) {
	t.Parallel()

	p := q1Period(t)
	require.Equal(t, "6 Apr - 5 Jul", DateRangeText(p))
	require.Equal(t, "Deadline: 7 Aug 2025", DeadlineText(p))
}

func TestMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "zero", amount: "0", want: "£0.00"},
		{name: "small", amount: "5.5", want: "£5.50"},
		{name: "hundreds", amount: "999.99", want: "£999.99"},
		{name: "thousands", amount: "1000", want: "£1,000.00"},
		{name: "tens of thousands", amount: "12345.67", want: "£12,345.67"},
		{name: "millions", amount: "1234567.89", want: "£1,234,567.89"},
		{name: "negative", amount: "-4000", want: "-£4,000.00"},
		{name: "rounds to two places", amount: "10.005", want: "£10.01"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Money(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestButtonLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Review", ButtonLabel(models.StatusDraft))
	require.Equal(t, "Submit Now", ButtonLabel(models.StatusOverdue))
	require.Equal(t, "View", ButtonLabel(models.StatusSubmitted))
	require.Equal(t, "Future", ButtonLabel(models.StatusFuture))
}

func TestDialogFor(t *testing.T) {
	t.Parallel()

	p := q1Period(t)
	income := decimal.RequireFromString("5000")
	expenses := decimal.RequireFromString("1234.56")

	t.Run("draft", func(t *testing.T) {
		t.Parallel()
		dialog := DialogFor(models.StatusDraft, p, income, expenses)
		require.Equal(t, "Review Quarter", dialog.Title)
		require.Contains(t, dialog.Message, "Review")
		require.Contains(t, dialog.Message, "Q1 2025/26")
		require.Equal(t, "Review", dialog.ButtonLabel)
		require.True(t, dialog.ActionEnabled)
	})

	t.Run("overdue", func(t *testing.T) {
		t.Parallel()
		dialog := DialogFor(models.StatusOverdue, p, income, expenses)
		require.Equal(t, "Submit Overdue Quarter", dialog.Title)
		require.Contains(t, dialog.Message, "OVERDUE")
		require.Contains(t, dialog.Message, "Submit")
		require.Contains(t, dialog.Message, "£5,000.00")
		require.Contains(t, dialog.Message, "£1,234.56")
		require.Equal(t, "Submit Now", dialog.ButtonLabel)
		require.True(t, dialog.ActionEnabled)
	})

	t.Run("submitted", func(t *testing.T) {
		t.Parallel()
		dialog := DialogFor(models.StatusSubmitted, p, income, expenses)
		require.Equal(t, "View Submission", dialog.Title)
		require.Contains(t, dialog.Message, "already been submitted")
		require.Equal(t, "View", dialog.ButtonLabel)
		require.True(t, dialog.ActionEnabled)
	})

	t.Run("future action is disabled", func(t *testing.T) {
		t.Parallel()
		dialog := DialogFor(models.StatusFuture, p, decimal.Zero, decimal.Zero)
		require.Equal(t, "Future", dialog.ButtonLabel)
		require.False(t, dialog.ActionEnabled)
	})
}
