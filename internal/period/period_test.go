package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

func mustTaxYear(t *testing.T, start int) models.TaxYear {
	t.Helper()
	ty, err := models.NewTaxYear(start)
	require.NoError(t, err)
	return ty
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuartersOf2025(t *testing.T) {
	t.Parallel()

	periods := QuartersOf(mustTaxYear(t, 2025))
	require.Len(t, periods, 4)

	tests := []struct {
		quarter  models.Quarter
		start    time.Time
		end      time.Time
		deadline time.Time
	}{
		{models.Q1, date(2025, time.April, 6), date(2025, time.July, 5), date(2025, time.August, 7)},
		{models.Q2, date(2025, time.July, 6), date(2025, time.October, 5), date(2025, time.November, 7)},
		{models.Q3, date(2025, time.October, 6), date(2026, time.January, 5), date(2026, time.February, 7)},
		{models.Q4, date(2026, time.January, 6), date(2026, time.April, 5), date(2026, time.May, 7)},
	}

	for i, tt := range tests {
		p := periods[i]
		require.Equal(t, tt.quarter, p.Quarter)
		require.Equal(t, tt.start, p.StartDate, "%s start", tt.quarter)
		require.Equal(t, tt.end, p.EndDate, "%s end", tt.quarter)
		require.Equal(t, tt.deadline, p.Deadline, "%s deadline", tt.quarter)
	}
}

func TestQuartersAreContiguous(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(models.MinTaxYearStart, models.MaxTaxYearStart).Draw(t, "startYear")
		ty, err := models.NewTaxYear(start)
		if err != nil {
			t.Fatalf("NewTaxYear(%d): %v", start, err)
		}

		periods := QuartersOf(ty)
		if got := periods[0].StartDate; !got.Equal(ty.StartDate()) {
			t.Fatalf("Q1 starts %v, want tax year start %v", got, ty.StartDate())
		}
		for i := 1; i < len(periods); i++ {
			prevEnd := periods[i-1].EndDate
			if !prevEnd.AddDate(0, 0, 1).Equal(periods[i].StartDate) {
				t.Fatalf("%s start %v does not follow %s end %v",
					periods[i].Quarter, periods[i].StartDate, periods[i-1].Quarter, prevEnd)
			}
			if !periods[i].Deadline.After(periods[i-1].Deadline) {
				t.Fatalf("deadlines not strictly increasing at %s", periods[i].Quarter)
			}
		}
		if got := periods[3].EndDate; !got.Equal(ty.EndDate()) {
			t.Fatalf("Q4 ends %v, want tax year end %v", got, ty.EndDate())
		}
		for _, p := range periods {
			if !p.Deadline.Equal(p.EndDate.AddDate(0, 1, 2)) {
				t.Fatalf("%s deadline %v is not end + 1 month + 2 days", p.Quarter, p.Deadline)
			}
		}
	})
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	ty := mustTaxYear(t, 2025)

	tests := []struct {
		name      string
		now       time.Time
		quarter   models.Quarter
		submitted bool
		want      models.QuarterStatus
	}{
		{name: "current quarter is draft", now: date(2025, time.April, 15), quarter: models.Q1, want: models.StatusDraft},
		{name: "q2 future in april", now: date(2025, time.April, 15), quarter: models.Q2, want: models.StatusFuture},
		{name: "q3 future in april", now: date(2025, time.April, 15), quarter: models.Q3, want: models.StatusFuture},
		{name: "q4 future in april", now: date(2025, time.April, 15), quarter: models.Q4, want: models.StatusFuture},
		{name: "unsubmitted past deadline is overdue", now: date(2026, time.February, 15), quarter: models.Q1, want: models.StatusOverdue},
		{name: "submitted past deadline", now: date(2026, time.February, 15), quarter: models.Q1, submitted: true, want: models.StatusSubmitted},
		{name: "ended before deadline stays draft", now: date(2025, time.July, 20), quarter: models.Q1, want: models.StatusDraft},
		{name: "ended and submitted", now: date(2025, time.July, 20), quarter: models.Q1, submitted: true, want: models.StatusSubmitted},
		{name: "start date inclusive", now: date(2025, time.April, 6), quarter: models.Q1, want: models.StatusDraft},
		{name: "end date inclusive", now: date(2025, time.July, 5), quarter: models.Q1, want: models.StatusDraft},
		{name: "deadline day still draft", now: date(2025, time.August, 7), quarter: models.Q1, want: models.StatusDraft},
		{name: "day after deadline overdue", now: date(2025, time.August, 8), quarter: models.Q1, want: models.StatusOverdue},
		{name: "day before start is future", now: date(2025, time.April, 5), quarter: models.Q1, want: models.StatusFuture},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := PeriodOf(ty, tt.quarter)
			require.Equal(t, tt.want, StatusOf(tt.now, p, tt.submitted))
		})
	}
}

func TestExactlyOneCurrentQuarter(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(models.MinTaxYearStart, models.MaxTaxYearStart).Draw(t, "startYear")
		dayOffset := rapid.IntRange(0, 364).Draw(t, "dayOffset")

		ty, err := models.NewTaxYear(start)
		if err != nil {
			t.Fatalf("NewTaxYear(%d): %v", start, err)
		}
		now := ty.StartDate().AddDate(0, 0, dayOffset)

		current := 0
		for _, p := range QuartersOf(ty) {
			if IsCurrent(now, p) {
				current++
			}
		}
		if current != 1 {
			t.Fatalf("%v falls in %d quarters, want exactly 1", now, current)
		}
	})
}

func TestIsCurrentIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	p := PeriodOf(mustTaxYear(t, 2025), models.Q1)
	lastMoment := time.Date(2025, time.July, 5, 23, 59, 59, 0, time.UTC)
	require.True(t, IsCurrent(lastMoment, p))
	require.Equal(t, models.StatusDraft, StatusOf(lastMoment, p, false))
}

func TestCurrentTaxYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "after 6 april", now: date(2025, time.April, 6), want: 2025},
		{name: "before 6 april", now: date(2025, time.April, 5), want: 2024},
		{name: "mid year", now: date(2025, time.December, 25), want: 2025},
		{name: "new year before april", now: date(2026, time.January, 2), want: 2025},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ty, err := CurrentTaxYear(tt.now)
			require.NoError(t, err)
			require.Equal(t, tt.want, ty.StartYear())
		})
	}
}

func TestFixedClock(t *testing.T) {
	t.Parallel()

	instant := date(2025, time.April, 15)
	clock := FixedClock{Instant: instant}
	require.Equal(t, instant, clock.Now())
}
