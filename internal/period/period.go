// Package period derives the fixed reporting quarters of a UK tax year,
// their statutory deadlines and the submission status of each quarter.
package period

import (
	"time"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// QuarterPeriod is the resolved window of one quarter within a tax year.
// Dates are UTC midnights; start, end and deadline are all inclusive.
type QuarterPeriod struct {
	TaxYear   models.TaxYear
	Quarter   models.Quarter
	StartDate time.Time
	EndDate   time.Time
	Deadline  time.Time
}

// quarterStartMonths maps each quarter to its starting month offset from 6 April.
var quarterStartMonths = map[models.Quarter]int{
	models.Q1: 0,
	models.Q2: 3,
	models.Q3: 6,
	models.Q4: 9,
}

// PeriodOf resolves the window and deadline of one quarter.
// Quarters run 6 Apr-5 Jul, 6 Jul-5 Oct, 6 Oct-5 Jan, 6 Jan-5 Apr; the
// deadline is one calendar month plus two days after the quarter end.
func PeriodOf(ty models.TaxYear, q models.Quarter) QuarterPeriod {
	start := ty.StartDate().AddDate(0, quarterStartMonths[q], 0)
	end := start.AddDate(0, 3, -1)
	return QuarterPeriod{
		TaxYear:   ty,
		Quarter:   q,
		StartDate: start,
		EndDate:   end,
		Deadline:  end.AddDate(0, 1, 2),
	}
}

// QuartersOf returns the four quarters of a tax year in order.
func QuartersOf(ty models.TaxYear) []QuarterPeriod {
	periods := make([]QuarterPeriod, 0, len(models.AllQuarters))
	for _, q := range models.AllQuarters {
		periods = append(periods, PeriodOf(ty, q))
	}
	return periods
}

// dateOnly truncates an instant to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the instant falls within the quarter window.
func (p QuarterPeriod) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// StatusOf classifies a quarter relative to "now" and its submission record.
// A quarter whose window contains now is the current draft; an ended,
// unsubmitted quarter stays a draft until its deadline passes.
func StatusOf(now time.Time, p QuarterPeriod, submitted bool) models.QuarterStatus {
	d := dateOnly(now)
	switch {
	case d.Before(p.StartDate):
		return models.StatusFuture
	case !d.After(p.EndDate):
		return models.StatusDraft
	case submitted:
		return models.StatusSubmitted
	case d.After(p.Deadline):
		return models.StatusOverdue
	default:
		return models.StatusDraft
	}
}

// IsCurrent reports whether now falls within the quarter window.
func IsCurrent(now time.Time, p QuarterPeriod) bool {
	return p.Contains(now)
}

// CurrentTaxYear returns the tax year containing the given instant.
func CurrentTaxYear(now time.Time) (models.TaxYear, error) {
	d := dateOnly(now)
	start := d.Year()
	if d.Before(time.Date(d.Year(), time.April, 6, 0, 0, 0, 0, time.UTC)) {
		start--
	}
	return models.NewTaxYear(start)
}
