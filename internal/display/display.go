// Package display builds the UI-facing text for quarters, deadlines and
// review dialogs. It holds no state; everything is a pure function over
// the period and review types.
package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// QuarterLabel renders "Q1 2025/26".
func QuarterLabel(q models.Quarter, ty models.TaxYear) string {
	return fmt.Sprintf("%s %s", q, ty.Label())
}

// TaxYearLabel renders "Tax Year: 2025/26".
func TaxYearLabel(ty models.TaxYear) string {
	return "Tax Year: " + ty.Label()
}

// DateRangeText renders the quarter window as "6 Apr - 5 Jul".
func DateRangeText(p period.QuarterPeriod) string {
	return p.StartDate.Format("2 Jan") + " - " + p.EndDate.Format("2 Jan")
}

// DeadlineText renders "Deadline: 7 Aug 2025".
func DeadlineText(p period.QuarterPeriod) string {
	return "Deadline: " + p.Deadline.Format("2 Jan 2006")
}

// DueByText renders the annual filing deadline, 31 January following the
// tax year end: "Due by 31 January 2027" for 2025/26.
func DueByText(ty models.TaxYear) string {
	return fmt.Sprintf("Due by 31 January %d", ty.EndYear()+1)
}

// Money renders an amount as "£1,234.56" with thousands separators.
func Money(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "£" + b.String() + "." + fracPart
}

// ButtonLabel is the per-quarter action label keyed by status.
func ButtonLabel(status models.QuarterStatus) string {
	switch status {
	case models.StatusDraft:
		return "Review"
	case models.StatusOverdue:
		return "Submit Now"
	case models.StatusSubmitted:
		return "View"
	case models.StatusFuture:
		return "Future"
	}
	return ""
}

// Dialog is the text the UI shows when a quarter's action is invoked.
type Dialog struct {
	Title         string
	Message       string
	ButtonLabel   string
	ActionEnabled bool
}

// DialogFor builds the status-appropriate dialog for one quarter. Totals
// are the quarter's income and deductible expenses; they are ignored for
// FUTURE quarters, where no action is available.
func DialogFor(status models.QuarterStatus, p period.QuarterPeriod, totalIncome, totalExpenses decimal.Decimal) Dialog {
	label := QuarterLabel(p.Quarter, p.TaxYear)

	switch status {
	case models.StatusDraft:
		return Dialog{
			Title: "Review Quarter",
			Message: fmt.Sprintf("Review your income and expenses for %s (%s) before submitting to HMRC.",
				label, DateRangeText(p)),
			ButtonLabel:   "Review",
			ActionEnabled: true,
		}
	case models.StatusOverdue:
		return Dialog{
			Title: "Submit Overdue Quarter",
			Message: fmt.Sprintf("%s is OVERDUE. The deadline of %s has passed. Income %s, expenses %s. Submit now to avoid penalties.",
				label, p.Deadline.Format("2 Jan 2006"), Money(totalIncome), Money(totalExpenses)),
			ButtonLabel:   "Submit Now",
			ActionEnabled: true,
		}
	case models.StatusSubmitted:
		return Dialog{
			Title:         "View Submission",
			Message:       fmt.Sprintf("%s has already been submitted to HMRC.", label),
			ButtonLabel:   "View",
			ActionEnabled: true,
		}
	case models.StatusFuture:
		return Dialog{
			Title:         "Future Quarter",
			Message:       fmt.Sprintf("%s has not started yet.", label),
			ButtonLabel:   "Future",
			ActionEnabled: false,
		}
	}
	return Dialog{}
}
