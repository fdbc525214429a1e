// Package models defines the domain entities for the self-assessment core.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput signals a malformed or out-of-range domain value.
var ErrInvalidInput = errors.New("invalid input")

// Supported range of tax-year starting years.
const (
	MinTaxYearStart = 2020
	MaxTaxYearStart = 2049
)

// TaxYear identifies a UK tax year by its starting calendar year.
// TaxYear 2025 denotes 2025/26, running 6 April 2025 to 5 April 2026.
type TaxYear struct {
	startYear int
}

// NewTaxYear creates a TaxYear for the given starting calendar year.
func NewTaxYear(startYear int) (TaxYear, error) {
	if startYear < MinTaxYearStart || startYear > MaxTaxYearStart {
		return TaxYear{}, fmt.Errorf("%w: tax year %d outside supported range %d-%d",
			ErrInvalidInput, startYear, MinTaxYearStart, MaxTaxYearStart)
	}
	return TaxYear{startYear: startYear}, nil
}

// StartYear returns the calendar year in which the tax year begins.
func (ty TaxYear) StartYear() int {
	return ty.startYear
}

// EndYear returns the calendar year in which the tax year ends.
func (ty TaxYear) EndYear() int {
	return ty.startYear + 1
}

// StartDate returns 6 April of the starting year (UTC midnight).
func (ty TaxYear) StartDate() time.Time {
	return time.Date(ty.startYear, time.April, 6, 0, 0, 0, 0, time.UTC)
}

// EndDate returns 5 April of the following year (UTC midnight).
func (ty TaxYear) EndDate() time.Time {
	return time.Date(ty.startYear+1, time.April, 5, 0, 0, 0, 0, time.UTC)
}

// Label returns the human form, e.g. "2025/26".
func (ty TaxYear) Label() string {
	return fmt.Sprintf("%d/%02d", ty.startYear, (ty.startYear+1)%100)
}

// Quarter is one of the four fixed reporting periods within a tax year.
type Quarter int

// Quarters in statutory order.
const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// AllQuarters lists the quarters in order.
var AllQuarters = []Quarter{Q1, Q2, Q3, Q4}

func (q Quarter) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	}
	return fmt.Sprintf("Quarter(%d)", int(q))
}

// QuarterStatus is derived from "now", the quarter window and submission records.
type QuarterStatus string

// Quarter statuses.
const (
	StatusFuture    QuarterStatus = "FUTURE"
	StatusDraft     QuarterStatus = "DRAFT"
	StatusOverdue   QuarterStatus = "OVERDUE"
	StatusSubmitted QuarterStatus = "SUBMITTED"
)

// Income represents a single income entry for a business.
type Income struct {
	ID          int
	BusinessID  string
	Amount      decimal.Decimal
	Description string
	ReceivedAt  time.Time
	CreatedAt   time.Time
}

// Expense represents a single expense entry for a business.
type Expense struct {
	ID          int
	BusinessID  string
	Amount      decimal.Decimal
	Category    ExpenseCategory
	Description string
	IncurredAt  time.Time
	CreatedAt   time.Time
}

// CategorySummary is the aggregate of one expense category within a quarter.
type CategorySummary struct {
	Amount           decimal.Decimal
	TransactionCount int
}

// QuarterlyReviewData is the aggregate view of one (TaxYear, Quarter).
type QuarterlyReviewData struct {
	TaxYear                 TaxYear
	Quarter                 Quarter
	TotalIncome             decimal.Decimal
	IncomeTransactionCount  int
	TotalExpenses           decimal.Decimal
	ExpenseTransactionCount int
	ExpensesByCategory      map[ExpenseCategory]CategorySummary
	NetProfit               decimal.Decimal
	PeriodStart             time.Time
	PeriodEnd               time.Time
}

// IsNilReturn reports whether the quarter has zero income and zero expenses.
func (d QuarterlyReviewData) IsNilReturn() bool {
	return d.TotalIncome.IsZero() && d.TotalExpenses.IsZero()
}

// TaxCalculationResult is an immutable snapshot of a full-year tax calculation.
// All monetary fields are rounded to 2 decimal places.
type TaxCalculationResult struct {
	ID                string
	TaxYear           TaxYear
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetProfit         decimal.Decimal
	IncomeTax         decimal.Decimal
	NationalInsurance decimal.Decimal
	TotalTax          decimal.Decimal
	PaymentOnAccount  decimal.Decimal
	GrandTotal        decimal.Decimal
}

// AnnualSubmissionState is the lifecycle state of one annual submission attempt.
type AnnualSubmissionState string

// Annual submission states.
const (
	StateNotStarted  AnnualSubmissionState = "NOT_STARTED"
	StateCalculating AnnualSubmissionState = "CALCULATING"
	StateCalculated  AnnualSubmissionState = "CALCULATED"
	StateDeclaring   AnnualSubmissionState = "DECLARING"
	StateSubmitted   AnnualSubmissionState = "SUBMITTED"
	StateCancelled   AnnualSubmissionState = "CANCELLED"
)
