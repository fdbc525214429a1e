// Package taxcalc computes UK self-employment Income Tax, Class 4 National
// Insurance and Payments on Account from a full-year profit figure.
package taxcalc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// ErrUnsupportedTaxYear signals that no rate table exists for the requested year.
var ErrUnsupportedTaxYear = errors.New("unsupported tax year")

// resultNamespace seeds deterministic result identifiers, so identical
// inputs always produce an identical TaxCalculationResult.
var resultNamespace = uuid.MustParse("8b9e2c41-5a77-4cf4-9d3a-6f1e0b4c7d52")

// bandTax returns the tax due on the slice of profit falling between lower
// and upper at the given rate. An upper of zero means unbounded.
func bandTax(profit, lower, upper, rate decimal.Decimal) decimal.Decimal {
	if profit.LessThanOrEqual(lower) {
		return decimal.Zero
	}
	taxable := profit.Sub(lower)
	if !upper.IsZero() && profit.GreaterThan(upper) {
		taxable = upper.Sub(lower)
	}
	return taxable.Mul(rate)
}

// incomeTax applies the four Income Tax bands progressively to net profit.
func incomeTax(profit decimal.Decimal, t RateTable) decimal.Decimal {
	tax := bandTax(profit, t.PersonalAllowance, t.BasicRateLimit, t.BasicRate)
	tax = tax.Add(bandTax(profit, t.BasicRateLimit, t.HigherRateLimit, t.HigherRate))
	tax = tax.Add(bandTax(profit, t.HigherRateLimit, decimal.Zero, t.AdditionalRate))
	return tax
}

// classFourNI applies the three Class 4 NI bands progressively to net profit.
func classFourNI(profit decimal.Decimal, t RateTable) decimal.Decimal {
	ni := bandTax(profit, t.NILowerProfitsLimit, t.NIUpperProfitsLimit, t.NIMainRate)
	ni = ni.Add(bandTax(profit, t.NIUpperProfitsLimit, decimal.Zero, t.NIUpperRate))
	return ni
}

// Calculate computes the full-year liability from turnover and deductible
// expenses. It is a pure function: identical inputs yield an identical
// result, including the identifier. Negative inputs and years without a
// rate table are rejected, never clamped.
func Calculate(turnover, expenses decimal.Decimal, year models.TaxYear) (models.TaxCalculationResult, error) {
	if turnover.IsNegative() {
		return models.TaxCalculationResult{}, fmt.Errorf("%w: turnover %s is negative",
			models.ErrInvalidInput, turnover.String())
	}
	if expenses.IsNegative() {
		return models.TaxCalculationResult{}, fmt.Errorf("%w: expenses %s is negative",
			models.ErrInvalidInput, expenses.String())
	}

	table, ok := TableFor(year.StartYear())
	if !ok {
		return models.TaxCalculationResult{}, fmt.Errorf("%w: no rate table for %s",
			ErrUnsupportedTaxYear, year.Label())
	}

	netProfit := turnover.Sub(expenses)

	// A loss owes nothing; the bands only see non-negative profit.
	taxableProfit := netProfit
	if taxableProfit.IsNegative() {
		taxableProfit = decimal.Zero
	}

	it := incomeTax(taxableProfit, table).Round(2)
	ni := classFourNI(taxableProfit, table).Round(2)
	totalTax := it.Add(ni)

	poa := decimal.Zero
	if totalTax.GreaterThan(table.POAThreshold) {
		poa = totalTax.Mul(table.POAFraction).Round(2)
	}

	key := fmt.Sprintf("%s|%s|%s", year.Label(), turnover.String(), expenses.String())
	return models.TaxCalculationResult{
		ID:                uuid.NewSHA1(resultNamespace, []byte(key)).String(),
		TaxYear:           year,
		TotalIncome:       turnover.Round(2),
		TotalExpenses:     expenses.Round(2),
		NetProfit:         netProfit.Round(2),
		IncomeTax:         it,
		NationalInsurance: ni,
		TotalTax:          totalTax,
		PaymentOnAccount:  poa,
		GrandTotal:        totalTax.Add(poa),
	}, nil
}
