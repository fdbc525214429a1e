package taxcalc

import "github.com/shopspring/decimal"

// RateTable holds the Income Tax and Class 4 NI bands for one tax year,
// plus the Payments on Account rule. Bands are applied progressively in
// ascending order; a threshold value falls into the lower band.
type RateTable struct {
	PersonalAllowance decimal.Decimal
	BasicRateLimit    decimal.Decimal
	HigherRateLimit   decimal.Decimal
	BasicRate         decimal.Decimal
	HigherRate        decimal.Decimal
	AdditionalRate    decimal.Decimal

	NILowerProfitsLimit decimal.Decimal
	NIUpperProfitsLimit decimal.Decimal
	NIMainRate          decimal.Decimal
	NIUpperRate         decimal.Decimal

	POAThreshold decimal.Decimal
	POAFraction  decimal.Decimal
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rateTables maps a tax year's starting calendar year to its rates.
// 2024/25 and 2025/26 share thresholds; rates change per Finance Act.
var rateTables = map[int]RateTable{
	2024: {
		PersonalAllowance: d("12570"),
		BasicRateLimit:    d("50270"),
		HigherRateLimit:   d("125140"),
		BasicRate:         d("0.20"),
		HigherRate:        d("0.40"),
		AdditionalRate:    d("0.45"),

		NILowerProfitsLimit: d("12570"),
		NIUpperProfitsLimit: d("50270"),
		NIMainRate:          d("0.06"),
		NIUpperRate:         d("0.02"),

		POAThreshold: d("1000"),
		POAFraction:  d("0.5"),
	},
	2025: {
		PersonalAllowance: d("12570"),
		BasicRateLimit:    d("50270"),
		HigherRateLimit:   d("125140"),
		BasicRate:         d("0.20"),
		HigherRate:        d("0.40"),
		AdditionalRate:    d("0.45"),

		NILowerProfitsLimit: d("12570"),
		NIUpperProfitsLimit: d("50270"),
		NIMainRate:          d("0.06"),
		NIUpperRate:         d("0.02"),

		POAThreshold: d("1000"),
		POAFraction:  d("0.5"),
	},
}

// TableFor returns the rate table for a starting calendar year.
func TableFor(startYear int) (RateTable, bool) {
	table, ok := rateTables[startYear]
	return table, ok
}
