package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTaxYearLabel parses a "2025/26" style label into a TaxYear.
// The short part must be the starting year plus one, modulo 100.
func ParseTaxYearLabel(label string) (TaxYear, error) {
	parts := strings.Split(strings.TrimSpace(label), "/")
	if len(parts) != 2 {
		return TaxYear{}, fmt.Errorf("%w: tax year label %q must look like 2025/26", ErrInvalidInput, label)
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return TaxYear{}, fmt.Errorf("%w: tax year label %q has a non-numeric start year", ErrInvalidInput, label)
	}

	short, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return TaxYear{}, fmt.Errorf("%w: tax year label %q has a malformed end year", ErrInvalidInput, label)
	}
	if (start+1)%100 != short {
		return TaxYear{}, fmt.Errorf("%w: tax year label %q end year does not follow start year", ErrInvalidInput, label)
	}

	return NewTaxYear(start)
}
