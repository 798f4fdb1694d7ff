package config

import (
	"fmt"
	"math"
	"strings"

	"mess-bill/internal/billing"
	"mess-bill/internal/domain"
)

// Bounds accepted for the billing form fields.
const (
	MinYear = 2000
	MaxYear = 2100
)

// BillInput carries the form fields of one billing period.
type BillInput struct {
	Period      domain.BillingPeriod
	Salaries    domain.Salaries
	Extra       []domain.FixedExpenseEntry
	NumStudents int
	Decimals    int
	Rounding    billing.RoundingMode
}

// Validate rejects out-of-range inputs before any bill is computed.
// Every violation is listed; the error wraps domain.ErrInvalidConfiguration.
// Extra entries are not checked here: invalid ones are dropped when the bill is computed.
func (in BillInput) Validate() error {
	var errs []string

	if in.Period.Month < 1 || in.Period.Month > 12 {
		errs = append(errs, fmt.Sprintf("invalid billing month %d: must be between 1 and 12", in.Period.Month))
	}
	if in.Period.Year < MinYear || in.Period.Year > MaxYear {
		errs = append(errs, fmt.Sprintf("invalid billing year %d: must be between %d and %d", in.Period.Year, MinYear, MaxYear))
	}

	for _, s := range in.Salaries.Entries() {
		if !isNonNegative(s.Amount) {
			errs = append(errs, fmt.Sprintf("invalid %s %v: must be a non-negative amount", strings.ToLower(s.Name), s.Amount))
		}
	}

	if in.NumStudents < 1 {
		errs = append(errs, fmt.Sprintf("invalid number of students %d: must be at least 1", in.NumStudents))
	}
	if !validDecimals(in.Decimals) {
		errs = append(errs, fmt.Sprintf("invalid rounding decimals %d: must be 0, 1 or 2", in.Decimals))
	}
	if _, err := billing.ParseRoundingMode(string(in.Rounding)); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", domain.ErrInvalidConfiguration, strings.Join(errs, "\n- "))
	}
	return nil
}

func validDecimals(d int) bool {
	return d >= 0 && d <= 2
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
