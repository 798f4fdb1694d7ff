// Package billing computes fixed expense totals and the per-student bill.
package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mess-bill/internal/domain"
)

// RoundingMode selects how the per-student amount is rounded.
type RoundingMode string

const (
	// RoundHalfEven rounds ties to the even digit (banker's rounding).
	RoundHalfEven RoundingMode = "half-even"
	// RoundHalfUp rounds ties away from zero.
	RoundHalfUp RoundingMode = "half-up"
)

// ParseRoundingMode accepts "half-even" or "half-up", case-insensitively.
// An empty string selects RoundHalfEven.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoundHalfEven:
		return RoundHalfEven, nil
	case RoundHalfUp:
		return RoundHalfUp, nil
	}
	return "", fmt.Errorf("unknown rounding mode %q: must be %q or %q", s, RoundHalfEven, RoundHalfUp)
}

// Round rounds d to places decimal digits.
func (m RoundingMode) Round(d decimal.Decimal, places int) decimal.Decimal {
	if m == RoundHalfUp {
		return d.Round(int32(places))
	}
	return d.RoundBank(int32(places))
}

// Calculator splits the total expenses of a billing period evenly across students.
type Calculator struct {
	Mode RoundingMode
}

// NewCalculator creates a calculator using the given rounding mode.
func NewCalculator(mode RoundingMode) *Calculator {
	return &Calculator{Mode: mode}
}

// Compute builds the bill summary. TotalExpenses is the float64 sum of the two
// totals; its quotient is computed in decimal and rounded to decimals places.
// Every student pays the same rounded amount.
func (c *Calculator) Compute(period domain.BillingPeriod, invoiceTotal, fixedTotal float64, numStudents, decimals int) (domain.BillSummary, error) {
	if numStudents < 1 {
		return domain.BillSummary{}, fmt.Errorf("%w: number of students must be at least 1", domain.ErrInvalidConfiguration)
	}

	total := invoiceTotal + fixedTotal
	perStudent := c.Mode.Round(decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(numStudents))), decimals)

	return domain.BillSummary{
		Period:             period,
		TotalInvoiceAmount: invoiceTotal,
		TotalFixedExpenses: fixedTotal,
		TotalExpenses:      total,
		NumStudents:        numStudents,
		PerStudentAmount:   perStudent.InexactFloat64(),
		RoundingDecimals:   decimals,
	}, nil
}
