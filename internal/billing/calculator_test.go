package billing

import (
	"errors"
	"testing"

	"mess-bill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Compute(t *testing.T) {
	period := domain.BillingPeriod{Month: 3, Year: 2026}

	tests := []struct {
		name         string
		mode         RoundingMode
		invoiceTotal float64
		fixedTotal   float64
		students     int
		decimals     int
		perStudent   float64
		total        float64
	}{
		{name: "two decimals", mode: RoundHalfEven, invoiceTotal: 100, students: 3, decimals: 2, perStudent: 33.33, total: 100},
		{name: "zero decimals", mode: RoundHalfEven, invoiceTotal: 100, students: 3, decimals: 0, perStudent: 33, total: 100},
		{name: "one decimal", mode: RoundHalfEven, invoiceTotal: 100, students: 3, decimals: 1, perStudent: 33.3, total: 100},
		{name: "invoice and fixed combined", mode: RoundHalfEven, invoiceTotal: 800, fixedTotal: 1500, students: 10, decimals: 0, perStudent: 230, total: 2300},
		{name: "half-even tie rounds down to even", mode: RoundHalfEven, invoiceTotal: 0.25, students: 2, decimals: 2, perStudent: 0.12, total: 0.25},
		{name: "half-up tie rounds away from zero", mode: RoundHalfUp, invoiceTotal: 0.25, students: 2, decimals: 2, perStudent: 0.13, total: 0.25},
		{name: "half-even whole tie", mode: RoundHalfEven, invoiceTotal: 5, students: 2, decimals: 0, perStudent: 2, total: 5},
		{name: "half-up whole tie", mode: RoundHalfUp, invoiceTotal: 5, students: 2, decimals: 0, perStudent: 3, total: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCalculator(tt.mode).Compute(period, tt.invoiceTotal, tt.fixedTotal, tt.students, tt.decimals)
			require.NoError(t, err)

			assert.Equal(t, domain.BillSummary{
				Period:             period,
				TotalInvoiceAmount: tt.invoiceTotal,
				TotalFixedExpenses: tt.fixedTotal,
				TotalExpenses:      tt.total,
				NumStudents:        tt.students,
				PerStudentAmount:   tt.perStudent,
				RoundingDecimals:   tt.decimals,
			}, got)
		})
	}
}

func TestCalculator_Compute_TotalIsFloatSum(t *testing.T) {
	invoiceTotal, fixedTotal := 0.1, 0.2

	got, err := NewCalculator(RoundHalfEven).Compute(domain.BillingPeriod{Month: 4, Year: 2026}, invoiceTotal, fixedTotal, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, invoiceTotal+fixedTotal, got.TotalExpenses)
	assert.Equal(t, 0.3, got.PerStudentAmount)
}

func TestCalculator_Compute_RejectsNoStudents(t *testing.T) {
	_, err := NewCalculator(RoundHalfEven).Compute(domain.BillingPeriod{Month: 1, Year: 2026}, 100, 0, 0, 0)

	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
}

func TestParseRoundingMode(t *testing.T) {
	cases := []struct {
		in      string
		out     RoundingMode
		wantErr bool
	}{
		{"", RoundHalfEven, false},
		{"half-even", RoundHalfEven, false},
		{"HALF-UP", RoundHalfUp, false},
		{" half-up ", RoundHalfUp, false},
		{"ceil", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRoundingMode(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.out, got)
	}
}
