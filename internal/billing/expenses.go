package billing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"mess-bill/internal/domain"
)

// ExpenseList is the user-added set of fixed expenses of a billing session.
// It is owned by the caller; the zero value is an empty list.
type ExpenseList struct {
	entries []domain.FixedExpenseEntry
}

// Add appends a named expense. Entries with a blank name or a non-positive
// amount are ignored and Add reports false.
func (l *ExpenseList) Add(name string, amount float64) bool {
	name = strings.TrimSpace(name)
	if name == "" || !(amount > 0) || math.IsInf(amount, 0) {
		return false
	}
	l.entries = append(l.entries, domain.FixedExpenseEntry{Name: name, Amount: amount})
	return true
}

// Clear removes every added expense.
func (l *ExpenseList) Clear() {
	l.entries = nil
}

// Entries returns a copy of the added expenses in insertion order.
func (l *ExpenseList) Entries() []domain.FixedExpenseEntry {
	out := make([]domain.FixedExpenseEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of added expenses.
func (l *ExpenseList) Len() int {
	return len(l.entries)
}

// TotalFixed sums the salary slots and the extra entries.
func TotalFixed(salaries domain.Salaries, extra []domain.FixedExpenseEntry) float64 {
	return sumEntries(salaries.Entries(), extra).InexactFloat64()
}

// FixedBreakdown lists the salary slots followed by the extra entries, with their total.
func FixedBreakdown(salaries domain.Salaries, extra []domain.FixedExpenseEntry) domain.FixedExpenses {
	entries := append(salaries.Entries(), extra...)
	return domain.FixedExpenses{
		Entries: entries,
		Total:   sumEntries(entries).InexactFloat64(),
	}
}

func sumEntries(groups ...[]domain.FixedExpenseEntry) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		for _, e := range g {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return total
}
