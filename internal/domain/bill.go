package domain

import (
	"fmt"
	"time"
)

// BillingPeriod identifies the month a bill is computed for.
type BillingPeriod struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Label formats the period as "Month YYYY", e.g. "March 2026".
func (p BillingPeriod) Label() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)
}

// FixedExpenseEntry is a named recurring cost entered directly rather than uploaded.
type FixedExpenseEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Salaries holds the three fixed salary slots that are always present on a bill.
type Salaries struct {
	Cook      float64 `json:"cook"`
	Helpers   float64 `json:"helpers"`
	Caretaker float64 `json:"caretaker"`
}

// Entries lists the salary slots as named fixed expenses.
func (s Salaries) Entries() []FixedExpenseEntry {
	return []FixedExpenseEntry{
		{Name: "Cook salary", Amount: s.Cook},
		{Name: "Helpers salary", Amount: s.Helpers},
		{Name: "Caretaker salary", Amount: s.Caretaker},
	}
}

// FixedExpenses is the breakdown of all fixed costs of a billing period.
type FixedExpenses struct {
	Entries []FixedExpenseEntry `json:"entries"`
	Total   float64             `json:"total"`
}

// BillSummary is the computed bill. TotalExpenses is TotalInvoiceAmount + TotalFixedExpenses
// and PerStudentAmount is TotalExpenses / NumStudents rounded to RoundingDecimals.
type BillSummary struct {
	Period             BillingPeriod `json:"period"`
	TotalInvoiceAmount float64       `json:"total_invoice_amount"`
	TotalFixedExpenses float64       `json:"total_fixed_expenses"`
	TotalExpenses      float64       `json:"total_expenses"`
	NumStudents        int           `json:"num_students"`
	PerStudentAmount   float64       `json:"per_student_amount"`
	RoundingDecimals   int           `json:"rounding_decimals"`
}

// StudentLedgerEntry is one student's share of the bill.
type StudentLedgerEntry struct {
	RollNo int     `json:"roll_no"`
	Amount float64 `json:"amount"`
}

// BillReport is the top-level structure returned for a billing period.
type BillReport struct {
	Period        string               `json:"billing_month"`
	Invoices      InvoiceSummary       `json:"invoices"`
	FixedExpenses FixedExpenses        `json:"fixed_expenses"`
	Summary       BillSummary          `json:"summary"`
	Students      []StudentLedgerEntry `json:"students"`
}
