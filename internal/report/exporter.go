// Package report turns a computed bill into downloadable records.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"mess-bill/internal/domain"
)

const (
	SummaryFileName = "mess_bill_summary.csv"
	LedgerFileName  = "per_student_ledger.csv"
)

var (
	SummaryColumns = []string{
		"Billing Month",
		"Total Invoice Amount",
		"Total Fixed Expenses",
		"Total Mess Expenses",
		"Number of Students",
		"Per Student Bill",
	}
	LedgerColumns = []string{"Roll No", "Bill Amount"}
)

// SummaryRecord is the single row of the summary export.
type SummaryRecord struct {
	BillingMonth       string  `json:"billing_month"`
	TotalInvoiceAmount float64 `json:"total_invoice_amount"`
	TotalFixedExpenses float64 `json:"total_fixed_expenses"`
	TotalMessExpenses  float64 `json:"total_mess_expenses"`
	NumberOfStudents   int     `json:"number_of_students"`
	PerStudentBill     float64 `json:"per_student_bill"`
}

// ExportSummary flattens a bill into its summary record.
func ExportSummary(s domain.BillSummary) SummaryRecord {
	return SummaryRecord{
		BillingMonth:       s.Period.Label(),
		TotalInvoiceAmount: s.TotalInvoiceAmount,
		TotalFixedExpenses: s.TotalFixedExpenses,
		TotalMessExpenses:  s.TotalExpenses,
		NumberOfStudents:   s.NumStudents,
		PerStudentBill:     s.PerStudentAmount,
	}
}

// ExportLedger returns one entry per student, roll numbers 1..NumStudents,
// each carrying the same per-student amount. No remainder is redistributed.
func ExportLedger(s domain.BillSummary) []domain.StudentLedgerEntry {
	n := s.NumStudents
	if n < 0 {
		n = 0
	}
	entries := make([]domain.StudentLedgerEntry, n)
	for i := range entries {
		entries[i] = domain.StudentLedgerEntry{RollNo: i + 1, Amount: s.PerStudentAmount}
	}
	return entries
}

// WriteSummaryCSV writes the summary header and its single data row.
// Totals are written at full precision; the per-student bill carries the bill's
// rounding decimals.
func WriteSummaryCSV(w io.Writer, s domain.BillSummary) error {
	rec := ExportSummary(s)
	return writeCSV(w, SummaryColumns, [][]string{{
		rec.BillingMonth,
		formatTotal(rec.TotalInvoiceAmount),
		formatTotal(rec.TotalFixedExpenses),
		formatTotal(rec.TotalMessExpenses),
		strconv.Itoa(rec.NumberOfStudents),
		formatAmount(rec.PerStudentBill, s.RoundingDecimals),
	}})
}

// WriteLedgerCSV writes one row per student.
func WriteLedgerCSV(w io.Writer, s domain.BillSummary) error {
	entries := ExportLedger(s)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.RollNo), formatAmount(e.Amount, s.RoundingDecimals)})
	}
	return writeCSV(w, LedgerColumns, rows)
}

// SummaryCSV returns the summary export as bytes.
func SummaryCSV(s domain.BillSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LedgerCSV returns the per-student ledger export as bytes.
func LedgerCSV(s domain.BillSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLedgerCSV(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// formatTotal writes the shortest decimal that round-trips to v.
func formatTotal(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func formatAmount(v float64, places int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}
