package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"mess-bill/internal/billing"
	"mess-bill/internal/config"
	"mess-bill/internal/domain"
	"mess-bill/internal/gateway"
	"mess-bill/internal/report"
	"mess-bill/internal/usecase"
	"mess-bill/pkg/logging"
)

// expenseFlags collects repeated -expense "Name=Amount" flags.
type expenseFlags struct {
	list billing.ExpenseList
}

func (e *expenseFlags) String() string {
	parts := make([]string, 0, e.list.Len())
	for _, x := range e.list.Entries() {
		parts = append(parts, fmt.Sprintf("%s=%v", x.Name, x.Amount))
	}
	return strings.Join(parts, ",")
}

// Set ignores entries that the expense list would not accept.
func (e *expenseFlags) Set(v string) error {
	name, amount, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("expected Name=Amount, got %q", v)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return fmt.Errorf("invalid amount in %q: %w", v, err)
	}
	if !e.list.Add(name, f) {
		slog.Warn("Ignoring fixed expense", "entry", v)
	}
	return nil
}

func main() {
	config.LoadEnvFile()
	cfg := config.Load()
	logging.Setup()

	now := time.Now()
	var extra expenseFlags

	// Define command-line flags
	invoicesStr := flag.String("invoices", "", "Comma-separated list of invoice files (.csv, .xlsx)")
	month := flag.Int("month", int(now.Month()), "Billing month (1-12)")
	year := flag.Int("year", now.Year(), "Billing year (2000-2100)")
	cook := flag.Float64("cook", 0, "Cook salary")
	helpers := flag.Float64("helpers", 0, "Helpers salary")
	caretaker := flag.Float64("caretaker", 0, "Caretaker salary")
	students := flag.Int("students", cfg.DefaultStudents, "Number of students")
	decimals := flag.Int("decimals", cfg.DefaultDecimals, "Rounding decimals for the per-student bill (0, 1 or 2)")
	rounding := flag.String("rounding", cfg.RoundingMode, "Rounding mode: half-even or half-up")
	summaryOut := flag.String("summary-out", "", "Write the summary CSV to this path")
	ledgerOut := flag.String("ledger-out", "", "Write the per-student ledger CSV to this path")
	flag.Var(&extra, "expense", "Additional fixed expense as Name=Amount (repeatable)")
	flag.Parse()

	var invoiceFiles []string
	if *invoicesStr != "" {
		invoiceFiles = strings.Split(*invoicesStr, ",")
	}

	in := config.BillInput{
		Period:      domain.BillingPeriod{Month: *month, Year: *year},
		Salaries:    domain.Salaries{Cook: *cook, Helpers: *helpers, Caretaker: *caretaker},
		Extra:       extra.list.Entries(),
		NumStudents: *students,
		Decimals:    *decimals,
		Rounding:    billing.RoundingMode(*rounding),
	}

	repo := gateway.NewFileInvoiceRepository()
	messBillUseCase := usecase.NewMessBillUseCase(repo)

	bill, err := messBillUseCase.ComputeFromFiles(context.Background(), invoiceFiles, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bill computation failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeExport(*summaryOut, report.WriteSummaryCSV, bill.Summary); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write summary: %v\n", err)
		os.Exit(1)
	}
	if err := writeExport(*ledgerOut, report.WriteLedgerCSV, bill.Summary); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write ledger: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(bill, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate JSON report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}

func writeExport(path string, write func(io.Writer, domain.BillSummary) error, s domain.BillSummary) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
