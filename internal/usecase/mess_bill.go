package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mess-bill/internal/billing"
	"mess-bill/internal/config"
	"mess-bill/internal/domain"
	"mess-bill/internal/ingest"
	"mess-bill/internal/report"
)

// MessBillUseCase orchestrates the computation of a billing period's mess bill.
type MessBillUseCase struct {
	repo     InvoiceRepository
	recorder Recorder
}

// NewMessBillUseCase creates a new instance of the usecase.
func NewMessBillUseCase(repo InvoiceRepository) *MessBillUseCase {
	return &MessBillUseCase{repo: repo, recorder: nopRecorder{}}
}

// WithRecorder sets the recorder notified of ingestion and billing events.
func (uc *MessBillUseCase) WithRecorder(r Recorder) *MessBillUseCase {
	if r == nil {
		r = nopRecorder{}
	}
	uc.recorder = r
	return uc
}

// ComputeFromFiles loads the invoice files through the repository and computes the bill.
// Invalid input is rejected before any file is read.
func (uc *MessBillUseCase) ComputeFromFiles(ctx context.Context, paths []string, in config.BillInput) (*domain.BillReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	uploads, err := uc.repo.GetInvoiceTables(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("could not get invoice tables: %w", err)
	}
	return uc.Compute(ctx, uploads, in)
}

// Compute runs the whole pipeline over already parsed uploads. It holds no state
// between calls: identical inputs always produce identical reports.
func (uc *MessBillUseCase) Compute(ctx context.Context, uploads []domain.Upload, in config.BillInput) (*domain.BillReport, error) {
	// Step 1: Boundary validation
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Invoice ingestion
	invoices := ingest.Aggregate(uploads)
	for _, rej := range invoices.Rejections {
		slog.WarnContext(ctx, "Invoice rejected", "source", rej.Source, "reason", rej.Reason)
		uc.recorder.InvoiceRejected(rej.Source)
	}
	for _, ft := range invoices.FileTotals {
		uc.recorder.InvoiceAccepted(ft.File, ft.Rows)
	}

	// Step 3: Fixed expenses
	fixed := billing.FixedBreakdown(in.Salaries, acceptedExpenses(in.Extra))

	// Step 4: Per-student bill
	mode, err := billing.ParseRoundingMode(string(in.Rounding))
	if err != nil {
		return nil, err
	}
	summary, err := billing.NewCalculator(mode).Compute(in.Period, invoices.Total, fixed.Total, in.NumStudents, in.Decimals)
	if err != nil {
		return nil, fmt.Errorf("could not compute bill: %w", err)
	}
	uc.recorder.BillComputed(summary)

	slog.InfoContext(ctx, "Bill computed",
		"period", in.Period.Label(),
		"invoice_total", summary.TotalInvoiceAmount,
		"fixed_total", summary.TotalFixedExpenses,
		"students", summary.NumStudents,
		"per_student", summary.PerStudentAmount,
		"rejected_files", len(invoices.Rejections),
	)

	return &domain.BillReport{
		Period:        in.Period.Label(),
		Invoices:      invoices,
		FixedExpenses: fixed,
		Summary:       summary,
		Students:      report.ExportLedger(summary),
	}, nil
}

// acceptedExpenses drops entries the expense list would refuse to add.
func acceptedExpenses(extra []domain.FixedExpenseEntry) []domain.FixedExpenseEntry {
	var list billing.ExpenseList
	for _, e := range extra {
		list.Add(e.Name, e.Amount)
	}
	return list.Entries()
}
