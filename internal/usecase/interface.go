package usecase

import (
	"context"

	"mess-bill/internal/domain"
)

// InvoiceRepository defines the interface for loading uploaded invoice tables.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go InvoiceRepository
type InvoiceRepository interface {
	GetInvoiceTables(ctx context.Context, paths []string) ([]domain.Upload, error)
}

// Recorder receives ingestion and billing events, e.g. for metrics.
type Recorder interface {
	InvoiceAccepted(source string, rows int)
	InvoiceRejected(source string)
	BillComputed(summary domain.BillSummary)
}

type nopRecorder struct{}

func (nopRecorder) InvoiceAccepted(string, int)     {}
func (nopRecorder) InvoiceRejected(string)          {}
func (nopRecorder) BillComputed(domain.BillSummary) {}
