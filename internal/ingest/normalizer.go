package ingest

import (
	"math"
	"strconv"
	"strings"

	"mess-bill/internal/domain"
)

// Normalize converts a raw table into ledger rows tagged with source.
// Missing item or category columns yield empty strings; amounts go through ParseAmount.
func Normalize(table domain.RawTable, mapping domain.ColumnMapping, source string) domain.Ledger {
	rows := make(domain.Ledger, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := domain.LedgerRow{
			Amount: ParseAmount(raw[mapping.AmountColumn]),
			Source: source,
		}
		if mapping.HasItem() {
			row.Item = strings.TrimSpace(raw[mapping.ItemColumn])
		}
		if mapping.HasCategory() {
			row.Category = strings.TrimSpace(raw[mapping.CategoryColumn])
		}
		rows = append(rows, row)
	}
	return rows
}

// ParseAmount reads a cell as a float. Empty, malformed and non-finite values become 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
