// Package ingest turns uploaded invoice tables into one canonical ledger.
//
// Column resolution, row normalization and aggregation are pure functions: they never
// touch files and never fail on bad cell data. The only file-level failure is a table
// without an amount column, reported as a domain.Rejection.
package ingest

import (
	"strings"

	"mess-bill/internal/domain"
)

const amountHeader = "amount"

var (
	amountSynonyms   = []string{"total", "price", "value", "amt"}
	itemSynonyms     = []string{"item", "description", "particulars", "name"}
	categorySynonyms = []string{"category", "type", "group"}
)

// headerKey is the comparison form of a header: trimmed and lower-cased.
func headerKey(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// headerIndex maps every header key to the first original header producing it.
func headerIndex(headers []string) map[string]string {
	idx := make(map[string]string, len(headers))
	for _, h := range headers {
		k := headerKey(h)
		if _, seen := idx[k]; !seen {
			idx[k] = h
		}
	}
	return idx
}

// ResolveColumns finds the amount, item and category headers of a table.
//
// The amount column is the first header equal to "amount", else the first synonym
// (total, price, value, amt) present, in synonym order. Item and category columns are
// the first headers, in header order, matching their synonym lists. Each role is
// resolved independently. A domain.Rejection is returned when no amount column exists.
func ResolveColumns(source string, headers []string) (domain.ColumnMapping, error) {
	idx := headerIndex(headers)

	amount, ok := idx[amountHeader]
	if !ok {
		for _, alt := range amountSynonyms {
			if h, found := idx[alt]; found {
				amount, ok = h, true
				break
			}
		}
	}
	if !ok {
		return domain.ColumnMapping{}, domain.NewRejection(source)
	}

	return domain.ColumnMapping{
		AmountColumn:   amount,
		ItemColumn:     firstHeaderIn(headers, itemSynonyms),
		CategoryColumn: firstHeaderIn(headers, categorySynonyms),
	}, nil
}

func firstHeaderIn(headers []string, names []string) string {
	for _, h := range headers {
		k := headerKey(h)
		for _, n := range names {
			if k == n {
				return h
			}
		}
	}
	return ""
}
