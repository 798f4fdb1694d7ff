package ingest

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"mess-bill/internal/domain"
)

// UnspecifiedCategory labels ledger rows without a category.
const UnspecifiedCategory = "Unspecified"

// Aggregate resolves, normalizes and merges uploads in arrival order.
//
// Uploads without an amount column are skipped and reported in Rejections; the rest
// contribute their rows to Lines and one entry to FileTotals. Each file total is
// summed in decimal; Total adds the file totals as float64 in arrival order, so it
// always equals the sum of FileTotals.
func Aggregate(uploads []domain.Upload) domain.InvoiceSummary {
	summary := domain.InvoiceSummary{
		Lines:      make(domain.Ledger, 0),
		FileTotals: make([]domain.FileTotal, 0, len(uploads)),
		Rejections: make([]domain.Rejection, 0),
	}

	for _, up := range uploads {
		mapping, err := ResolveColumns(up.Source, up.Table.Headers)
		if err != nil {
			var rej domain.Rejection
			if errors.As(err, &rej) {
				summary.Rejections = append(summary.Rejections, rej)
			}
			continue
		}

		rows := Normalize(up.Table, mapping, up.Source)
		fileTotal := sumAmounts(rows).InexactFloat64()
		summary.Total += fileTotal

		summary.Lines = append(summary.Lines, rows...)
		summary.FileTotals = append(summary.FileTotals, domain.FileTotal{
			File:  up.Source,
			Rows:  len(rows),
			Total: fileTotal,
		})
	}

	summary.Categories = GroupByCategory(summary.Lines)
	return summary
}

// GroupByCategory sums the ledger per category, largest first.
// Equal sums keep the order in which their categories first appeared.
// An empty ledger yields an empty grouping.
func GroupByCategory(ledger domain.Ledger) []domain.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, row := range ledger {
		cat := row.Category
		if cat == "" {
			cat = UnspecifiedCategory
		}
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
			sums[cat] = decimal.Zero
		}
		sums[cat] = sums[cat].Add(decimal.NewFromFloat(row.Amount))
	}

	groups := make([]domain.CategoryTotal, 0, len(order))
	for _, cat := range order {
		groups = append(groups, domain.CategoryTotal{Category: cat, Amount: sums[cat].InexactFloat64()})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount > groups[j].Amount
	})
	return groups
}

func sumAmounts(rows domain.Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total
}
