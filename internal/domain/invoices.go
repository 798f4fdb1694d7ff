package domain

// RawTable is an uploaded table before any column resolution.
// Headers keeps the original header text in file order; each row maps a header to its cell text.
type RawTable struct {
	Headers []string
	Rows    []map[string]string
}

// Upload pairs a raw table with the identifier of the file it came from.
type Upload struct {
	Source string
	Table  RawTable
}

// ColumnMapping holds the headers resolved for each role of a RawTable.
// ItemColumn and CategoryColumn are empty when no header matched.
type ColumnMapping struct {
	AmountColumn   string
	ItemColumn     string
	CategoryColumn string
}

// HasItem reports whether an item column was resolved.
func (m ColumnMapping) HasItem() bool { return m.ItemColumn != "" }

// HasCategory reports whether a category column was resolved.
func (m ColumnMapping) HasCategory() bool { return m.CategoryColumn != "" }

// LedgerRow is the canonical invoice line. Amount is always finite.
type LedgerRow struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Source   string  `json:"source"`
}

// Ledger is the combined sequence of invoice lines in upload order.
type Ledger []LedgerRow

// FileTotal is the sum of the ledger rows contributed by one accepted upload.
type FileTotal struct {
	File  string  `json:"file"`
	Rows  int     `json:"rows"`
	Total float64 `json:"total"`
}

// CategoryTotal is the summed amount of one category bucket.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// InvoiceSummary is the outcome of aggregating every upload of a billing period.
type InvoiceSummary struct {
	Lines      Ledger          `json:"lines"`
	FileTotals []FileTotal     `json:"file_totals"`
	Categories []CategoryTotal `json:"categories"`
	Rejections []Rejection     `json:"rejections"`
	Total      float64         `json:"total"`
}
