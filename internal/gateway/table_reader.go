package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"mess-bill/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileInvoiceRepository implements the InvoiceRepository interface for CSV and XLSX files.
type FileInvoiceRepository struct{}

// NewFileInvoiceRepository creates a new repository instance.
func NewFileInvoiceRepository() *FileInvoiceRepository {
	return &FileInvoiceRepository{}
}

// GetInvoiceTables reads every invoice file in order. The base name of each path
// becomes the upload's source identifier.
func (r *FileInvoiceRepository) GetInvoiceTables(ctx context.Context, paths []string) ([]domain.Upload, error) {
	uploads := make([]domain.Upload, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		up, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func (r *FileInvoiceRepository) readFile(path string) (domain.Upload, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to open invoice file %s: %w", path, err)
	}
	defer file.Close()

	return ReadUpload(filepath.Base(path), file)
}

// ReadUpload parses one uploaded file. The format is chosen from the name's extension:
// .csv is read as delimited text, .xlsx and .xlsm as a workbook (first sheet).
func ReadUpload(name string, src io.Reader) (domain.Upload, error) {
	var (
		table domain.RawTable
		err   error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		table, err = readCSV(src)
	case ".xlsx", ".xlsm":
		table, err = readWorkbook(src)
	default:
		return domain.Upload{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, name)
	}
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return domain.Upload{Source: name, Table: table}, nil
}

// readCSV decodes text that is not valid UTF-8 as Windows-1252.
func readCSV(src io.Reader) (domain.RawTable, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return domain.RawTable{}, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var text io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		text = transform.NewReader(text, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(text)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.RawTable{}, errors.New("missing header row")
	}
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("error reading record: %w", err)
	}
	return buildTable(header, records), nil
}

func readWorkbook(src io.Reader) (domain.RawTable, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawTable{}, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return domain.RawTable{}, errors.New("missing header row")
	}
	return buildTable(rows[0], rows[1:]), nil
}

// buildTable keys every record by header. Blank headers become "Unnamed: <index>",
// repeated headers get ".1", ".2" suffixes, short records are padded with empty
// cells and fully blank records are dropped.
func buildTable(header []string, records [][]string) domain.RawTable {
	headers := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		if n := seen[h]; n > 0 {
			seen[h] = n + 1
			h = h + "." + strconv.Itoa(n)
		} else {
			seen[h] = 1
		}
		headers[i] = h
	}

	table := domain.RawTable{Headers: headers, Rows: make([]map[string]string, 0, len(records))}
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
