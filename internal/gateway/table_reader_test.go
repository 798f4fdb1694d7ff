package gateway

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mess-bill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFileInvoiceRepository_GetInvoiceTables(t *testing.T) {
	tests := []struct {
		name      string
		filesData map[string][]string // file name -> lines
		order     []string
		expected  []domain.Upload
		wantErr   bool
	}{
		{
			name: "single csv file",
			filesData: map[string][]string{
				"grocery.csv": {
					"Item,Category,Amount",
					"Rice,grocery,1200.50",
					"Eggs,eggs,300",
				},
			},
			order: []string{"grocery.csv"},
			expected: []domain.Upload{
				{
					Source: "grocery.csv",
					Table: domain.RawTable{
						Headers: []string{"Item", "Category", "Amount"},
						Rows: []map[string]string{
							{"Item": "Rice", "Category": "grocery", "Amount": "1200.50"},
							{"Item": "Eggs", "Category": "eggs", "Amount": "300"},
						},
					},
				},
			},
		},
		{
			name: "multiple files keep upload order",
			filesData: map[string][]string{
				"b_veg.csv":   {"Particulars,Total", "Onion,40"},
				"a_fruit.csv": {"amount", "60"},
			},
			order: []string{"b_veg.csv", "a_fruit.csv"},
			expected: []domain.Upload{
				{
					Source: "b_veg.csv",
					Table: domain.RawTable{
						Headers: []string{"Particulars", "Total"},
						Rows:    []map[string]string{{"Particulars": "Onion", "Total": "40"}},
					},
				},
				{
					Source: "a_fruit.csv",
					Table: domain.RawTable{
						Headers: []string{"amount"},
						Rows:    []map[string]string{{"amount": "60"}},
					},
				},
			},
		},
		{
			name: "header only",
			filesData: map[string][]string{
				"empty.csv": {"Item,Amount"},
			},
			order: []string{"empty.csv"},
			expected: []domain.Upload{
				{Source: "empty.csv", Table: domain.RawTable{Headers: []string{"Item", "Amount"}, Rows: []map[string]string{}}},
			},
		},
		{
			name: "ragged and blank rows",
			filesData: map[string][]string{
				"ragged.csv": {"Item,Amount,Note", "Milk,20", ",,", "Curd,15,fresh"},
			},
			order: []string{"ragged.csv"},
			expected: []domain.Upload{
				{
					Source: "ragged.csv",
					Table: domain.RawTable{
						Headers: []string{"Item", "Amount", "Note"},
						Rows: []map[string]string{
							{"Item": "Milk", "Amount": "20", "Note": ""},
							{"Item": "Curd", "Amount": "15", "Note": "fresh"},
						},
					},
				},
			},
		},
		{
			name: "unsupported extension",
			filesData: map[string][]string{
				"invoice.txt": {"Amount", "10"},
			},
			order:   []string{"invoice.txt"},
			wantErr: true,
		},
		{
			name: "missing header",
			filesData: map[string][]string{
				"blank.csv": {},
			},
			order:   []string{"blank.csv"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var paths []string
			for _, name := range tt.order {
				path, err := createTempCSVFromLines(dir, tt.filesData[name], name)
				require.NoError(t, err)
				paths = append(paths, path)
			}

			repo := NewFileInvoiceRepository()
			got, err := repo.GetInvoiceTables(context.Background(), paths)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFileInvoiceRepository_GetInvoiceTables_FileErrors(t *testing.T) {
	repo := NewFileInvoiceRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetInvoiceTables(ctx, []string{"nonexistent_file.csv"})
		assert.Error(t, err)
	})

	t.Run("one valid file and one missing file", func(t *testing.T) {
		valid, err := createTempCSVFromLines(t.TempDir(), []string{"Amount", "10"}, "valid.csv")
		require.NoError(t, err)

		_, err = repo.GetInvoiceTables(ctx, []string{valid, "nonexistent.csv"})
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		valid, err := createTempCSVFromLines(t.TempDir(), []string{"Amount", "10"}, "valid.csv")
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = repo.GetInvoiceTables(cctx, []string{valid})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadUpload_CSVEncodings(t *testing.T) {
	t.Run("utf-8 byte order mark", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Amount,Item\n10,Tea\n")...)

		up, err := ReadUpload("bom.csv", bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []string{"Amount", "Item"}, up.Table.Headers)
	})

	t.Run("windows-1252 text", func(t *testing.T) {
		data := []byte("Item,Amount\nCaf\xe9 supplies,45\n")

		up, err := ReadUpload("legacy.CSV", bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "Café supplies", up.Table.Rows[0]["Item"])
	})

	t.Run("duplicate and blank headers", func(t *testing.T) {
		up, err := ReadUpload("dup.csv", strings.NewReader("Amount,Amount,\n1,2,3\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Amount", "Amount.1", "Unnamed: 2"}, up.Table.Headers)
		assert.Equal(t, map[string]string{"Amount": "1", "Amount.1": "2", "Unnamed: 2": "3"}, up.Table.Rows[0])
	})

	t.Run("legacy xls rejected", func(t *testing.T) {
		_, err := ReadUpload("old.xls", strings.NewReader(""))
		assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
	})
}

func TestReadUpload_Workbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Description", "Group", "Price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Cooking gas", "gas", 1050.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Bananas", "fruits", 120}))

	path := filepath.Join(t.TempDir(), "march.xlsx")
	require.NoError(t, f.SaveAs(path))

	got, err := NewFileInvoiceRepository().GetInvoiceTables(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "march.xlsx", got[0].Source)
	assert.Equal(t, []string{"Description", "Group", "Price"}, got[0].Table.Headers)
	assert.Equal(t, []map[string]string{
		{"Description": "Cooking gas", "Group": "gas", "Price": "1050.5"},
		{"Description": "Bananas", "Group": "fruits", "Price": "120"},
	}, got[0].Table.Rows)
}

func TestReadUpload_CorruptWorkbook(t *testing.T) {
	_, err := ReadUpload("broken.xlsx", strings.NewReader("not a zip archive"))
	assert.Error(t, err)
}

// Helper functions

func createTempCSVFromLines(dir string, lines []string, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Benchmark tests

func BenchmarkReadUpload_CSV(b *testing.B) {
	lines := []string{"Item,Category,Amount"}
	for i := 0; i < 1000; i++ {
		lines = append(lines, "Rice,grocery,150.00")
	}
	data := []byte(strings.Join(lines, "\n"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ReadUpload("bench.csv", bytes.NewReader(data)); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
