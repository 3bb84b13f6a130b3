package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SampleReader loads named numeric columns from Excel or CSV files for
// batch detection. The first row supplies column names; cells that do not
// parse as numbers are skipped.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSampleReader creates a reader for the given file path
func NewSampleReader(filePath string) *SampleReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{filePath: filePath, fileType: fileType}
}

// ReadColumns returns each named column as a float slice
func (r *SampleReader) ReadColumns() (map[string][]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("sample file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *SampleReader) readCSV() (map[string][]float64, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}

	return columnsFromRows(rows)
}

func (r *SampleReader) readExcel() (map[string][]float64, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets: %s", r.filePath)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	return columnsFromRows(rows)
}

// columnsFromRows converts header+data rows into named float columns
func columnsFromRows(rows [][]string) (map[string][]float64, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row, got %d rows", len(rows))
	}

	headers := rows[0]
	columns := make(map[string][]float64, len(headers))
	for _, h := range headers {
		name := strings.TrimSpace(h)
		if name != "" {
			columns[name] = []float64{}
		}
	}

	for _, row := range rows[1:] {
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			name := strings.TrimSpace(headers[i])
			if name == "" {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue // non-numeric cell
			}
			columns[name] = append(columns[name], value)
		}
	}

	return columns, nil
}
