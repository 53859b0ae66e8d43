package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/xuri/excelize/v2"
)

// ReadFile parses the first sheet of the workbook at path.
func ReadFile(path string) (*models.ImportPreview, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

// Read parses the first sheet of a workbook streamed from r.
func Read(r io.Reader) (*models.ImportPreview, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

// readFirstSheet treats the first row as the header. Blank header cells are
// dropped, repeated headers get a _1, _2... suffix and rows with no values
// are skipped. A sheet with no data rows yields common.ErrEmptyWorkbook.
func readFirstSheet(f *excelize.File) (*models.ImportPreview, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyWorkbook
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, common.ErrEmptyWorkbook
	}

	header := make([]string, len(raw[0]))
	columns := make([]string, 0, len(raw[0]))
	seen := make(map[string]int, len(raw[0]))
	for i, cell := range raw[0] {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		} else {
			seen[name] = 1
		}
		header[i] = name
		columns = append(columns, name)
	}

	rows := make([]models.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(models.Row, len(columns))
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" || cell == "" {
				continue
			}
			row[header[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, common.ErrEmptyWorkbook
	}
	return &models.ImportPreview{Rows: rows, Columns: columns}, nil
}
