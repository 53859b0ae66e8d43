package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the name of the single sheet in an export workbook.
const ExportSheet = "Spare Parts"

const minColumnWidth = 15

var ExportHeaders = []string{
	"Part Name", "Part Number", "Box Number", "Quantity", "Status", "Min Quantity",
	"Category", "Category Type", "Description", "Created At", "Updated At",
}

// StatusLabel renders a stored status for people, e.g. low_stock as LOW STOCK.
func StatusLabel(status string) string {
	return strings.ToUpper(strings.ReplaceAll(status, "_", " "))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func exportValues(r models.ExportRow) []any {
	return []any{
		r.Name, r.PartNumber, r.BoxNumber, r.Quantity, StatusLabel(r.Status), r.MinQuantity,
		deref(r.CategoryName), deref(r.CategoryType), deref(r.Description), r.CreatedAt, r.UpdatedAt,
	}
}

// WriteParts renders rows as an xlsx workbook with one header row.
func WriteParts(rows []models.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]any, len(ExportHeaders))
	for i, h := range ExportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := exportValues(r)
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	for i, h := range ExportHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(ExportSheet, col, col, float64(max(len(h), minColumnWidth))); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode export workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
