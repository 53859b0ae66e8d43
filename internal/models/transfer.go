package models

// ColumnMapping names, for each part field, the spreadsheet column it is read
// from. Empty entries are treated as absent columns.
type ColumnMapping struct {
	Name        string `json:"name"`
	PartNumber  string `json:"partNumber"`
	BoxNumber   string `json:"boxNumber"`
	Quantity    string `json:"quantity"`
	Category    string `json:"category"`
	Description string `json:"description"`
	MinQuantity string `json:"minQuantity"`
}

// Row is one spreadsheet data row keyed by header text.
type Row map[string]string

// Get returns the cell under column, or "" when the column is unmapped.
func (r Row) Get(column string) string {
	if column == "" {
		return ""
	}
	return r[column]
}

type ImportPreview struct {
	Rows    []Row    `json:"data"`
	Columns []string `json:"columns"`
}

type ImportRequest struct {
	Rows               []Row         `json:"data"`
	Mapping            ColumnMapping `json:"columnMapping"`
	DefaultCategoryID  int64         `json:"defaultCategoryId,omitempty" validate:"gte=0"`
	DefaultMinQuantity *int          `json:"defaultMinQuantity,omitempty" validate:"omitempty,gte=0"`
}

// ImportResult reports a partially successful import: rows that failed are
// listed in Errors and skipped, the rest are inserted.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ExportRow is one flattened part as written to the export sheet.
type ExportRow struct {
	Name         string  `db:"name"`
	PartNumber   string  `db:"part_number"`
	BoxNumber    string  `db:"box_number"`
	Quantity     int     `db:"quantity"`
	Status       string  `db:"status"`
	MinQuantity  int     `db:"min_quantity"`
	CategoryName *string `db:"category_name"`
	CategoryType *string `db:"category_type"`
	Description  *string `db:"description"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}
