package services

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/spreadsheet"
	"github.com/dmitrijs2005/sparekeeper/internal/storage"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/google/uuid"
)

// TransferService moves parts between the store and xlsx workbooks.
type TransferService struct {
	store      *store.Store
	repos      repomanager.RepositoryManager
	auth       *AuthService
	sink       storage.Sink
	exportDir  string
	minQtyDflt int
	logger     logging.Logger
}

// NewTransferService builds the import/export service. Relative local export
// paths are resolved against exportDir when it is set.
func NewTransferService(st *store.Store, rm repomanager.RepositoryManager, auth *AuthService, sink storage.Sink, exportDir string, defaultMinQuantity int, logger logging.Logger) *TransferService {
	if defaultMinQuantity < 0 {
		defaultMinQuantity = models.DefaultMinQuantity
	}
	return &TransferService{
		store:      st,
		repos:      rm,
		auth:       auth,
		sink:       sink,
		exportDir:  exportDir,
		minQtyDflt: defaultMinQuantity,
		logger:     logger,
	}
}

// DefaultExportName is the suggested file name for an export made on day now.
func DefaultExportName(now time.Time) string {
	return "spare-parts-export-" + now.Format("2006-01-02") + ".xlsx"
}

// PreviewImport parses the workbook at path without touching the store.
func (s *TransferService) PreviewImport(ctx context.Context, path string) (*models.ImportPreview, error) {
	if strings.TrimSpace(path) == "" {
		return nil, common.ErrNoFileSelected
	}
	p, err := spreadsheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "import preview", "path", path, "rows", len(p.Rows), "columns", len(p.Columns))
	return p, nil
}

// parseCount reads an integer cell. Decimal text is truncated toward zero.
func parseCount(cell string) (int, bool) {
	t := strings.TrimSpace(cell)
	if t == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(t); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// ImportRows inserts every valid row and reports the rest. A bad row never
// aborts the batch.
func (s *TransferService) ImportRows(ctx context.Context, req models.ImportRequest) (*models.ImportResult, error) {
	me, err := s.auth.requireWriter(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	minDefault := s.minQtyDflt
	if req.DefaultMinQuantity != nil {
		minDefault = *req.DefaultMinQuantity
	}

	db := s.store.DB()
	cats, err := s.repos.Categories(db).List(ctx)
	if err != nil {
		return nil, err
	}
	index := categories.NewNameIndex(cats)
	parts := s.repos.Parts(db)

	log := logging.Named(s.logger, "import").With("batch", uuid.NewString(), "user_id", me.ID)
	log.Info(ctx, "import started", "rows", len(req.Rows))

	res := &models.ImportResult{Errors: []string{}, Warnings: []string{}}
	m := req.Mapping

	for i, row := range req.Rows {
		rowNum := i + 2
		fail := func(format string, args ...any) {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: ", rowNum)+fmt.Sprintf(format, args...))
		}

		name := strings.TrimSpace(row.Get(m.Name))
		partNumber := strings.TrimSpace(row.Get(m.PartNumber))
		boxNumber := strings.TrimSpace(row.Get(m.BoxNumber))
		categoryName := strings.TrimSpace(row.Get(m.Category))
		description := row.Get(m.Description)

		quantity, _ := parseCount(row.Get(m.Quantity))
		minQuantity, ok := parseCount(row.Get(m.MinQuantity))
		if !ok {
			minQuantity = minDefault
		}

		switch {
		case name == "":
			fail("Missing name")
			continue
		case partNumber == "":
			fail("Missing part number")
			continue
		case boxNumber == "":
			fail("Missing box number")
			continue
		case quantity < 0:
			fail("Quantity cannot be negative")
			continue
		case minQuantity < 0:
			fail("Min quantity cannot be negative")
			continue
		}

		categoryID := req.DefaultCategoryID
		if categoryName != "" {
			if id, found := index.Find(categoryName); found {
				categoryID = id
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Category %q not found, using default", rowNum, categoryName))
			}
		}
		if categoryID == 0 {
			fail("No category specified and no default set")
			continue
		}

		now := s.auth.now()
		p := &models.Part{
			Name:        name,
			PartNumber:  partNumber,
			BoxNumber:   boxNumber,
			Quantity:    quantity,
			CategoryID:  categoryID,
			Description: &description,
			MinQuantity: minQuantity,
			CreatedBy:   me.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		normalizePart(p)

		if err := parts.Create(ctx, p); err != nil {
			if store.IsForeignKeyViolation(err) {
				fail("%s", common.ErrCategoryNotFound)
				continue
			}
			log.Warn(ctx, "import row failed", "row", rowNum, "error", err)
			fail("Failed to save part")
			continue
		}
		res.Imported++
	}

	details := fmt.Sprintf("Imported %d parts from Excel", res.Imported)
	if err := s.repos.Activity(db).Append(ctx, &models.ActivityLog{
		UserID:    me.ID,
		Action:    models.ActionImported,
		Details:   &details,
		CreatedAt: s.auth.now(),
	}); err != nil {
		return nil, err
	}

	log.Info(ctx, "import finished", "imported", res.Imported, "errors", len(res.Errors), "warnings", len(res.Warnings))
	return res, nil
}

// ExportAll writes every part to dest, a local path or s3://bucket/key, and
// returns where the workbook ended up.
func (s *TransferService) ExportAll(ctx context.Context, dest string) (string, error) {
	me, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return "", common.ErrExportCancelled
	}
	if !storage.IsS3URL(dest) && !filepath.IsAbs(dest) && s.exportDir != "" {
		dest = filepath.Join(s.exportDir, dest)
	}

	rows, err := s.repos.Reports(s.store.X()).ExportRows(ctx)
	if err != nil {
		return "", err
	}
	body, err := spreadsheet.WriteParts(rows)
	if err != nil {
		return "", err
	}
	location, err := s.sink.Put(ctx, dest, body)
	if err != nil {
		return "", err
	}

	details := fmt.Sprintf("Exported %d parts to Excel", len(rows))
	if err := s.repos.Activity(s.store.DB()).Append(ctx, &models.ActivityLog{
		UserID:    me.ID,
		Action:    models.ActionExported,
		Details:   &details,
		CreatedAt: s.auth.now(),
	}); err != nil {
		return "", err
	}
	s.logger.Info(ctx, "parts exported", "count", len(rows), "location", location, "user_id", me.ID)
	return location, nil
}
