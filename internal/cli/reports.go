package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/services"
)

func activityRows(list []models.ActivityLog) [][]string {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		who, details := "", ""
		if e.User != nil {
			who = e.User.Name
		}
		if e.Details != nil {
			details = *e.Details
		}
		rows = append(rows, []string{e.CreatedAt.Format("2006-01-02 15:04"), who, string(e.Action), details})
	}
	return rows
}

var activityHeaders = []string{"When", "User", "Action", "Details"}

func (a *App) Stats(ctx context.Context) error {
	res := a.bridge.DashboardStats(ctx)
	if err := check(res.Result); err != nil {
		return err
	}
	s := res.Stats
	a.printf("%s\n", styles.Title.Render("Inventory overview"))
	a.printf("  Parts:         %d\n", s.TotalParts)
	a.printf("  Total units:   %d\n", s.TotalQuantity)
	a.printf("  Low stock:     %s\n", styles.Warning.Render(strconv.Itoa(s.LowStockCount)))
	a.printf("  Out of stock:  %s\n", styles.Error.Render(strconv.Itoa(s.OutOfStockCount)))

	rows := make([][]string, 0, len(s.CategoryCounts))
	for _, c := range s.CategoryCounts {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count)})
	}
	a.printf("%s\n", renderTable([]string{"Category", "Parts"}, rows))

	if len(s.RecentActivity) > 0 {
		a.printf("%s\n", styles.Title.Render("Recent activity"))
		a.printf("%s\n", renderTable(activityHeaders, activityRows(s.RecentActivity)))
	}
	return nil
}

func (a *App) Activity(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = n
	}
	res := a.bridge.ActivityLog(ctx, page, 0)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", renderTable(activityHeaders, activityRows(res.Activity.Data)))
	a.printf("%s\n", styles.Muted.Render(fmt.Sprintf("page %d of %d", res.Activity.Page, res.Activity.TotalPages)))
	return nil
}

// guessColumn picks the header that best matches one of the labels, the way
// an exported workbook names its columns.
func guessColumn(columns []string, labels ...string) string {
	for _, l := range labels {
		for _, c := range columns {
			if strings.EqualFold(strings.TrimSpace(c), l) {
				return c
			}
		}
	}
	return ""
}

// Import previews the workbook, asks for the column mapping and imports the
// rows. Row errors and warnings are listed; they do not fail the command.
func (a *App) Import(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	preview := a.bridge.PreviewImport(ctx, path)
	if err := check(preview.Result); err != nil {
		return err
	}
	cols := preview.Columns
	a.printf("Found %d rows with columns: %s\n", len(preview.Rows), strings.Join(cols, ", "))

	var m models.ColumnMapping
	fields := []struct {
		prompt string
		dst    *string
		labels []string
	}{
		{"Name column", &m.Name, []string{"Part Name", "Name"}},
		{"Part number column", &m.PartNumber, []string{"Part Number", "PartNumber", "PN"}},
		{"Box number column", &m.BoxNumber, []string{"Box Number", "Box"}},
		{"Quantity column", &m.Quantity, []string{"Quantity", "Qty"}},
		{"Category column", &m.Category, []string{"Category"}},
		{"Description column", &m.Description, []string{"Description"}},
		{"Min quantity column", &m.MinQuantity, []string{"Min Quantity", "MinQuantity", "Min"}},
	}
	for _, f := range fields {
		v, err := a.askDefault(f.prompt, guessColumn(cols, f.labels...))
		if err != nil {
			return err
		}
		*f.dst = v
	}

	req := models.ImportRequest{Rows: preview.Rows, Mapping: m}
	cat, err := a.ask("Default category id (blank for none)")
	if err != nil {
		return err
	}
	if cat != "" {
		if req.DefaultCategoryID, err = parseID([]string{cat}); err != nil {
			return err
		}
	}
	if req.DefaultMinQuantity, err = a.askInt("Default min quantity (blank for 5)", ""); err != nil {
		return err
	}

	res := a.bridge.ImportRows(ctx, req)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render(fmt.Sprintf("Imported %d parts", res.Imported)))
	for _, w := range res.Warnings {
		a.printf("%s\n", styles.Warning.Render(w))
	}
	for _, e := range res.Errors {
		a.printf("%s\n", styles.Error.Render(e))
	}
	return nil
}

// Export writes every part to the given destination, a local path or an
// s3://bucket/key URL. Without an argument the user is asked, with today's
// default file name offered.
func (a *App) Export(ctx context.Context, args []string) error {
	dest := strings.Join(args, " ")
	if dest == "" {
		var err error
		if dest, err = a.askDefault("Save export to", services.DefaultExportName(time.Now())); err != nil {
			return err
		}
	}
	res := a.bridge.ExportAll(ctx, dest)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render("Exported to "+res.FilePath))
	return nil
}
