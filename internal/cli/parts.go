package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

// parseFilter reads key=value options; remaining words form the search text.
func parseFilter(args []string) (models.PartsFilter, error) {
	var f models.PartsFilter
	var words []string
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			words = append(words, arg)
			continue
		}
		var err error
		switch key {
		case "status":
			f.Status = models.PartStatus(val)
		case "cat":
			f.CategoryID, err = strconv.ParseInt(val, 10, 64)
		case "sort":
			f.SortBy = models.SortField(val)
		case "order":
			f.SortOrder = models.SortOrder(val)
		case "page":
			f.Page, err = strconv.Atoi(val)
		case "limit":
			f.Limit, err = strconv.Atoi(val)
		default:
			words = append(words, arg)
		}
		if err != nil {
			return f, fmt.Errorf("invalid %s %q", key, val)
		}
	}
	f.Search = strings.Join(words, " ")
	return f, nil
}

func categoryName(p models.Part) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func (a *App) Parts(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return err
	}
	res := a.bridge.ListParts(ctx, f)
	if err := check(res.Result); err != nil {
		return err
	}

	rows := make([][]string, 0, len(res.Parts.Data))
	for _, p := range res.Parts.Data {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.Name, p.PartNumber, p.BoxNumber,
			strconv.Itoa(p.Quantity), strconv.Itoa(p.MinQuantity), statusText(p.Status), categoryName(p),
		})
	}
	a.printf("%s\n", renderTable([]string{"ID", "Name", "Part No", "Box", "Qty", "Min", "Status", "Category"}, rows))
	a.printf("%s\n", styles.Muted.Render(fmt.Sprintf("page %d of %d, %d parts", res.Parts.Page, res.Parts.TotalPages, res.Parts.Total)))
	return nil
}

func (a *App) Part(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	res := a.bridge.GetPart(ctx, id)
	if err := check(res.Result); err != nil {
		return err
	}
	if res.Part == nil {
		a.printf("Part %d not found\n", id)
		return nil
	}
	a.printPart(res.Part)
	return nil
}

func (a *App) printPart(p *models.Part) {
	a.printf("%s\n", styles.Title.Render(p.Name))
	a.printf("  Part number:  %s\n", p.PartNumber)
	a.printf("  Box:          %s\n", p.BoxNumber)
	a.printf("  Quantity:     %d (min %d) %s\n", p.Quantity, p.MinQuantity, statusText(p.Status))
	a.printf("  Category:     %s\n", categoryName(*p))
	if p.Description != nil {
		a.printf("  Description:  %s\n", *p.Description)
	}
	if p.Creator != nil {
		a.printf("  Created by:   %s\n", p.Creator.Name)
	}
	a.printf("  Updated:      %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
}

func (a *App) AddPart(ctx context.Context) error {
	var req models.PartCreateRequest
	var err error

	if req.Name, err = a.ask("Name"); err != nil {
		return err
	}
	if req.PartNumber, err = a.ask("Part number"); err != nil {
		return err
	}
	if req.BoxNumber, err = a.ask("Box number"); err != nil {
		return err
	}
	qty, err := a.askInt("Quantity", "0")
	if err != nil {
		return err
	}
	req.Quantity = *qty
	cat, err := a.ask("Category id (see 'cats')")
	if err != nil {
		return err
	}
	if req.CategoryID, err = parseID([]string{cat}); err != nil {
		return err
	}
	if req.MinQuantity, err = a.askInt("Min quantity (blank for 5)", ""); err != nil {
		return err
	}
	desc, err := a.ask("Description (optional)")
	if err != nil {
		return err
	}
	req.Description = optionalString(desc)

	res := a.bridge.CreatePart(ctx, req)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render(fmt.Sprintf("Created part %d", res.Part.ID)))
	a.printPart(res.Part)
	return nil
}

// askInt prompts for a number; blank input yields def, or nil when def is "".
func (a *App) askInt(prompt, def string) (*int, error) {
	v, err := a.ask(prompt)
	if err != nil {
		return nil, err
	}
	if v == "" {
		v = def
	}
	return optionalInt(v)
}

// EditPart prompts for each field with the stored value as default and sends
// only the fields that changed.
func (a *App) EditPart(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	cur := a.bridge.GetPart(ctx, id)
	if err := check(cur.Result); err != nil {
		return err
	}
	if cur.Part == nil {
		return common.ErrPartNotFound
	}
	p := cur.Part
	req := models.PartUpdateRequest{ID: id}

	text := func(prompt, current string, dst **string) error {
		v, err := a.askDefault(prompt, current)
		if err != nil {
			return err
		}
		if v != current {
			*dst = &v
		}
		return nil
	}
	number := func(prompt string, current int, dst **int) error {
		v, err := a.askDefault(prompt, strconv.Itoa(current))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%q is not a number", v)
		}
		if n != current {
			*dst = &n
		}
		return nil
	}

	if err := text("Name", p.Name, &req.Name); err != nil {
		return err
	}
	if err := text("Part number", p.PartNumber, &req.PartNumber); err != nil {
		return err
	}
	if err := text("Box number", p.BoxNumber, &req.BoxNumber); err != nil {
		return err
	}
	if err := number("Quantity", p.Quantity, &req.Quantity); err != nil {
		return err
	}
	if err := number("Min quantity", p.MinQuantity, &req.MinQuantity); err != nil {
		return err
	}
	cat, err := a.askDefault("Category id", strconv.FormatInt(p.CategoryID, 10))
	if err != nil {
		return err
	}
	catID, err := parseID([]string{cat})
	if err != nil {
		return err
	}
	if catID != p.CategoryID {
		req.CategoryID = &catID
	}

	res := a.bridge.UpdatePart(ctx, req)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render("Part updated"))
	a.printPart(res.Part)
	return nil
}

func (a *App) DeletePart(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := check(a.bridge.DeletePart(ctx, id)); err != nil {
		return err
	}
	a.printf("Part %d deleted\n", id)
	return nil
}
