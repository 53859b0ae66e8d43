package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

func (a *App) Categories(ctx context.Context) error {
	res := a.bridge.ListCategories(ctx)
	if err := check(res.Result); err != nil {
		return err
	}
	rows := make([][]string, 0, len(res.Categories))
	for _, c := range res.Categories {
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name, string(c.Type), desc})
	}
	a.printf("%s\n", renderTable([]string{"ID", "Name", "Type", "Description"}, rows))
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := a.ask("Name")
	if err != nil {
		return err
	}
	typ, err := a.ask("Type (mechanical, piping, electrical, specialty)")
	if err != nil {
		return err
	}
	desc, err := a.ask("Description (optional)")
	if err != nil {
		return err
	}

	res := a.bridge.CreateCategory(ctx, models.CategoryCreateRequest{
		Name: name, Type: models.CategoryType(typ), Description: optionalString(desc),
	})
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render(fmt.Sprintf("Created category %d", res.Category.ID)))
	return nil
}

// EditCategory prompts for each field; blank input leaves it unchanged.
func (a *App) EditCategory(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	req := models.CategoryUpdateRequest{ID: id}

	name, err := a.ask("New name (blank to keep)")
	if err != nil {
		return err
	}
	req.Name = optionalString(name)

	typ, err := a.ask("New type (blank to keep)")
	if err != nil {
		return err
	}
	if typ != "" {
		t := models.CategoryType(typ)
		req.Type = &t
	}

	desc, err := a.ask("New description (blank to keep)")
	if err != nil {
		return err
	}
	req.Description = optionalString(desc)

	res := a.bridge.UpdateCategory(ctx, req)
	if err := check(res.Result); err != nil {
		return err
	}
	a.printf("%s\n", styles.Success.Render("Category updated"))
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := check(a.bridge.DeleteCategory(ctx, id)); err != nil {
		return err
	}
	a.printf("Category %d deleted\n", id)
	return nil
}
