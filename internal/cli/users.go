package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

func (a *App) Users(ctx context.Context) error {
	res := a.bridge.ListUsers(ctx)
	if err := check(res.Result); err != nil {
		return err
	}
	rows := make([][]string, 0, len(res.Users))
	for _, u := range res.Users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10), u.ServiceNumber, u.Name, string(u.Role), u.CreatedAt.Format("2006-01-02"),
		})
	}
	a.printf("%s\n", renderTable([]string{"ID", "Service No", "Name", "Role", "Created"}, rows))
	return nil
}

// SetRole expects "role ID ROLE".
func (a *App) SetRole(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: role ID admin|editor|user")
	}
	if err := check(a.bridge.UpdateUserRole(ctx, models.UpdateRoleRequest{UserID: id, Role: models.Role(args[1])})); err != nil {
		return err
	}
	a.printf("User %d is now %s\n", id, args[1])
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := check(a.bridge.DeleteUser(ctx, id)); err != nil {
		return err
	}
	a.printf("User %d deleted\n", id)
	return nil
}
