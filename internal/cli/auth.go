package cli

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

// Register prompts for a new account and logs it in. New accounts get the
// user role.
func (a *App) Register(ctx context.Context) error {
	sn, err := a.ask("Service number")
	if err != nil {
		return err
	}
	name, err := a.ask("Full name")
	if err != nil {
		return err
	}
	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	res := a.bridge.Register(ctx, models.RegisterRequest{ServiceNumber: sn, Name: name, Password: string(pw)})
	if err := check(res.Result); err != nil {
		return err
	}
	a.user = res.User
	a.printf("%s\n", styles.Success.Render("Registered and logged in as "+res.User.ServiceNumber))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	sn, err := a.ask("Service number")
	if err != nil {
		return err
	}
	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	res := a.bridge.Login(ctx, models.LoginRequest{ServiceNumber: sn, Password: string(pw)})
	if err := check(res.Result); err != nil {
		return err
	}
	a.user = res.User
	a.printf("%s\n", styles.Success.Render("Welcome, "+res.User.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.bridge.Logout(ctx)
	a.user = nil
	a.printf("Logged out\n")
	return nil
}

// Whoami re-reads the session, which drops it locally once it has expired.
func (a *App) Whoami(ctx context.Context) error {
	res := a.bridge.GetSession(ctx)
	if !res.Success {
		a.user = nil
		if res.Error != "" {
			return check(res.Result)
		}
		a.printf("Session expired, please log in again\n")
		return nil
	}
	a.user = res.User
	a.printf("%s (%s) role=%s\n", res.User.Name, res.User.ServiceNumber, res.User.Role)
	return nil
}
