package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App implements it.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Parts(ctx context.Context, args []string) error
	Part(ctx context.Context, args []string) error
	AddPart(ctx context.Context) error
	EditPart(ctx context.Context, args []string) error
	DeletePart(ctx context.Context, args []string) error

	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error

	Users(ctx context.Context) error
	SetRole(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error

	Stats(ctx context.Context) error
	Activity(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, exit"
	helpUser  = "Available commands: parts, part, addpart, editpart, delpart, cats, addcat, editcat, delcat, " +
		"users, role, deluser, stats, activity, import, export, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit". Errors returned by
// handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errExit) {
				printlnFn("Bye!")
				return
			}
			printlnFn(styles.Error.Render("Error: " + err.Error()))
		}
	}
}

var errExit = errors.New("exit")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "exit", "quit":
		return errExit
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpUser)
		} else {
			printlnFn(helpGuest)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "parts", "part", "addpart", "editpart", "delpart", "cats", "addcat", "editcat", "delcat",
			"users", "role", "deluser", "stats", "activity", "import", "export", "whoami", "logout":
			return common.ErrNotAuthenticated
		}
		printlnFn("Unknown command:", cmd)
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "parts", "l":
		return a.Parts(ctx, args)
	case "part":
		return a.Part(ctx, args)
	case "addpart":
		return a.AddPart(ctx)
	case "editpart":
		return a.EditPart(ctx, args)
	case "delpart":
		return a.DeletePart(ctx, args)
	case "cats":
		return a.Categories(ctx)
	case "addcat":
		return a.AddCategory(ctx)
	case "editcat":
		return a.EditCategory(ctx, args)
	case "delcat":
		return a.DeleteCategory(ctx, args)
	case "users":
		return a.Users(ctx)
	case "role":
		return a.SetRole(ctx, args)
	case "deluser":
		return a.DeleteUser(ctx, args)
	case "stats":
		return a.Stats(ctx)
	case "activity":
		return a.Activity(ctx, args)
	case "import":
		return a.Import(ctx, args)
	case "export":
		return a.Export(ctx, args)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
