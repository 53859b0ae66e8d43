package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sparekeeper/internal/api"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type App struct {
	bridge *api.Bridge
	reader *bufio.Reader
	out    io.Writer
	user   *models.User
}

func NewApp(bridge *api.Bridge, in io.Reader, out io.Writer) *App {
	return &App{bridge: bridge, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", a.user.ServiceNumber, a.user.Role)
}

// ask prompts for one line of input.
func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// askDefault prompts with the current value shown; blank input keeps it.
func (a *App) askDefault(prompt, current string) (string, error) {
	v, err := a.ask(fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// check turns a failed result into an error for the REPL to print.
func check(r api.Result) error {
	if r.Success {
		return nil
	}
	if r.Error == "" {
		return errors.New("operation failed")
	}
	return errors.New(r.Error)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Run restores a live session, if any, and serves commands until the input
// ends or the user exits.
func (a *App) Run(ctx context.Context) {
	if res := a.bridge.GetSession(ctx); res.Success {
		a.user = res.User
	}
	a.printf("%s\n", styles.Title.Render("Sparekeeper inventory (type 'help' for commands)"))
	runREPL(ctx, a, a.getStatus, a.reader)
}
