package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/passcheck/internal/config"
	"github.com/dmitrijs2005/passcheck/internal/evaluator"
	"github.com/dmitrijs2005/passcheck/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config  *config.Config
	session *evaluator.Session
	log     logging.Logger
	in      *bufio.Reader
	out     io.Writer
	visible bool
}

// NewApp wires the engine selected by c to stdin and stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	log = log.With("session", uuid.NewString())

	ev, err := NewEvaluator(c, log)
	if err != nil {
		return nil, err
	}
	return newApp(c, ev, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, ev *evaluator.Evaluator, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		session: evaluator.NewSession(ev),
		log:     log,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run blocks in the REPL until EOF or exit, then waits for in-flight lookups.
func (a *App) Run(ctx context.Context) {
	defer a.session.Wait()

	a.log.Info(ctx, "shell started", "oracle", a.config.OracleMode, "estimator", a.config.EstimatorMode)
	fmt.Fprintln(a.out, "Welcome to passcheck (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in)
}

func (a *App) status() string {
	if a.visible {
		return "visible"
	}
	return "hidden"
}
