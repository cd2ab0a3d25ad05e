package shell

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests, replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Check(ctx context.Context) error
	Generate(ctx context.Context) error
	Clear(ctx context.Context) error
	SetVisible(v bool)
}

// runREPL reads commands line by line from in and dispatches them to a.
//
// Commands:
//
//	help           show available commands
//	check          read a password and evaluate it
//	gen            generate a password and evaluate it
//	show | hide    echo passwords or hide them
//	clear          reset to the empty password
//	exit | quit    leave the program
//
// The loop exits on EOF. Handler errors are not fatal; handlers log them.
// in is shared with the password prompt so no input is buffered twice.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("passcheck (%s)> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: check, gen, show, hide, clear, exit")

		case "check", "c":
			_ = a.Check(ctx)

		case "gen", "g":
			_ = a.Generate(ctx)

		case "show":
			a.SetVisible(true)

		case "hide":
			a.SetVisible(false)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
