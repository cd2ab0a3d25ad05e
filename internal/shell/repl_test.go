package shell

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls   []string
	visible bool
}

func (f *fakeExec) Check(ctx context.Context) error {
	f.calls = append(f.calls, "check")
	return nil
}
func (f *fakeExec) Generate(ctx context.Context) error {
	f.calls = append(f.calls, "gen")
	return nil
}
func (f *fakeExec) Clear(ctx context.Context) error {
	f.calls = append(f.calls, "clear")
	return nil
}
func (f *fakeExec) SetVisible(v bool) {
	f.visible = v
	f.calls = append(f.calls, fmt.Sprintf("visible=%v", v))
}

func silenceOutput(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprint(a...))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &printed
}

func TestRunREPL_Commands(t *testing.T) {
	printed := silenceOutput(t)

	input := strings.Join([]string{
		"help",
		"",
		"check",
		"show",
		"gen",
		"hide",
		"clear",
		"foobar",
		"exit",
		"check",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "hidden" }, rdr(input))

	assert.Equal(t, []string{"check", "visible=true", "gen", "visible=false", "clear"}, exec.calls)
	assert.Contains(t, *printed, "Unknown command:foobar")
	assert.Contains(t, *printed, "Bye!")
}

func TestRunREPL_EOF(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("c\ng"))

	assert.Equal(t, []string{"check", "gen"}, exec.calls)
}

func TestRunREPL_StopsOnCancel(t *testing.T) {
	silenceOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("clear\nclear\n"))

	assert.Equal(t, []string{"clear"}, exec.calls)
}
