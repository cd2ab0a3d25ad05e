package shell

import (
	"context"
	"fmt"
)

// Check prompts for a password, evaluates it and renders the final result.
func (a *App) Check(ctx context.Context) error {
	pw, err := GetPassword(a.in, a.out, !a.visible)
	if err != nil {
		a.log.Error(ctx, "reading password failed", "error", err)
		return err
	}
	return a.show(ctx, a.session.Submit(ctx, pw))
}

// Generate replaces the current password with a generated one.
func (a *App) Generate(ctx context.Context) error {
	pw, seq, err := a.session.Generate(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not generate a password:", err)
		return err
	}

	shown := pw
	if !a.visible {
		shown = mask(pw)
	}
	fmt.Fprintf(a.out, "Generated password: %s\n", shown)
	return a.show(ctx, seq)
}

// Clear resets the panel to the empty-password baseline.
func (a *App) Clear(ctx context.Context) error {
	return a.show(ctx, a.session.Submit(ctx, ""))
}

// SetVisible toggles whether typed and generated passwords are echoed.
func (a *App) SetVisible(v bool) {
	a.visible = v
	if v {
		fmt.Fprintln(a.out, "Passwords are now visible")
	} else {
		fmt.Fprintln(a.out, "Passwords are now hidden")
	}
}

func (a *App) show(ctx context.Context, seq uint64) error {
	r, err := a.session.Await(ctx, seq)
	if err != nil {
		// ctx ended; render what we have.
		a.log.Warn(ctx, "evaluation did not settle", "seq", seq, "error", err)
	}
	a.log.Debug(ctx, "evaluated", "seq", r.Seq, "category", r.Category.String(), "length", r.Length)
	return Render(a.out, r, a.config.Color)
}
