// Package ui implements `dragsnap ui`.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/dragsnap/pkg/snap"
	"tableflip.dev/dragsnap/pkg/tui/dragsim"
)

// ErrNotTerminal is returned when stdout cannot host the simulator.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	ID             string
	From           string
	ViewportHeight float64
	Config         snap.Config

	Log *zap.SugaredLogger

	// run is swapped in tests.
	run func(dragsim.Options) (string, error)
}

func (u *UI) Do(ctx context.Context) error {
	if u.Log == nil {
		u.Log = zap.NewNop().Sugar()
	}
	if u.run == nil {
		fd := os.Stdout.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return ErrNotTerminal
		}
		u.run = dragsim.Run
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.ViewportHeight <= 0 {
		u.ViewportHeight = snap.DefaultViewportHeight
	}

	u.Log.Debugw("starting simulator", "id", u.ID, "from", u.From, "viewport", u.ViewportHeight)
	final, err := u.run(dragsim.Options{
		ItemID:         u.ID,
		Time:           u.From,
		ViewportHeight: u.ViewportHeight,
		Config:         u.Config,
	})
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	_, _ = fmt.Fprintf(color.Output, "%s scheduled at %s\n", u.ID, color.New(color.Bold).Sprint(final))
	return nil
}
