// Package drag implements `dragsnap drag`, which replays scripted pointer
// samples through a drag session.
package drag

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/dragsnap/pkg/gesture"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Drag replays Samples starting at From with the pointer at StartY.
type Drag struct {
	ID             string
	From           string
	StartY         float64
	ViewportHeight float64
	Samples        []string
	Config         snap.Config
	JSON           bool
	// ShowRail prints the zoom rail of the last frame.
	ShowRail bool

	Printer *printers.PrettyPrint
	Log     *zap.SugaredLogger
}

// Result is the JSON output of a replay.
type Result struct {
	Frames []gesture.Frame `json:"frames"`
	Drop   gesture.Drop    `json:"drop"`
}

func (n *Drag) Do(ctx context.Context) error {
	if len(n.Samples) == 0 {
		return errors.New("drag: requires at least one pointer sample")
	}
	if n.Log == nil {
		n.Log = zap.NewNop().Sugar()
	}
	if n.ID == "" {
		n.ID = "item"
	}
	samples, err := gesture.ParseSamples(n.Samples)
	if err != nil {
		return err
	}

	s := gesture.Begin(n.ID, n.From, n.StartY, time.Now(), n.Config, n.ViewportHeight)
	n.Log.Debugw("drag started",
		"id", n.ID, "from", s.Time(), "startY", n.StartY,
		"coarsePxPerMin", s.Scale.CoarsePixelsPerMinute, "finePxPerMin", s.Scale.FinePixelsPerMinute)

	frames, drop, err := gesture.Replay(ctx, s, samples)
	if err != nil {
		return err
	}
	for i, f := range frames {
		if f.ModeChanged {
			n.Log.Debugw("precision mode changed", "frame", i+1, "mode", f.Mode, "y", f.ClientY, "time", f.Time)
		}
	}
	n.Log.Debugw("drag dropped", "id", drop.ID, "time", drop.Time, "changed", drop.Changed)

	if n.JSON {
		return n.Printer.JSON(Result{Frames: frames, Drop: drop})
	}
	n.Printer.Frames(frames, drop)
	if n.ShowRail && len(frames) > 0 {
		n.Printer.NewLine()
		n.Printer.Rail(frames[len(frames)-1].Rail)
	}
	return nil
}
