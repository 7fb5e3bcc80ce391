// Package snap implements `dragsnap snap`.
package snap

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Snap snaps each input minute or time to the step of Mode.
type Snap struct {
	Inputs []string
	Mode   snap.Mode
	Config snap.Config
	JSON   bool

	Printer *printers.PrettyPrint
	Log     *zap.SugaredLogger
}

func (n *Snap) Do(ctx context.Context) error {
	if len(n.Inputs) == 0 {
		return errors.New("snap: requires at least one minute or HH:MM time")
	}
	if n.Mode == "" {
		n.Mode = snap.ModeCoarse
	}
	if n.Log == nil {
		n.Log = zap.NewNop().Sugar()
	}

	rows := make([]printers.SnapRow, 0, len(n.Inputs))
	for _, in := range n.Inputs {
		minute, err := ParseMinute(in, n.Config)
		if err != nil {
			return err
		}
		snapped := snap.SnapByMode(minute, n.Mode, n.Config)
		n.Log.Debugw("snapped", "input", in, "minute", minute, "mode", n.Mode, "snapped", snapped)
		rows = append(rows, printers.SnapRow{
			Input:   in,
			Mode:    n.Mode,
			Minute:  snapped,
			Time:    snap.MinuteToTimeText(float64(snapped), n.Config),
			Label:   snap.MinuteLabel(float64(snapped), n.Config),
			Clamped: minute < float64(n.Config.MinMinute) || minute > float64(n.Config.MaxMinute),
		})
	}

	if n.JSON {
		return n.Printer.JSON(rows)
	}
	n.Printer.Snaps(rows...)
	return nil
}

// ParseMinute reads "HH:MM" text or a plain minute of the day.
func ParseMinute(in string, cfg snap.Config) (float64, error) {
	in = strings.TrimSpace(in)
	if strings.Contains(in, ":") {
		return float64(snap.TimeTextToMinute(in, cfg)), nil
	}
	m, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a minute nor an HH:MM time", in)
	}
	return m, nil
}
