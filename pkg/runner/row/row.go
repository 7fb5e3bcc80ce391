// Package row implements `dragsnap row`.
package row

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Row maps a pointer offset inside a calendar row to a minute.
type Row struct {
	RowStart  float64
	Offset    float64
	RowHeight float64
	Mode      snap.Mode
	Config    snap.Config
	JSON      bool

	Printer *printers.PrettyPrint
}

// Result is the mapped minute and its snap in Mode.
type Result struct {
	RawMinute     int       `json:"raw_minute"`
	Mode          snap.Mode `json:"mode"`
	SnappedMinute int       `json:"snapped_minute"`
	Time          string    `json:"time"`
}

func (n *Row) Do(ctx context.Context) error {
	if n.Mode == "" {
		n.Mode = snap.ModeCoarse
	}
	raw := snap.MinuteFromRowOffset(n.RowStart, n.Offset, n.RowHeight, n.Config)
	snapped := snap.SnapByMode(float64(raw), n.Mode, n.Config)
	res := Result{
		RawMinute:     raw,
		Mode:          n.Mode,
		SnappedMinute: snapped,
		Time:          snap.MinuteToTimeText(float64(snapped), n.Config),
	}
	if n.JSON {
		return n.Printer.JSON(res)
	}
	bold := color.New(color.Bold)
	_, _ = fmt.Fprintf(color.Output, "raw %s, %s snap %s\n",
		snap.MinuteToTimeText(float64(raw), n.Config), n.Mode, bold.Sprint(res.Time))
	return nil
}
