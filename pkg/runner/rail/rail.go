// Package rail implements `dragsnap rail`.
package rail

import (
	"context"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Rail renders the zoom rail around Minute.
type Rail struct {
	Minute  float64
	ClientY float64
	Mode    snap.Mode
	Config  snap.Config
	JSON    bool

	Printer *printers.PrettyPrint
}

func (n *Rail) Do(ctx context.Context) error {
	if n.Mode == "" {
		n.Mode = snap.ModeCoarse
	}
	r := snap.BuildZoomRail(n.Mode, n.ClientY, n.Minute, n.Config)
	if n.JSON {
		return n.Printer.JSON(r)
	}
	n.Printer.Rail(r)
	return nil
}
