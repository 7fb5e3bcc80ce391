// Package scale implements `dragsnap scale`.
package scale

import (
	"context"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Scale prints the runtime scale and the resolved configuration.
type Scale struct {
	ViewportHeight float64
	Config         snap.Config
	JSON           bool

	Printer *printers.PrettyPrint
}

func (n *Scale) Do(ctx context.Context) error {
	s := snap.BuildRuntimeScale(n.Config, n.ViewportHeight)
	if n.JSON {
		return n.Printer.JSON(struct {
			Scale  snap.RuntimeScale `json:"scale"`
			Config snap.Config       `json:"config"`
		}{s, n.Config})
	}
	n.Printer.Scale(s)
	n.Printer.Config(n.Config)
	return nil
}
