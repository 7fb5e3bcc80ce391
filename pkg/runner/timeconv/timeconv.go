// Package timeconv implements `dragsnap time`.
package timeconv

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"


	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Conversion is one converted input.
type Conversion = printers.Conversion

// TimeConv converts between minutes of the day and HH:MM text.
type TimeConv struct {
	Inputs []string
	Config snap.Config
	JSON   bool

	Printer *printers.PrettyPrint
}

func (n *TimeConv) Do(ctx context.Context) error {
	if len(n.Inputs) == 0 {
		return errors.New("time: requires at least one minute or HH:MM time")
	}
	out := make([]Conversion, 0, len(n.Inputs))
	for _, in := range n.Inputs {
		c, err := Convert(in, n.Config)
		if err != nil {
			return err
		}
		out = append(out, c)
	}
	if n.JSON {
		return n.Printer.JSON(out)
	}
	n.Printer.Conversions(out...)
	return nil
}

// Convert turns "HH:MM" into a minute, or a minute into "HH:MM". Both go
// through the clamp of cfg.
func Convert(in string, cfg snap.Config) (Conversion, error) {
	text := strings.TrimSpace(in)
	var minute int
	if strings.Contains(text, ":") {
		minute = snap.TimeTextToMinute(text, cfg)
	} else {
		m, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Conversion{}, fmt.Errorf("%q is neither a minute nor an HH:MM time", in)
		}
		minute = snap.ClampMinute(m, cfg)
	}
	return Conversion{
		Input:  in,
		Minute: minute,
		Time:   snap.MinuteToTimeText(float64(minute), cfg),
		Label:  snap.MinuteLabel(float64(minute), cfg),
	}, nil
}
