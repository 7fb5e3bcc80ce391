package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"tableflip.dev/dragsnap/pkg/gesture"
	"tableflip.dev/dragsnap/pkg/profile"
	"tableflip.dev/dragsnap/pkg/snap"
)

// PrettyPrint writes human readable tables. A nil Out writes to color.Output.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

// YAML writes v as a YAML document.
func (pp *PrettyPrint) YAML(v interface{}) error {
	enc := yaml.NewEncoder(pp.out())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// SnapRow is one line of `dragsnap snap` output.
type SnapRow struct {
	Input   string    `json:"input"`
	Mode    snap.Mode `json:"mode"`
	Minute  int       `json:"minute"`
	Time    string    `json:"time"`
	Label   string    `json:"label"`
	Clamped bool      `json:"clamped,omitempty"`
}

func (pp *PrettyPrint) Snaps(rows ...SnapRow) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Input"), bold.Sprint("Mode"), bold.Sprint("Minute"), bold.Sprint("Time"), bold.Sprint("Label"))
	for _, r := range rows {
		label := r.Label
		if r.Clamped {
			label += faint.Sprint(" (clamped)")
		}
		tbl.AddRow(r.Input, string(r.Mode), r.Minute, r.Time, label)
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Conversion is one line of `dragsnap time` output.
type Conversion struct {
	Input  string `json:"input"`
	Minute int    `json:"minute"`
	Time   string `json:"time"`
	Label  string `json:"label"`
}

func (pp *PrettyPrint) Conversions(rows ...Conversion) {
	bold := color.New(color.Bold)

	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Input"), bold.Sprint("Minute"), bold.Sprint("Time"), bold.Sprint("Label"))
	for _, c := range rows {
		tbl.AddRow(c.Input, c.Minute, c.Time, c.Label)
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Scale(s snap.RuntimeScale) {
	bold := color.New(color.Bold)
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("Viewport"), fmt.Sprintf("%.0fpx", s.ViewportHeight))
	tbl.AddRow(bold.Sprint("Coarse"), fmt.Sprintf("%.3f px/min", s.CoarsePixelsPerMinute))
	tbl.AddRow(bold.Sprint("Fine"), fmt.Sprintf("%.3f px/min", s.FinePixelsPerMinute))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Rail draws the zoom rail top to bottom, marking the center tick.
func (pp *PrettyPrint) Rail(r snap.Rail) {
	center := color.New(color.FgHiYellow, color.Bold)
	major := color.New(color.FgWhite)
	minor := color.New(color.Faint)

	pp.Title(fmt.Sprintf("%s rail at y=%.0f", r.Mode, r.ClientY))
	tbl := pp.table()
	for _, t := range r.Ticks {
		switch {
		case t.IsCenter:
			tbl.AddRow(center.Sprint("▶"), center.Sprint(t.Label), center.Sprint(strings.Repeat("━", 6)))
		case t.IsMajor:
			tbl.AddRow(" ", major.Sprint(t.Label), major.Sprint(strings.Repeat("─", 4)))
		default:
			tbl.AddRow(" ", minor.Sprint(t.Label), minor.Sprint(strings.Repeat("─", 2)))
		}
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Frames prints one row per replayed pointer sample and the drop.
func (pp *PrettyPrint) Frames(frames []gesture.Frame, drop gesture.Drop) {
	bold := color.New(color.Bold)
	changed := color.New(color.FgHiMagenta)

	tbl := pp.table()
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Y"), bold.Sprint("Mode"), bold.Sprint("Raw"), bold.Sprint("Time"))
	for i, f := range frames {
		mode := string(f.Mode)
		if f.ModeChanged {
			mode = changed.Sprint(mode + "*")
		}
		tbl.AddRow(i+1, fmt.Sprintf("%.1f", f.ClientY), mode, fmt.Sprintf("%.2f", f.RawMinute), f.Time)
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	verb := "unchanged"
	if drop.Changed {
		verb = "moved"
	}
	_, _ = bold.Fprintf(pp.out(), "drop %s at %s (%s)\n", drop.ID, drop.Time, verb)
}

func (pp *PrettyPrint) Profiles(list ...profile.Profile) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	tbl := pp.table()
	tbl.MaxColWidth = 70
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Description"))
	for _, p := range list {
		name := p.Name
		if p.Builtin {
			name += faint.Sprint(" (builtin)")
		}
		tbl.AddRow(name, p.Description)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Config lists every resolved setting.
func (pp *PrettyPrint) Config(c snap.Config) {
	bold := color.New(color.Bold)
	tbl := pp.table()
	add := func(k string, v interface{}) { tbl.AddRow(bold.Sprint(k), v) }
	add("coarse step", fmt.Sprintf("%d min", c.CoarseStepMinutes))
	add("fine step", fmt.Sprintf("%d min", c.FineStepMinutes))
	add("day bounds", fmt.Sprintf("%s - %s", snap.MinuteToTimeText(float64(c.MinMinute), c), snap.MinuteToTimeText(float64(c.MaxMinute), c)))
	add("coarse span", fmt.Sprintf("%gh per viewport", c.CoarseHoursPerViewport))
	add("fine span", fmt.Sprintf("%gh per viewport", c.FineHoursPerViewport))
	add("activation", string(c.PrecisionActivation))
	add("hold", c.PrecisionHold.String())
	add("hold movement", fmt.Sprintf("%gpx", c.PrecisionHoldMovementPx))
	add("activation window", fmt.Sprintf("%gpx", c.PrecisionActivationWindowPx))
	add("exit movement", fmt.Sprintf("%gpx", c.PrecisionExitMovementPx))
	add("zoom ticks", c.ZoomTickCount)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
