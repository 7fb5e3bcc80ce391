// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/snap"
)

// SnapOptions holds the per-invocation snap setting flags. Only flags the
// user actually set become overrides.
type SnapOptions struct {
	CoarseStep     int
	FineStep       int
	MinMinute      int
	MaxMinute      int
	CoarseHours    float64
	FineHours      float64
	Activation     string
	Hold           time.Duration
	HoldMovement   float64
	ActivateWindow float64
	ExitMovement   float64
	ZoomTicks      int

	cmd *cobra.Command
}

// AddSnapArgs wires the snap setting flags on the provided command.
func AddSnapArgs(cmd *cobra.Command, o *SnapOptions) {
	d := snap.DefaultConfig()
	o.cmd = cmd
	f := cmd.Flags()
	f.IntVar(&o.CoarseStep, "coarse-step", d.CoarseStepMinutes, "Coarse snap step in minutes.")
	f.IntVar(&o.FineStep, "fine-step", d.FineStepMinutes, "Fine snap step in minutes.")
	f.IntVar(&o.MinMinute, "min-minute", d.MinMinute, "Earliest minute of the day a drag can reach.")
	f.IntVar(&o.MaxMinute, "max-minute", d.MaxMinute, "Latest minute of the day a drag can reach.")
	f.Float64Var(&o.CoarseHours, "coarse-hours", d.CoarseHoursPerViewport, "Hours spanned by one viewport height in coarse mode.")
	f.Float64Var(&o.FineHours, "fine-hours", d.FineHoursPerViewport, "Hours spanned by one viewport height in fine mode.")
	f.StringVar(&o.Activation, "activation", string(d.PrecisionActivation), "Precision activation: manual-hold, auto-dwell or none.")
	f.DurationVar(&o.Hold, "hold", d.PrecisionHold, "How long the pointer must rest before fine mode starts.")
	f.Float64Var(&o.HoldMovement, "hold-movement", d.PrecisionHoldMovementPx, "Pixels the pointer may wander and still count as holding.")
	f.Float64Var(&o.ActivateWindow, "activation-window", d.PrecisionActivationWindowPx, "Pixels from the drag start within which manual-hold may activate.")
	f.Float64Var(&o.ExitMovement, "exit-movement", d.PrecisionExitMovementPx, "Pixels from the fine entry point that return to coarse mode.")
	f.IntVar(&o.ZoomTicks, "zoom-ticks", d.ZoomTickCount, "Number of ticks on the zoom rail.")
}

// Overrides returns the flags the user set, or nil when none were.
func (o *SnapOptions) Overrides() (*snap.Overrides, error) {
	if o.cmd == nil {
		return nil, nil
	}
	changed := o.cmd.Flags().Changed
	out := &snap.Overrides{}
	if changed("coarse-step") {
		out.CoarseStepMinutes = snap.Int(o.CoarseStep)
	}
	if changed("fine-step") {
		out.FineStepMinutes = snap.Int(o.FineStep)
	}
	if changed("min-minute") {
		out.MinMinute = snap.Int(o.MinMinute)
	}
	if changed("max-minute") {
		out.MaxMinute = snap.Int(o.MaxMinute)
	}
	if changed("coarse-hours") {
		out.CoarseHoursPerViewport = snap.Float(o.CoarseHours)
	}
	if changed("fine-hours") {
		out.FineHoursPerViewport = snap.Float(o.FineHours)
	}
	if changed("activation") {
		a, err := snap.ParseActivation(o.Activation)
		if err != nil {
			return nil, err
		}
		out.PrecisionActivation = snap.ActivationPtr(a)
	}
	if changed("hold") {
		out.PrecisionHold = snap.Duration(o.Hold)
	}
	if changed("hold-movement") {
		out.PrecisionHoldMovementPx = snap.Float(o.HoldMovement)
	}
	if changed("activation-window") {
		out.PrecisionActivationWindowPx = snap.Float(o.ActivateWindow)
	}
	if changed("exit-movement") {
		out.PrecisionExitMovementPx = snap.Float(o.ExitMovement)
	}
	if changed("zoom-ticks") {
		out.ZoomTickCount = snap.Int(o.ZoomTicks)
	}
	if out.IsEmpty() {
		return nil, nil
	}
	return out, nil
}
