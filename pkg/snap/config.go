// Package snap turns vertical drag distances into time-of-day minutes.
//
// Every function in this package is pure: configuration, runtime scale and
// drag state are passed in explicitly and results are returned by value, so
// concurrent drags only need their own DragState.
package snap

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the drag precision mode.
type Mode string

const (
	// ModeCoarse maps a large time span to the viewport and snaps to the coarse step.
	ModeCoarse Mode = "coarse"
	// ModeFine maps a small time span to the viewport and snaps to the fine step.
	ModeFine Mode = "fine"
)

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCoarse:
		return ModeCoarse, nil
	case ModeFine:
		return ModeFine, nil
	}
	return "", fmt.Errorf("unknown snap mode %q, expected coarse or fine", s)
}

// Activation selects how a precision controller enters fine mode.
type Activation string

const (
	ActivationManualHold Activation = "manual-hold"
	ActivationAutoDwell  Activation = "auto-dwell"
	ActivationNone       Activation = "none"
)

// ParseActivation returns the Activation named by s.
func ParseActivation(s string) (Activation, error) {
	switch Activation(strings.ToLower(strings.TrimSpace(s))) {
	case ActivationManualHold:
		return ActivationManualHold, nil
	case ActivationAutoDwell:
		return ActivationAutoDwell, nil
	case ActivationNone:
		return ActivationNone, nil
	}
	return "", fmt.Errorf("unknown precision activation %q", s)
}

// Config holds the snapping parameters. The precision fields are not read by
// this package; they parameterise whatever decides the Mode.
type Config struct {
	CoarseStepMinutes int `yaml:"coarse_step_minutes" json:"coarse_step_minutes"`
	FineStepMinutes   int `yaml:"fine_step_minutes" json:"fine_step_minutes"`

	// MinMinute and MaxMinute bound every returned minute.
	MinMinute int `yaml:"min_minute" json:"min_minute"`
	MaxMinute int `yaml:"max_minute" json:"max_minute"`

	// Hours of the day that fit in one full viewport height.
	CoarseHoursPerViewport float64 `yaml:"coarse_hours_per_viewport" json:"coarse_hours_per_viewport"`
	FineHoursPerViewport   float64 `yaml:"fine_hours_per_viewport" json:"fine_hours_per_viewport"`

	PrecisionActivation         Activation    `yaml:"precision_activation" json:"precision_activation"`
	PrecisionHold               time.Duration `yaml:"precision_hold" json:"precision_hold"`
	PrecisionHoldMovementPx     float64       `yaml:"precision_hold_movement_px" json:"precision_hold_movement_px"`
	PrecisionActivationWindowPx float64       `yaml:"precision_activation_window_px" json:"precision_activation_window_px"`
	PrecisionExitMovementPx     float64       `yaml:"precision_exit_movement_px" json:"precision_exit_movement_px"`

	// ZoomTickCount is the number of ticks rendered in the zoom rail.
	ZoomTickCount int `yaml:"zoom_tick_count" json:"zoom_tick_count"`
}

// DefaultConfig returns the default snapping parameters.
func DefaultConfig() Config {
	return Config{
		CoarseStepMinutes:           15,
		FineStepMinutes:             5,
		MinMinute:                   0,
		MaxMinute:                   24*60 - 5,
		CoarseHoursPerViewport:      6,
		FineHoursPerViewport:        2,
		PrecisionActivation:         ActivationManualHold,
		PrecisionHold:               220 * time.Millisecond,
		PrecisionHoldMovementPx:     14,
		PrecisionActivationWindowPx: 72,
		PrecisionExitMovementPx:     96,
		ZoomTickCount:               7,
	}
}

// StepFor returns the step size used by mode.
func (c Config) StepFor(mode Mode) int {
	if mode == ModeFine {
		return c.FineStepMinutes
	}
	return c.CoarseStepMinutes
}

// Overrides is a partial Config. Nil fields keep the value they are layered on.
type Overrides struct {
	CoarseStepMinutes           *int           `yaml:"coarse_step_minutes,omitempty" json:"coarse_step_minutes,omitempty"`
	FineStepMinutes             *int           `yaml:"fine_step_minutes,omitempty" json:"fine_step_minutes,omitempty"`
	MinMinute                   *int           `yaml:"min_minute,omitempty" json:"min_minute,omitempty"`
	MaxMinute                   *int           `yaml:"max_minute,omitempty" json:"max_minute,omitempty"`
	CoarseHoursPerViewport      *float64       `yaml:"coarse_hours_per_viewport,omitempty" json:"coarse_hours_per_viewport,omitempty"`
	FineHoursPerViewport        *float64       `yaml:"fine_hours_per_viewport,omitempty" json:"fine_hours_per_viewport,omitempty"`
	PrecisionActivation         *Activation    `yaml:"precision_activation,omitempty" json:"precision_activation,omitempty"`
	PrecisionHold               *time.Duration `yaml:"precision_hold,omitempty" json:"precision_hold,omitempty"`
	PrecisionHoldMovementPx     *float64       `yaml:"precision_hold_movement_px,omitempty" json:"precision_hold_movement_px,omitempty"`
	PrecisionActivationWindowPx *float64       `yaml:"precision_activation_window_px,omitempty" json:"precision_activation_window_px,omitempty"`
	PrecisionExitMovementPx     *float64       `yaml:"precision_exit_movement_px,omitempty" json:"precision_exit_movement_px,omitempty"`
	ZoomTickCount               *int           `yaml:"zoom_tick_count,omitempty" json:"zoom_tick_count,omitempty"`
}

// Resolve fills every field o leaves unset from DefaultConfig. A nil o
// yields the defaults. Values are not validated.
func Resolve(o *Overrides) Config {
	return o.ApplyTo(DefaultConfig())
}

// ApplyTo returns base with the set fields of o written over it.
func (o *Overrides) ApplyTo(base Config) Config {
	if o == nil {
		return base
	}
	setInt(&base.CoarseStepMinutes, o.CoarseStepMinutes)
	setInt(&base.FineStepMinutes, o.FineStepMinutes)
	setInt(&base.MinMinute, o.MinMinute)
	setInt(&base.MaxMinute, o.MaxMinute)
	setFloat(&base.CoarseHoursPerViewport, o.CoarseHoursPerViewport)
	setFloat(&base.FineHoursPerViewport, o.FineHoursPerViewport)
	if o.PrecisionActivation != nil {
		base.PrecisionActivation = *o.PrecisionActivation
	}
	if o.PrecisionHold != nil {
		base.PrecisionHold = *o.PrecisionHold
	}
	setFloat(&base.PrecisionHoldMovementPx, o.PrecisionHoldMovementPx)
	setFloat(&base.PrecisionActivationWindowPx, o.PrecisionActivationWindowPx)
	setFloat(&base.PrecisionExitMovementPx, o.PrecisionExitMovementPx)
	setInt(&base.ZoomTickCount, o.ZoomTickCount)
	return base
}

// Merge returns a new Overrides holding the fields of o with the set fields
// of next layered on top. Neither input is modified.
func (o *Overrides) Merge(next *Overrides) *Overrides {
	out := &Overrides{}
	if o != nil {
		*out = *o
	}
	if next == nil {
		return out
	}
	pick(&out.CoarseStepMinutes, next.CoarseStepMinutes)
	pick(&out.FineStepMinutes, next.FineStepMinutes)
	pick(&out.MinMinute, next.MinMinute)
	pick(&out.MaxMinute, next.MaxMinute)
	pick(&out.CoarseHoursPerViewport, next.CoarseHoursPerViewport)
	pick(&out.FineHoursPerViewport, next.FineHoursPerViewport)
	pick(&out.PrecisionActivation, next.PrecisionActivation)
	pick(&out.PrecisionHold, next.PrecisionHold)
	pick(&out.PrecisionHoldMovementPx, next.PrecisionHoldMovementPx)
	pick(&out.PrecisionActivationWindowPx, next.PrecisionActivationWindowPx)
	pick(&out.PrecisionExitMovementPx, next.PrecisionExitMovementPx)
	pick(&out.ZoomTickCount, next.ZoomTickCount)
	return out
}

// IsEmpty reports whether no field of o is set.
func (o *Overrides) IsEmpty() bool {
	return o == nil || *o == Overrides{}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func pick[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}

// Int returns a pointer to v, for building Overrides literals.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Duration returns a pointer to v.
func Duration(v time.Duration) *time.Duration { return &v }

// ActivationPtr returns a pointer to v.
func ActivationPtr(v Activation) *Activation { return &v }
