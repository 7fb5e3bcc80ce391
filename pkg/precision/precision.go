// Package precision decides when a drag switches between coarse and fine
// snapping. It holds no timers; every sample carries its own timestamp.
package precision

import (
	"math"
	"time"

	"tableflip.dev/dragsnap/pkg/snap"
)

// State is the controller state for one gesture.
type State struct {
	Mode snap.Mode `json:"mode"`
	// HoldOriginY and HoldSince track the current stillness window.
	HoldOriginY float64   `json:"hold_origin_y"`
	HoldSince   time.Time `json:"hold_since"`
	// FineEntryY is the pointer position where fine mode was entered.
	FineEntryY float64 `json:"fine_entry_y"`
	// Forced holds fine mode regardless of activation until Force(coarse)
	// or the exit distance is crossed.
	Forced bool `json:"forced,omitempty"`
}

// Start returns the state at the first sample of a gesture.
func Start(clientY float64, at time.Time) State {
	return State{
		Mode:        snap.ModeCoarse,
		HoldOriginY: clientY,
		HoldSince:   at,
	}
}

// Next advances s by one pointer sample. startY is the gesture's first
// pointer position.
func Next(s State, startY, clientY float64, at time.Time, cfg snap.Config) State {
	if s.Mode == snap.ModeFine && (s.Forced || cfg.PrecisionActivation != snap.ActivationNone) {
		if math.Abs(clientY-s.FineEntryY) > cfg.PrecisionExitMovementPx {
			s.Mode = snap.ModeCoarse
			s.Forced = false
			s.HoldOriginY = clientY
			s.HoldSince = at
		}
		return s
	}
	if cfg.PrecisionActivation == snap.ActivationNone {
		s.Mode = snap.ModeCoarse
		return s
	}

	if math.Abs(clientY-s.HoldOriginY) > cfg.PrecisionHoldMovementPx {
		s.HoldOriginY = clientY
		s.HoldSince = at
		return s
	}
	if at.Sub(s.HoldSince) < cfg.PrecisionHold {
		return s
	}
	if cfg.PrecisionActivation == snap.ActivationManualHold &&
		math.Abs(clientY-startY) > cfg.PrecisionActivationWindowPx {
		return s
	}
	s.Mode = snap.ModeFine
	s.FineEntryY = clientY
	return s
}

// Force puts s into mode at clientY, as a modifier key would. A forced fine
// mode sticks until Force(coarse) or the exit distance; forcing coarse hands
// control back to the activation rules.
func Force(s State, mode snap.Mode, clientY float64, at time.Time) State {
	if mode == snap.ModeFine {
		if s.Mode != snap.ModeFine {
			s.Mode = snap.ModeFine
			s.FineEntryY = clientY
		}
		s.Forced = true
		return s
	}
	s.Forced = false
	if s.Mode == snap.ModeCoarse {
		return s
	}
	s.Mode = snap.ModeCoarse
	s.HoldOriginY = clientY
	s.HoldSince = at
	return s
}
