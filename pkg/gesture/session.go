// Package gesture threads a single drag through the snap engine and the
// precision controller, one pointer sample at a time.
package gesture

import (
	"context"
	"time"

	"tableflip.dev/dragsnap/pkg/precision"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Session is the state of one drag gesture. It is a value: Move returns the
// next Session and leaves the receiver untouched, so two concurrent drags
// only need two Sessions.
type Session struct {
	ID             string            `json:"id"`
	OriginalMinute int               `json:"original_minute"`
	StartedAt      time.Time         `json:"started_at"`
	Drag           snap.DragState    `json:"drag"`
	Precision      precision.State   `json:"precision"`
	Scale          snap.RuntimeScale `json:"scale"`
	Config         snap.Config       `json:"config"`
}

// Frame is the result of one pointer sample.
type Frame struct {
	ClientY       float64   `json:"client_y"`
	Mode          snap.Mode `json:"mode"`
	ModeChanged   bool      `json:"mode_changed"`
	RawMinute     float64   `json:"raw_minute"`
	SnappedMinute int       `json:"snapped_minute"`
	Time          string    `json:"time"`
	Rail          snap.Rail `json:"rail"`
}

// Drop is the outcome of a finished gesture.
type Drop struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Changed bool   `json:"changed"`
}

// Begin starts a drag of the item id scheduled at timeText, with the
// pointer at clientY. viewportHeight sizes the runtime scale.
func Begin(id, timeText string, clientY float64, at time.Time, cfg snap.Config, viewportHeight float64) Session {
	minute := snap.TimeTextToMinute(timeText, cfg)
	return Session{
		ID:             id,
		OriginalMinute: minute,
		StartedAt:      at,
		Drag:           snap.NewDragState(float64(minute), clientY, cfg),
		Precision:      precision.Start(clientY, at),
		Scale:          snap.BuildRuntimeScale(cfg, viewportHeight),
		Config:         cfg,
	}
}

// Mode returns the current precision mode.
func (s Session) Mode() snap.Mode {
	return s.Precision.Mode
}

// Time returns the currently displayed time.
func (s Session) Time() string {
	return snap.MinuteToTimeText(float64(s.Drag.LastSnappedMinute), s.Config)
}

// Move feeds one pointer sample into the session.
func (s Session) Move(clientY float64, at time.Time) (Session, Frame) {
	next := precision.Next(s.Precision, s.Drag.StartClientY, clientY, at, s.Config)
	return s.step(next, clientY)
}

// WithMode forces the precision mode at clientY, as a modifier key would,
// and recomputes the frame at that position.
func (s Session) WithMode(mode snap.Mode, clientY float64, at time.Time) (Session, Frame) {
	next := precision.Force(s.Precision, mode, clientY, at)
	return s.step(next, clientY)
}

func (s Session) step(next precision.State, clientY float64) (Session, Frame) {
	changed := next.Mode != s.Precision.Mode
	if next.Mode == snap.ModeCoarse {
		// The next fine segment must rebase on entry.
		s.Drag.FineAnchor = nil
	}
	res := snap.ComputeAdaptiveMinute(snap.AdaptiveParams{
		Drag:           s.Drag,
		CurrentClientY: clientY,
		Mode:           next.Mode,
		Scale:          &s.Scale,
		Config:         s.Config,
	})
	s.Drag = s.Drag.Next(res)
	s.Precision = next

	return s, Frame{
		ClientY:       clientY,
		Mode:          next.Mode,
		ModeChanged:   changed,
		RawMinute:     res.RawMinute,
		SnappedMinute: res.SnappedMinute,
		Time:          snap.MinuteToTimeText(float64(res.SnappedMinute), s.Config),
		Rail:          snap.BuildZoomRail(next.Mode, clientY, float64(res.SnappedMinute), s.Config),
	}
}

// End finishes the gesture.
func (s Session) End() Drop {
	return Drop{
		ID:      s.ID,
		Time:    s.Time(),
		Changed: s.Drag.LastSnappedMinute != s.OriginalMinute,
	}
}

// Replay feeds samples through s in order and ends the gesture. Sample
// offsets are relative to s.StartedAt.
func Replay(ctx context.Context, s Session, samples []Sample) ([]Frame, Drop, error) {
	frames := make([]Frame, 0, len(samples))
	for _, smp := range samples {
		if err := ctx.Err(); err != nil {
			return frames, Drop{}, err
		}
		at := s.StartedAt.Add(smp.Offset)
		var f Frame
		if smp.Mode != "" {
			s, f = s.WithMode(smp.Mode, smp.ClientY, at)
		} else {
			s, f = s.Move(smp.ClientY, at)
		}
		frames = append(frames, f)
	}
	return frames, s.End(), nil
}
