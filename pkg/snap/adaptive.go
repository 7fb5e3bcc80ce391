package snap

// Anchor is the local zero point of a fine-mode segment.
type Anchor struct {
	Minute  float64 `json:"minute"`
	ClientY float64 `json:"client_y"`
}

// DragState is the per-gesture state threaded through ComputeAdaptiveMinute
// by its caller. FineAnchor is nil until fine mode is entered and should be
// reset to nil when the gesture leaves fine mode.
type DragState struct {
	StartMinute       float64 `json:"start_minute"`
	StartClientY      float64 `json:"start_client_y"`
	LastSnappedMinute int     `json:"last_snapped_minute"`
	FineAnchor        *Anchor `json:"fine_anchor,omitempty"`
}

// NewDragState starts a gesture at minute with the pointer at clientY.
func NewDragState(minute float64, clientY float64, cfg Config) DragState {
	return DragState{
		StartMinute:       minute,
		StartClientY:      clientY,
		LastSnappedMinute: ClampMinute(minute, cfg),
	}
}

// AdaptiveParams are the inputs for one pointer-move frame.
type AdaptiveParams struct {
	Drag           DragState
	CurrentClientY float64
	Mode           Mode
	// Scale is derived from Config at the default viewport height when nil.
	Scale  *RuntimeScale
	Config Config
}

// AdaptiveResult is the outcome of one frame. FineAnchor must be fed back
// into the next frame's DragState.
type AdaptiveResult struct {
	RawMinute     float64 `json:"raw_minute"`
	SnappedMinute int     `json:"snapped_minute"`
	FineAnchor    *Anchor `json:"fine_anchor,omitempty"`
}

// Next returns s advanced by r.
func (s DragState) Next(r AdaptiveResult) DragState {
	s.LastSnappedMinute = r.SnappedMinute
	s.FineAnchor = r.FineAnchor
	return s
}

// ComputeAdaptiveMinute maps the pointer position of one frame to a minute.
//
// Coarse mode always measures from the gesture start. Fine mode measures
// from its anchor; when the drag has no anchor yet, the anchor is set to the
// last snapped minute at the current pointer position, so entering fine mode
// never moves the displayed minute by itself.
func ComputeAdaptiveMinute(p AdaptiveParams) AdaptiveResult {
	scale := DefaultRuntimeScale(p.Config)
	if p.Scale != nil {
		scale = *p.Scale
	}

	switch p.Mode {
	case ModeFine:
		anchor := Anchor{
			Minute:  float64(p.Drag.LastSnappedMinute),
			ClientY: p.CurrentClientY,
		}
		if p.Drag.FineAnchor != nil {
			anchor = *p.Drag.FineAnchor
		}
		raw := anchor.Minute + (p.CurrentClientY-anchor.ClientY)/scale.FinePixelsPerMinute
		return AdaptiveResult{
			RawMinute:     raw,
			SnappedMinute: SnapByMode(raw, ModeFine, p.Config),
			FineAnchor:    &anchor,
		}
	default: // coarse, and any unrecognised mode
		raw := p.Drag.StartMinute + (p.CurrentClientY-p.Drag.StartClientY)/scale.CoarsePixelsPerMinute
		return AdaptiveResult{
			RawMinute:     raw,
			SnappedMinute: SnapByMode(raw, ModeCoarse, p.Config),
			FineAnchor:    p.Drag.FineAnchor,
		}
	}
}
