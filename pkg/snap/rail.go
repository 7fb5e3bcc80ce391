package snap

// Tick is one entry of the zoom rail.
type Tick struct {
	Minute   int    `json:"minute"`
	Label    string `json:"label"`
	IsCenter bool   `json:"is_center"`
	// IsMajor marks whole hours and coarse step boundaries in every mode.
	IsMajor bool `json:"is_major"`
}

// Rail is a rendered zoom rail snapshot.
type Rail struct {
	Mode          Mode    `json:"mode"`
	ClientY       float64 `json:"client_y"`
	SnappedMinute int     `json:"snapped_minute"`
	Ticks         []Tick  `json:"ticks"`
}

// Center returns the center tick of the rail.
func (r Rail) Center() (Tick, bool) {
	for _, t := range r.Ticks {
		if t.IsCenter {
			return t, true
		}
	}
	return Tick{}, false
}

// BuildZoomRail lays out the ticks around snappedMinute, re-snapped to the
// step of mode. clientY is carried through for positioning only.
//
// The rail spans floor(max(3, ZoomTickCount)/2) steps on each side of the
// center. Near a day bound the window slides inward to keep its length, so
// the rail is asymmetric there: at 00:00 every tick lies after the center.
// Ticks that still collapse onto the same minute after clamping are dropped.
func BuildZoomRail(mode Mode, clientY float64, snappedMinute float64, cfg Config) Rail {
	step := cfg.StepFor(mode)
	if step < 1 {
		step = 1
	}
	half := max(3, cfg.ZoomTickCount) / 2
	center := SnapByMode(snappedMinute, mode, cfg)

	lo, hi := -half, half
	if over := center + hi*step - cfg.MaxMinute; over > 0 {
		shift := min(half, ceilDiv(over, step))
		lo, hi = lo-shift, hi-shift
	}
	if under := cfg.MinMinute - (center + lo*step); under > 0 {
		shift := min(half, ceilDiv(under, step))
		lo, hi = lo+shift, hi+shift
	}

	seen := make(map[int]struct{}, hi-lo+1)
	ticks := make([]Tick, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		minute := ClampMinute(float64(center+i*step), cfg)
		if _, ok := seen[minute]; ok {
			continue
		}
		seen[minute] = struct{}{}
		ticks = append(ticks, Tick{
			Minute:   minute,
			Label:    MinuteLabel(float64(minute), cfg),
			IsCenter: minute == center,
			IsMajor:  minute%60 == 0 || (cfg.CoarseStepMinutes > 0 && minute%cfg.CoarseStepMinutes == 0),
		})
	}

	return Rail{
		Mode:          mode,
		ClientY:       clientY,
		SnappedMinute: center,
		Ticks:         ticks,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
