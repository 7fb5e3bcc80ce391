package snap

import "math"

const (
	// DefaultViewportHeight is used when no live viewport height is known.
	DefaultViewportHeight = 720
	// MinViewportHeight floors the viewport so collapsed layouts keep a usable scale.
	MinViewportHeight = 320

	minPixelsPerMinute = 0.1
)

// RuntimeScale is the pixels-per-minute of each mode for one viewport height.
type RuntimeScale struct {
	ViewportHeight        float64 `json:"viewport_height"`
	CoarsePixelsPerMinute float64 `json:"coarse_pixels_per_minute"`
	FinePixelsPerMinute   float64 `json:"fine_pixels_per_minute"`
}

// PixelsPerMinute returns the scale used by mode.
func (s RuntimeScale) PixelsPerMinute(mode Mode) float64 {
	if mode == ModeFine {
		return s.FinePixelsPerMinute
	}
	return s.CoarsePixelsPerMinute
}

// BuildRuntimeScale derives the per-mode scale for a measured viewport
// height. A non-finite height falls back to DefaultViewportHeight, and the
// height is floored at MinViewportHeight.
func BuildRuntimeScale(cfg Config, viewportHeight float64) RuntimeScale {
	if math.IsNaN(viewportHeight) || math.IsInf(viewportHeight, 0) {
		viewportHeight = DefaultViewportHeight
	}
	height := math.Max(MinViewportHeight, round(viewportHeight))

	return RuntimeScale{
		ViewportHeight:        height,
		CoarsePixelsPerMinute: pixelsPerMinute(height, cfg.CoarseHoursPerViewport),
		FinePixelsPerMinute:   pixelsPerMinute(height, cfg.FineHoursPerViewport),
	}
}

// DefaultRuntimeScale is BuildRuntimeScale at DefaultViewportHeight.
func DefaultRuntimeScale(cfg Config) RuntimeScale {
	return BuildRuntimeScale(cfg, DefaultViewportHeight)
}

func pixelsPerMinute(height, hoursPerViewport float64) float64 {
	// math.Max propagates NaN, so the floors are applied by hand.
	minutes := hoursPerViewport * 60
	if math.IsNaN(minutes) || minutes < 60 {
		minutes = 60
	}
	ppm := height / minutes
	if math.IsNaN(ppm) || ppm < minPixelsPerMinute {
		return minPixelsPerMinute
	}
	return ppm
}
