package snap

import (
	"math"
	"testing"
)

func TestBuildRuntimeScale(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name       string
		height     float64
		wantHeight float64
		wantCoarse float64
		wantFine   float64
	}{
		{name: "default viewport", height: 720, wantHeight: 720, wantCoarse: 2, wantFine: 6},
		{name: "collapsed viewport", height: 0, wantHeight: 320, wantCoarse: 320.0 / 360, wantFine: 320.0 / 120},
		{name: "negative viewport", height: -50, wantHeight: 320, wantCoarse: 320.0 / 360, wantFine: 320.0 / 120},
		{name: "fractional viewport", height: 899.6, wantHeight: 900, wantCoarse: 2.5, wantFine: 7.5},
		{name: "nan viewport", height: math.NaN(), wantHeight: 720, wantCoarse: 2, wantFine: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRuntimeScale(cfg, tt.height)
			if got.ViewportHeight != tt.wantHeight {
				t.Fatalf("height = %v, want %v", got.ViewportHeight, tt.wantHeight)
			}
			if math.Abs(got.CoarsePixelsPerMinute-tt.wantCoarse) > 1e-9 {
				t.Fatalf("coarse = %v, want %v", got.CoarsePixelsPerMinute, tt.wantCoarse)
			}
			if math.Abs(got.FinePixelsPerMinute-tt.wantFine) > 1e-9 {
				t.Fatalf("fine = %v, want %v", got.FinePixelsPerMinute, tt.wantFine)
			}
		})
	}
}

func TestBuildRuntimeScaleFloors(t *testing.T) {
	cfg := Resolve(&Overrides{
		CoarseHoursPerViewport: Float(0),
		FineHoursPerViewport:   Float(1000),
	})
	got := BuildRuntimeScale(cfg, 720)
	// A zero ratio is treated as one hour per viewport.
	if got.CoarsePixelsPerMinute != 12 {
		t.Fatalf("coarse = %v, want 12", got.CoarsePixelsPerMinute)
	}
	if got.FinePixelsPerMinute != 0.1 {
		t.Fatalf("fine = %v, want the 0.1 floor", got.FinePixelsPerMinute)
	}
}

func TestComputeAdaptiveMinuteNoJump(t *testing.T) {
	cfg := DefaultConfig()
	drag := NewDragState(9*60, 100, cfg)

	coarse := ComputeAdaptiveMinute(AdaptiveParams{Drag: drag, CurrentClientY: 122, Mode: ModeCoarse, Config: cfg})
	if coarse.SnappedMinute != 9*60+15 {
		t.Fatalf("coarse snapped = %d, want %d", coarse.SnappedMinute, 9*60+15)
	}
	if coarse.FineAnchor != nil {
		t.Fatalf("coarse frame created an anchor: %+v", coarse.FineAnchor)
	}
	drag = drag.Next(coarse)

	enter := ComputeAdaptiveMinute(AdaptiveParams{Drag: drag, CurrentClientY: 122, Mode: ModeFine, Config: cfg})
	if enter.SnappedMinute != coarse.SnappedMinute {
		t.Fatalf("entering fine jumped from %d to %d", coarse.SnappedMinute, enter.SnappedMinute)
	}
	if enter.FineAnchor == nil || enter.FineAnchor.Minute != 9*60+15 || enter.FineAnchor.ClientY != 122 {
		t.Fatalf("unexpected anchor %+v", enter.FineAnchor)
	}
	drag = drag.Next(enter)

	moved := ComputeAdaptiveMinute(AdaptiveParams{Drag: drag, CurrentClientY: 152, Mode: ModeFine, Config: cfg})
	if moved.SnappedMinute != 9*60+20 {
		t.Fatalf("fine snapped = %d, want %d", moved.SnappedMinute, 9*60+20)
	}
	if *moved.FineAnchor != *enter.FineAnchor {
		t.Fatalf("anchor rebased mid segment: %+v -> %+v", enter.FineAnchor, moved.FineAnchor)
	}
}

func TestComputeAdaptiveMinuteRebasesOncePerSegment(t *testing.T) {
	cfg := DefaultConfig()
	scale := BuildRuntimeScale(cfg, 720)
	drag := NewDragState(12*60, 0, cfg)

	// coarse -> fine -> coarse -> fine, checking continuity at each fine entry.
	steps := []struct {
		y    float64
		mode Mode
	}{
		{y: 40, mode: ModeCoarse},
		{y: 40, mode: ModeFine},
		{y: 70, mode: ModeFine},
		{y: 90, mode: ModeFine},
		{y: 160, mode: ModeCoarse},
		{y: 160, mode: ModeFine},
		{y: 130, mode: ModeFine},
	}
	prevMode := ModeCoarse
	for i, s := range steps {
		if s.mode == ModeCoarse && prevMode == ModeFine {
			drag.FineAnchor = nil
		}
		res := ComputeAdaptiveMinute(AdaptiveParams{Drag: drag, CurrentClientY: s.y, Mode: s.mode, Scale: &scale, Config: cfg})
		if s.mode == ModeFine && prevMode == ModeCoarse && res.SnappedMinute != drag.LastSnappedMinute {
			t.Fatalf("step %d: fine entry moved %d -> %d", i, drag.LastSnappedMinute, res.SnappedMinute)
		}
		if s.mode == ModeFine && prevMode == ModeFine && *res.FineAnchor != *drag.FineAnchor {
			t.Fatalf("step %d: anchor changed within a fine segment", i)
		}
		drag = drag.Next(res)
		prevMode = s.mode
	}
	// Last segment: anchored at 13:15 (coarse at y=160), moved up 30px = -5 minutes.
	if drag.LastSnappedMinute != 13*60+10 {
		t.Fatalf("final minute = %d, want %d", drag.LastSnappedMinute, 13*60+10)
	}
}

func TestComputeAdaptiveMinuteClampsExtremes(t *testing.T) {
	cfg := DefaultConfig()
	drag := NewDragState(60, 500, cfg)
	for _, y := range []float64{-1e9, 1e9} {
		for _, mode := range []Mode{ModeCoarse, ModeFine} {
			res := ComputeAdaptiveMinute(AdaptiveParams{Drag: drag, CurrentClientY: y, Mode: mode, Config: cfg})
			if res.SnappedMinute < cfg.MinMinute || res.SnappedMinute > cfg.MaxMinute {
				t.Fatalf("%s at %v: %d outside the day", mode, y, res.SnappedMinute)
			}
		}
	}
}

func TestMinuteFromRowOffset(t *testing.T) {
	cfg := DefaultConfig()
	start := float64(8*60 + 30)
	tests := []struct {
		name   string
		offset float64
		height float64
		want   int
	}{
		{name: "top of row", offset: 0, height: 60, want: 8*60 + 30},
		{name: "middle of row", offset: 30, height: 60, want: 8*60 + 45},
		{name: "bottom of row", offset: 60, height: 60, want: 9 * 60},
		{name: "above row", offset: -20, height: 60, want: 8*60 + 30},
		{name: "below row", offset: 200, height: 60, want: 9 * 60},
		{name: "zero height", offset: 30, height: 0, want: 8*60 + 30},
		{name: "negative height", offset: 30, height: -4, want: 8*60 + 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinuteFromRowOffset(start, tt.offset, tt.height, cfg); got != tt.want {
				t.Fatalf("MinuteFromRowOffset(%v, %v, %v) = %d, want %d", start, tt.offset, tt.height, got, tt.want)
			}
		})
	}
	if got := MinuteFromRowOffset(24*60-10, 60, 60, cfg); got != cfg.MaxMinute {
		t.Fatalf("last row bottom = %d, want %d", got, cfg.MaxMinute)
	}
}

func TestComputeAdaptiveMinuteUnknownModeIsCoarse(t *testing.T) {
	cfg := DefaultConfig()
	drag := NewDragState(540, 100, cfg)
	p := AdaptiveParams{Drag: drag, CurrentClientY: 130, Mode: Mode("zoomed"), Config: cfg}
	got := ComputeAdaptiveMinute(p)
	p.Mode = ModeCoarse
	want := ComputeAdaptiveMinute(p)
	if got.SnappedMinute != want.SnappedMinute || got.FineAnchor != nil {
		t.Fatalf("unknown mode = %+v, want the coarse result %+v", got, want)
	}
}
