package snap

import "testing"

func checkRail(t *testing.T, rail Rail) {
	t.Helper()
	if len(rail.Ticks) < 5 {
		t.Fatalf("rail has %d ticks, want at least 5: %+v", len(rail.Ticks), rail.Ticks)
	}
	centers := 0
	seen := map[int]bool{}
	for i, tick := range rail.Ticks {
		if tick.IsCenter {
			centers++
			if tick.Minute != rail.SnappedMinute {
				t.Fatalf("center tick %d != snapped minute %d", tick.Minute, rail.SnappedMinute)
			}
		}
		if seen[tick.Minute] {
			t.Fatalf("minute %d appears twice", tick.Minute)
		}
		seen[tick.Minute] = true
		if i > 0 && tick.Minute <= rail.Ticks[i-1].Minute {
			t.Fatalf("ticks out of order at %d: %+v", i, rail.Ticks)
		}
	}
	if centers != 1 {
		t.Fatalf("rail has %d center ticks, want 1", centers)
	}
}

func TestBuildZoomRail(t *testing.T) {
	cfg := DefaultConfig()
	rail := BuildZoomRail(ModeFine, 240, 8*60+43, cfg)
	checkRail(t, rail)

	if rail.Mode != ModeFine || rail.ClientY != 240 {
		t.Fatalf("mode/clientY not carried: %+v", rail)
	}
	if rail.SnappedMinute != 8*60+45 {
		t.Fatalf("center was not re-snapped: %d", rail.SnappedMinute)
	}
	wantMinutes := []int{510, 515, 520, 525, 530, 535, 540}
	wantLabels := []string{"8:30a", "8:35a", "8:40a", "8:45a", "8:50a", "8:55a", "9:00a"}
	wantMajor := []bool{true, false, false, true, false, false, true}
	if len(rail.Ticks) != len(wantMinutes) {
		t.Fatalf("got %d ticks, want %d", len(rail.Ticks), len(wantMinutes))
	}
	for i, tick := range rail.Ticks {
		if tick.Minute != wantMinutes[i] || tick.Label != wantLabels[i] || tick.IsMajor != wantMajor[i] {
			t.Fatalf("tick %d = %+v, want %d %s major=%v", i, tick, wantMinutes[i], wantLabels[i], wantMajor[i])
		}
	}
	if c, ok := rail.Center(); !ok || c.Label != "8:45a" {
		t.Fatalf("Center() = %+v, %v", c, ok)
	}
}

func TestBuildZoomRailCoarse(t *testing.T) {
	cfg := DefaultConfig()
	rail := BuildZoomRail(ModeCoarse, 0, 12*60, cfg)
	checkRail(t, rail)
	if rail.Ticks[0].Minute != 11*60+15 || rail.Ticks[len(rail.Ticks)-1].Minute != 12*60+45 {
		t.Fatalf("unexpected span %d..%d", rail.Ticks[0].Minute, rail.Ticks[len(rail.Ticks)-1].Minute)
	}
	for _, tick := range rail.Ticks {
		if !tick.IsMajor {
			t.Fatalf("coarse tick %d should be major", tick.Minute)
		}
	}
}

func TestBuildZoomRailAtDayBounds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		mode   Mode
		minute float64
	}{
		{name: "midnight fine", mode: ModeFine, minute: 0},
		{name: "midnight coarse", mode: ModeCoarse, minute: -60},
		{name: "end of day fine", mode: ModeFine, minute: 24*60 - 5},
		{name: "end of day coarse", mode: ModeCoarse, minute: 24 * 60},
		{name: "one step in", mode: ModeFine, minute: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rail := BuildZoomRail(tt.mode, 0, tt.minute, cfg)
			checkRail(t, rail)
			if len(rail.Ticks) != cfg.ZoomTickCount {
				t.Fatalf("rail shrank to %d ticks at the day bound", len(rail.Ticks))
			}
			for _, tick := range rail.Ticks {
				if tick.Minute < cfg.MinMinute || tick.Minute > cfg.MaxMinute {
					t.Fatalf("tick %d outside the day", tick.Minute)
				}
			}
		})
	}
}

func TestBuildZoomRailTickCount(t *testing.T) {
	cfg := DefaultConfig()
	for count, want := range map[int]int{0: 3, 3: 3, 4: 5, 9: 9, 10: 11} {
		cfg.ZoomTickCount = count
		rail := BuildZoomRail(ModeFine, 0, 600, cfg)
		if len(rail.Ticks) != want {
			t.Fatalf("ZoomTickCount %d: got %d ticks, want %d", count, len(rail.Ticks), want)
		}
	}
}

func TestBuildZoomRailNarrowDay(t *testing.T) {
	cfg := Resolve(&Overrides{MinMinute: Int(600), MaxMinute: Int(610)})
	rail := BuildZoomRail(ModeFine, 0, 605, cfg)
	if len(rail.Ticks) != 3 {
		t.Fatalf("got %d ticks, want the 3 distinct minutes: %+v", len(rail.Ticks), rail.Ticks)
	}
	if c, ok := rail.Center(); !ok || c.Minute != 605 {
		t.Fatalf("center = %+v, %v", c, ok)
	}
}

func TestBuildZoomRailMidnightIsOneSided(t *testing.T) {
	rail := BuildZoomRail(ModeCoarse, 0, 0, DefaultConfig())
	if !rail.Ticks[0].IsCenter || rail.Ticks[0].Minute != 0 {
		t.Fatalf("midnight should be the first tick, got %+v", rail.Ticks[0])
	}
	if last := rail.Ticks[len(rail.Ticks)-1]; last.Minute != 90 {
		t.Fatalf("last tick = %d, want 90", last.Minute)
	}
}
