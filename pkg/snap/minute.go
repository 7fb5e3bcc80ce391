package snap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// round rounds half up, so 2.5 -> 3 and -2.5 -> -2.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ClampMinute rounds minute to the nearest integer and clamps it into
// [cfg.MinMinute, cfg.MaxMinute]. NaN resolves to cfg.MinMinute.
func ClampMinute(minute float64, cfg Config) int {
	if math.IsNaN(minute) {
		return cfg.MinMinute
	}
	r := round(minute)
	if r < float64(cfg.MinMinute) {
		return cfg.MinMinute
	}
	if r > float64(cfg.MaxMinute) {
		return cfg.MaxMinute
	}
	return int(r)
}

// SnapToStep rounds minute to the nearest multiple of step and clamps the
// result. Steps below 1 are treated as 1.
func SnapToStep(minute float64, step int, cfg Config) int {
	if step < 1 {
		step = 1
	}
	s := float64(step)
	return ClampMinute(round(minute/s)*s, cfg)
}

// SnapByMode snaps minute to the step size of mode.
func SnapByMode(minute float64, mode Mode, cfg Config) int {
	return SnapToStep(minute, cfg.StepFor(mode), cfg)
}

// MinuteToTimeText clamps minute and formats it as 24-hour "HH:MM".
func MinuteToTimeText(minute float64, cfg Config) string {
	m := ClampMinute(minute, cfg)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TimeTextToMinute parses "HH:MM" into a clamped minute of the day. Fields
// after the minutes ("HH:MM:SS") are ignored and an empty field reads as 0.
// Text that does not parse resolves to clamped midnight.
func TimeTextToMinute(text string, cfg Config) int {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 {
		return ClampMinute(0, cfg)
	}
	hour, ok := timeField(parts[0])
	if !ok {
		return ClampMinute(0, cfg)
	}
	mins, ok := timeField(parts[1])
	if !ok {
		return ClampMinute(0, cfg)
	}
	return ClampMinute(hour*60+mins, cfg)
}

func timeField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// MinuteLabel formats a clamped minute as a compact 12-hour label such as
// "8:45a" or "12:00p".
func MinuteLabel(minute float64, cfg Config) string {
	m := ClampMinute(minute, cfg)
	hour24 := m / 60
	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}
	suffix := "a"
	if hour24 >= 12 {
		suffix = "p"
	}
	return fmt.Sprintf("%d:%02d%s", hour12, m%60, suffix)
}
