package snap

import "math"

// RowMinutes is the span of the day covered by one calendar row.
const RowMinutes = 30

// MinuteFromRowOffset interpolates a pointer offset inside a calendar row
// into a clamped raw minute. The offset is clamped into [0, rowHeight]; a
// non-positive rowHeight returns the clamped row start.
func MinuteFromRowOffset(rowStartMinute, offset, rowHeight float64, cfg Config) int {
	if !(rowHeight > 0) {
		return ClampMinute(rowStartMinute, cfg)
	}
	clamped := math.Max(0, math.Min(rowHeight, offset))
	if math.IsNaN(offset) {
		clamped = 0
	}
	return ClampMinute(rowStartMinute+(clamped/rowHeight)*RowMinutes, cfg)
}
