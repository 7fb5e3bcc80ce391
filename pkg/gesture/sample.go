package gesture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/dragsnap/pkg/snap"
)

// Sample is one scripted pointer position.
type Sample struct {
	ClientY float64
	// Offset is the time since the gesture started.
	Offset time.Duration
	// Mode, when set, forces the precision mode at this sample.
	Mode snap.Mode
}

// ParseSample parses "<y>[@<duration>][:coarse|:fine]", for example "130",
// "130@250ms" or "130@1s:fine".
func ParseSample(s string) (Sample, error) {
	var out Sample
	text := strings.TrimSpace(s)

	if rest, mode, ok := strings.Cut(text, ":"); ok {
		m, err := snap.ParseMode(mode)
		if err != nil {
			return Sample{}, fmt.Errorf("sample %q: %w", s, err)
		}
		out.Mode = m
		text = rest
	}
	if rest, offset, ok := strings.Cut(text, "@"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(offset))
		if err != nil {
			return Sample{}, fmt.Errorf("sample %q: invalid offset: %w", s, err)
		}
		if d < 0 {
			return Sample{}, fmt.Errorf("sample %q: offset must not be negative", s)
		}
		out.Offset = d
		text = rest
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("sample %q: invalid pointer position: %w", s, err)
	}
	out.ClientY = y
	return out, nil
}

// ParseSamples parses each argument with ParseSample. Samples without an
// offset inherit the previous sample's offset.
func ParseSamples(args []string) ([]Sample, error) {
	samples := make([]Sample, 0, len(args))
	var last time.Duration
	for _, a := range args {
		smp, err := ParseSample(a)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(a, "@") {
			smp.Offset = last
		}
		if smp.Offset < last {
			return nil, fmt.Errorf("sample %q: offsets must not go backwards", a)
		}
		last = smp.Offset
		samples = append(samples, smp)
	}
	return samples, nil
}
