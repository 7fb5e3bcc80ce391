package row

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

func TestDoJSON(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		mode    snap.Mode
		raw     int
		snapped int
	}{
		{name: "half row", offset: 12, mode: snap.ModeCoarse, raw: 555, snapped: 555},
		{name: "fine keeps five minutes", offset: 23, mode: snap.ModeFine, raw: 569, snapped: 570},
		{name: "offset past the row clamps", offset: 60, mode: snap.ModeCoarse, raw: 570, snapped: 570},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := Row{
				RowStart:  540,
				Offset:    tt.offset,
				RowHeight: 24,
				Mode:      tt.mode,
				Config:    snap.DefaultConfig(),
				JSON:      true,
				Printer:   &printers.PrettyPrint{Out: &buf},
			}
			if err := r.Do(context.Background()); err != nil {
				t.Fatalf("Do: %v", err)
			}
			var got Result
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.RawMinute != tt.raw || got.SnappedMinute != tt.snapped {
				t.Fatalf("got %+v, want raw %d snapped %d", got, tt.raw, tt.snapped)
			}
		})
	}
}
