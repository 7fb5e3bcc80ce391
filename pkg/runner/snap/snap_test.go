package snap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/snap"
)

func TestSnapJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Snap{
		Inputs:  []string{"08:41", "521", "25:00"},
		Mode:    snap.ModeFine,
		Config:  snap.DefaultConfig(),
		JSON:    true,
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var rows []printers.SnapRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"08:40", "08:40", "23:55"}
	for i, r := range rows {
		if r.Time != want[i] {
			t.Fatalf("row %d = %+v, want %s", i, r, want[i])
		}
	}
	if rows[2].Clamped {
		t.Fatalf("HH:MM input is clamped on parse and should not be flagged")
	}
}

func TestParseMinute(t *testing.T) {
	cfg := snap.DefaultConfig()
	if m, err := ParseMinute("9:30", cfg); err != nil || m != 570 {
		t.Fatalf("ParseMinute(9:30) = %v, %v", m, err)
	}
	if m, err := ParseMinute("-15", cfg); err != nil || m != -15 {
		t.Fatalf("ParseMinute(-15) = %v, %v", m, err)
	}
	if _, err := ParseMinute("noon", cfg); err == nil {
		t.Fatalf("expected an error for noon")
	}
}
