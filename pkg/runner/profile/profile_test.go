package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/profile"
	"tableflip.dev/dragsnap/pkg/snap"
)

func TestSaveShowDelete(t *testing.T) {
	store, err := profile.Load(profile.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	save := Profile{
		Action:    Save,
		Name:      "minutes",
		Overrides: &snap.Overrides{FineStepMinutes: snap.Int(1)},
		Store:     store,
		Printer:   &printers.PrettyPrint{Out: &bytes.Buffer{}},
	}
	if err := save.Do(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	var buf bytes.Buffer
	show := Profile{Action: Show, Name: "minutes", JSON: true, Store: store, Printer: &printers.PrettyPrint{Out: &buf}}
	if err := show.Do(ctx); err != nil {
		t.Fatalf("show: %v", err)
	}
	var out struct {
		Resolved snap.Config `json:"resolved"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Resolved.FineStepMinutes != 1 || out.Resolved.CoarseStepMinutes != 15 {
		t.Fatalf("unexpected resolved config %+v", out.Resolved)
	}

	del := Profile{Action: Delete, Name: "minutes", Store: store}
	if err := del.Do(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := show.Do(ctx); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("show after delete = %v, want ErrNotFound", err)
	}
}

func TestShowYAML(t *testing.T) {
	store, err := profile.Load(profile.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var buf bytes.Buffer
	show := Profile{
		Action:    Show,
		Name:      profile.BuiltinSharedTimeline,
		YAML:      true,
		Overrides: &snap.Overrides{PrecisionHold: snap.Duration(300 * time.Millisecond)},
		Store:     store,
		Printer:   &printers.PrettyPrint{Out: &buf},
	}
	if err := show.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"profile: shared-timeline", "snap:", "  precision_hold: 300ms", "  coarse_step_minutes: 15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml output missing %q:\n%s", want, out)
		}
	}
}
