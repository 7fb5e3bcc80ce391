package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/dragsnap/pkg/snap"
)

func newStore(t *testing.T) Store {
	t.Helper()
	s, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newStore(t)
	want := Profile{
		Name:        "week-view",
		Description: "Week view rows",
		Overrides: &snap.Overrides{
			FineStepMinutes: snap.Int(1),
			PrecisionHold:   snap.Duration(300 * time.Millisecond),
		},
	}
	if err := s.Put(want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("week-view")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != want.Description || got.Builtin {
		t.Fatalf("unexpected profile %+v", got)
	}
	cfg := got.Config()
	if cfg.FineStepMinutes != 1 || cfg.PrecisionHold != 300*time.Millisecond || cfg.CoarseStepMinutes != 15 {
		t.Fatalf("overrides did not survive storage: %+v", cfg)
	}

	list := s.List(context.Background())
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "default,shared-timeline,week-view" {
		t.Fatalf("unexpected list %v", names)
	}

	if err := s.Delete("week-view"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("week-view"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete("week-view"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"", "Upper", "../escape", "with space", strings.Repeat("a", 65)} {
		if err := s.Put(Profile{Name: name}); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Put(%q) = %v, want ErrInvalidName", name, err)
		}
	}
	if err := s.Put(Profile{Name: BuiltinSharedTimeline}); !errors.Is(err, ErrBuiltin) {
		t.Fatalf("overwriting a builtin = %v, want ErrBuiltin", err)
	}
	if err := s.Delete(BuiltinDefault); !errors.Is(err, ErrBuiltin) {
		t.Fatalf("deleting a builtin = %v, want ErrBuiltin", err)
	}
}

func TestResolveLayers(t *testing.T) {
	s := newStore(t)
	if err := s.Put(Profile{Name: "team", Overrides: &snap.Overrides{
		CoarseStepMinutes: snap.Int(30),
		FineStepMinutes:   snap.Int(10),
		ZoomTickCount:     snap.Int(5),
	}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	cfg := StaticConfig{
		Profile: "team",
		Snap:    &snap.Overrides{FineStepMinutes: snap.Int(2)},
	}

	got, err := Resolve(s, cfg, "", &snap.Overrides{ZoomTickCount: snap.Int(9)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.CoarseStepMinutes != 30 || got.FineStepMinutes != 2 || got.ZoomTickCount != 9 {
		t.Fatalf("unexpected layering: %+v", got)
	}

	got, err = Resolve(s, cfg, BuiltinSharedTimeline, nil)
	if err != nil {
		t.Fatalf("resolve builtin: %v", err)
	}
	if got.CoarseStepMinutes != 15 || got.FineStepMinutes != 2 {
		t.Fatalf("explicit profile should override the default profile: %+v", got)
	}

	if _, err := Resolve(s, cfg, "missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got, err := Resolve(nil, nil, "", nil); err != nil || got != snap.DefaultConfig() {
		t.Fatalf("Resolve with nothing = %+v, %v", got, err)
	}
}

func TestFromViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".dragsnap.yaml")
	body := `
path: ` + filepath.Join(dir, "profiles") + `
profile: team
snap:
  fine_step_minutes: 1
  coarse_hours_per_viewport: 8
  precision_hold: 150ms
  precision_activation: auto-dwell
`
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "profiles") || cfg.DefaultProfile() != "team" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	resolved := snap.Resolve(cfg.Overrides())
	if resolved.FineStepMinutes != 1 || resolved.CoarseHoursPerViewport != 8 {
		t.Fatalf("snap overrides not read: %+v", resolved)
	}
	if resolved.PrecisionHold != 150*time.Millisecond || resolved.PrecisionActivation != snap.ActivationAutoDwell {
		t.Fatalf("precision overrides not read: %+v", resolved)
	}
	if resolved.CoarseStepMinutes != 15 {
		t.Fatalf("unset key overrode the default: %+v", resolved)
	}
}

func TestFromViperRejectsUnknownActivation(t *testing.T) {
	v := viper.New()
	v.Set("path", t.TempDir())
	v.Set("snap", map[string]interface{}{"precision_activation": "hover"})
	if _, err := FromViper(v); err == nil {
		t.Fatalf("expected an error for an unknown activation")
	}
}
