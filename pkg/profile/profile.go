// Package profile stores named sets of snap overrides.
package profile

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"tableflip.dev/dragsnap/pkg/snap"
)

var (
	// ErrNotFound is returned when no builtin or stored profile has the name.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidName is returned for names that cannot be used as a key.
	ErrInvalidName = errors.New("invalid profile name")
	// ErrBuiltin is returned when a write targets a builtin profile.
	ErrBuiltin = errors.New("builtin profiles are read-only")

	namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`)
)

const (
	// BuiltinDefault resolves to snap.DefaultConfig.
	BuiltinDefault = "default"
	// BuiltinSharedTimeline is the profile shared by the timeline views.
	BuiltinSharedTimeline = "shared-timeline"
)

// Profile is a named partial configuration.
type Profile struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Overrides   *snap.Overrides `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Builtin     bool            `yaml:"-" json:"builtin,omitempty"`
}

// Config resolves the profile on top of the defaults.
func (p Profile) Config() snap.Config {
	return snap.Resolve(p.Overrides)
}

// ValidateName checks that name is usable as a stored profile key.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use lowercase letters, digits, '.', '_' or '-')", ErrInvalidName, name)
	}
	return nil
}

// Builtins returns the read-only profiles, sorted by name.
func Builtins() []Profile {
	list := []Profile{
		{
			Name:        BuiltinDefault,
			Description: "Engine defaults.",
			Overrides:   &snap.Overrides{},
			Builtin:     true,
		},
		{
			Name:        BuiltinSharedTimeline,
			Description: "Timeline drag: 15 minute coarse steps over 6 hours, 5 minute fine steps over 2 hours, hold to refine.",
			Overrides: &snap.Overrides{
				CoarseStepMinutes:      snap.Int(15),
				FineStepMinutes:        snap.Int(5),
				CoarseHoursPerViewport: snap.Float(6),
				FineHoursPerViewport:   snap.Float(2),
				PrecisionActivation:    snap.ActivationPtr(snap.ActivationManualHold),
			},
			Builtin: true,
		},
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func builtin(name string) (Profile, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Lookup returns the builtin or stored profile called name. A nil store only
// knows the builtins.
func Lookup(s Store, name string) (Profile, error) {
	if p, ok := builtin(name); ok {
		return p, nil
	}
	if s == nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.Get(name)
}

// Resolve builds the effective configuration: the named profile (or the
// config default when name is empty), then the config file overrides, then
// extra. Later layers win.
func Resolve(s Store, cfg Config, name string, extra *snap.Overrides) (snap.Config, error) {
	if name == "" && cfg != nil {
		name = cfg.DefaultProfile()
	}
	if name == "" {
		name = BuiltinDefault
	}
	p, err := Lookup(s, name)
	if err != nil {
		return snap.Config{}, err
	}
	layered := p.Overrides
	if cfg != nil {
		layered = layered.Merge(cfg.Overrides())
	}
	layered = layered.Merge(extra)
	return snap.Resolve(layered), nil
}
