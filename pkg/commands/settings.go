package commands

import (
	"fmt"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/profile"
	"tableflip.dev/dragsnap/pkg/snap"
)

// settings loads the config file and profile store, then resolves the snap
// config as built-in defaults < profile < config file < flags.
func settings(po *options.ProfileOptions, so *options.SnapOptions) (snap.Config, profile.Store, profile.Config, error) {
	pc, err := profile.LoadConfig()
	if err != nil {
		return snap.Config{}, nil, nil, err
	}
	s, err := profile.Load(pc)
	if err != nil {
		return snap.Config{}, nil, nil, err
	}
	extra, err := so.Overrides()
	if err != nil {
		return snap.Config{}, nil, nil, err
	}
	name := ""
	if po != nil {
		name = po.Profile
	}
	cfg, err := profile.Resolve(s, pc, name, extra)
	if err != nil {
		return snap.Config{}, nil, nil, fmt.Errorf("resolving settings: %w", err)
	}
	return cfg, s, pc, nil
}
