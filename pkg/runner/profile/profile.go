// Package profile implements the `dragsnap profile` subcommands.
package profile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/profile"
	"tableflip.dev/dragsnap/pkg/snap"
)

// Action selects the profile operation.
type Action string

const (
	List   Action = "list"
	Show   Action = "show"
	Save   Action = "save"
	Delete Action = "delete"
)

// Profile runs one profile operation against Store.
type Profile struct {
	Action      Action
	Name        string
	Description string
	// Overrides are the settings saved by Save, or layered on top by Show.
	Overrides *snap.Overrides
	JSON      bool
	// YAML makes Show print a config file selecting the profile.
	YAML bool

	Store   profile.Store
	Config  profile.Config
	Printer *printers.PrettyPrint
	Log     *zap.SugaredLogger
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not manage profiles, no store")
	}
	if n.Log == nil {
		n.Log = zap.NewNop().Sugar()
	}

	switch n.Action {
	case List:
		list := n.Store.List(ctx)
		if n.JSON {
			return n.Printer.JSON(list)
		}
		n.Printer.Profiles(list...)
		return nil

	case Show:
		p, err := profile.Lookup(n.Store, n.Name)
		if err != nil {
			return err
		}
		cfg, err := profile.Resolve(n.Store, n.Config, n.Name, n.Overrides)
		if err != nil {
			return err
		}
		if n.JSON {
			return n.Printer.JSON(struct {
				Profile  profile.Profile `json:"profile"`
				Resolved snap.Config     `json:"resolved"`
			}{p, cfg})
		}
		if n.YAML {
			return n.Printer.YAML(struct {
				Profile string      `yaml:"profile"`
				Snap    snap.Config `yaml:"snap"`
			}{p.Name, cfg})
		}
		n.Printer.Title(p.Name)
		if p.Description != "" {
			_, _ = fmt.Println(p.Description)
		}
		n.Printer.Config(cfg)
		return nil

	case Save:
		if n.Overrides.IsEmpty() {
			n.Log.Warnw("saving a profile without overrides", "name", n.Name)
		}
		p := profile.Profile{
			Name:        n.Name,
			Description: n.Description,
			Overrides:   n.Overrides.Merge(nil),
		}
		if err := n.Store.Put(p); err != nil {
			return err
		}
		n.Log.Debugw("profile saved", "name", n.Name)
		fmt.Printf("saved profile %s\n", n.Name)
		return nil

	case Delete:
		if err := n.Store.Delete(n.Name); err != nil {
			return err
		}
		n.Log.Debugw("profile deleted", "name", n.Name)
		fmt.Printf("deleted profile %s\n", n.Name)
		return nil
	}
	return fmt.Errorf("unknown profile action %q", n.Action)
}
