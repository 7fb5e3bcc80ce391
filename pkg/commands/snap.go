package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/log"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/snap"
)

func addSnap(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}

	cmd := &cobra.Command{
		Use:   "snap <minute|HH:MM>...",
		Short: "Snap minutes or times to the coarse or fine step",
		Example: `
dragsnap snap 557
dragsnap snap 09:07 --mode fine
dragsnap snap 1439 --coarse-step 30 --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one minute or HH:MM time")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := mo.Parse()
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, _, _, err := settings(po, so)
			if err != nil {
				return oo.HandleError(err)
			}
			s := snap.Snap{
				Inputs:  args,
				Mode:    mode,
				Config:  cfg,
				JSON:    oo.JSON,
				Printer: &printers.PrettyPrint{},
				Log:     log.L(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddModeArg(cmd, mo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
