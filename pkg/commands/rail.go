package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/rail"
	runsnap "tableflip.dev/dragsnap/pkg/runner/snap"
	"tableflip.dev/dragsnap/pkg/snap"
)

func addRail(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}
	clientY := 0.0

	cmd := &cobra.Command{
		Use:   "rail <minute|HH:MM>",
		Short: "Draw the zoom rail around a time",
		Example: `
dragsnap rail 08:45 --mode fine
dragsnap rail 0 --zoom-ticks 9
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one minute or HH:MM time")
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
			minute, err := runsnap.ParseMinute(args[0], cfg)
			if err != nil {
				return oo.HandleError(fmt.Errorf("rail: %w", err))
			}
			r := rail.Rail{
				Minute:  minute,
				ClientY: clientY,
				Mode:    mode,
				Config:  cfg,
				JSON:    oo.JSON,
				Printer: &printers.PrettyPrint{},
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().Float64Var(&clientY, "y", snap.DefaultViewportHeight/2, "Pointer Y the rail is anchored to.")
	options.AddModeArg(cmd, mo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
