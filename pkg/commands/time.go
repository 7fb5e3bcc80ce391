package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/timeconv"
)

func addTime(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}

	cmd := &cobra.Command{
		Use:     "time <minute|HH:MM>...",
		Aliases: []string{"convert"},
		Short:   "Convert between minutes of the day and HH:MM text",
		Example: `
dragsnap time 555
dragsnap time 9:15 23:59
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one minute or HH:MM time")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := settings(po, so)
			if err != nil {
				return oo.HandleError(err)
			}
			t := timeconv.TimeConv{
				Inputs:  args,
				Config:  cfg,
				JSON:    oo.JSON,
				Printer: &printers.PrettyPrint{},
			}
			err = t.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
