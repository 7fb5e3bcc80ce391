package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/log"
	"tableflip.dev/dragsnap/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}
	vo := &options.ViewportOptions{}
	u := &ui.UI{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open an interactive drag simulator",
		Example: `
dragsnap ui
dragsnap ui --from 13:30 --activation auto-dwell
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := settings(po, so)
			if err != nil {
				return err
			}
			u.Config = cfg
			u.ViewportHeight = vo.Height
			u.Log = log.L()
			return u.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&u.ID, "id", "item", "Identifier of the simulated item.")
	cmd.Flags().StringVar(&u.From, "from", "09:00", "Scheduled time of the item.")
	options.AddViewportArg(cmd, vo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
