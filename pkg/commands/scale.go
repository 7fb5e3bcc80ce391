package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/scale"
)

func addScale(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}
	vo := &options.ViewportOptions{}

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Show pixels per minute for a viewport height",
		Example: `
dragsnap scale
dragsnap scale --viewport-height 900 --fine-hours 1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := settings(po, so)
			if err != nil {
				return oo.HandleError(err)
			}
			s := scale.Scale{
				ViewportHeight: vo.Height,
				Config:         cfg,
				JSON:           oo.JSON,
				Printer:        &printers.PrettyPrint{},
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddViewportArg(cmd, vo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
