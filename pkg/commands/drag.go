package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/log"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/drag"
)

func addDrag(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}
	vo := &options.ViewportOptions{}
	d := &drag.Drag{}

	cmd := &cobra.Command{
		Use:   "drag <y[@offset][:mode]>...",
		Short: "Replay a scripted pointer gesture and print every snapped frame",
		Long: `Replay a drag gesture from a list of pointer samples.

Each sample is a client Y position, optionally followed by @ and the time
since the gesture started, and by :fine or :coarse to force the mode as a
modifier key would. Samples without a time reuse the previous one.`,
		Example: `
dragsnap drag --from 09:00 --start-y 100 130 160
dragsnap drag --from 09:00 --start-y 100 100@300ms 112@350ms
dragsnap drag --from 13:00 --start-y 200 210:fine 260 --rail
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one pointer sample")
			}
			d.Samples = args
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := settings(po, so)
			if err != nil {
				return oo.HandleError(err)
			}
			d.Config = cfg
			d.ViewportHeight = vo.Height
			d.JSON = oo.JSON
			d.Printer = &printers.PrettyPrint{}
			d.Log = log.L()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err = d.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&d.ID, "id", "item", "Identifier of the dragged item.")
	cmd.Flags().StringVar(&d.From, "from", "09:00", "Scheduled time of the item when the drag starts.")
	cmd.Flags().Float64Var(&d.StartY, "start-y", 0, "Pointer Y where the drag starts.")
	cmd.Flags().BoolVar(&d.ShowRail, "rail", false, "Draw the zoom rail of the last frame.")
	options.AddViewportArg(cmd, vo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
