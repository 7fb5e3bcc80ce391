package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/runner/row"
)

func addRow(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	po := &options.ProfileOptions{}
	so := &options.SnapOptions{}
	r := &row.Row{}

	cmd := &cobra.Command{
		Use:   "row <row-start-minute> <offset-px>",
		Short: "Map a pointer offset inside a 30 minute row to a snapped minute",
		Example: `
dragsnap row 540 12 --row-height 24
dragsnap row 540 23 --mode fine
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a row start minute and a pixel offset")
			}
			var err error
			if r.RowStart, err = strconv.ParseFloat(args[0], 64); err != nil {
				return fmt.Errorf("invalid row start %q", args[0])
			}
			if r.Offset, err = strconv.ParseFloat(args[1], 64); err != nil {
				return fmt.Errorf("invalid offset %q", args[1])
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
			r.Mode = mode
			r.Config = cfg
			r.JSON = oo.JSON
			r.Printer = &printers.PrettyPrint{}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().Float64Var(&r.RowHeight, "row-height", 24, "Row height in pixels.")
	options.AddModeArg(cmd, mo)
	options.AddProfileArg(cmd, po)
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
