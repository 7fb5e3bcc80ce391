package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dragsnap/pkg/snap"
)

// ModeOptions selects coarse or fine snapping.
type ModeOptions struct {
	Mode string
}

func AddModeArg(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", string(snap.ModeCoarse),
		"Snap mode, coarse or fine.")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(snap.ModeCoarse), string(snap.ModeFine)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *ModeOptions) Parse() (snap.Mode, error) {
	return snap.ParseMode(o.Mode)
}
