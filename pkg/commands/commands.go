package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dragsnap/pkg/log"
)

var (
	oo    = &base.OutputOptions{}
	debug bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dragsnap",
		Short: base.Wrap80("Snap dragged timeline items to clean times, with a fine mode for precise placement."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log engine decisions to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSnap(topLevel)
	addTime(topLevel)
	addScale(topLevel)
	addRow(topLevel)
	addRail(topLevel)
	addDrag(topLevel)
	addProfile(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func addOutputArg(cmd *cobra.Command) {
	base.AddOutputArg(cmd, oo)
}
