package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dragsnap/pkg/commands/options"
	"tableflip.dev/dragsnap/pkg/log"
	"tableflip.dev/dragsnap/pkg/printers"
	"tableflip.dev/dragsnap/pkg/profile"
	runprofile "tableflip.dev/dragsnap/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   base.Wrap80("Manage named snap profiles."),
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addProfileList(cmd)
	addProfileShow(cmd)
	addProfileSave(cmd)
	addProfileDelete(cmd)

	topLevel.AddCommand(cmd)
}

func runProfile(action runprofile.Action, name string, prepare func(p *runprofile.Profile) error) error {
	pc, err := profile.LoadConfig()
	if err != nil {
		return err
	}
	s, err := profile.Load(pc)
	if err != nil {
		return err
	}
	p := &runprofile.Profile{
		Action:  action,
		Name:    name,
		JSON:    oo.JSON,
		Store:   s,
		Config:  pc,
		Printer: &printers.PrettyPrint{},
		Log:     log.L(),
	}
	if prepare != nil {
		if err := prepare(p); err != nil {
			return err
		}
	}
	return p.Do(context.Background())
}

func addProfileList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builtin and saved profiles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProfile(runprofile.List, "", nil)
			return oo.HandleError(err)
		},
	}
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileShow(topLevel *cobra.Command) {
	so := &options.SnapOptions{}
	asYAML := false

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show the settings a profile resolves to.",
		Example: `
dragsnap profile show
dragsnap profile show default --fine-step 1
dragsnap profile show shared-timeline --yaml > ~/.dragsnap.yaml
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: profileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, "")
			err := runProfile(runprofile.Show, name, func(p *runprofile.Profile) error {
				if p.Name == "" {
					p.Name = p.Config.DefaultProfile()
				}
				p.YAML = asYAML
				var err error
				p.Overrides, err = so.Overrides()
				return err
			})
			return oo.HandleError(err)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the resolved settings as a config file.")
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSave(topLevel *cobra.Command) {
	so := &options.SnapOptions{}
	description := ""

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the given snap flags as a named profile.",
		Example: `
dragsnap profile save week-view --fine-step 1 --hold 300ms --description "Week view rows"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a profile name")
			}
			return profile.ValidateName(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProfile(runprofile.Save, args[0], func(p *runprofile.Profile) error {
				p.Description = description
				var err error
				p.Overrides, err = so.Overrides()
				return err
			})
			return oo.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Describe what the profile is for.")
	options.AddSnapArgs(cmd, so)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete <name>",
		Aliases:           []string{"rm"},
		Short:             "Delete a saved profile.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProfile(runprofile.Delete, args[0], nil)
			return oo.HandleError(err)
		},
	}
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
