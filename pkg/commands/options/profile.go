package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions names the snap profile to resolve settings from.
type ProfileOptions struct {
	Profile string
}

func AddProfileArg(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVarP(&o.Profile, "profile", "p", "",
		"Snap profile to use. Defaults to the configured profile.")
}

// ViewportOptions sizes the runtime scale.
type ViewportOptions struct {
	Height float64
}

func AddViewportArg(cmd *cobra.Command, o *ViewportOptions) {
	cmd.Flags().Float64Var(&o.Height, "viewport-height", 720,
		"Visible timeline height in pixels.")
}
