package cmd

import (
	"fmt"

	"github.com/AnyUserName/chaosimg/internal/profile"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in sizing profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-8s %-10s %-10s\n", "NAME", "PORTRAIT", "LANDSCAPE")
			for _, name := range profile.Names() {
				p := profile.Get(name)
				marker := ""
				if name == profile.DefaultName {
					marker = " (default)"
				}
				fmt.Fprintf(out, "  %-8s %-10s %-10s%s\n",
					name, p.Boxes.Portrait, p.Boxes.Landscape, marker)
			}
			return nil
		},
	}
}
