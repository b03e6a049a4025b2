package cmd

import (
	"fmt"

	"github.com/AnyUserName/chaosimg/internal/manifest"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest_path>",
		Short: "Check a gallery manifest against the images on disk",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := manifest.ReadJSON(args[0])
	if err != nil {
		return err
	}
	logVerbose("manifest: %s (%d images from %s)", args[0], len(m.Images), m.Directory)

	out := cmd.OutOrStdout()
	errs := manifest.Validate(m)
	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Manifest is valid")
		fmt.Fprintf(out, "  ✓ %d images (%d portrait, %d landscape) — all files match\n",
			m.Stats.TotalImages, m.Stats.Portrait, m.Stats.Landscape)
		return nil
	}

	fmt.Fprintf(out, "  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}
