package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chaosimg",
		Short: "HTML gallery snippets for the chaos photo blog",
		Long: `chaosimg — turns a directory of event photos into paste-ready HTML
for a blog post: every image linked to its CDN copy and sized to fit a
portrait or landscape box without distorting it.

The post subcommand adds the model/event header and the camera/lens
footer around the gallery.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.SetVersionTemplate(fmt.Sprintf(
		"chaosimg %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))

	root.AddCommand(
		newGalleryCmd(),
		newPostCmd(),
		newValidateCmd(),
		newPresetsCmd(),
	)
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[chaosimg] "+format+"\n", args...)
	}
}
