package cmd

import (
	"github.com/spf13/cobra"
)

func newGalleryCmd() *cobra.Command {
	var opts galleryOptions
	cmd := &cobra.Command{
		Use:   "gallery <imgtitle> <imgdir> <cdn_path>",
		Short: "Generate the image gallery HTML for a directory",
		Long: `Lists jpg, jpeg and png files in imgdir (not recursive), measures
each one and prints a linked <img> block per file. Landscape images
(wider than tall) fit the landscape box, all others the portrait box.

Image URLs are <cdn>/<cdn_path>/<filename>; titles are <imgtitle>_<stem>.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prof, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			pc, err := opts.pipelineConfig(cfg, prof, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			html, err := opts.generateGallery(cmd.Context(), cmd, pc)
			if err != nil {
				return err
			}
			return writeFragments(cmd, html)
		},
	}
	opts.register(cmd)
	return cmd
}
