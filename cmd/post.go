package cmd

import (
	"fmt"

	"github.com/AnyUserName/chaosimg/internal/render"
	"github.com/spf13/cobra"
)

type postOptions struct {
	galleryOptions
	header   render.HeaderFields
	camera   string
	lens     string
	noFooter bool
}

func newPostCmd() *cobra.Command {
	var opts postOptions
	cmd := &cobra.Command{
		Use:   "post <titlename> <imgdir> <cdn_path>",
		Short: "Generate header, gallery and footer HTML for a blog post",
		Long: `Same gallery as the gallery command, wrapped in a header and a footer.

The header is printed only when all of --model, --model_twitter, --char,
--content_title, --event_name and --event_date are given. The footer
credits --camera and --lenz, resolved through the gear catalog; unknown
codes are printed as-is without a link.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, &opts, args)
		},
	}
	opts.register(cmd)

	f := cmd.Flags()
	f.StringVar(&opts.header.Model, "model", "", "model name (ex: すずら)")
	f.StringVar(&opts.header.ModelTwitter, "model_twitter", "", "model's X/Twitter handle (ex: suzuran_ro)")
	f.StringVar(&opts.header.Character, "char", "", "character name (ex: 常磐華乃)")
	f.StringVar(&opts.header.ContentTitle, "content_title", "", "content title (ex: ハミダシクリエイティブ)")
	f.StringVar(&opts.header.EventName, "event_name", "", "event name (ex: AnimeJapan2025)")
	f.StringVar(&opts.header.EventDate, "event_date", "", "event date (ex: 20250322)")
	f.StringVar(&opts.camera, "camera", "ILCE-7M4", "camera code")
	f.StringVar(&opts.lens, "lenz", "SIGMA2470DGDNART", "lens code")
	f.BoolVar(&opts.noFooter, "no-footer", false, "omit the camera/lens footer")
	return cmd
}

func runPost(cmd *cobra.Command, opts *postOptions, args []string) error {
	cfg, prof, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("camera") {
		cfg.Camera = opts.camera
	}
	if cmd.Flags().Changed("lenz") {
		cfg.Lens = opts.lens
	}

	var header string
	if opts.header.Complete() {
		header, err = render.Header(opts.header)
		if err != nil {
			return fmt.Errorf("render header: %w", err)
		}
	} else {
		logVerbose("header skipped: not all header fields given")
	}

	pc, err := opts.pipelineConfig(cfg, prof, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	gallery, err := opts.generateGallery(cmd.Context(), cmd, pc)
	if err != nil {
		return err
	}

	var footer string
	if !opts.noFooter && cfg.Camera != "" && cfg.Lens != "" {
		footer, err = cfg.Catalog().Footer(cfg.Camera, cfg.Lens)
		if err != nil {
			return fmt.Errorf("render footer: %w", err)
		}
	}

	return writeFragments(cmd, header, gallery, footer)
}
