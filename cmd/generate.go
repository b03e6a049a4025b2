package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/chaosimg/internal/config"
	"github.com/AnyUserName/chaosimg/internal/manifest"
	"github.com/AnyUserName/chaosimg/internal/pipeline"
	"github.com/AnyUserName/chaosimg/internal/profile"
	"github.com/AnyUserName/chaosimg/internal/render"
	"github.com/spf13/cobra"
)

// galleryOptions are the flags shared by gallery and post.
type galleryOptions struct {
	configPath         string
	cdn                string
	profile            string
	maxWidth           int
	maxHeight          int
	maxWidthLandscape  int
	maxHeightLandscape int
	autoOrient         bool
	manifestPath       string
}

func (o *galleryOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (default $CHAOSIMG_CONFIG or ~/.chaosimg/config.yaml)")
	f.StringVar(&o.cdn, "cdn", config.DefaultCDN, "CDN base url")
	f.StringVarP(&o.profile, "profile", "p", profile.DefaultName, "sizing profile")
	f.IntVar(&o.maxWidth, "max_width", 480, "maximum width for portrait images")
	f.IntVar(&o.maxHeight, "max_height", 720, "maximum height for portrait images")
	f.IntVar(&o.maxWidthLandscape, "max_width_landscape", 720, "maximum width for landscape images")
	f.IntVar(&o.maxHeightLandscape, "max_height_landscape", 480, "maximum height for landscape images")
	f.BoolVar(&o.autoOrient, "auto-orient", false, "apply EXIF orientation before measuring (decodes full images)")
	f.StringVar(&o.manifestPath, "manifest", "", "also write a JSON manifest of the gallery to this path")
}

// resolve loads the config file and environment, then applies every flag
// the user set explicitly.
func (o *galleryOptions) resolve(cmd *cobra.Command) (*config.Config, profile.Profile, error) {
	loader, err := config.NewLoader(o.configPath)
	if err != nil {
		return nil, profile.Profile{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, profile.Profile{}, fmt.Errorf("load config %s: %w", loader.ConfigPath(), err)
	}
	logVerbose("config:  %s", loader.ConfigPath())

	flags := cmd.Flags()
	if flags.Changed("cdn") {
		cfg.CDN = o.cdn
	}
	if flags.Changed("profile") {
		cfg.Profile = o.profile
	}
	if !profile.Known(cfg.Profile) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[chaosimg] warning: unknown profile %q, using %s boxes\n",
			cfg.Profile, profile.DefaultName)
	}

	var ov profile.Override
	edges := []struct {
		name  string
		value int
		dst   *int
	}{
		{"max_width", o.maxWidth, &ov.PortraitWidth},
		{"max_height", o.maxHeight, &ov.PortraitHeight},
		{"max_width_landscape", o.maxWidthLandscape, &ov.LandscapeWidth},
		{"max_height_landscape", o.maxHeightLandscape, &ov.LandscapeHeight},
	}
	for _, e := range edges {
		if !flags.Changed(e.name) {
			continue
		}
		if e.value <= 0 {
			return nil, profile.Profile{}, fmt.Errorf("--%s must be positive, got %d", e.name, e.value)
		}
		*e.dst = e.value
	}

	prof := cfg.ResolveProfile().Apply(ov)
	logVerbose("profile: %s (portrait=%s, landscape=%s)",
		prof.Name, prof.Boxes.Portrait, prof.Boxes.Landscape)
	return cfg, prof, nil
}

// pipelineConfig builds the pipeline parameters for one run.
func (o *galleryOptions) pipelineConfig(cfg *config.Config, prof profile.Profile, title, dir, cdnPath string) (pipeline.Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("resolve input path: %w", err)
	}
	return pipeline.Config{
		Title:      title,
		Dir:        absDir,
		CDNBase:    cfg.CDN,
		CDNPath:    cdnPath,
		Profile:    prof,
		Extensions: cfg.Extensions,
		AutoOrient: o.autoOrient,
		Hash:       o.manifestPath != "",
		Verbose:    verbose,
	}, nil
}

// generateGallery runs the pipeline and renders the gallery fragment.
// A missing directory or an empty gallery is reported on stderr and
// yields an empty fragment with a nil error.
func (o *galleryOptions) generateGallery(ctx context.Context, cmd *cobra.Command, pc pipeline.Config) (string, error) {
	entries, err := pipeline.New(pc).Run(ctx)
	switch {
	case errors.Is(err, pipeline.ErrDirectoryNotFound), errors.Is(err, pipeline.ErrEmptyGallery):
		fmt.Fprintf(cmd.ErrOrStderr(), "[chaosimg] %v\n", err)
		return "", nil
	case err != nil:
		return "", err
	}

	html, err := render.Gallery(entries)
	if err != nil {
		return "", fmt.Errorf("render gallery: %w", err)
	}

	if o.manifestPath != "" {
		if err := manifest.WriteJSON(manifest.FromEntries(pc, entries), o.manifestPath); err != nil {
			return "", fmt.Errorf("write manifest: %w", err)
		}
		logVerbose("manifest: %s (%d images)", o.manifestPath, len(entries))
	}
	return html, nil
}

// writeFragments prints each non-empty fragment followed by a newline.
func writeFragments(cmd *cobra.Command, fragments ...string) error {
	var sb strings.Builder
	for _, f := range fragments {
		if f == "" {
			continue
		}
		sb.WriteString(f)
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return err
}
