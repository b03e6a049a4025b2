package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AnyUserName/chaosimg/internal/profile"
	"github.com/AnyUserName/chaosimg/internal/sizer"
)

var (
	// ErrDirectoryNotFound means the gallery directory is missing or unreadable.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrEmptyGallery means the directory holds no eligible images.
	ErrEmptyGallery = errors.New("no image files found")
	// ErrDecode means an image could not be probed for its dimensions.
	ErrDecode = errors.New("cannot decode image")
)

// Config holds all parameters for a gallery run.
type Config struct {
	Title      string
	Dir        string
	CDNBase    string
	CDNPath    string
	Profile    profile.Profile
	Extensions []string // nil = DefaultExtensions
	AutoOrient bool     // apply EXIF orientation before measuring
	Hash       bool     // fill Entry.Hash
	Verbose    bool
}

// Entry is one measured and sized gallery image.
type Entry struct {
	Source        Source
	Width         int
	Height        int
	Orientation   sizer.Orientation
	Ratio         float64
	DisplayWidth  int
	DisplayHeight int
	URL           string
	Title         string
	Hash          string // xxHash64 hex, only when Config.Hash is set
}

// Pipeline measures the images of one directory.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Extensions == nil {
		cfg.Extensions = DefaultExtensions
	}
	return &Pipeline{cfg: cfg}
}

// Run scans the directory and returns one entry per eligible image in
// scan order. The first image that fails to probe aborts the run and no
// entries are returned.
func (p *Pipeline) Run(ctx context.Context) ([]Entry, error) {
	if err := p.cfg.Profile.Validate(); err != nil {
		return nil, err
	}

	sources, err := ScanImages(p.cfg.Dir, p.cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("scan: %w in %s", ErrEmptyGallery, p.cfg.Dir)
	}

	p.logf("found %d images in %s", len(sources), p.cfg.Dir)

	entries := make([]Entry, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := processImage(src, p.cfg)
		if err != nil {
			return nil, err
		}
		p.logf("%s: %dx%d %s -> %dx%d", src.Name, e.Width, e.Height,
			e.Orientation, e.DisplayWidth, e.DisplayHeight)
		entries = append(entries, e)
	}
	return entries, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[chaosimg] "+format+"\n", args...)
	}
}

// JoinURL builds base/path/name with exactly one slash between parts.
// An empty path is omitted.
func JoinURL(base, path, name string) string {
	parts := []string{strings.TrimRight(base, "/")}
	if p := strings.Trim(path, "/"); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}
