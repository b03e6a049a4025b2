package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/AnyUserName/chaosimg/internal/hasher"
	"github.com/AnyUserName/chaosimg/internal/sizer"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// hashLen is the number of hex chars kept from the xxHash64 digest.
const hashLen = 16

// probeSize reads the pixel dimensions of src. Without autoOrient only
// the image header is decoded. With it the full image is decoded and
// the EXIF orientation applied, so rotated photos report rotated bounds.
func probeSize(src Source, autoOrient bool) (width, height int, err error) {
	if autoOrient {
		img, err := imaging.Open(src.AbsPath, imaging.AutoOrientation(true))
		if err != nil {
			return 0, 0, err
		}
		b := img.Bounds()
		return b.Dx(), b.Dy(), nil
	}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// processImage turns one source into a gallery entry.
func processImage(src Source, cfg Config) (Entry, error) {
	w, h, err := probeSize(src, cfg.AutoOrient)
	if err != nil {
		return Entry{}, fmt.Errorf("probe %s: %w: %w", src.Name, ErrDecode, err)
	}

	fit, err := sizer.Fit(w, h, cfg.Profile.Boxes)
	if err != nil {
		return Entry{}, fmt.Errorf("probe %s: %w: %w", src.Name, ErrDecode, err)
	}

	entry := Entry{
		Source:        src,
		Width:         w,
		Height:        h,
		Orientation:   fit.Orientation,
		Ratio:         fit.Ratio,
		DisplayWidth:  fit.Width,
		DisplayHeight: fit.Height,
		URL:           JoinURL(cfg.CDNBase, cfg.CDNPath, src.Name),
		Title:         cfg.Title + "_" + src.Stem,
	}

	if cfg.Hash {
		entry.Hash, err = hasher.ContentHashFile(src.AbsPath, hashLen)
		if err != nil {
			return Entry{}, fmt.Errorf("hash %s: %w", src.Name, err)
		}
	}

	return entry, nil
}
