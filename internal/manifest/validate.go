package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/chaosimg/internal/hasher"
	"github.com/AnyUserName/chaosimg/internal/pipeline"
	"github.com/AnyUserName/chaosimg/internal/sizer"
)

// Validate checks m against the files in its recorded directory and
// returns one message per problem found.
func Validate(m *Manifest) []string {
	var errs []string

	if m.Version != SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if err := m.Boxes.Portrait.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("portrait box: %v", err))
	}
	if err := m.Boxes.Landscape.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("landscape box: %v", err))
	}

	seen := map[string]bool{}
	for i, img := range m.Images {
		if img.Name == "" {
			errs = append(errs, fmt.Sprintf("image[%d]: missing name", i))
			continue
		}
		if seen[img.Name] {
			errs = append(errs, fmt.Sprintf("image %q: duplicate entry", img.Name))
		}
		seen[img.Name] = true

		// Recompute display size from recorded originals.
		fit, err := sizer.Fit(img.Width, img.Height, m.Boxes)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: %v", img.Name, err))
		} else {
			if fit.Orientation != img.Orientation {
				errs = append(errs, fmt.Sprintf("image %q: orientation %s, expected %s",
					img.Name, img.Orientation, fit.Orientation))
			}
			if fit.Width != img.DisplayWidth || fit.Height != img.DisplayHeight {
				errs = append(errs, fmt.Sprintf("image %q: display size %dx%d, expected %dx%d",
					img.Name, img.DisplayWidth, img.DisplayHeight, fit.Width, fit.Height))
			}
		}

		if want := pipeline.JoinURL(m.CDNBase, m.CDNPath, img.Name); img.URL != want {
			errs = append(errs, fmt.Sprintf("image %q: url %q, expected %q", img.Name, img.URL, want))
		}

		// Check file on disk.
		path := filepath.Join(m.Directory, img.Name)
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("image %q: file not found: %s", img.Name, path))
			continue
		}
		if img.Size > 0 && info.Size() != img.Size {
			errs = append(errs, fmt.Sprintf("image %q: size mismatch: manifest=%d, disk=%d",
				img.Name, img.Size, info.Size()))
		}
		if img.Hash != "" {
			sum, err := hasher.ContentHashFile(path, len(img.Hash))
			if err != nil {
				errs = append(errs, fmt.Sprintf("image %q: %v", img.Name, err))
			} else if sum != img.Hash {
				errs = append(errs, fmt.Sprintf("image %q: hash mismatch: manifest=%s, disk=%s",
					img.Name, img.Hash, sum))
			}
		}
	}

	if m.Stats.TotalImages != len(m.Images) {
		errs = append(errs, fmt.Sprintf("stats.total_images mismatch: %d != %d",
			m.Stats.TotalImages, len(m.Images)))
	}

	return errs
}
