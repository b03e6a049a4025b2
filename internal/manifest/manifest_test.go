package manifest

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/chaosimg/internal/pipeline"
	"github.com/AnyUserName/chaosimg/internal/profile"
)

func buildGallery(t *testing.T) (pipeline.Config, []pipeline.Entry) {
	t.Helper()
	dir := t.TempDir()
	for name, size := range map[string][2]int{
		"a.png": {1000, 500},
		"b.png": {400, 800},
		"c.png": {300, 300},
	} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewGray(image.Rect(0, 0, size[0], size[1]))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	cfg := pipeline.Config{
		Title:   "test",
		Dir:     dir,
		CDNBase: "https://cdn.example.com/share/",
		CDNPath: "ev",
		Profile: profile.Get(profile.DefaultName),
		Hash:    true,
	}
	entries, err := pipeline.New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return cfg, entries
}

func TestManifestRoundtrip(t *testing.T) {
	cfg, entries := buildGallery(t)
	m := FromEntries(cfg, entries)

	path := filepath.Join(t.TempDir(), "gallery.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile != profile.DefaultName {
		t.Errorf("profile: got %q", m2.Profile)
	}
	if len(m2.Images) != 3 {
		t.Fatalf("images: got %d", len(m2.Images))
	}
	if m2.Images[0].Name != "a.png" || m2.Images[0].DisplayWidth != 720 || m2.Images[0].DisplayHeight != 360 {
		t.Errorf("image[0]: got %+v", m2.Images[0])
	}
	if m2.Stats.TotalImages != 3 || m2.Stats.Landscape != 1 || m2.Stats.Portrait != 2 {
		t.Errorf("stats: got %+v", m2.Stats)
	}

	if errs := Validate(m2); len(errs) != 0 {
		t.Errorf("fresh manifest invalid: %v", errs)
	}
}

func TestValidate_DetectsChanges(t *testing.T) {
	cfg, entries := buildGallery(t)
	m := FromEntries(cfg, entries)

	// Overwrite one image with different dimensions.
	f, err := os.Create(filepath.Join(cfg.Dir, "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	png.Encode(f, image.NewGray(image.Rect(0, 0, 20, 10)))
	f.Close()

	os.Remove(filepath.Join(cfg.Dir, "b.png"))
	m.Images[2].DisplayWidth = 1

	errs := Validate(m)
	joined := strings.Join(errs, "\n")
	for _, want := range []string{
		`image "a.png": size mismatch`,
		`image "a.png": hash mismatch`,
		`image "b.png": file not found`,
		`image "c.png": display size 1x480, expected 480x480`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestValidate_BadHeader(t *testing.T) {
	m := &Manifest{Version: 2}
	errs := Validate(m)
	if len(errs) < 3 {
		t.Errorf("expected version and box errors, got %v", errs)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"profile": "blog",
		"future_field": "should be ignored",
		"boxes": {"portrait": {"max_width": 480, "max_height": 720}, "landscape": {"max_width": 720, "max_height": 480}},
		"images": [],
		"stats": {"total_images": 0, "new_stat": 42}
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Boxes.Landscape.Width != 720 {
		t.Errorf("boxes not parsed: %+v", m.Boxes)
	}
}
