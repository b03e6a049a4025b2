//go:build ignore

// gen_fixtures writes a sample gallery directory for trying chaosimg by hand.
// Usage: go run gen_fixtures.go <output_dir>
//
//	chaosimg post demo <output_dir> demo/2025 --model m --model_twitter m \
//	  --char c --content_title t --event_name e --event_date 20250322
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(filepath.Join(dir, "raw"), 0o755)

	// Landscape (JPEG, 1000x500) -> 720x360 in the blog profile.
	writeJPEG(filepath.Join(dir, "001_landscape.jpg"), gradient(1000, 500))

	// Portrait (PNG, 400x800) -> 360x720.
	writePNG(filepath.Join(dir, "002_portrait.png"), gradient(400, 800))

	// Square counts as portrait -> 480x480.
	writeJPEG(filepath.Join(dir, "003_square.JPEG"), gradient(600, 600))

	// Ignored: wrong extension and nested directory.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image\n"), 0o644)
	writePNG(filepath.Join(dir, "raw", "nested.png"), gradient(100, 50))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created gallery fixtures in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		panic(err)
	}
}
