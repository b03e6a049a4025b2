package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// Name is the file name inside the gallery directory.
	Name string
	// Stem is Name without its final extension.
	Stem string
	// Format is the lower-cased extension without the dot.
	Format string
	// Size is the file size in bytes.
	Size int64
}

// DefaultExtensions lists the extensions eligible for a gallery.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png"}

// extensionSet normalizes exts into a lookup set. Entries without a
// leading dot get one.
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// ScanImages lists dir (non-recursively) and returns every regular file
// whose extension is in exts, in lexical filename order. Symlinks are
// followed; subdirectories are skipped.
func ScanImages(dir string, exts []string) ([]Source, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, dir, err)
	}

	allowed := extensionSet(exts)
	var sources []Source
	for _, e := range entries {
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !allowed[ext] {
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path) // follows symlinks
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem == "" {
			stem = name // dotfile such as ".png"
		}

		sources = append(sources, Source{
			AbsPath: path,
			Name:    name,
			Stem:    stem,
			Format:  strings.TrimPrefix(ext, "."),
			Size:    fi.Size(),
		})
	}

	return sources, nil
}
