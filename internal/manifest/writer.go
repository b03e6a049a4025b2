package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AnyUserName/chaosimg/internal/pipeline"
	"github.com/AnyUserName/chaosimg/internal/sizer"
)

// New creates an empty manifest for the given run parameters.
func New(cfg pipeline.Config) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Title:       cfg.Title,
		Directory:   cfg.Dir,
		CDNBase:     cfg.CDNBase,
		CDNPath:     cfg.CDNPath,
		Profile:     cfg.Profile.Name,
		Boxes:       cfg.Profile.Boxes,
		Images:      []Image{},
	}
}

// FromEntries builds a manifest from a finished pipeline run.
func FromEntries(cfg pipeline.Config, entries []pipeline.Entry) *Manifest {
	m := New(cfg)
	for _, e := range entries {
		m.Images = append(m.Images, Image{
			Name:          e.Source.Name,
			Width:         e.Width,
			Height:        e.Height,
			Orientation:   e.Orientation,
			DisplayWidth:  e.DisplayWidth,
			DisplayHeight: e.DisplayHeight,
			URL:           e.URL,
			Size:          e.Source.Size,
			Hash:          e.Hash,
		})
	}
	m.ComputeStats()
	return m
}

// ComputeStats recalculates aggregate statistics from images.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalImages = len(m.Images)
	for _, img := range m.Images {
		s.TotalBytes += img.Size
		if img.Orientation == sizer.Landscape {
			s.Landscape++
		} else {
			s.Portrait++
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to an indented JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest file.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
