package manifest

import "github.com/AnyUserName/chaosimg/internal/sizer"

// Manifest records one generated gallery so it can be checked later.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt string      `json:"generated_at"`
	Title       string      `json:"title"`
	Directory   string      `json:"directory"` // absolute path of the source dir
	CDNBase     string      `json:"cdn_base"`
	CDNPath     string      `json:"cdn_path"`
	Profile     string      `json:"profile"`
	Boxes       sizer.Boxes `json:"boxes"`
	Images      []Image     `json:"images"`
	Stats       Stats       `json:"stats"`
}

// Image describes one gallery entry.
type Image struct {
	Name          string            `json:"name"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Orientation   sizer.Orientation `json:"orientation"`
	DisplayWidth  int               `json:"display_width"`
	DisplayHeight int               `json:"display_height"`
	URL           string            `json:"url"`
	Size          int64             `json:"size"` // bytes on disk
	Hash          string            `json:"hash"` // first 16 hex chars of xxhash64
}

// Stats aggregates gallery metrics.
type Stats struct {
	TotalImages int   `json:"total_images"`
	TotalBytes  int64 `json:"total_bytes"`
	Portrait    int   `json:"portrait"`
	Landscape   int   `json:"landscape"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
