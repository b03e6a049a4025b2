// Package sizer computes display dimensions that fit an image inside an
// orientation-specific bounding box while preserving its aspect ratio.
package sizer

import (
	"fmt"
	"math"
)

// Orientation classifies an image by its pixel dimensions.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Box is a maximum width/height pair.
type Box struct {
	Width  int `json:"max_width" yaml:"max_width"`
	Height int `json:"max_height" yaml:"max_height"`
}

// Validate reports an error if either edge is not positive.
func (b Box) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid box %dx%d: edges must be positive", b.Width, b.Height)
	}
	return nil
}

func (b Box) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Boxes holds one box per orientation.
type Boxes struct {
	Portrait  Box `json:"portrait" yaml:"portrait"`
	Landscape Box `json:"landscape" yaml:"landscape"`
}

// For returns the box used for the given orientation.
func (b Boxes) For(o Orientation) Box {
	if o == Landscape {
		return b.Landscape
	}
	return b.Portrait
}

// Classify returns Landscape when width > height, Portrait otherwise.
// Square images are portrait.
func Classify(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// Result is the outcome of fitting one image.
type Result struct {
	Orientation Orientation
	Ratio       float64
	Width       int
	Height      int
}

// Fit scales width×height by min(box.W/width, box.H/height) using the box
// for the image's orientation. Ratios above 1 are kept, so small images are
// enlarged. Scaled edges are truncated, not rounded.
func Fit(width, height int, boxes Boxes) (Result, error) {
	if width <= 0 || height <= 0 {
		return Result{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	o := Classify(width, height)
	box := boxes.For(o)
	ratio := math.Min(
		float64(box.Width)/float64(width),
		float64(box.Height)/float64(height),
	)
	return Result{
		Orientation: o,
		Ratio:       ratio,
		Width:       int(math.Floor(float64(width) * ratio)),
		Height:      int(math.Floor(float64(height) * ratio)),
	}, nil
}
