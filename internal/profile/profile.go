package profile

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/chaosimg/internal/sizer"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "blog"

// Profile names a pair of bounding boxes for gallery images.
type Profile struct {
	Name  string
	Boxes sizer.Boxes
}

// Built-in profiles.
var profiles = map[string]Profile{
	"blog": {
		Name: "blog",
		Boxes: sizer.Boxes{
			Portrait:  sizer.Box{Width: 480, Height: 720},
			Landscape: sizer.Box{Width: 720, Height: 480},
		},
	},
	"wide": {
		Name: "wide",
		Boxes: sizer.Boxes{
			Portrait:  sizer.Box{Width: 600, Height: 900},
			Landscape: sizer.Box{Width: 960, Height: 640},
		},
	},
	"thumb": {
		Name: "thumb",
		Boxes: sizer.Boxes{
			Portrait:  sizer.Box{Width: 160, Height: 240},
			Landscape: sizer.Box{Width: 240, Height: 160},
		},
	},
}

// Get returns a profile by name. Falls back to blog if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the built-in profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Override replaces individual box edges. Zero values leave the edge as is.
type Override struct {
	PortraitWidth   int
	PortraitHeight  int
	LandscapeWidth  int
	LandscapeHeight int
}

// Apply returns a copy of p with the non-zero edges of o applied.
func (p Profile) Apply(o Override) Profile {
	if o.PortraitWidth != 0 {
		p.Boxes.Portrait.Width = o.PortraitWidth
	}
	if o.PortraitHeight != 0 {
		p.Boxes.Portrait.Height = o.PortraitHeight
	}
	if o.LandscapeWidth != 0 {
		p.Boxes.Landscape.Width = o.LandscapeWidth
	}
	if o.LandscapeHeight != 0 {
		p.Boxes.Landscape.Height = o.LandscapeHeight
	}
	return p
}

// Validate checks both boxes.
func (p Profile) Validate() error {
	if err := p.Boxes.Portrait.Validate(); err != nil {
		return fmt.Errorf("profile %s portrait: %w", p.Name, err)
	}
	if err := p.Boxes.Landscape.Validate(); err != nil {
		return fmt.Errorf("profile %s landscape: %w", p.Name, err)
	}
	return nil
}
