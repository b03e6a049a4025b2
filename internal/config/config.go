// Package config manages chaosimg defaults from a YAML file and the
// environment.
package config

import (
	"github.com/AnyUserName/chaosimg/internal/profile"
	"github.com/AnyUserName/chaosimg/internal/render"
	"github.com/AnyUserName/chaosimg/internal/sizer"
)

// DefaultCDN is the base URL galleries are assumed to be hosted under.
const DefaultCDN = "https://chaos.alicey.dev/share/"

// Config represents the application configuration.
type Config struct {
	CDN        string                 `yaml:"cdn" env:"CDN"`
	Profile    string                 `yaml:"profile" env:"PROFILE"`
	Portrait   sizer.Box              `yaml:"portrait"`  // zero edges keep the profile's value
	Landscape  sizer.Box              `yaml:"landscape"` // zero edges keep the profile's value
	Camera     string                 `yaml:"camera" env:"CAMERA"`
	Lens       string                 `yaml:"lens" env:"LENS"`
	Extensions []string               `yaml:"extensions" env:"EXTENSIONS" envSeparator:","`
	Cameras    map[string]render.Gear `yaml:"cameras"`
	Lenses     map[string]render.Gear `yaml:"lenses"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CDN:     DefaultCDN,
		Profile: profile.DefaultName,
		Camera:  "ILCE-7M4",
		Lens:    "SIGMA2470DGDNART",
	}
}

// ResolveProfile returns the named profile with any box edges from the
// config file applied.
func (c *Config) ResolveProfile() profile.Profile {
	return profile.Get(c.Profile).Apply(profile.Override{
		PortraitWidth:   c.Portrait.Width,
		PortraitHeight:  c.Portrait.Height,
		LandscapeWidth:  c.Landscape.Width,
		LandscapeHeight: c.Landscape.Height,
	})
}

// Catalog returns the gear catalog with config-supplied entries merged in.
func (c *Config) Catalog() *render.Catalog {
	return render.NewCatalog(c.Cameras, c.Lenses)
}
