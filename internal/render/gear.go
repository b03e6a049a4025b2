package render

import "maps"

// Gear is a camera body or lens as shown in a post footer.
type Gear struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"` // affiliate link, may be empty
}

var builtinCameras = map[string]Gear{
	"ILCE-7M4": {Name: "Sony α7Ⅳ", Link: "https://amzn.to/3EFX9cp"},
}

var builtinLenses = map[string]Gear{
	"SIGMA2470DGDNART": {Name: "Sigma 24-70 DG DN Art", Link: "https://amzn.to/4i8VPO3"},
}

// Catalog resolves gear codes to display names and links.
type Catalog struct {
	cameras map[string]Gear
	lenses  map[string]Gear
}

// NewCatalog returns the built-in tables with extra entries layered on
// top. Extra entries win over built-ins with the same code.
func NewCatalog(extraCameras, extraLenses map[string]Gear) *Catalog {
	c := &Catalog{
		cameras: maps.Clone(builtinCameras),
		lenses:  maps.Clone(builtinLenses),
	}
	maps.Copy(c.cameras, extraCameras)
	maps.Copy(c.lenses, extraLenses)
	return c
}

// Camera looks up a camera code. Unknown codes yield the code itself as
// the name and an empty link.
func (c *Catalog) Camera(code string) Gear {
	return lookup(c.cameras, code)
}

// Lens looks up a lens code with the same fallback as Camera.
func (c *Catalog) Lens(code string) Gear {
	return lookup(c.lenses, code)
}

func lookup(table map[string]Gear, code string) Gear {
	if g, ok := table[code]; ok {
		return g
	}
	return Gear{Name: code}
}
