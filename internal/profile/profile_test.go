package profile

import "testing"

func TestGet_Default(t *testing.T) {
	p := Get(DefaultName)
	if p.Boxes.Portrait.Width != 480 || p.Boxes.Portrait.Height != 720 {
		t.Errorf("portrait: got %s", p.Boxes.Portrait)
	}
	if p.Boxes.Landscape.Width != 720 || p.Boxes.Landscape.Height != 480 {
		t.Errorf("landscape: got %s", p.Boxes.Landscape)
	}
}

func TestGet_UnknownFallsBack(t *testing.T) {
	p := Get("nope")
	if p.Name != "nope" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.Boxes != Get(DefaultName).Boxes {
		t.Errorf("boxes: got %+v", p.Boxes)
	}
	if Known("nope") {
		t.Error("unknown profile reported as known")
	}
}

func TestApply(t *testing.T) {
	p := Get(DefaultName).Apply(Override{PortraitWidth: 500, LandscapeHeight: 400})
	if p.Boxes.Portrait.Width != 500 || p.Boxes.Portrait.Height != 720 {
		t.Errorf("portrait: got %s", p.Boxes.Portrait)
	}
	if p.Boxes.Landscape.Width != 720 || p.Boxes.Landscape.Height != 400 {
		t.Errorf("landscape: got %s", p.Boxes.Landscape)
	}
	// Built-in table must be untouched.
	if Get(DefaultName).Boxes.Portrait.Width != 480 {
		t.Error("Apply mutated built-in profile")
	}
}

func TestValidate(t *testing.T) {
	if err := Get("wide").Validate(); err != nil {
		t.Errorf("wide: %v", err)
	}
	bad := Get(DefaultName).Apply(Override{LandscapeWidth: -1})
	if err := bad.Validate(); err == nil {
		t.Error("negative edge accepted")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 3 || names[0] != "blog" || names[1] != "thumb" || names[2] != "wide" {
		t.Errorf("names: got %v", names)
	}
}
