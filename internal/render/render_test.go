package render

import (
	"strings"
	"testing"

	"github.com/AnyUserName/chaosimg/internal/pipeline"
)

func TestGallery_Block(t *testing.T) {
	entries := []pipeline.Entry{{
		URL:           "https://chaos.alicey.dev/share/aj2025/a.jpg",
		Title:         "AnimeJapan_a",
		DisplayWidth:  720,
		DisplayHeight: 360,
	}}

	got, err := Gallery(entries)
	if err != nil {
		t.Fatal(err)
	}
	want := `
<a href="https://chaos.alicey.dev/share/aj2025/a.jpg" title="AnimeJapan_a" target="_blank">
    <img src="https://chaos.alicey.dev/share/aj2025/a.jpg" width="720" height="360" border="0" alt="AnimeJapan_a" hspace="5" class="pict">
</a>
<br/>
`
	if got != want {
		t.Errorf("gallery mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGallery_Order(t *testing.T) {
	entries := []pipeline.Entry{
		{URL: "u/2.png", Title: "t_2", DisplayWidth: 1, DisplayHeight: 1},
		{URL: "u/1.png", Title: "t_1", DisplayWidth: 1, DisplayHeight: 1},
	}
	got, err := Gallery(entries)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(got, "<a ") != 2 {
		t.Fatalf("expected 2 blocks:\n%s", got)
	}
	if strings.Index(got, "t_2") > strings.Index(got, "t_1") {
		t.Error("blocks not in entry order")
	}
}

func TestHeader(t *testing.T) {
	h := HeaderFields{
		Model:        "すずら",
		ModelTwitter: "suzuran_ro",
		Character:    "常磐華乃",
		ContentTitle: "ハミダシクリエイティブ",
		EventName:    "AnimeJapan2025",
		EventDate:    "20250322",
	}
	if !h.Complete() {
		t.Fatal("fields should be complete")
	}
	got, err := Header(h)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`すずら (<a title="" target="_blank" href="https://x.com/suzuran_ro">@suzuran_ro</a>) <br />`,
		`">常磐華乃</span>`,
		`&nbsp;/ ハミダシクリエイティブ</span> <br />`,
		"20250322 AnimeJapan2025 <br /><br />\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "\n") {
		t.Error("header should start with a newline")
	}
}

func TestHeaderFields_Incomplete(t *testing.T) {
	h := HeaderFields{Model: "m", ModelTwitter: "t", Character: "c", ContentTitle: "ct", EventName: "e"}
	if h.Complete() {
		t.Error("missing event date should be incomplete")
	}
}

func TestFooter_Known(t *testing.T) {
	got, err := NewCatalog(nil, nil).Footer("ILCE-7M4", "SIGMA2470DGDNART")
	if err != nil {
		t.Fatal(err)
	}
	want := `
<br /><br /><br />
Camera:&nbsp;<a href="https://amzn.to/3EFX9cp" target="_blank" title="">Sony α7Ⅳ</a>
<br />
Lenz:&nbsp;<a href="https://amzn.to/4i8VPO3" target="_blank" title="">Sigma 24-70 DG DN Art</a>
`
	if got != want {
		t.Errorf("footer mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFooter_UnknownCamera(t *testing.T) {
	got, err := NewCatalog(nil, nil).Footer("FOO123", "SIGMA2470DGDNART")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `Camera:&nbsp;<a href="" target="_blank" title="">FOO123</a>`) {
		t.Errorf("unknown camera not echoed with empty link:\n%s", got)
	}
	if !strings.Contains(got, "Sigma 24-70 DG DN Art") {
		t.Errorf("default lens missing:\n%s", got)
	}
}

func TestCatalog_Extras(t *testing.T) {
	c := NewCatalog(
		map[string]Gear{"ILCE-7CM2": {Name: "Sony α7C Ⅱ", Link: "https://example.com/a7c2"}},
		map[string]Gear{"SIGMA2470DGDNART": {Name: "Sigma 24-70 Art II"}},
	)
	if g := c.Camera("ILCE-7CM2"); g.Name != "Sony α7C Ⅱ" {
		t.Errorf("extra camera: got %+v", g)
	}
	if g := c.Camera("ILCE-7M4"); g.Name != "Sony α7Ⅳ" {
		t.Errorf("builtin camera lost: got %+v", g)
	}
	if g := c.Lens("SIGMA2470DGDNART"); g.Name != "Sigma 24-70 Art II" || g.Link != "" {
		t.Errorf("lens override: got %+v", g)
	}
	// Built-in tables stay untouched.
	if g := NewCatalog(nil, nil).Lens("SIGMA2470DGDNART"); g.Name != "Sigma 24-70 DG DN Art" {
		t.Errorf("builtin lens mutated: got %+v", g)
	}
}
