package sprite

import (
	"math/rand"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

type rect struct {
	x, y, w, h float64
	c          colorful.Color
}

type recorder struct {
	rects []rect
}

func (r *recorder) Rect(x, y, w, h float64, c colorful.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recorder) count(c colorful.Color) int {
	n := 0
	for _, rc := range r.rects {
		if rc.c == c {
			n++
		}
	}
	return n
}

func TestParseHairStyle(t *testing.T) {
	tests := []struct {
		in     string
		want   HairStyle
		wantOK bool
	}{
		{"long", HairLong, true},
		{" Pigtails ", HairPigtails, true},
		{"undercut", HairUndercut, true},
		{"mohawk", HairShort, false},
		{"", HairShort, false},
	}
	for _, tt := range tests {
		got, ok := ParseHairStyle(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseHairStyle(%q): got %v/%v, want %v/%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	for s := range hairNames {
		if got, _ := ParseHairStyle(s.String()); got != s {
			t.Errorf("%v does not parse back from its name", s)
		}
	}
}

func TestHairTablesCoverOfferedStyles(t *testing.T) {
	for _, s := range PlayerHairStyles() {
		if _, ok := playerHair[s]; !ok {
			t.Errorf("player style %v has no layers", s)
		}
	}
	for _, s := range PartnerHairStyles() {
		if _, ok := partnerHair[s]; !ok {
			t.Errorf("partner style %v has no layers", s)
		}
	}
}

func TestHairFallsBackToShort(t *testing.T) {
	h := hairColors{dark: MustHex("#010101"), main: MustHex("#020202"), light: MustHex("#030303")}

	want := &recorder{}
	playerHair[HairShort].back(newGrid(want, 100, 100, 3), h)

	got := &recorder{}
	// Buzz is a partner-only style.
	hairFor(playerHair, HairBuzz).back(newGrid(got, 100, 100, 3), h)

	if len(got.rects) != len(want.rects) {
		t.Fatalf("got %d rects, want %d", len(got.rects), len(want.rects))
	}
	for i := range want.rects {
		if got.rects[i] != want.rects[i] {
			t.Fatalf("rect %d: got %+v, want %+v", i, got.rects[i], want.rects[i])
		}
	}
}

func TestDrawHeart(t *testing.T) {
	fill := MustHex("#ff4a6e")
	r := &recorder{}
	DrawHeart(r, 100, 100, 3, fill, HeartLine)

	cells := 0
	for _, row := range HeartGrid {
		for _, on := range row {
			if on {
				cells++
			}
		}
	}
	if got := r.count(HeartLine); got != cells {
		t.Errorf("outline rects: got %d, want %d", got, cells)
	}
	if got := r.count(fill); got != cells {
		t.Errorf("fill rects: got %d, want %d", got, cells)
	}
	// Top-left 3x3 has 8 set cells.
	if got := r.count(Blend(fill, White, 0.2)); got != 8 {
		t.Errorf("highlight rects: got %d, want 8", got)
	}
	first := r.rects[0]
	if first.x != 100-4*3+3-1 || first.y != 100-3.5*3-1 {
		t.Errorf("first outline rect at (%v, %v)", first.x, first.y)
	}
}

func TestDrawBrokenHeart(t *testing.T) {
	r := &recorder{}
	DrawBrokenHeart(r, 50, 50, 2, BrokenGrey)
	if len(r.rects) != 32 {
		t.Fatalf("got %d rects, want 32", len(r.rects))
	}
}

func TestBlend(t *testing.T) {
	bg := MustHex("#000000")
	c := MustHex("#ffffff")
	if Blend(bg, c, 0) != bg {
		t.Error("alpha 0 should give background")
	}
	if Blend(bg, c, 1.5) != c {
		t.Error("alpha above 1 should give color")
	}
	mid := Blend(bg, c, 0.5)
	if mid.R < 0.49 || mid.R > 0.51 {
		t.Errorf("half blend: got %v", mid)
	}
}

func TestHex(t *testing.T) {
	fb := MustHex("#123456")
	if got := Hex("#555", fb); got != MustHex("#555555") {
		t.Errorf("short form: got %v", got.Hex())
	}
	if got := Hex("not a color", fb); got != fb {
		t.Errorf("invalid: got %v, want fallback", got.Hex())
	}
	if got := HexAll([]string{"#ff0000", "bad", "#00ff00"}); len(got) != 2 {
		t.Errorf("HexAll: got %d colors, want 2", len(got))
	}
}

func TestFaded(t *testing.T) {
	r := &recorder{}
	f := Faded{Plotter: r, Background: MustHex("#000000"), Alpha: 0}
	f.Rect(0, 0, 1, 1, White)
	if r.rects[0].c != MustHex("#000000") {
		t.Errorf("fully faded rect: got %v", r.rects[0].c.Hex())
	}
}

func TestNewCharacterFallback(t *testing.T) {
	def := config.Default().PlayerCharacter
	c := def
	c.SkinColor = "oops"
	c.HairStyle = "nonexistent"
	c.HairColors = []string{"#000000"}

	ch := NewCharacter(c, def)
	if ch.Skin != MustHex(def.SkinColor) {
		t.Errorf("skin: got %v, want default", ch.Skin.Hex())
	}
	if ch.Style != HairShort {
		t.Errorf("style: got %v, want short", ch.Style)
	}
	if ch.Hair.main != MustHex(def.HairColors[1]) {
		t.Errorf("missing hair shade not filled from fallback")
	}
}

func TestDrawCharactersAndHug(t *testing.T) {
	cfg := config.Default()
	pc, mc := PlayerCharacter(cfg), PartnerCharacter(cfg)

	r := &recorder{}
	DrawPlayer(r, 360, 420, 3, pc)
	if r.count(pc.Outfit) == 0 || r.count(pc.Skin) == 0 {
		t.Fatal("player drawn without outfit or skin")
	}

	r = &recorder{}
	DrawPartner(r, 360, 420, 3, mc)
	if r.count(mc.Trouser) != 2 {
		t.Errorf("partner trousers: got %d rects, want 2", r.count(mc.Trouser))
	}

	r = &recorder{}
	DrawHug(r, 720, 300, 10, pc, mc)
	if r.count(HeartPink) == 0 {
		t.Error("hug scene has no heart")
	}
}

func TestStars(t *testing.T) {
	stars := BuildStars(rand.New(rand.NewSource(1)), 50)
	if len(stars) != 50 {
		t.Fatalf("got %d stars", len(stars))
	}
	r := &recorder{}
	DrawStars(r, 720, 480, stars, 0, MustHex("#000000"))
	for _, rc := range r.rects {
		if rc.x < 0 || rc.x >= 720 || rc.y < 0 || rc.y >= 480 {
			t.Fatalf("star outside field: %+v", rc)
		}
	}
}
