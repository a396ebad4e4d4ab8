package object

import (
	"math"
	"math/rand"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

type recordingSpawner struct {
	objs []Object
}

func (s *recordingSpawner) Spawn(obj Object) { s.objs = append(s.objs, obj) }

type nopRenderer struct {
	hearts, pixels, texts, players int
}

func (r *nopRenderer) Background(int)                                     {}
func (r *nopRenderer) Heart(float64, float64, float64, colorful.Color, HeartKind) { r.hearts++ }
func (r *nopRenderer) Pixel(float64, float64, float64, colorful.Color, float64)   { r.pixels++ }
func (r *nopRenderer) Text(float64, float64, string, colorful.Color, float64)     { r.texts++ }
func (r *nopRenderer) Player(float64, float64)                            { r.players++ }

var testField = Field{Width: config.FieldWidth, Height: config.FieldHeight}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 30},
		{9, 30},
		{10, 28},
		{25, 26},
		{80, 14},
		{90, 12},
		{500, 12},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.score); got != tt.want {
			t.Errorf("SpawnInterval(%d): got %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestKindFor(t *testing.T) {
	g := config.DefaultGameplay()
	tests := []struct {
		name         string
		broken, gold float64
		want         HeartKind
	}{
		{"broken wins", 0.05, 0.01, HeartBroken},
		{"gold", 0.5, 0.05, HeartGold},
		{"normal", 0.5, 0.5, HeartNormal},
		{"broken boundary is not broken", 0.12, 0.5, HeartNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindFor(tt.broken, tt.gold, g); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpawnerStepCadence(t *testing.T) {
	s := NewHeartSpawner(rand.New(rand.NewSource(1)), config.DefaultGameplay(), nil)
	spawned := 0
	for frame := 1; frame <= 90; frame++ {
		if h := s.Step(0, testField); h != nil {
			spawned++
			if frame%30 != 0 {
				t.Fatalf("spawn on frame %d, want multiples of 30", frame)
			}
			if s.Counter() != 0 {
				t.Fatalf("counter not reset after spawn: %d", s.Counter())
			}
		}
	}
	if spawned != 3 {
		t.Fatalf("got %d spawns in 90 frames, want 3", spawned)
	}
}

func TestNewHeartRanges(t *testing.T) {
	rules := config.DefaultGameplay()
	s := NewHeartSpawner(rand.New(rand.NewSource(7)), rules, nil)
	counts := map[HeartKind]int{}
	for i := 0; i < 5000; i++ {
		score := i % 300
		h := s.NewHeart(score, testField)
		counts[h.Kind]++

		if h.X < 40 || h.X > testField.Width-40 {
			t.Fatalf("x out of range: %v", h.X)
		}
		if h.Y != config.SpawnY {
			t.Fatalf("y: got %v, want %v", h.Y, config.SpawnY)
		}
		bonus := math.Min(float64(score)*0.015, 2)
		if h.Speed < 1.5+bonus || h.Speed > 3.3+bonus {
			t.Fatalf("speed %v out of range for score %d", h.Speed, score)
		}
		if h.Size < 4.5 || h.Size > 6.9 {
			t.Fatalf("size out of range: %v", h.Size)
		}
		if h.Wobble < 0 || h.Wobble >= 2*math.Pi {
			t.Fatalf("wobble out of range: %v", h.Wobble)
		}
		switch h.Kind {
		case HeartGold:
			if h.Color != GoldColor {
				t.Fatalf("gold heart color: got %v", h.Color)
			}
		case HeartBroken:
			if h.Color != BrokenColor {
				t.Fatalf("broken heart color: got %v", h.Color)
			}
		}
	}

	// Expected shares: broken 12%, gold 0.88*10% = 8.8%.
	if b := float64(counts[HeartBroken]) / 5000; b < 0.09 || b > 0.15 {
		t.Errorf("broken share: got %.3f, want ~0.12", b)
	}
	if g := float64(counts[HeartGold]) / 5000; g < 0.06 || g > 0.12 {
		t.Errorf("gold share: got %.3f, want ~0.088", g)
	}
}

func TestNewHeartZeroChances(t *testing.T) {
	rules := config.DefaultGameplay()
	rules.BrokenHeartChance = 0
	rules.GoldHeartChance = 0
	s := NewHeartSpawner(rand.New(rand.NewSource(3)), rules, nil)
	for i := 0; i < 500; i++ {
		if k := s.NewHeart(0, testField).Kind; k != HeartNormal {
			t.Fatalf("got %v, want normal", k)
		}
	}
}

func TestHeartUpdate(t *testing.T) {
	h := &Heart{X: 100, Y: 0, Speed: 2, Wobble: 0.5}
	if h.Update(UpdateContext{Field: testField}) {
		t.Fatal("heart removed right after spawn")
	}
	if h.Y != 2 {
		t.Fatalf("y: got %v, want 2", h.Y)
	}
	wantX := 100 + math.Sin(0.5+2*0.015)*0.6
	if math.Abs(h.X-wantX) > 1e-12 {
		t.Fatalf("x: got %v, want %v", h.X, wantX)
	}
}

func TestHeartMissed(t *testing.T) {
	h := &Heart{X: 100, Y: testField.Height + 29, Speed: 0.5}
	if h.Update(UpdateContext{Field: testField}) {
		t.Fatal("heart removed before passing the margin")
	}
	h.Speed = 1
	if !h.Update(UpdateContext{Field: testField}) {
		t.Fatalf("heart at y=%v not removed", h.Y)
	}
}

func TestSpawnBurst(t *testing.T) {
	sp := &recordingSpawner{}
	SpawnBurst(10, 20, 8, GoldColor, rand.New(rand.NewSource(1)), sp)
	if len(sp.objs) != 8 {
		t.Fatalf("got %d particles, want 8", len(sp.objs))
	}
	for _, obj := range sp.objs {
		p := obj.(*Particle)
		if p.X != 10 || p.Y != 20 || p.Life != 1 || p.Color != GoldColor {
			t.Fatalf("unexpected particle %+v", p)
		}
		speed := math.Hypot(p.VX, p.VY+1.5)
		if speed > 4*math.Sqrt2+1e-9 {
			t.Fatalf("particle too fast: %v", speed)
		}
	}
}

func TestParticleLifecycle(t *testing.T) {
	p := NewParticle(0, 0, 1, -1, BrokenColor)
	frames := 0
	for !p.Update(UpdateContext{}) {
		frames++
		if frames > 100 {
			t.Fatal("particle never expired")
		}
	}
	// 1 / 0.03 rounds up to 34 updates; the last one reports removal.
	if frames != 33 {
		t.Fatalf("got %d live frames, want 33", frames)
	}
	if math.Abs(p.VY-(-1+34*0.12)) > 1e-9 {
		t.Fatalf("gravity: vy got %v", p.VY)
	}
}

func TestPopupLifecycle(t *testing.T) {
	p := NewPopup(50, 100, "+1", ScorePopupColor)
	p.Update(UpdateContext{})
	if math.Abs(p.Y-98.8) > 1e-9 || math.Abs(p.Life-0.98) > 1e-9 {
		t.Fatalf("after one frame: y=%v life=%v", p.Y, p.Life)
	}
	frames := 1
	for !p.Update(UpdateContext{}) {
		frames++
	}
	if frames < 49 || frames > 50 {
		t.Fatalf("popup lived %d frames, want ~50", frames)
	}
}

func TestUpdateAllCompacts(t *testing.T) {
	ps := []*Popup{
		{Life: 0.01},
		{Life: 1},
		{Life: 0.015},
		{Life: 0.5},
	}
	ps = UpdateAll(ps, UpdateContext{})
	if len(ps) != 2 {
		t.Fatalf("got %d popups, want 2", len(ps))
	}
	r := &nopRenderer{}
	DrawAll(ps, r)
	if r.texts != 2 {
		t.Fatalf("drew %d texts, want 2", r.texts)
	}
}

func TestPlayerSmoothingAndCatch(t *testing.T) {
	p := NewPlayer(testField)
	if p.X != 360 || p.BaseY != 420 {
		t.Fatalf("new player: %+v", p)
	}
	p.TargetX = 460
	p.Update(UpdateContext{})
	if math.Abs(p.X-378) > 1e-9 {
		t.Fatalf("x after one frame: got %v, want 378", p.X)
	}

	ax, ay := p.Anchor()
	if ay != 405 {
		t.Fatalf("anchor y: got %v, want 405", ay)
	}
	if !p.Catches(&Heart{X: ax + 34, Y: ay - 34}) {
		t.Error("heart inside box corner not caught")
	}
	if p.Catches(&Heart{X: ax + 35, Y: ay}) {
		t.Error("heart on box edge caught")
	}
}

func TestHeartKindString(t *testing.T) {
	if HeartGold.String() != "gold" || HeartBroken.String() != "broken" || HeartNormal.String() != "normal" {
		t.Fatal("unexpected kind names")
	}
}
