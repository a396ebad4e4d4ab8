package object

import (
	"math"
	"math/rand"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per frame
	Life   float64 // 1 at spawn, removed at 0
	Size   float64
	Color  colorful.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, c colorful.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = 1
	p.Size = config.BasePixel
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	*p = Particle{}
	particlePool.Put(p)
}

// SpawnBurst creates count particles spread evenly around a circle with a
// little angular jitter and an upward kick.
func SpawnBurst(x, y float64, count int, c colorful.Color, rng *rand.Rand, spawner Spawner) {
	if spawner == nil || count <= 0 {
		return
	}

	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := step*float64(i) + rng.Float64()*0.3
		vx := math.Cos(angle) * (2 + rng.Float64()*2)
		vy := math.Sin(angle)*(2+rng.Float64()*2) - 1.5
		spawner.Spawn(NewParticle(x, y, vx, vy, c))
	}
}

// Update applies velocity and gravity and decays life.
func (p *Particle) Update(_ UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += config.ParticleGravity
	p.Life -= config.ParticleDecay
	return p.Life <= 0
}

// Draw renders the particle as a faded square.
func (p *Particle) Draw(r Renderer) {
	r.Pixel(p.X, p.Y, p.Size, p.Color, p.Life)
}
