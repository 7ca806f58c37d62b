package glib

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxTimeToLive is the longest TTL a generator accepts: 2^31-1 ticks of
// 100ns, a little under 3.6 minutes.
const MaxTimeToLive = time.Duration(math.MaxInt32) * 100 * time.Nanosecond

// decayStep bounds each increment of the incremental decay sampler.
const decayStep = 0.05

// Generator initializes particles for an Engine. Generators do not own
// particles; they obtain them from a Pool and hand them straight on.
type Generator interface {
	// Generate returns a customized particle placed at position.
	Generate(position Vec2) (*Particle, error)
	// Count is the number of particles an engine requests per burst.
	Count() int
}

// GeneratorBase carries what every generator needs: the pool to acquire
// from, the textures to pick from, the burst size and an independent random
// source. Embed it to build a generator.
type GeneratorBase struct {
	pool     *Pool
	textures []*ebiten.Image
	count    int
	rng      *rand.Rand
}

func newGeneratorBase(pool *Pool, textures []*ebiten.Image, count int) (GeneratorBase, error) {
	if pool == nil {
		return GeneratorBase{}, invalidArg("generator pool is nil")
	}
	if len(textures) == 0 {
		return GeneratorBase{}, invalidArg("generator needs at least one texture")
	}
	for i, t := range textures {
		if t == nil {
			return GeneratorBase{}, invalidArg("generator texture %d is nil", i)
		}
	}
	if count < 0 {
		return GeneratorBase{}, invalidArg("particle count %d must be >= 0", count)
	}
	return GeneratorBase{
		pool:     pool,
		textures: textures,
		count:    count,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// Count implements Generator.
func (g *GeneratorBase) Count() int {
	return g.count
}

// SetCount changes the burst size.
func (g *GeneratorBase) SetCount(n int) error {
	if n < 0 {
		return invalidArg("particle count %d must be >= 0", n)
	}
	g.count = n
	return nil
}

// Pool returns the pool particles are acquired from.
func (g *GeneratorBase) Pool() *Pool {
	return g.pool
}

// Textures returns the texture list. Callers must not modify it.
func (g *GeneratorBase) Textures() []*ebiten.Image {
	return g.textures
}

// Seed makes the generator's random source deterministic.
func (g *GeneratorBase) Seed(seed uint64) {
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rand exposes the generator's random source to embedding types.
func (g *GeneratorBase) Rand() *rand.Rand {
	return g.rng
}

// acquire picks a texture uniformly and takes a particle from the pool.
func (g *GeneratorBase) acquire(position Vec2) (*Particle, error) {
	tex := g.textures[g.rng.IntN(len(g.textures))]
	return g.pool.Acquire(tex, position)
}

// RandomGenerator scatters particles with random velocity, spin, tint, scale,
// TTL and color decay.
type RandomGenerator struct {
	GeneratorBase

	minTTL   time.Duration
	maxTTL   time.Duration
	minDecay float64

	// UniformDecay draws the decay factor uniformly from [min, 1] instead of
	// the incremental sampler, which favors values just above the minimum.
	UniformDecay bool
	// Deaths is assigned to every generated particle.
	Deaths DeathConditions
	Blend  BlendMode
}

// NewRandomGenerator returns a generator producing count particles per burst
// with TTLs in [500ms, 2s] and no color decay.
func NewRandomGenerator(pool *Pool, textures []*ebiten.Image, count int) (*RandomGenerator, error) {
	base, err := newGeneratorBase(pool, textures, count)
	if err != nil {
		return nil, err
	}
	return &RandomGenerator{
		GeneratorBase: base,
		minTTL:        500 * time.Millisecond,
		maxTTL:        2 * time.Second,
		minDecay:      1,
		Deaths:        DefaultDeathConditions,
	}, nil
}

// MinTimeToLive returns the lower TTL bound.
func (g *RandomGenerator) MinTimeToLive() time.Duration { return g.minTTL }

// MaxTimeToLive returns the upper TTL bound.
func (g *RandomGenerator) MaxTimeToLive() time.Duration { return g.maxTTL }

// SetMinTimeToLive sets the lower TTL bound. It must be positive, at most
// MaxTimeToLive, and not above the current upper bound.
func (g *RandomGenerator) SetMinTimeToLive(d time.Duration) error {
	if err := checkTTL(d); err != nil {
		return err
	}
	if d > g.maxTTL {
		return invalidArg("min TTL %v exceeds max TTL %v", d, g.maxTTL)
	}
	g.minTTL = d
	return nil
}

// SetMaxTimeToLive sets the upper TTL bound. It must be positive, at most
// MaxTimeToLive, and not below the current lower bound.
func (g *RandomGenerator) SetMaxTimeToLive(d time.Duration) error {
	if err := checkTTL(d); err != nil {
		return err
	}
	if d < g.minTTL {
		return invalidArg("max TTL %v is below min TTL %v", d, g.minTTL)
	}
	g.maxTTL = d
	return nil
}

// SetTimeToLive sets both bounds at once, in whichever order keeps them valid.
func (g *RandomGenerator) SetTimeToLive(minTTL, maxTTL time.Duration) error {
	if err := checkTTL(minTTL); err != nil {
		return err
	}
	if err := checkTTL(maxTTL); err != nil {
		return err
	}
	if minTTL > maxTTL {
		return invalidArg("min TTL %v exceeds max TTL %v", minTTL, maxTTL)
	}
	g.minTTL, g.maxTTL = minTTL, maxTTL
	return nil
}

func checkTTL(d time.Duration) error {
	if d <= 0 {
		return invalidArg("TTL %v must be > 0", d)
	}
	if d > MaxTimeToLive {
		return invalidArg("TTL %v exceeds %v", d, MaxTimeToLive)
	}
	return nil
}

// MinColorDecay returns the smallest decay factor generated.
func (g *RandomGenerator) MinColorDecay() float64 { return g.minDecay }

// SetMinColorDecay sets the smallest decay factor generated, in (0, 1].
// 1 disables decay.
func (g *RandomGenerator) SetMinColorDecay(m float64) error {
	if !(m > 0 && m <= 1) {
		return invalidArg("min color decay %v must be in (0, 1]", m)
	}
	g.minDecay = m
	return nil
}

// Generate implements Generator.
func (g *RandomGenerator) Generate(position Vec2) (*Particle, error) {
	p, err := g.acquire(position)
	if err != nil {
		return nil, err
	}
	rng := g.rng

	p.Velocity = Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
	p.AngularVelocity = radToDeg(rng.Float64()*0.2 - 0.1)
	p.Tint = Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: uint8(rng.IntN(256)),
	}
	s := rng.Float64()
	p.Scale = Vec2{s, s}
	p.TTL = g.minTTL
	if span := g.maxTTL - g.minTTL; span > 0 {
		p.TTL += time.Duration(rng.Int64N(int64(span) + 1))
	}
	p.decay = g.sampleDecay()
	p.Deaths = g.Deaths
	p.Blend = g.Blend
	return p, nil
}

func (g *RandomGenerator) sampleDecay() float64 {
	if g.minDecay == 1 {
		return 1
	}
	if g.UniformDecay {
		return g.minDecay + g.rng.Float64()*(1-g.minDecay)
	}
	d := g.rng.Float64()
	for d < g.minDecay {
		d += g.rng.Float64() * decayStep
	}
	return min(d, 1)
}
