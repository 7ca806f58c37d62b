package glib

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// BurstGenerator emits a ring of particles. Successive calls to Generate
// walk around the ring; after Count calls a new ring starts, rotated by
// Spin degrees. Speeds along a ring follow Ease from Speed.Min to Speed.Max.
type BurstGenerator struct {
	GeneratorBase

	Speed Range
	Ease  ease.TweenFunc
	// Spin rotates each new ring, in degrees.
	Spin   float64
	TTL    time.Duration
	Tint   Color
	Deaths DeathConditions
	Blend  BlendMode

	decay float64
	index int
	phase float64
}

// NewBurstGenerator returns a ring generator of count particles that fly out
// at Speed, live for ttl and keep a white tint.
func NewBurstGenerator(pool *Pool, textures []*ebiten.Image, count int, speed Range, ttl time.Duration) (*BurstGenerator, error) {
	base, err := newGeneratorBase(pool, textures, count)
	if err != nil {
		return nil, err
	}
	if err := checkTTL(ttl); err != nil {
		return nil, err
	}
	return &BurstGenerator{
		GeneratorBase: base,
		Speed:         speed,
		Ease:          ease.Linear,
		TTL:           ttl,
		Tint:          ColorWhite,
		Deaths:        DefaultDeathConditions,
		decay:         1,
	}, nil
}

// SetColorDecay sets the decay factor given to every particle.
func (g *BurstGenerator) SetColorDecay(f float64) error {
	if !(f > 0) {
		return invalidArg("color decay %v must be > 0", f)
	}
	g.decay = f
	return nil
}

// Generate implements Generator.
func (g *BurstGenerator) Generate(position Vec2) (*Particle, error) {
	p, err := g.acquire(position)
	if err != nil {
		return nil, err
	}

	n := max(g.count, 1)
	i := g.index
	angle := 2*math.Pi*float64(i)/float64(n) + degToRad(g.phase)
	speed := g.Speed.Min
	if g.Ease != nil && g.Speed.Max != g.Speed.Min {
		speed = float64(g.Ease(float32(i), float32(g.Speed.Min), float32(g.Speed.Max-g.Speed.Min), float32(n)))
	}

	p.Velocity = Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	p.Rotation = radToDeg(angle)
	p.TTL = g.TTL
	p.Tint = g.Tint
	p.decay = g.decay
	p.Deaths = g.Deaths
	p.Blend = g.Blend

	g.index++
	if g.index >= n {
		g.index = 0
		g.phase = math.Mod(g.phase+g.Spin, 360)
	}
	return p, nil
}

// easeFuncs maps config names to easing functions.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// EaseFunc looks up an easing function by config name ("linear",
// "outCubic", ...). The empty name is linear.
func EaseFunc(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easeFuncs[name]
	return fn, ok
}
