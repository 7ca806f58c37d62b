package glib

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Particle is a poolable visual entity. Particles are created by a Pool,
// customized by a Generator, advanced by an Engine and handed back to the
// pool once dead. Fields are exported so generators and effects can set
// them directly; the decay factor is validated and therefore accessed via
// methods.
type Particle struct {
	Texture  *ebiten.Image
	Position Vec2
	// Velocity is added to Position on every Step.
	Velocity Vec2
	// Rotation and AngularVelocity are in degrees; AngularVelocity is added
	// to Rotation on every Step.
	Rotation        float64
	AngularVelocity float64
	Scale           Vec2
	Origin          Vec2
	Tint            Color
	Blend           BlendMode
	// TTL is the remaining time-to-live. It goes negative once expired.
	TTL     time.Duration
	Deaths  DeathConditions
	Visible bool

	decay float64
	dead  bool

	// home is the batch captured at construction; batch is the current
	// binding and differs only after a pool re-initialization.
	home  Batch
	batch Batch

	pool       *Pool
	checkedOut bool
	engine     *Engine
}

// NewParticle returns a particle in the default state bound to batch.
func NewParticle(batch Batch) *Particle {
	p := &Particle{home: batch}
	p.setDefaults(batch)
	return p
}

func (p *Particle) setDefaults(batch Batch) {
	p.Texture = nil
	p.Position = Vec2{}
	p.Velocity = Vec2{}
	p.Rotation = 0
	p.AngularVelocity = 0
	p.Scale = Vec2{1, 1}
	p.Origin = Vec2{}
	p.Tint = ColorWhite
	p.Blend = BlendNormal
	p.TTL = 0
	p.Deaths = DefaultDeathConditions
	p.Visible = true
	p.decay = 1
	p.dead = false
	p.batch = batch
}

// Reset restores every mutable property to its default and rebinds the
// particle to the batch it was constructed with. It returns ErrBatchDisposed
// if that batch is gone.
func (p *Particle) Reset() error {
	return p.resetTo(p.home)
}

func (p *Particle) resetTo(batch Batch) error {
	if batch == nil || batch.Disposed() {
		return ErrBatchDisposed
	}
	p.setDefaults(batch)
	return nil
}

// ColorDecay returns the multiplicative per-step tint factor.
func (p *Particle) ColorDecay() float64 {
	return p.decay
}

// SetColorDecay sets the per-step tint factor. f must be positive; 1 means
// no decay.
func (p *Particle) SetColorDecay(f float64) error {
	if !(f > 0) {
		return invalidArg("color decay %v must be > 0", f)
	}
	p.decay = f
	return nil
}

// IsDead reports whether any death condition has been met since the last
// reset. The flag never clears on its own.
func (p *Particle) IsDead() bool {
	return p.dead
}

// Kill marks the particle dead regardless of its death conditions.
func (p *Particle) Kill() {
	p.dead = true
}

// Batch returns the batch the particle currently draws through.
func (p *Particle) Batch() Batch {
	return p.batch
}

// Update subtracts elapsed from TTL and then performs Step. Dead particles
// are left untouched.
func (p *Particle) Update(elapsed time.Duration) {
	if p.dead {
		return
	}
	p.TTL -= elapsed
	p.Step()
}

// Step moves and spins the particle, decays its tint and evaluates its
// death conditions. It does not touch TTL.
func (p *Particle) Step() {
	if p.dead {
		return
	}
	p.Position = p.Position.Add(p.Velocity)
	p.Rotation += p.AngularVelocity
	if p.decay != 1 {
		p.Tint = p.Tint.Scale(p.decay)
	}
	if p.Deaths.Met(p) {
		p.dead = true
	}
}

// Draw submits the particle to its batch. Dead, hidden and untextured
// particles draw nothing. Batching is left to the caller.
func (p *Particle) Draw() error {
	if p.batch == nil || p.batch.Disposed() {
		return ErrBatchDisposed
	}
	if p.dead || !p.Visible || p.Texture == nil {
		return nil
	}
	p.batch.Draw(p.Texture, Sprite{
		Position: p.Position,
		Origin:   p.Origin,
		Scale:    p.Scale,
		Rotation: degToRad(p.Rotation),
		Tint:     p.Tint,
		Blend:    p.Blend,
	})
	return nil
}

// center returns the middle of img in texture pixels.
func center(img *ebiten.Image) Vec2 {
	b := img.Bounds()
	return Vec2{float64(b.Dx()) / 2, float64(b.Dy()) / 2}
}
