package glib

import (
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pool defaults.
const (
	DefaultPoolCapacity   = 4000
	DefaultLowWaterMark   = 25
	DefaultReplenishBatch = 30
)

// PoolConfig sizes a Pool. Zero fields take the matching default. A negative
// ReplenishBatch disables replenishment, so an exhausted pool reports
// ErrPoolDepleted instead of growing.
type PoolConfig struct {
	Capacity       int `yaml:"capacity"`
	LowWaterMark   int `yaml:"low_water_mark"`
	ReplenishBatch int `yaml:"replenish_batch"`
}

func (c PoolConfig) withDefaults() PoolConfig {
	if c.Capacity <= 0 {
		c.Capacity = DefaultPoolCapacity
	}
	if c.LowWaterMark <= 0 {
		c.LowWaterMark = DefaultLowWaterMark
	}
	if c.ReplenishBatch == 0 {
		c.ReplenishBatch = DefaultReplenishBatch
	}
	return c
}

// PoolStats is a snapshot of pool occupancy.
type PoolStats struct {
	Available      int // particles at rest in the pool
	Outstanding    int // particles checked out and not yet released
	Created        int // particles constructed over the pool's lifetime
	Replenishments int // low-water-mark refills performed
}

// Pool is a LIFO stack of reusable particles shared by every engine drawing
// through the same batch. All methods are safe for concurrent use.
type Pool struct {
	mu     sync.Mutex
	cfg    PoolConfig
	batch  Batch
	stack  []*Particle
	stats  PoolStats
	debug  bool
	logger debugLogger
}

// NewPool returns an uninitialized pool. Call Init before Acquire.
func NewPool(cfg PoolConfig) *Pool {
	return &Pool{cfg: cfg.withDefaults(), logger: stderrLogger}
}

// Config returns the effective configuration, defaults applied.
func (p *Pool) Config() PoolConfig {
	return p.cfg
}

// SetDebug enables replenishment and depletion diagnostics on stderr.
func (p *Pool) SetDebug(enabled bool) {
	p.mu.Lock()
	p.debug = enabled
	p.mu.Unlock()
}

// Init binds the pool to batch and fills it up to capacity. With
// clearExisting, particles already at rest are discarded first; otherwise
// they are kept, rebound to batch, and count toward capacity.
func (p *Pool) Init(batch Batch, clearExisting bool) error {
	if batch == nil || batch.Disposed() {
		return invalidArg("pool batch must be a live Batch")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if clearExisting {
		clear(p.stack)
		p.stack = p.stack[:0]
	}
	p.batch = batch
	for _, pt := range p.stack {
		pt.batch = batch
	}
	if need := p.cfg.Capacity - len(p.stack); need > 0 {
		p.grow(need)
	}
	return nil
}

// grow appends n fresh particles. Caller holds mu.
func (p *Pool) grow(n int) {
	p.stack = slices.Grow(p.stack, n)
	for i := 0; i < n; i++ {
		pt := NewParticle(p.batch)
		pt.pool = p
		p.stack = append(p.stack, pt)
	}
	p.stats.Created += n
}

// Acquire pops a particle in default state and assigns it texture, position
// and a centered origin. When the remaining count falls below the low-water
// mark the pool refills by ReplenishBatch before returning.
func (p *Pool) Acquire(texture *ebiten.Image, position Vec2) (*Particle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.batch == nil {
		return nil, ErrNotInitialized
	}
	if texture == nil {
		return nil, invalidArg("particle texture is nil")
	}
	n := len(p.stack)
	if n == 0 {
		if p.debug {
			p.logger("pool depleted (outstanding %d)", p.stats.Outstanding)
		}
		return nil, ErrPoolDepleted
	}

	pt := p.stack[n-1]
	p.stack[n-1] = nil
	p.stack = p.stack[:n-1]

	if len(p.stack) < p.cfg.LowWaterMark && p.cfg.ReplenishBatch > 0 {
		p.grow(p.cfg.ReplenishBatch)
		p.stats.Replenishments++
		if p.debug {
			p.logger("pool replenished by %d to %d (outstanding %d)",
				p.cfg.ReplenishBatch, len(p.stack), p.stats.Outstanding+1)
		}
	}

	pt.checkedOut = true
	pt.Texture = texture
	pt.Position = position
	pt.Origin = center(texture)
	p.stats.Outstanding++
	return pt, nil
}

// Release resets pt, rebinds it to the pool's batch, clears its engine
// back-reference and pushes it onto the stack. The caller must not use pt
// afterwards.
func (p *Pool) Release(pt *Particle) error {
	if pt == nil {
		return invalidArg("particle is nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.batch == nil {
		return ErrNotInitialized
	}
	if pt.pool != nil && pt.pool != p {
		return ErrForeignParticle
	}
	if pt.pool == p && !pt.checkedOut {
		return ErrDoubleRelease
	}
	if err := pt.resetTo(p.batch); err != nil {
		return err
	}

	// Particles built outside any pool are adopted.
	if pt.pool == nil {
		pt.pool = p
		p.stats.Created++
	} else {
		p.stats.Outstanding--
	}
	pt.checkedOut = false
	pt.engine = nil
	p.stack = append(p.stack, pt)
	return nil
}

// Len returns the number of particles at rest.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.stack)
}

// Initialized reports whether Init has succeeded.
func (p *Pool) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.batch != nil
}

// Stats returns a snapshot of pool occupancy.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Available = len(p.stack)
	return s
}
