package glib

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Tracker supplies the position an Engine generates particles at.
type Tracker interface {
	Position() Vec2
}

// TrackerFunc adapts a function to Tracker.
type TrackerFunc func() Vec2

// Position implements Tracker.
func (f TrackerFunc) Position() Vec2 { return f() }

// FixedPosition is a Tracker that never moves.
type FixedPosition Vec2

// Position implements Tracker.
func (f FixedPosition) Position() Vec2 { return Vec2(f) }

// Engine drives one particle effect. Every Update it advances its active
// particles, returns dead ones to the pool and, every Cadence frames while a
// tracker is set, asks its generator for a new burst. Engines are not safe
// for concurrent use; the pool they share is.
type Engine struct {
	// Name identifies the engine in events and debug output.
	Name string
	// Offset is added to the tracked position of every burst.
	Offset Vec2
	// Visible gates Draw.
	Visible bool
	// Debug prints burst diagnostics and failed releases to stderr.
	Debug bool
	// Events, when set, receives lifecycle events.
	Events EventSink

	pool    *Pool
	gen     Generator
	tracker Tracker
	cadence int
	frame   int
	active  []*Particle
	logger  debugLogger
}

// NewEngine returns a visible, untracked engine with a cadence of 1 that
// releases its particles to pool.
func NewEngine(pool *Pool, gen Generator) (*Engine, error) {
	if pool == nil {
		return nil, invalidArg("engine pool is nil")
	}
	if gen == nil {
		return nil, invalidArg("engine generator is nil")
	}
	return &Engine{
		Visible: true,
		pool:    pool,
		gen:     gen,
		cadence: 1,
		logger:  stderrLogger,
	}, nil
}

// Generator returns the current generator.
func (e *Engine) Generator() Generator {
	return e.gen
}

// SetGenerator replaces the generator. Active particles are unaffected.
func (e *Engine) SetGenerator(gen Generator) error {
	if gen == nil {
		return invalidArg("engine generator is nil")
	}
	e.gen = gen
	return nil
}

// Cadence returns the number of frames between bursts.
func (e *Engine) Cadence() int {
	return e.cadence
}

// SetCadence sets the number of frames between bursts; n must be >= 1.
func (e *Engine) SetCadence(n int) error {
	if n < 1 {
		return invalidArg("cadence %d must be >= 1", n)
	}
	e.cadence = n
	return nil
}

// Track sets the position source for bursts. A nil tracker stops generation
// while existing particles live out.
func (e *Engine) Track(t Tracker) {
	e.tracker = t
}

// Tracker returns the current position source, or nil.
func (e *Engine) Tracker() Tracker {
	return e.tracker
}

// Frame returns the current frame counter.
func (e *Engine) Frame() int {
	return e.frame
}

// Len returns the number of active particles.
func (e *Engine) Len() int {
	return len(e.active)
}

// Active returns the active particles. The slice is reused by the engine and
// its order changes as particles die.
func (e *Engine) Active() []*Particle {
	return e.active
}

// Add hands a particle to the engine. It fails if another engine owns it.
func (e *Engine) Add(p *Particle) error {
	if p == nil {
		return invalidArg("particle is nil")
	}
	if p.engine != nil {
		return fmt.Errorf("%w: particle already owned by engine %q", ErrInvalidState, p.engine.Name)
	}
	p.engine = e
	e.active = append(e.active, p)
	return nil
}

// Update advances every active particle by elapsed, releases the dead ones
// and generates a burst when one is due. Release failures do not stop the
// frame: a dead particle the pool refuses stays active and is retried on the
// next Update, and the first failure is returned with any generate error.
func (e *Engine) Update(elapsed time.Duration) error {
	var firstErr error

	expired := 0
	for i := 0; i < len(e.active); {
		p := e.active[i]
		p.Update(elapsed)
		if !p.IsDead() {
			i++
			continue
		}
		if err := e.pool.Release(p); err != nil {
			e.debugRelease(err)
			if firstErr == nil {
				firstErr = fmt.Errorf("glib: engine %q: release: %w", e.Name, err)
			}
			i++
			continue
		}

		// Swap-remove; the particle swapped into i is updated next.
		last := len(e.active) - 1
		e.active[i] = e.active[last]
		e.active[last] = nil
		e.active = e.active[:last]
		expired++
	}
	if expired > 0 {
		e.emit(EngineEvent{Type: EventExpired, Count: expired})
	}

	due := e.tracker != nil && e.frame%e.cadence == 0
	e.advanceFrame()
	if !due {
		return firstErr
	}

	at := e.tracker.Position().Add(e.Offset)
	n := e.gen.Count()
	for k := 0; k < n; k++ {
		p, err := e.gen.Generate(at)
		if err != nil {
			if k > 0 {
				e.emit(EngineEvent{Type: EventBurst, Count: k, At: at})
			}
			return errors.Join(firstErr, fmt.Errorf("glib: engine %q: generate: %w", e.Name, err))
		}
		if err := e.Add(p); err != nil {
			return errors.Join(firstErr, fmt.Errorf("glib: engine %q: generate: %w", e.Name, err))
		}
	}
	if n > 0 {
		e.emit(EngineEvent{Type: EventBurst, Count: n, At: at})
		e.debugBurst(n, at)
	}
	return firstErr
}

// advanceFrame increments the frame counter, folding it back to its phase
// within the cadence before it can overflow.
func (e *Engine) advanceFrame() {
	if e.frame >= math.MaxInt-1 {
		e.frame %= e.cadence
	}
	e.frame++
}

// Draw submits every active particle to its batch. It does nothing while the
// engine is hidden and never begins or ends a batch itself.
func (e *Engine) Draw() error {
	if !e.Visible {
		return nil
	}
	for _, p := range e.active {
		if err := p.Draw(); err != nil {
			return fmt.Errorf("glib: engine %q: draw: %w", e.Name, err)
		}
	}
	return nil
}

// Clear returns every active particle to the pool. Particles the pool
// refuses stay active.
func (e *Engine) Clear() error {
	var firstErr error
	kept := e.active[:0]
	for _, p := range e.active {
		if err := e.pool.Release(p); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("glib: engine %q: release: %w", e.Name, err)
			}
			kept = append(kept, p)
		}
	}
	n := len(e.active) - len(kept)
	clear(e.active[len(kept):])
	e.active = kept
	if n > 0 {
		e.emit(EngineEvent{Type: EventCleared, Count: n})
	}
	return firstErr
}

func (e *Engine) emit(ev EngineEvent) {
	if e.Events == nil {
		return
	}
	ev.Engine = e.Name
	ev.Frame = e.frame
	ev.Active = len(e.active)
	e.Events.EmitEvent(ev)
}
