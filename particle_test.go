package glib

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewParticleDefaults(t *testing.T) {
	b := &fakeBatch{}
	p := NewParticle(b)
	assertDefaults(t, p)
	if p.Batch() != b {
		t.Error("particle should be bound to its construction batch")
	}
}

func TestSetColorDecayValidates(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	for _, bad := range []float64{0, -0.5, math.NaN()} {
		if err := p.SetColorDecay(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetColorDecay(%v) = %v, want ErrInvalidArgument", bad, err)
		}
	}
	if p.ColorDecay() != 1 {
		t.Errorf("rejected value changed decay to %v", p.ColorDecay())
	}
	if err := p.SetColorDecay(0.9); err != nil {
		t.Fatalf("SetColorDecay(0.9): %v", err)
	}
	assertNear(t, "decay", p.ColorDecay(), 0.9)
}

func TestParticleStrictTTLDiesOnThirdUpdate(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	p.TTL = 100 * time.Millisecond

	p.Update(40 * time.Millisecond)
	if p.IsDead() {
		t.Fatal("dead after 40ms of 100ms")
	}
	p.Update(40 * time.Millisecond)
	if p.IsDead() {
		t.Fatal("dead after 80ms of 100ms")
	}
	p.Update(40 * time.Millisecond)
	if !p.IsDead() {
		t.Fatal("alive after 120ms of 100ms")
	}
	if p.TTL != -20*time.Millisecond {
		t.Errorf("TTL = %v, want -20ms", p.TTL)
	}
}

func TestParticleStepMovesAndSpins(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	p.TTL = time.Second
	p.Velocity = Vec2{2, -1}
	p.AngularVelocity = 5
	p.Step()
	p.Step()
	if p.Position != (Vec2{4, -2}) {
		t.Errorf("position = %v, want {4 -2}", p.Position)
	}
	assertNear(t, "rotation", p.Rotation, 10)
	if p.TTL != time.Second {
		t.Errorf("Step changed TTL to %v", p.TTL)
	}
}

func TestParticleAlphaDecayDeath(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	p.TTL = time.Hour
	p.Deaths = NewDeathConditions(DieAlphaBelow100)
	if err := p.SetColorDecay(0.5); err != nil {
		t.Fatal(err)
	}

	p.Step() // 255 -> 127
	if p.IsDead() || p.Tint.A != 127 {
		t.Fatalf("after one step: alpha=%d dead=%v", p.Tint.A, p.IsDead())
	}
	p.Step() // 127 -> 63
	if !p.IsDead() {
		t.Fatalf("alpha %d should be dead under alpha100", p.Tint.A)
	}
}

func TestParticleDeathIsMonotonic(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	p.TTL = 10 * time.Millisecond
	p.Update(20 * time.Millisecond)
	if !p.IsDead() {
		t.Fatal("expected dead")
	}

	// State "improves" but the flag must stay set.
	p.TTL = time.Hour
	p.Tint = ColorWhite
	for i := 0; i < 5; i++ {
		p.Update(time.Millisecond)
		p.Step()
		if !p.IsDead() {
			t.Fatalf("dead flag cleared on update %d", i)
		}
	}
	if p.TTL != time.Hour {
		t.Errorf("dead particle was updated: TTL = %v", p.TTL)
	}
}

func TestParticleNoDeathConditionsLivesForever(t *testing.T) {
	p := NewParticle(&fakeBatch{})
	p.Deaths = DeathConditions{}
	p.Update(time.Hour)
	if p.IsDead() {
		t.Error("particle with no conditions should not die")
	}
	p.Kill()
	if !p.IsDead() {
		t.Error("Kill should mark dead")
	}
}

func TestParticleResetRestoresDefaults(t *testing.T) {
	b := &fakeBatch{}
	p := NewParticle(b)
	p.Texture = testTexture
	p.Position = Vec2{5, 5}
	p.Velocity = Vec2{1, 1}
	p.Rotation = 45
	p.AngularVelocity = 3
	p.Scale = Vec2{0.2, 0.2}
	p.Origin = Vec2{4, 4}
	p.Tint = Color{1, 2, 3, 4}
	p.TTL = -time.Second
	p.Deaths = NewDeathConditions(DieAlphaBelow150)
	p.Visible = false
	p.Blend = BlendAdd
	_ = p.SetColorDecay(0.3)
	p.Kill()

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	assertDefaults(t, p)
	if p.Origin != (Vec2{}) {
		t.Errorf("origin = %v, want zero", p.Origin)
	}
}

func TestParticleResetFailsOnDisposedBatch(t *testing.T) {
	b := &fakeBatch{}
	p := NewParticle(b)
	b.disposed = true
	err := p.Reset()
	if !errors.Is(err, ErrBatchDisposed) || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Reset = %v, want ErrBatchDisposed (invalid state)", err)
	}
}

func TestParticleDraw(t *testing.T) {
	b := &fakeBatch{}
	p := NewParticle(b)

	// No texture: nothing drawn.
	if err := p.Draw(); err != nil || len(b.draws) != 0 {
		t.Fatalf("untextured draw: err=%v draws=%d", err, len(b.draws))
	}

	p.Texture = testTexture
	p.Position = Vec2{10, 20}
	p.Rotation = 90
	p.Tint = Color{255, 0, 0, 200}
	if err := p.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(b.draws) != 1 || b.images[0] != testTexture {
		t.Fatalf("draws = %d", len(b.draws))
	}
	s := b.draws[0]
	assertNear(t, "rotation radians", s.Rotation, math.Pi/2)
	if s.Position != p.Position || s.Tint != p.Tint || s.Scale != p.Scale {
		t.Errorf("sprite = %+v", s)
	}

	p.Visible = false
	_ = p.Draw()
	p.Visible = true
	p.Kill()
	_ = p.Draw()
	if len(b.draws) != 1 {
		t.Errorf("hidden or dead particles drew: draws = %d", len(b.draws))
	}

	b.disposed = true
	if err := p.Draw(); !errors.Is(err, ErrBatchDisposed) {
		t.Errorf("Draw on disposed batch = %v, want ErrBatchDisposed", err)
	}
}

func TestParticleNilSpriteBatch(t *testing.T) {
	var sb *SpriteBatch
	p := NewParticle(sb)
	if err := p.Reset(); !errors.Is(err, ErrBatchDisposed) {
		t.Errorf("Reset = %v, want ErrBatchDisposed", err)
	}
	p.Texture = testTexture
	if err := p.Draw(); !errors.Is(err, ErrBatchDisposed) {
		t.Errorf("Draw = %v, want ErrBatchDisposed", err)
	}
}
