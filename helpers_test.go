package glib

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fakeBatch records draws instead of rendering them.
type fakeBatch struct {
	draws    []Sprite
	images   []*ebiten.Image
	disposed bool
}

func (b *fakeBatch) Draw(img *ebiten.Image, s Sprite) {
	b.images = append(b.images, img)
	b.draws = append(b.draws, s)
}

func (b *fakeBatch) Disposed() bool { return b.disposed }

var testTexture = ebiten.NewImage(8, 8)

func newTestPool(t testing.TB, cfg PoolConfig) (*Pool, *fakeBatch) {
	t.Helper()
	batch := &fakeBatch{}
	pool := NewPool(cfg)
	if err := pool.Init(batch, false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return pool, batch
}

// assertDefaults checks every field a reset particle must carry.
func assertDefaults(t *testing.T, p *Particle) {
	t.Helper()
	if p.Position != (Vec2{}) || p.Velocity != (Vec2{}) {
		t.Errorf("position/velocity = %v/%v, want zero", p.Position, p.Velocity)
	}
	if p.Rotation != 0 || p.AngularVelocity != 0 {
		t.Errorf("rotation/angular = %v/%v, want zero", p.Rotation, p.AngularVelocity)
	}
	if p.Scale != (Vec2{1, 1}) {
		t.Errorf("scale = %v, want {1 1}", p.Scale)
	}
	if p.Tint != ColorWhite {
		t.Errorf("tint = %v, want white", p.Tint)
	}
	if p.TTL != 0 {
		t.Errorf("TTL = %v, want 0", p.TTL)
	}
	if p.ColorDecay() != 1 {
		t.Errorf("decay = %v, want 1", p.ColorDecay())
	}
	if p.Deaths != DefaultDeathConditions {
		t.Errorf("deaths = %v, want %v", p.Deaths, DefaultDeathConditions)
	}
	if !p.Visible || p.IsDead() {
		t.Errorf("visible=%v dead=%v, want visible and alive", p.Visible, p.IsDead())
	}
	if p.Texture != nil {
		t.Error("texture should be nil after reset")
	}
	if p.Blend != BlendNormal {
		t.Errorf("blend = %v, want BlendNormal", p.Blend)
	}
}
