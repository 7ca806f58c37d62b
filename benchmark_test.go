package glib

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// setupBenchEngine returns a warm engine emitting n particles per frame with
// TTLs of about half a second.
func setupBenchEngine(b *testing.B, n int) (*Engine, *Pool) {
	b.Helper()
	pool, _ := newTestPool(b, PoolConfig{Capacity: 8000, LowWaterMark: 25, ReplenishBatch: 30})
	gen, err := NewRandomGenerator(pool, []*ebiten.Image{testTexture}, n)
	if err != nil {
		b.Fatal(err)
	}
	gen.Seed(1)
	_ = gen.SetTimeToLive(400*time.Millisecond, 600*time.Millisecond)
	e, _ := NewEngine(pool, gen)
	e.Track(FixedPosition{320, 240})

	// Warm up to steady state so the active slice has its final capacity.
	for i := 0; i < 120; i++ {
		if err := e.Update(frame); err != nil {
			b.Fatal(err)
		}
	}
	return e, pool
}

func BenchmarkEngineUpdate_10PerFrame(b *testing.B) {
	e, _ := setupBenchEngine(b, 10)
	b.ReportAllocs()
	for b.Loop() {
		_ = e.Update(frame)
	}
}

func BenchmarkEngineUpdate_100PerFrame(b *testing.B) {
	e, _ := setupBenchEngine(b, 100)
	b.ReportAllocs()
	for b.Loop() {
		_ = e.Update(frame)
	}
}

func BenchmarkEngineDraw_SpriteBatch(b *testing.B) {
	pool, _ := newTestPool(b, PoolConfig{Capacity: 2000, LowWaterMark: 25, ReplenishBatch: 30})
	batch := NewSpriteBatch(ebiten.NewImage(640, 480))
	_ = pool.Init(batch, true)
	gen, _ := NewRandomGenerator(pool, []*ebiten.Image{testTexture}, 50)
	e, _ := NewEngine(pool, gen)
	e.Track(FixedPosition{320, 240})
	for i := 0; i < 30; i++ {
		_ = e.Update(frame)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = e.Draw()
	}
}

func BenchmarkPoolAcquireRelease(b *testing.B) {
	pool, _ := newTestPool(b, PoolConfig{Capacity: 100, LowWaterMark: 10, ReplenishBatch: 10})
	b.ReportAllocs()
	for b.Loop() {
		p, _ := pool.Acquire(testTexture, Vec2{})
		_ = pool.Release(p)
	}
}

func BenchmarkParticleUpdate(b *testing.B) {
	p := NewParticle(&fakeBatch{})
	p.Deaths = NewDeathConditions(DieStrictTTL, DieAlphaBelow25)
	_ = p.SetColorDecay(0.999999)
	b.ReportAllocs()
	for b.Loop() {
		p.TTL = time.Hour
		p.Tint = ColorWhite
		p.Update(frame)
	}
}
