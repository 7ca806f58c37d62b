// Package glib is a particle toolkit for [Ebitengine] games.
//
// It provides a reusable particle [Pool], generator policies that customize
// particles as they leave the pool, and an [Engine] that drives one effect:
// it ticks a generation cadence, advances and culls particles, and hands dead
// ones back for reuse. Nothing allocates per frame once the pool is warm.
//
// # Quick start
//
//	batch := glib.NewSpriteBatch(nil)
//	pool := glib.NewPool(glib.PoolConfig{})
//	if err := pool.Init(batch, false); err != nil {
//		log.Fatal(err)
//	}
//
//	gen, _ := glib.NewRandomGenerator(pool, []*ebiten.Image{spark}, 3)
//	engine, _ := glib.NewEngine(pool, gen)
//	engine.Track(glib.FixedPosition{X: 320, Y: 240})
//
// Then, from your [ebiten.Game]:
//
//	func (g *Game) Update() error { return g.engine.Update(time.Second / 60) }
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.batch.SetTarget(screen)
//		_ = g.engine.Draw()
//	}
//
// # Pool
//
// A [Pool] is a LIFO stack of particles created up front. When an
// [Pool.Acquire] leaves fewer than LowWaterMark particles at rest the pool
// grows by ReplenishBatch, so a pool only runs dry when replenishment is
// disabled. Pools are safe for concurrent use; several engines may share
// one. Releasing the same particle twice, or to a pool it did not come
// from, returns an error instead of corrupting the stack.
//
// # Death conditions
//
// A particle dies when any condition in its [DeathConditions] set holds:
// [DieStrictTTL] once its time-to-live is spent, or one of the
// DieAlphaBelow thresholds once its tint has faded far enough. The dead flag
// only clears on reset.
//
// # Configuration
//
// Effects can be described in YAML and loaded with [LoadConfig]; the
// embedded defaults define "sparkle", "smoke" and "explosion". The ecs
// subpackage attaches engines to [Donburi] entities.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package glib
