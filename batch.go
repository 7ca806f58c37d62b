package glib

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite holds the per-draw parameters of a textured, tinted, rotated and
// scaled quad. Rotation is in radians; Origin is the pivot in texture pixels.
type Sprite struct {
	Position Vec2
	Origin   Vec2
	Scale    Vec2
	Rotation float64
	Tint     Color
	Blend    BlendMode
}

// Batch is the rendering collaborator particles draw through. Particles hold
// but never interpret the textures they are given; they only pass them on.
type Batch interface {
	// Draw submits one quad. Implementations must not retain img past the
	// current frame.
	Draw(img *ebiten.Image, s Sprite)
	// Disposed reports whether the batch is no longer usable.
	Disposed() bool
}

// SpriteBatch draws quads onto a target ebiten.Image with DrawImage. It does
// not coalesce draw calls; Ebitengine already merges consecutive DrawImage
// calls that share a source atlas and blend.
type SpriteBatch struct {
	target    *ebiten.Image
	op        ebiten.DrawImageOptions
	drawCalls int
	disposed  bool
}

// NewSpriteBatch returns a batch drawing onto target. A nil target yields a
// batch that counts draw calls but renders nothing, which is how headless
// tools drive engines.
func NewSpriteBatch(target *ebiten.Image) *SpriteBatch {
	return &SpriteBatch{target: target}
}

// SetTarget switches the destination image, typically once per frame to the
// screen passed to ebiten.Game.Draw.
func (b *SpriteBatch) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Target returns the current destination image.
func (b *SpriteBatch) Target() *ebiten.Image {
	return b.target
}

// Draw implements Batch.
func (b *SpriteBatch) Draw(img *ebiten.Image, s Sprite) {
	if b.disposed || img == nil {
		return
	}
	b.drawCalls++
	if b.target == nil {
		return
	}

	op := &b.op
	op.GeoM.Reset()

	// Pivot, scale, rotate, then place.
	op.GeoM.Translate(-s.Origin.X, -s.Origin.Y)
	op.GeoM.Scale(s.Scale.X, s.Scale.Y)
	if s.Rotation != 0 {
		op.GeoM.Rotate(s.Rotation)
	}
	op.GeoM.Translate(s.Position.X, s.Position.Y)

	a := float32(s.Tint.A) / 255
	op.ColorScale.Reset()
	op.ColorScale.Scale(
		float32(s.Tint.R)/255*a,
		float32(s.Tint.G)/255*a,
		float32(s.Tint.B)/255*a,
		a,
	)
	op.Blend = s.Blend.EbitenBlend()

	b.target.DrawImage(img, op)
}

// DrawCalls returns the number of quads submitted since the last ResetStats.
func (b *SpriteBatch) DrawCalls() int {
	return b.drawCalls
}

// ResetStats zeroes the draw-call counter.
func (b *SpriteBatch) ResetStats() {
	b.drawCalls = 0
}

// Dispose marks the batch unusable. Particles bound to it fail to draw or
// reset with ErrBatchDisposed from then on.
func (b *SpriteBatch) Dispose() {
	b.disposed = true
	b.target = nil
}

// Disposed implements Batch. A nil batch reports disposed.
func (b *SpriteBatch) Disposed() bool {
	return b == nil || b.disposed
}

// degToRad converts degrees to radians.
func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
