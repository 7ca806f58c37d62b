package glib

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an RGBA tint with 8-bit channels in [0, 255]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{255, 255, 255, 255}

// Scale multiplies every channel by f, truncating toward zero and clamping
// to [0, 255].
func (c Color) Scale(f float64) Color {
	return Color{
		R: scaleChannel(c.R, f),
		G: scaleChannel(c.G, f),
		B: scaleChannel(c.B, f),
		A: scaleChannel(c.A, f),
	}
}

func scaleChannel(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

// RGBA returns the premultiplied color.RGBA equivalent.
func (c Color) RGBA() color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// Vec2 is a 2D vector used for positions, offsets, scales, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BlendMode is how a particle composites onto its target.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // alpha over
	BlendAdd                       // lighter; glows where particles overlap
	BlendMultiply                  // darkens, for soot and shadows
	BlendScreen                    // brightens without saturating as fast as add

	blendModeCount
)

// blendModes is indexed by BlendMode; name is the config spelling.
var blendModes = [blendModeCount]struct {
	name  string
	blend ebiten.Blend
}{
	BlendNormal: {"normal", ebiten.BlendSourceOver},
	BlendAdd:    {"add", ebiten.BlendLighter},
	BlendMultiply: {"multiply", ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
		BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}},
	BlendScreen: {"screen", ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}},
}

// EbitenBlend returns the ebiten.Blend for b. Out-of-range modes draw as
// BlendNormal.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if b >= blendModeCount {
		return ebiten.BlendSourceOver
	}
	return blendModes[b].blend
}

func (b BlendMode) String() string {
	if b >= blendModeCount {
		return "unknown"
	}
	return blendModes[b].name
}

// ParseBlendMode maps a config name to a BlendMode. The empty name is
// BlendNormal; unknown names report false.
func ParseBlendMode(name string) (BlendMode, bool) {
	if name == "" {
		return BlendNormal, true
	}
	for i, m := range blendModes {
		if m.name == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}
