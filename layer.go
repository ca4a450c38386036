package sapling

import "github.com/hajimehoshi/ebiten/v2"

// Layer describes one image layer of a Visual: which image to draw, how to
// tint it, and how far to rotate and translate it. Layer is an immutable
// value; compare with ==.
//
// The image index refers to an image registered with the renderer. Layer does
// not validate it; an unresolvable index is the renderer's concern.
type Layer struct {
	image       uint32
	tint        Color
	rotation    float64 // degrees
	translation Vec2
}

// NewLayer returns a layer for image with a white tint, no rotation and no
// translation.
func NewLayer(image uint32) Layer {
	return Layer{image: image, tint: ColorWhite}
}

// NewTintedLayer returns a layer for image with the given tint, no rotation
// and no translation.
func NewTintedLayer(image uint32, tint Color) Layer {
	return Layer{image: image, tint: tint}
}

// NewLayerWith returns a fully specified layer. Rotation is in degrees.
func NewLayerWith(image uint32, tint Color, rotation float64, translation Vec2) Layer {
	return Layer{image: image, tint: tint, rotation: rotation, translation: translation}
}

// Image returns the image index.
func (l Layer) Image() uint32 { return l.image }

// Tint returns the tint color.
func (l Layer) Tint() Color { return l.tint }

// Rotation returns the rotation in degrees.
func (l Layer) Rotation() float64 { return l.rotation }

// Translation returns the layer offset.
func (l Layer) Translation() Vec2 { return l.translation }

// WithTint returns a copy of l with a different tint.
func (l Layer) WithTint(c Color) Layer {
	l.tint = c
	return l
}

// WithRotation returns a copy of l rotated by deg degrees (replacing the
// current rotation).
func (l Layer) WithRotation(deg float64) Layer {
	l.rotation = deg
	return l
}

// WithTranslation returns a copy of l with a different offset.
func (l Layer) WithTranslation(v Vec2) Layer {
	l.translation = v
	return l
}

// GeoM returns the layer's local transform: rotation about the image origin
// followed by the layer translation.
func (l Layer) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	if l.rotation != 0 {
		m.Rotate(DegToRad(l.rotation))
	}
	m.Translate(l.translation.X, l.translation.Y)
	return m
}

// ColorScale returns the tint as an alpha-premultiplied ebiten.ColorScale,
// ready for DrawImageOptions.ColorScale. Use ColorToScale for the straight
// per-channel conversion.
func (l Layer) ColorScale() ebiten.ColorScale {
	a := float32(l.tint.A) / 255
	var cs ebiten.ColorScale
	cs.Scale(float32(l.tint.R)/255*a, float32(l.tint.G)/255*a, float32(l.tint.B)/255*a, a)
	return cs
}
