package sapling

import "github.com/hajimehoshi/ebiten/v2"

// Visual is a renderable unit: an ordered stack of layers positioned by an
// anchor and a translation. Layers are drawn in order, so the first layer is
// the bottom-most.
//
// Anchor and Translation may be adjusted at any time by layout code. The layer
// stack is fixed when the Visual is created; build a new Visual to change it.
type Visual struct {
	// Anchor is the pivot used to place the visual within its widget.
	Anchor Anchor
	// Translation is applied after anchoring.
	Translation Vec2

	layers []Layer
}

// NewVisual creates a Visual from zero or more layers. The layers are copied.
func NewVisual(layers ...Layer) *Visual {
	v := &Visual{}
	if len(layers) > 0 {
		v.layers = make([]Layer, len(layers))
		copy(v.layers, layers)
	}
	return v
}

// VisualsFromImages returns one single-layer Visual per image index, in input
// order. Each layer uses default parameters (see NewLayer), and each Visual
// can be positioned independently.
func VisualsFromImages(images []uint32) []*Visual {
	out := make([]*Visual, len(images))
	for i, img := range images {
		out[i] = &Visual{layers: []Layer{NewLayer(img)}}
	}
	return out
}

// Layers returns a copy of the layer stack.
func (v *Visual) Layers() []Layer {
	out := make([]Layer, len(v.layers))
	copy(out, v.layers)
	return out
}

// Len returns the number of layers.
func (v *Visual) Len() int { return len(v.layers) }

// Layer returns layer i. It panics if i is out of range.
func (v *Visual) Layer(i int) Layer { return v.layers[i] }

// LayerGeoM returns the full transform for layer i: anchorOffset (usually
// Anchor.Offset of the image size) moves the pivot to the origin, the layer
// rotates and translates about it, and the visual's Translation is applied
// last. Concatenate the widget's transform afterwards.
func (v *Visual) LayerGeoM(i int, anchorOffset Vec2) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(anchorOffset.X, anchorOffset.Y)
	m.Concat(v.layers[i].GeoM())
	m.Translate(v.Translation.X, v.Translation.Y)
	return m
}
