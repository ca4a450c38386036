package sapling

import (
	"math"
	"testing"
)

func TestNewLayerDefaults(t *testing.T) {
	for _, img := range []uint32{0, 1, 7, math.MaxUint32} {
		l := NewLayer(img)
		if l.Image() != img {
			t.Errorf("Image() = %d, want %d", l.Image(), img)
		}
		if l.Tint() != ColorWhite {
			t.Errorf("Tint() = %v, want opaque white", l.Tint())
		}
		if l.Rotation() != 0 {
			t.Errorf("Rotation() = %f, want 0", l.Rotation())
		}
		if l.Translation() != (Vec2{}) {
			t.Errorf("Translation() = %v, want zero", l.Translation())
		}
	}
}

func TestNewTintedLayer(t *testing.T) {
	red := Color{255, 0, 0, 255}
	l := NewTintedLayer(3, red)
	if l.Image() != 3 || l.Tint() != red {
		t.Errorf("got image %d tint %v", l.Image(), l.Tint())
	}
	if l.Rotation() != 0 || l.Translation() != (Vec2{}) {
		t.Errorf("expected default rotation/translation, got %f %v", l.Rotation(), l.Translation())
	}
}

func TestNewLayerWith(t *testing.T) {
	tint := Color{10, 20, 30, 40}
	l := NewLayerWith(9, tint, 45, Vec2{3, 4})
	if l.Image() != 9 || l.Tint() != tint || l.Rotation() != 45 || l.Translation() != (Vec2{3, 4}) {
		t.Errorf("NewLayerWith fields = %d %v %f %v", l.Image(), l.Tint(), l.Rotation(), l.Translation())
	}
}

func TestLayerEquality(t *testing.T) {
	if NewLayer(5) != NewTintedLayer(5, ColorWhite) {
		t.Error("NewLayer(5) != NewTintedLayer(5, white)")
	}
	if NewLayer(5) != NewLayerWith(5, ColorWhite, 0, Vec2{}) {
		t.Error("NewLayer(5) != NewLayerWith(5, white, 0, zero)")
	}
	if NewLayer(5) == NewLayer(6) {
		t.Error("layers with different images compare equal")
	}
}

func TestLayerWithCopies(t *testing.T) {
	base := NewLayer(1)
	tinted := base.WithTint(Color{1, 2, 3, 4})
	rotated := base.WithRotation(90)
	moved := base.WithTranslation(Vec2{5, 6})

	if base != NewLayer(1) {
		t.Errorf("receiver was modified: %+v", base)
	}
	if tinted.Tint() != (Color{1, 2, 3, 4}) || tinted.Image() != 1 {
		t.Errorf("WithTint = %+v", tinted)
	}
	if rotated.Rotation() != 90 {
		t.Errorf("WithRotation = %+v", rotated)
	}
	if moved.Translation() != (Vec2{5, 6}) {
		t.Errorf("WithTranslation = %+v", moved)
	}
}

func TestLayerGeoM(t *testing.T) {
	l := NewLayerWith(0, ColorWhite, 90, Vec2{10, 20})
	m := l.GeoM()

	// (1, 0) rotated 90° is (0, 1), then translated.
	x, y := m.Apply(1, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-21) > 1e-9 {
		t.Errorf("Apply(1, 0) = (%f, %f), want (10, 21)", x, y)
	}
}

func TestLayerGeoMIdentity(t *testing.T) {
	m := NewLayer(0).GeoM()
	x, y := m.Apply(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("Apply(3, 4) = (%f, %f), want (3, 4)", x, y)
	}
}

func TestLayerColorScale(t *testing.T) {
	cs := NewTintedLayer(0, Color{255, 0, 51, 255}).ColorScale()
	if cs.R() != 1 || cs.G() != 0 || math.Abs(float64(cs.B())-0.2) > 1e-6 || cs.A() != 1 {
		t.Errorf("ColorScale = %v", cs.String())
	}
}

func TestLayerColorScalePremultiplied(t *testing.T) {
	tests := []struct {
		name       string
		tint       Color
		r, g, b, a float64
	}{
		{"opaque", Color{255, 128, 0, 255}, 1, 128.0 / 255, 0, 1},
		{"half alpha red", Color{255, 0, 0, 128}, 128.0 / 255, 0, 0, 128.0 / 255},
		{"transparent", Color{255, 255, 255, 0}, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewTintedLayer(0, tt.tint).ColorScale()
			got := [4]float64{float64(cs.R()), float64(cs.G()), float64(cs.B()), float64(cs.A())}
			want := [4]float64{tt.r, tt.g, tt.b, tt.a}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-6 {
					t.Errorf("channel %d = %f, want %f", i, got[i], want[i])
				}
			}
			if cs.R() > cs.A() || cs.G() > cs.A() || cs.B() > cs.A() {
				t.Errorf("color channel exceeds alpha: %v", cs.String())
			}
		})
	}
}
