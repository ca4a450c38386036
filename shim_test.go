package sapling

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestDegRadConversion(t *testing.T) {
	tests := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.rad) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if got := RadToDeg(tt.rad); math.Abs(got-tt.deg) > 1e-9 {
			t.Errorf("RadToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestColorScaleRoundTrip(t *testing.T) {
	// Every channel value must survive byte -> float -> byte unchanged.
	for v := 0; v <= 255; v++ {
		b := uint8(v)
		for _, c := range []Color{{b, 0, 0, 255}, {0, b, 0, 255}, {0, 0, b, 255}, {10, 20, 30, b}} {
			if got := ScaleToColor(ColorToScale(c)); got != c {
				t.Fatalf("round trip %v -> %v", c, got)
			}
		}
	}
}

func TestColorToScaleNormalizes(t *testing.T) {
	cs := ColorToScale(Color{0, 51, 255, 128})
	tests := []struct {
		name string
		got  float32
		want float64
	}{
		{"R", cs.R(), 0},
		{"G", cs.G(), 0.2},
		{"B", cs.B(), 1},
		{"A", cs.A(), 128.0 / 255.0},
	}
	for _, tt := range tests {
		if math.Abs(float64(tt.got)-tt.want) > 1e-6 {
			t.Errorf("%s = %f, want %f", tt.name, tt.got, tt.want)
		}
	}
}

func TestScaleToColorClampsAndRounds(t *testing.T) {
	var cs ebiten.ColorScale
	cs.SetR(1.5)
	cs.SetG(-0.25)
	cs.SetB(0.5)
	cs.SetA(1)
	got := ScaleToColor(cs)
	want := Color{255, 0, 128, 255}
	if got != want {
		t.Errorf("ScaleToColor = %v, want %v", got, want)
	}
}

func TestScaleToColorDefaultScale(t *testing.T) {
	// The zero ColorScale is the identity (all ones).
	var cs ebiten.ColorScale
	if got := ScaleToColor(cs); got != ColorWhite {
		t.Errorf("ScaleToColor(identity) = %v, want white", got)
	}
}

func TestAlignToText(t *testing.T) {
	tests := []struct {
		in   TextAlign
		want text.Align
	}{
		{TextAlignLeft, text.AlignStart},
		{TextAlignCenter, text.AlignCenter},
		{TextAlignRight, text.AlignEnd},
		{TextAlign(99), text.AlignStart},
	}
	for _, tt := range tests {
		if got := AlignToText(tt.in); got != tt.want {
			t.Errorf("AlignToText(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlignFromText(t *testing.T) {
	tests := []struct {
		in   text.Align
		want TextAlign
	}{
		{text.AlignStart, TextAlignLeft},
		{text.AlignCenter, TextAlignCenter},
		{text.AlignEnd, TextAlignRight},
	}
	for _, tt := range tests {
		if got := AlignFromText(tt.in); got != tt.want {
			t.Errorf("AlignFromText(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
