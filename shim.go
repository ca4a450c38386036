package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// maxChannel is the largest value of an 8-bit color channel.
const maxChannel = 255

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ColorToScale converts a Color to an ebiten.ColorScale with each channel
// normalized to [0, 1]. The scale is not premultiplied; use
// ColorScale.ScaleWithColor if premultiplied alpha is required.
func ColorToScale(c Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.SetR(float32(c.R) / maxChannel)
	cs.SetG(float32(c.G) / maxChannel)
	cs.SetB(float32(c.B) / maxChannel)
	cs.SetA(float32(c.A) / maxChannel)
	return cs
}

// ScaleToColor converts an ebiten.ColorScale back to a Color. Each channel is
// clamped to [0, 1], multiplied by 255 and rounded.
func ScaleToColor(cs ebiten.ColorScale) Color {
	return Color{
		R: channelToByte(cs.R()),
		G: channelToByte(cs.G()),
		B: channelToByte(cs.B()),
		A: channelToByte(cs.A()),
	}
}

func channelToByte(v float32) uint8 {
	return uint8(math.Round(clamp01(float64(v)) * maxChannel))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AlignToText maps a TextAlign to the text/v2 alignment used when drawing.
// Anything that is not center or right aligns to the start.
func AlignToText(a TextAlign) text.Align {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// AlignFromText maps a text/v2 alignment back to a TextAlign.
func AlignFromText(a text.Align) TextAlign {
	switch a {
	case text.AlignCenter:
		return TextAlignCenter
	case text.AlignEnd:
		return TextAlignRight
	default:
		return TextAlignLeft
	}
}
