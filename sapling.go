package sapling

import (
	"fmt"
	"strings"
)

// Color represents an RGBA color with 8-bit channels. Not premultiplied.
// Premultiplication happens in RGBA, which makes Color usable anywhere an
// image/color.Color is accepted.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{255, 255, 255, 255}

// RGBA implements color.Color. Values are alpha-premultiplied 16-bit.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// Vec2 is a 2D vector used for translations and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// TextAlign controls horizontal text alignment.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Anchor is the pivot used to position a Visual relative to its owning widget.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota // default
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

var anchorNames = [...]string{
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorLeft:        "left",
	AnchorCenter:      "center",
	AnchorRight:       "right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottom:      "bottom",
	AnchorBottomRight: "bottom-right",
}

// String returns the asset-file name of the anchor.
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// ParseAnchor returns the anchor with the given name. Matching is
// case-insensitive and accepts underscores in place of hyphens.
func ParseAnchor(name string) (Anchor, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, s := range anchorNames {
		if s == n {
			return Anchor(i), nil
		}
	}
	return AnchorTopLeft, fmt.Errorf("unknown anchor %q", name)
}

// Pivot returns the normalized pivot position of the anchor within a box:
// 0 is the left/top edge, 0.5 the middle and 1 the right/bottom edge.
// Unknown anchors resolve to top-left.
func (a Anchor) Pivot() Vec2 {
	if a > AnchorBottomRight {
		return Vec2{}
	}
	col := float64(a % 3)
	row := float64(a / 3)
	return Vec2{col / 2, row / 2}
}

// Offset returns the translation that moves the anchor point of a w×h box
// to the origin.
func (a Anchor) Offset(w, h float64) Vec2 {
	p := a.Pivot()
	return Vec2{-p.X * w, -p.Y * h}
}
