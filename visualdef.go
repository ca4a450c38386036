package sapling

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// VisualSet is the result of loading a visual definition file.
type VisualSet struct {
	// Visuals holds the named multi-layer visuals.
	Visuals map[string]*Visual
	// IconSets holds flat icon lists, one single-layer Visual per image.
	IconSets map[string][]*Visual
}

// visualFile is the on-disk layout. JSON input works as well since YAML is a
// superset of it.
type visualFile struct {
	Visuals  map[string]visualDef `yaml:"visuals"`
	IconSets map[string][]uint32  `yaml:"iconsets"`
}

type visualDef struct {
	Anchor      string     `yaml:"anchor"`
	Translation []float64  `yaml:"translation"`
	Layers      []layerDef `yaml:"layers"`
}

type layerDef struct {
	Image       uint32    `yaml:"image"`
	Tint        string    `yaml:"tint"`
	Rotation    float64   `yaml:"rotation"`
	Translation []float64 `yaml:"translation"`
}

// LoadVisuals parses a visual definition document:
//
//	visuals:
//	  hero:
//	    anchor: center
//	    translation: [0, -4]
//	    layers:
//	      - image: 3
//	      - image: 4
//	        tint: "#ff8080"
//	        rotation: 15
//	iconsets:
//	  toolbar: [10, 11, 12]
func LoadVisuals(data []byte) (*VisualSet, error) {
	var f visualFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load visuals: %w", err)
	}

	set := &VisualSet{
		Visuals:  make(map[string]*Visual, len(f.Visuals)),
		IconSets: make(map[string][]*Visual, len(f.IconSets)),
	}
	for name, def := range f.Visuals {
		v, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("load visuals: %q: %w", name, err)
		}
		if len(def.Layers) == 0 {
			Logger().Warn("sapling: visual has no layers", "visual", name)
		}
		set.Visuals[name] = v
	}
	for name, images := range f.IconSets {
		set.IconSets[name] = VisualsFromImages(images)
	}
	return set, nil
}

func (d visualDef) build() (*Visual, error) {
	layers := make([]Layer, len(d.Layers))
	for i, ld := range d.Layers {
		l, err := ld.build()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = l
	}
	v := NewVisual(layers...)
	if d.Anchor != "" {
		a, err := ParseAnchor(d.Anchor)
		if err != nil {
			return nil, err
		}
		v.Anchor = a
	}
	t, err := vecFrom(d.Translation)
	if err != nil {
		return nil, err
	}
	v.Translation = t
	return v, nil
}

func (d layerDef) build() (Layer, error) {
	tint := ColorWhite
	if d.Tint != "" {
		c, err := ParseHexColor(d.Tint)
		if err != nil {
			return Layer{}, err
		}
		tint = c
	}
	t, err := vecFrom(d.Translation)
	if err != nil {
		return Layer{}, err
	}
	return NewLayerWith(d.Image, tint, d.Rotation, t), nil
}

func vecFrom(xy []float64) (Vec2, error) {
	switch len(xy) {
	case 0:
		return Vec2{}, nil
	case 2:
		return Vec2{xy[0], xy[1]}, nil
	default:
		return Vec2{}, fmt.Errorf("translation needs 2 components, got %d", len(xy))
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q: missing '#'", s)
	}
	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("color %q: invalid hex digit %q", s, hex[i])
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3:
		return Color{digits[0] * 17, digits[1] * 17, digits[2] * 17, 255}, nil
	case 6:
		return Color{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 255}, nil
	case 8:
		return Color{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], digits[6]<<4 | digits[7]}, nil
	default:
		return Color{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
