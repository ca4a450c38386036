package sapling

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 targets simultaneously. Create one via
// TweenTranslation or TweenField and call Update(dt) each frame.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	set    [2]func(float64)
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to their
// targets. Once every tween has finished, Done is set and further calls are
// no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.set[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenTranslation creates a TweenGroup that moves v.Translation to the given
// target over duration seconds. Only positioning is animated; the layer
// stack is left alone.
func TweenTranslation(v *Visual, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.Translation.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Translation.Y), float32(to.Y), duration, fn)
	g.set[0] = func(x float64) { v.Translation.X = x }
	g.set[1] = func(y float64) { v.Translation.Y = y }
	return g
}

// TweenField creates a TweenGroup that animates a numeric field of s towards
// to. An int field stays an int (values are rounded); anything else is
// written as a float. A missing or non-numeric field starts from 0. Each
// Update marks the store updated, so bound references see the change.
func TweenField(s *Store, key string, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	var from float64
	isInt := false
	if v, err := s.Field(key); err == nil {
		switch v.Kind() {
		case KindInt:
			from = float64(v.i)
			isInt = true
		case KindFloat:
			from = v.f
		}
	}
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	if isInt {
		g.set[0] = func(x float64) { s.SetValue(key, IntValue(int(math.Round(x)))) }
	} else {
		g.set[0] = func(x float64) { s.SetValue(key, FloatValue(x)) }
	}
	return g
}
