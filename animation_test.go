package sapling

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenTranslationReachesTarget(t *testing.T) {
	v := NewVisual(NewLayer(1))
	v.Translation = Vec2{10, 20}

	g := TweenTranslation(v, Vec2{100, 200}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(v.Translation.X-55) > 0.5 {
		t.Errorf("midpoint X = %f, want ~55", v.Translation.X)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v.Translation.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", v.Translation.X)
	}
	if math.Abs(v.Translation.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", v.Translation.Y)
	}
	if v.Layer(0) != NewLayer(1) {
		t.Error("tween changed the layer stack")
	}
}

func TestTweenGroupUpdateAfterDone(t *testing.T) {
	v := NewVisual()
	g := TweenTranslation(v, Vec2{10, 10}, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done")
	}
	v.Translation = Vec2{-1, -1}
	g.Update(0.25)
	if v.Translation != (Vec2{-1, -1}) {
		t.Errorf("Update after Done wrote %v", v.Translation)
	}
}

func TestTweenFieldUpdatesStore(t *testing.T) {
	s := newTestStore(t)
	s.Set("score", 10.0)
	s.MarkSeen()

	ref := Bind[float64](s, "score")
	g := TweenField(s, "score", 20, 1.0, ease.Linear)

	g.Update(0.5)
	if !ref.IsUpdated() {
		t.Error("store not marked updated by tween")
	}
	got, err := ref.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if math.Abs(got-15) > 0.01 {
		t.Errorf("midpoint = %f, want ~15", got)
	}

	g.Update(0.5)
	got, _ = ref.Value()
	if !g.Done || math.Abs(got-20) > 0.01 {
		t.Errorf("final = %f (done=%v), want 20", got, g.Done)
	}
}

func TestTweenFieldMissingStartsAtZero(t *testing.T) {
	s := newTestStore(t)
	g := TweenField(s, "bar", 4, 1.0, ease.Linear)
	g.Update(0.5)
	if got, _ := Get[float64](s, "bar"); math.Abs(got-2) > 0.01 {
		t.Errorf("midpoint = %f, want ~2", got)
	}
}

func TestTweenFieldKeepsIntKind(t *testing.T) {
	s := newTestStore(t)
	s.Set("score", 10)

	ref := Bind[int](s, "score")
	ref.Template = "{0} pts"
	g := TweenField(s, "score", 20, 1.0, ease.Linear)

	g.Update(0.5)
	text, err := ref.Text()
	if err != nil {
		t.Fatalf("Text after tween step: %v", err)
	}
	if text != "15 pts" {
		t.Errorf("Text = %q, want %q", text, "15 pts")
	}

	g.Update(0.5)
	if got, err := ref.Value(); err != nil || got != 20 {
		t.Errorf("final = %d, %v; want 20", got, err)
	}
}
