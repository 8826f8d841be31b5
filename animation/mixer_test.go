package animation

import (
	"errors"
	"math"
	"testing"

	cfg "github.com/automoto/domain-expansion/config"
)

func testLibrary() Library {
	return NewLibrary(
		cfg.ClipDef{Name: "idle", Duration: 2},
		cfg.ClipDef{Name: "walk", Duration: 1},
		cfg.ClipDef{Name: "ranged", Duration: 1.2, Loop: cfg.LoopOnce},
	)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-5
}

func TestRequire(t *testing.T) {
	lib := testLibrary()
	if err := lib.Require("idle", "walk"); err != nil {
		t.Fatalf("Require() = %v", err)
	}
	err := lib.Require("idle", "orbit", "domain")
	if !errors.Is(err, ErrMissingClip) {
		t.Fatalf("Require() = %v, want ErrMissingClip", err)
	}
}

func TestBindUnknownClip(t *testing.T) {
	m := NewMixer("avatar", testLibrary())
	if _, err := m.Bind("orbit"); !errors.Is(err, ErrMissingClip) {
		t.Errorf("Bind() err = %v, want ErrMissingClip", err)
	}
	a, err := m.Bind("idle")
	if err != nil {
		t.Fatal(err)
	}
	again, _ := m.Bind("idle")
	if a != again {
		t.Error("Bind() should return the same action for a clip")
	}
}

func TestCrossFade(t *testing.T) {
	m := NewMixer("avatar", testLibrary())
	idle, _ := m.Bind("idle")
	walk, _ := m.Bind("walk")

	idle.Play()
	walk.FadeOut(0)

	walk.Reset().FadeIn(0.1).Play()
	idle.FadeOut(0.1)

	m.Advance(0.05)
	if !approxEqual(walk.Weight(), 0.5) || !approxEqual(idle.Weight(), 0.5) {
		t.Errorf("mid fade weights walk=%v idle=%v, want 0.5/0.5", walk.Weight(), idle.Weight())
	}

	m.Advance(0.06)
	w := m.Weights()
	if !approxEqual(w["walk"], 1) || w["idle"] != 0 {
		t.Errorf("after fade weights = %v", w)
	}
	if idle.IsRunning() {
		t.Error("faded out action should stop running")
	}
	if walk.Fading() {
		t.Error("finished fade should be cleared")
	}
}

func TestLoopOnceFinishes(t *testing.T) {
	m := NewMixer("avatar", testLibrary())
	ranged, _ := m.Bind("ranged")
	ranged.Reset().SetLoop(cfg.LoopOnce, 1).Play()

	for i := 0; i < 20; i++ {
		m.Advance(0.1)
	}
	if !ranged.Finished() {
		t.Error("play-once action should finish")
	}
	if ranged.Time() != 1.2 {
		t.Errorf("time = %v, want clamped 1.2", ranged.Time())
	}
	if ranged.EffectiveWeight() != 0 {
		t.Error("finished action should not contribute weight")
	}

	ranged.Reset().Play()
	if ranged.Finished() || !ranged.IsRunning() {
		t.Error("Reset should make the action playable again")
	}
}

func TestLoopRepeatWraps(t *testing.T) {
	m := NewMixer("avatar", testLibrary())
	walk, _ := m.Bind("walk")
	walk.Play()
	m.Advance(2.25)
	if !approxEqual(walk.Time(), 0.25) {
		t.Errorf("time = %v, want 0.25", walk.Time())
	}
	if !walk.IsRunning() {
		t.Error("looping action stopped")
	}
	if m.Time() != 2.25 {
		t.Errorf("mixer time = %v", m.Time())
	}
}
