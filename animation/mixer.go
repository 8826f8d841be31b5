// Package animation mixes skeletal clip actions by weight.
//
// Sampling poses is the renderer's job; this package owns what the
// simulation decides: which actions play, their weights and their local time.
package animation

import (
	"errors"
	"fmt"
	"sort"

	cfg "github.com/automoto/domain-expansion/config"
)

// ErrMissingClip is returned when a required clip is not in the library.
var ErrMissingClip = errors.New("animation: missing clip")

// Clip is a named animation with a fixed length in seconds.
type Clip struct {
	Name     string
	Duration float64
}

// Library holds the clips loaded for a model.
type Library map[string]Clip

// NewLibrary builds a library from clip definitions.
func NewLibrary(defs ...cfg.ClipDef) Library {
	lib := make(Library, len(defs))
	for _, d := range defs {
		lib[d.Name] = Clip{Name: d.Name, Duration: d.Duration}
	}
	return lib
}

// Require checks that every named clip exists.
func (l Library) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := l[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %v", ErrMissingClip, missing)
	}
	return nil
}

// Controller is the handle the blend coordinator drives. Methods chain.
type Controller interface {
	Play() Controller
	Reset() Controller
	FadeIn(seconds float64) Controller
	FadeOut(seconds float64) Controller
	SetLoop(mode cfg.LoopMode, repetitions int) Controller
}

// Mixer owns the actions bound to one skeleton.
type Mixer struct {
	target  string
	lib     Library
	actions map[string]*Action
	order   []string
	time    float64
}

// NewMixer creates a mixer for the named skeletal target.
func NewMixer(target string, lib Library) *Mixer {
	return &Mixer{target: target, lib: lib, actions: make(map[string]*Action)}
}

// Bind returns the action for clipName, creating it on first use.
func (m *Mixer) Bind(clipName string) (*Action, error) {
	if a, ok := m.actions[clipName]; ok {
		return a, nil
	}
	clip, ok := m.lib[clipName]
	if !ok {
		return nil, fmt.Errorf("bind %q to %s: %w", clipName, m.target, ErrMissingClip)
	}
	a := newAction(clip)
	m.actions[clipName] = a
	m.order = append(m.order, clipName)
	return a, nil
}

// Advance moves every playing action forward by dt seconds.
func (m *Mixer) Advance(dt float64) {
	m.time += dt
	for _, name := range m.order {
		m.actions[name].advance(dt)
	}
}

// Time is the total time the mixer has advanced.
func (m *Mixer) Time() float64 { return m.time }

// Action returns a bound action.
func (m *Mixer) Action(clipName string) (*Action, bool) {
	a, ok := m.actions[clipName]
	return a, ok
}

// Weights reports the effective weight of every bound action.
func (m *Mixer) Weights() map[string]float64 {
	w := make(map[string]float64, len(m.actions))
	for name, a := range m.actions {
		w[name] = a.EffectiveWeight()
	}
	return w
}

// Advancer moves playback time forward.
type Advancer interface {
	Advance(dt float64)
}

var _ Advancer = (*Mixer)(nil)
