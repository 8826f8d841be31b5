package animation

import (
	"math"

	cfg "github.com/automoto/domain-expansion/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is one clip's playback state inside a mixer.
type Action struct {
	clip Clip

	time        float64
	weight      float64
	playing     bool
	paused      bool
	loop        cfg.LoopMode
	repetitions int
	loops       int

	fade *gween.Tween
}

var _ Controller = (*Action)(nil)

func newAction(clip Clip) *Action {
	return &Action{clip: clip, weight: 1, loop: cfg.LoopRepeat, repetitions: math.MaxInt}
}

func (a *Action) Clip() Clip { return a.clip }

// Play starts the action; it keeps its current time.
func (a *Action) Play() Controller {
	a.playing = true
	return a
}

// Stop halts playback and drops any pending fade.
func (a *Action) Stop() {
	a.playing = false
	a.fade = nil
	a.Reset()
}

// Reset rewinds the action and clears pause and fade state.
func (a *Action) Reset() Controller {
	a.time = 0
	a.loops = 0
	a.paused = false
	a.fade = nil
	return a
}

// FadeIn ramps the weight from zero to one.
func (a *Action) FadeIn(seconds float64) Controller {
	a.fadeTo(0, 1, seconds)
	return a
}

// FadeOut ramps the weight from its current value to zero. Stopped actions
// drop to zero at once.
func (a *Action) FadeOut(seconds float64) Controller {
	if !a.playing {
		seconds = 0
	}
	a.fadeTo(a.weight, 0, seconds)
	return a
}

func (a *Action) fadeTo(from, to, seconds float64) {
	if seconds <= 0 {
		a.weight = to
		a.fade = nil
		return
	}
	a.weight = from
	a.fade = gween.New(float32(from), float32(to), float32(seconds), ease.Linear)
}

// SetLoop sets the loop mode. repetitions is ignored for LoopOnce.
func (a *Action) SetLoop(mode cfg.LoopMode, repetitions int) Controller {
	a.loop = mode
	if repetitions <= 0 {
		repetitions = math.MaxInt
	}
	a.repetitions = repetitions
	return a
}

func (a *Action) Time() float64      { return a.time }
func (a *Action) Weight() float64    { return a.weight }
func (a *Action) IsRunning() bool    { return a.playing && !a.paused }
func (a *Action) Fading() bool       { return a.fade != nil }
func (a *Action) Finished() bool     { return a.paused }
func (a *Action) Loop() cfg.LoopMode { return a.loop }

// EffectiveWeight is the weight the renderer should blend with.
func (a *Action) EffectiveWeight() float64 {
	if !a.IsRunning() {
		return 0
	}
	return a.weight
}

func (a *Action) advance(dt float64) {
	if !a.playing {
		return
	}
	if a.fade != nil {
		w, done := a.fade.Update(float32(dt))
		a.weight = float64(w)
		if done {
			a.fade = nil
			if a.weight == 0 {
				// Fully faded out actions stop until played again.
				a.playing = false
				return
			}
		}
	}
	if a.paused {
		return
	}

	a.time += dt
	if a.clip.Duration <= 0 || a.time < a.clip.Duration {
		return
	}
	if a.loop == cfg.LoopOnce {
		a.time = a.clip.Duration
		a.paused = true
		return
	}
	a.loops++
	if a.loops >= a.repetitions {
		a.time = a.clip.Duration
		a.paused = true
		return
	}
	a.time = math.Mod(a.time, a.clip.Duration)
}
