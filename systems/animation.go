package systems

import (
	"github.com/automoto/domain-expansion/animation"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation applies state transitions to the action table and advances
// the mixer.
func UpdateAnimation(e *ecs.ECS) {
	dt := clockOf(e).DT()
	tags.Character.Each(e.World, func(c *donburi.Entry) {
		state := components.State.Get(c)
		anim := components.Animation.Get(c)
		rig := components.FollowRig.Get(c)

		if state.CurrentState != state.PreviousState {
			ApplyTransition(&anim.Actions, state.PreviousState, state.CurrentState)
			state.PreviousState = state.CurrentState
		}

		if anim.Mixer == nil {
			return
		}
		if state.CurrentState == cfg.Walk {
			// Tie the walk cycle to ground covered so feet do not slide.
			anim.Mixer.Advance(dt * rig.Traveled * cfg.Animation.WalkPlaybackScale)
			return
		}
		anim.Mixer.Advance(dt)
	})
}

// ApplyTransition fades out every action except next's and fades next in,
// using the fade plan for the pair. It does nothing when cur == next.
func ApplyTransition(actions *[cfg.StateCount]animation.Controller, cur, next cfg.StateID) {
	if cur == next || !next.Valid() {
		return
	}
	plan := cfg.Transitions[normalize(cur)][next]

	for s := cfg.StateID(0); s < cfg.StateCount; s++ {
		if s == next || actions[s] == nil {
			continue
		}
		actions[s].FadeOut(plan.FadeOut[s])
	}

	in := actions[next]
	if in == nil {
		return
	}
	in.Reset()
	if plan.PlayOnce {
		in.SetLoop(cfg.LoopOnce, 1)
	}
	in.FadeIn(plan.FadeIn).Play()
}

func normalize(s cfg.StateID) cfg.StateID {
	if !s.Valid() {
		return cfg.Idle
	}
	return s
}
