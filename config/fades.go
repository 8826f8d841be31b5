package config

// Fade durations in seconds.
const (
	DefaultFadeIn  = 0.1
	DefaultFadeOut = 0.1

	ChannelFadeIn     = 0.2
	DomainFadeIn      = 0.5
	DomainExitFadeOut = 1.0
	GuardSwapFadeOut  = 0.4
)

// FadePlan is what the blend coordinator does when moving between two states.
// FadeOut holds the fade-out duration for every state's clip; the entry of the
// next state is unused.
type FadePlan struct {
	FadeIn  float64
	FadeOut [StateCount]float64
	// PlayOnce sets the incoming clip to play a single time.
	PlayOnce bool
}

// Transitions is the exhaustive current × next fade table.
var Transitions [StateCount][StateCount]FadePlan

func init() {
	for cur := StateID(0); cur < StateCount; cur++ {
		for next := StateID(0); next < StateCount; next++ {
			Transitions[cur][next] = buildFadePlan(cur, next)
		}
	}
}

func buildFadePlan(_, next StateID) FadePlan {
	plan := FadePlan{
		FadeIn:   fadeInFor(next),
		PlayOnce: CharacterClips[next].Loop == LoopOnce,
	}
	for s := StateID(0); s < StateCount; s++ {
		if s == next {
			continue
		}
		plan.FadeOut[s] = DefaultFadeOut
	}

	// Slow fade of the domain pose back to idle.
	if next == Idle {
		plan.FadeOut[DomainExpansion] = DomainExitFadeOut
	}
	// The other guard fades slower so switching sides does not snap.
	if next.IsGuard() {
		plan.FadeOut[next.OppositeGuard()] = GuardSwapFadeOut
	}
	return plan
}

func fadeInFor(next StateID) float64 {
	switch next {
	case Run, AbilityRangedChannel, AbilityOrbitChannel:
		return ChannelFadeIn
	case DomainExpansion:
		return DomainFadeIn
	}
	return DefaultFadeIn
}
