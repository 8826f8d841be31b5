package components

import (
	"github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/timeline"
	"github.com/yohamta/donburi"
)

// Ranged ability phases.
const (
	RangedCharge timeline.Phase = iota + 1 // projectile held in front of the avatar
	RangedPrimed                           // cast sound played, waiting to launch
	RangedFlight                           // projectile travelling
)

// Orbit ability phases.
const (
	OrbitCircling timeline.Phase = iota + 1
)

// Reversal ability phases.
const (
	ReversalTelegraph timeline.Phase = iota + 1
	ReversalActive                   // aura visible and growing
	ReversalBurst                    // particles visible
)

// Domain ability phases.
const (
	DomainAnnounce timeline.Phase = iota + 1
)

// AbilitiesData is the per-character ability context. Each sequence doubles
// as the ability's in-progress latch.
type AbilitiesData struct {
	Ranged   timeline.Sequence
	Orbit    timeline.Sequence
	Reversal timeline.Sequence

	// Effect entities spawned by the sequences, donburi.Null when absent.
	Projectile donburi.Entity
	OrbitBall  donburi.Entity
	Aura       donburi.Entity
	Burst      donburi.Entity

	// Override replaces the classified Action State while Overriding is set.
	Override   config.StateID
	Overriding bool
}

// NewAbilities builds idle sequences from the current tuning.
func NewAbilities() AbilitiesData {
	r := config.Abilities.Ranged
	o := config.Abilities.Orbit
	rev := config.Abilities.Reversal
	return AbilitiesData{
		Ranged: timeline.New(
			timeline.Segment{Phase: RangedCharge, Length: r.CastAfter},
			timeline.Segment{Phase: RangedPrimed, Length: r.LaunchAfter},
			timeline.Segment{Phase: RangedFlight, Length: r.ClearAfter - r.CastAfter - r.LaunchAfter},
		),
		Orbit: timeline.New(
			timeline.Segment{Phase: OrbitCircling, Length: o.ClearAfter},
		),
		Reversal: timeline.New(
			timeline.Segment{Phase: ReversalTelegraph, Length: rev.Telegraph},
			timeline.Segment{Phase: ReversalActive, Length: rev.Active},
			timeline.Segment{Phase: ReversalBurst, Length: rev.Burst},
		),
		Projectile: donburi.Null,
		OrbitBall:  donburi.Null,
		Aura:       donburi.Null,
		Burst:      donburi.Null,
	}
}

var Abilities = donburi.NewComponentType[AbilitiesData]()
