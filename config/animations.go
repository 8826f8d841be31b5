package config

// LoopMode mirrors the looping options of a clip action.
type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce
)

// ClipDef describes the clip bound to an Action State.
type ClipDef struct {
	Name     string
	Duration float64 // seconds
	Loop     LoopMode
}

// CharacterClips maps each Action State to its clip. Every entry must resolve
// in the clip library before a character can be created.
var CharacterClips = [StateCount]ClipDef{
	Idle:                          {Name: "idle", Duration: 2.0, Loop: LoopRepeat},
	Walk:                          {Name: "walk", Duration: 1.0, Loop: LoopRepeat},
	Run:                           {Name: "run", Duration: 0.7, Loop: LoopRepeat},
	Jump:                          {Name: "jump", Duration: 1.1, Loop: LoopRepeat},
	GuardLeft:                     {Name: "guard_left", Duration: 0.8, Loop: LoopRepeat},
	GuardRight:                    {Name: "guard_right", Duration: 0.8, Loop: LoopRepeat},
	AbilityRangedChannel:          {Name: "ranged", Duration: 1.2, Loop: LoopOnce},
	AbilityOrbitChannel:           {Name: "orbit", Duration: 1.0, Loop: LoopOnce},
	AbilityRangedProjectileActive: {Name: "release", Duration: 0.5, Loop: LoopOnce},
	DomainExpansion:               {Name: "domain", Duration: 5.0, Loop: LoopRepeat},
}

// RequiredClips lists the clip names a character needs.
func RequiredClips() []string {
	names := make([]string, 0, len(CharacterClips))
	for _, def := range CharacterClips {
		names = append(names, def.Name)
	}
	return names
}
