package config

// StateID is the Action State of a character for one tick.
type StateID int

const (
	Idle StateID = iota
	Walk
	Run
	Jump
	GuardLeft
	GuardRight
	AbilityRangedChannel
	AbilityOrbitChannel
	AbilityRangedProjectileActive
	DomainExpansion
	StateCount // Must be last - used for array sizing
)

var stateNames = [StateCount]string{
	Idle:                          "idle",
	Walk:                          "walk",
	Run:                           "run",
	Jump:                          "jump",
	GuardLeft:                     "guard_left",
	GuardRight:                    "guard_right",
	AbilityRangedChannel:          "ranged_channel",
	AbilityOrbitChannel:           "orbit_channel",
	AbilityRangedProjectileActive: "ranged_projectile_active",
	DomainExpansion:               "domain_expansion",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the enumerated states.
func (s StateID) Valid() bool {
	return s >= 0 && s < StateCount
}

// IsGuard reports whether s is one of the two guard directions.
func (s StateID) IsGuard() bool {
	return s == GuardLeft || s == GuardRight
}

// OppositeGuard returns the other guard direction, or StateCount for non-guard states.
func (s StateID) OppositeGuard() StateID {
	switch s {
	case GuardLeft:
		return GuardRight
	case GuardRight:
		return GuardLeft
	}
	return StateCount
}
