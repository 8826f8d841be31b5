package components

import (
	"time"

	"github.com/automoto/domain-expansion/config"
	"github.com/yohamta/donburi"
)

// StateData holds the Action State of a character. PreviousState is the
// state whose fades were last applied by the blend coordinator.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    time.Duration
}

var State = donburi.NewComponentType[StateData]()
