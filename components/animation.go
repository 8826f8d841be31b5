package components

import (
	"github.com/automoto/domain-expansion/animation"
	"github.com/automoto/domain-expansion/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the blend coordinator's context: the mixer and one bound
// action per Action State.
type AnimationData struct {
	Mixer   animation.Advancer
	Actions [config.StateCount]animation.Controller
}

var Animation = donburi.NewComponentType[AnimationData]()
