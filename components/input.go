package components

import (
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/input"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's snapshots.
// Press edges are computed on demand by comparing the two.
type InputData struct {
	Live     *input.State // written by device callbacks
	Current  input.Snapshot
	Previous input.Snapshot
	// PointerCaptured is the exclusive pointer capture gate.
	PointerCaptured bool
}

// Capture rolls the current snapshot into Previous and reads the live state.
func (d *InputData) Capture() {
	d.Previous = d.Current
	if d.Live != nil {
		d.Current = d.Live.Capture()
	} else {
		d.Current = input.Snapshot{}
	}
}

func (d *InputData) Held(id cfg.InputID) bool {
	return d.Current.Held(id)
}

func (d *InputData) JustPressed(id cfg.InputID) bool {
	return d.Current.JustPressed(d.Previous, id)
}

var Input = donburi.NewComponentType[InputData]()
