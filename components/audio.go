package components

import (
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests for the audio system (singleton component)
type AudioData struct {
	SFXVolume   float64 // 0.0 - 1.0
	Muted       bool
	PendingSFX  []cfg.SoundID
	PendingStop []cfg.SoundID
}

func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

func (a *AudioData) Stop(id cfg.SoundID) {
	a.PendingStop = append(a.PendingStop, id)
}

var Audio = donburi.NewComponentType[AudioData]()
