package systems

import (
	"sync"

	"github.com/automoto/domain-expansion/assets"
	"github.com/automoto/domain-expansion/components"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalToneLoader   *assets.ToneLoader
	activePlayers      = make(map[cfg.SoundID][]*audio.Player)
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalToneLoader = assets.NewToneLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every cue at startup so the first play does not
// stall a tick.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Audio.Tones {
		if err := globalToneLoader.Preload(id); err != nil {
			logger.For("audio").Warn("preload failed", "sound", id, "err", err)
		}
	}
}

// UpdateAudio drains the stop and play queues.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	initGlobalAudio()
	a := components.Audio.Get(entry)

	for _, id := range a.PendingStop {
		stopSFX(id)
	}
	a.PendingStop = a.PendingStop[:0]

	for _, id := range a.PendingSFX {
		playSFX(id, a)
	}
	a.PendingSFX = a.PendingSFX[:0]

	reapPlayers()
}

func playSFX(id cfg.SoundID, a *components.AudioData) {
	if a.Muted || a.SFXVolume <= 0 {
		return
	}
	player, err := globalToneLoader.Load(id)
	if err != nil {
		logger.For("audio").Debug("no player", "sound", id, "err", err)
		return
	}
	player.SetVolume(a.SFXVolume)
	player.Play()
	activePlayers[id] = append(activePlayers[id], player)
}

func stopSFX(id cfg.SoundID) {
	for _, p := range activePlayers[id] {
		_ = p.Close()
	}
	delete(activePlayers, id)
}

// reapPlayers closes players that have finished.
func reapPlayers() {
	for id, players := range activePlayers {
		live := players[:0]
		for _, p := range players {
			if p.IsPlaying() {
				live = append(live, p)
				continue
			}
			_ = p.Close()
		}
		if len(live) == 0 {
			delete(activePlayers, id)
			continue
		}
		activePlayers[id] = live
	}
}

// SetSFXVolume changes the effect volume of the scene and of cues already
// playing.
func SetSFXVolume(e *ecs.ECS, volume float64) {
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).SFXVolume = volume
	}
	for _, players := range activePlayers {
		for _, p := range players {
			p.SetVolume(volume)
		}
	}
}
