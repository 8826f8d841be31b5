package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/domain-expansion/assets"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/leveldata"
	"github.com/automoto/domain-expansion/logger"
	"github.com/automoto/domain-expansion/systems"
	"github.com/automoto/domain-expansion/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the simulation in one arena.
type ArenaScene struct {
	ecs     *ecs.ECS
	arena   *leveldata.Arena
	saved   *systems.SavedSettings
	watcher *cfg.Watcher
	once    sync.Once
	err     error
}

// NewArenaScene creates the scene. saved and watcher may be nil.
func NewArenaScene(arena *leveldata.Arena, saved *systems.SavedSettings, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{arena: arena, saved: saved, watcher: watcher}
}

// Update advances one fixed tick. It returns the configuration error that
// stopped the scene, if any.
func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)
	if as.err != nil {
		return as.err
	}
	as.drainWatcher()
	systems.Tick(as.ecs, time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	log := logger.For("scene")

	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		log.Warn("shaders unavailable, expansion palette disabled", "err", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Device polling runs before the simulation, audio output after it.
	e.AddSystem(systems.PollDevices)
	e.AddSystem(systems.UpdateSettingsKeys)
	systems.AddCoreSystems(e)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.HUD, systems.DrawDebug)

	factory.CreateScene(e, factory.NewPhysicsWorld(), nil)
	factory.CreateArena(e, as.arena)
	systems.ApplySavedSettings(e, as.saved)

	if _, err := factory.CreateCharacter(e, as.arena.Spawn, factory.DefaultClips()); err != nil {
		as.err = err
		return
	}

	as.ecs = e
	log.Info("arena ready", "arena", as.arena.Name, "spawn", as.arena.Spawn)
}

// drainWatcher applies tuning files written since the last tick. A file that
// fails to parse keeps the previous configuration.
func (as *ArenaScene) drainWatcher() {
	if as.watcher == nil {
		return
	}
	log := logger.For("config")
	for {
		select {
		case path := <-as.watcher.Events:
			t, err := cfg.Load(path)
			if err != nil {
				log.Warn("tuning rejected", "path", path, "err", err)
				continue
			}
			cfg.Apply(t)
			log.Info("tuning reloaded", "path", path)
		case err := <-as.watcher.Errors:
			log.Warn("watch error", "err", err)
		default:
			return
		}
	}
}
