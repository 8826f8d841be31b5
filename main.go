package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/domain-expansion/assets"
	cfg "github.com/automoto/domain-expansion/config"
	"github.com/automoto/domain-expansion/leveldata"
	"github.com/automoto/domain-expansion/logger"
	"github.com/automoto/domain-expansion/scenes"
	"github.com/automoto/domain-expansion/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.ArenaScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Window.Width, cfg.Window.Height
}

func main() {
	if err := run(); err != nil {
		logger.L().Error("exit", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		tuningPath = flag.String("config", "", "YAML tuning file overlaid on the defaults")
		watch      = flag.Bool("watch", false, "reload the tuning file when it changes")
		arenaName  = flag.String("arena", assets.DefaultArena, "embedded arena name, or a path to a .tmx file")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
		logFormat  = flag.String("log-format", "console", "console, text or json")
	)
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})
	log := logger.For("main")

	var watcher *cfg.Watcher
	if *tuningPath != "" {
		t, err := cfg.Load(*tuningPath)
		if err != nil {
			return err
		}
		cfg.Apply(t)
		log.Info("tuning loaded", "path", *tuningPath)

		if *watch {
			watcher, err = cfg.Watch(*tuningPath)
			if err != nil {
				return fmt.Errorf("watch %s: %w", *tuningPath, err)
			}
			defer watcher.Close()
		}
	} else if *watch {
		return errors.New("-watch needs -config")
	}

	arena, err := loadArena(*arenaName)
	if err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not persist", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn("saved settings ignored", "err", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(&Game{scene: scenes.NewArenaScene(arena, saved, watcher)})
}

// loadArena accepts an embedded arena name or a .tmx path on disk.
func loadArena(name string) (*leveldata.Arena, error) {
	if _, err := os.Stat(name); err == nil {
		return leveldata.LoadArena(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadArena(name)
}
