package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/scenes"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds  image.Rectangle
	scene   *scenes.CharacterScene
	watcher *config.Watcher
}

func NewGame(scene *scenes.CharacterScene, watcher *config.Watcher) *Game {
	return &Game{
		bounds:  image.Rectangle{},
		scene:   scene,
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	g.reloadValues()
	g.scene.Update()
	return nil
}

// reloadValues drains pending tuning file changes and swaps in the new values.
func (g *Game) reloadValues() {
	if g.watcher == nil {
		return
	}
	log := logger.For("sandbox")
	for {
		select {
		case path := <-g.watcher.Events:
			values, err := config.LoadCharacterValues(path)
			if err != nil {
				log.Warn("tuning reload failed", "path", path, "err", err)
				continue
			}
			if err := g.scene.SetValues(values); err != nil {
				log.Warn("tuning rejected", "path", path, "err", err)
				continue
			}
			log.Info("tuning reloaded", "path", path)
		case err := <-g.watcher.Errors:
			log.Warn("watcher error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	valuesPath := flag.String("values", "", "Character tuning YAML file (hot reloaded)")
	enginePath := flag.String("config", "", "Engine and environment YAML file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: "console"})

	if *enginePath != "" {
		if err := config.LoadFile(*enginePath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var values *config.CharacterValues
	var watcher *config.Watcher
	if *valuesPath != "" {
		v, err := config.LoadCharacterValues(*valuesPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		values = v
		if watcher, err = config.NewWatcher(*valuesPath); err != nil {
			logger.L().Warn("tuning hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	scene, err := scenes.NewCharacterScene(scenes.Options{
		Interactive: true,
		Values:      values,
		Spawn:       mgl64.Vec3{0, 3, 0},
	})
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("degauss sandbox")
	ebiten.SetTPS(config.Engine.TickRate)

	if err := ebiten.RunGame(NewGame(scene, watcher)); err != nil {
		log.Fatal(err)
	}
}
