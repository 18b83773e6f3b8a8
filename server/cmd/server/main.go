package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/scenes"
	"github.com/automoto/degauss/server/core"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	valuesPath := flag.String("values", "", "Character tuning YAML file")
	enginePath := flag.String("config", "", "Engine and environment YAML file")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "Log format (console, text, json)")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})

	if *enginePath != "" {
		if err := config.LoadFile(*enginePath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	var values *config.CharacterValues
	if *valuesPath != "" {
		v, err := config.LoadCharacterValues(*valuesPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		values = v
	}

	scene, err := scenes.NewCharacterScene(scenes.Options{
		Values: values,
		Spawn:  mgl64.Vec3{0, 3, 0},
	})
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := core.NewGameLoop(scene, config.Engine.TickRate)
	loop.MaxTicks = *ticks
	loop.OnTick = func(tick int) {
		if config.Debug.LogTicks <= 0 || tick%config.Debug.LogTicks != 0 {
			return
		}
		character := scene.Character()
		body := components.Body.Get(character)
		physics := components.Physics.Get(character)
		logger.For("server").Info("character",
			"tick", tick,
			"pos", body.Position,
			"vel", body.LinearVelocity,
			"grounded", physics.IsGrounded(),
			"wall_running", physics.WallRunning,
			"anim", components.Animation.Get(character).State.String(),
		)
	}

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Loop error: %v", err)
	}
}
