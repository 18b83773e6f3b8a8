package core

import (
	"context"
	"errors"
	"time"

	"github.com/automoto/degauss/logger"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// Ticker is anything advanced once per fixed step.
type Ticker interface {
	Update()
}

// GameLoop drives a Ticker at a fixed rate until its context ends or MaxTicks is reached.
type GameLoop struct {
	target   Ticker
	tickRate int
	// MaxTicks stops the loop after that many ticks; 0 runs until cancelled
	MaxTicks int
	// OnTick runs after every tick with the tick count
	OnTick func(tick int)
	ticks  int
}

func NewGameLoop(target Ticker, tickRate int) *GameLoop {
	return &GameLoop{
		target:   target,
		tickRate: tickRate,
	}
}

// Run blocks until ctx is done or MaxTicks ticks have run. It returns nil in both cases.
func (g *GameLoop) Run(ctx context.Context) error {
	if g.tickRate <= 0 {
		return ErrInvalidTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log := logger.For("loop")
	log.Info("game loop started", "tick_rate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Info("game loop stopped", "ticks", g.ticks)
			return nil
		case <-ticker.C:
			g.tick()
			if g.MaxTicks > 0 && g.ticks >= g.MaxTicks {
				log.Info("game loop finished", "ticks", g.ticks)
				return nil
			}
		}
	}
}

// Ticks returns how many ticks have run.
func (g *GameLoop) Ticks() int { return g.ticks }

func (g *GameLoop) tick() {
	g.target.Update()
	g.ticks++
	if g.OnTick != nil {
		g.OnTick(g.ticks)
	}
}
