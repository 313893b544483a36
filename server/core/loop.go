package core

import (
	"log"
	"time"
)

type GameLoop struct {
	soak     *Soak
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(soak *Soak, tickRate int) *GameLoop {
	return &GameLoop{
		soak:     soak,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[soak] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[soak] loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// RunFast ticks back to back, without waiting for the wall clock.
func (g *GameLoop) RunFast() {
	for {
		select {
		case <-g.stopChan:
			return
		default:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	select {
	case <-g.stopChan:
	default:
		close(g.stopChan)
	}
}

func (g *GameLoop) tick() {
	if g.soak.Step() {
		g.Stop()
	}
}
