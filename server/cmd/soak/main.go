package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/match"
	"github.com/automoto/doomerang-duel/server/core"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	rounds := flag.Int("rounds", 10, "Number of matches to play")
	seed := flag.Uint64("seed", 1, "Seed of the random intent stream")
	maxTicks := flag.Uint64("maxticks", 60*60*3, "Ticks after which a round is cut")
	fast := flag.Bool("fast", false, "Tick as fast as possible instead of in real time")
	flag.Parse()

	rules := config.Default()
	rules.Loop.TickRate = *tickRate

	sim, err := match.NewSimulator(rules)
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	soak := core.NewSoak(sim, core.NewRandomIntents(*seed), *rounds, *maxTicks)
	loop := core.NewGameLoop(soak, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[soak] interrupted")
		loop.Stop()
	}()

	log.Printf("[soak] playing %d rounds (seed %d, tick rate %d/s, fast %v)", *rounds, *seed, *tickRate, *fast)
	if *fast {
		loop.RunFast()
	} else {
		loop.Run()
	}

	report := soak.Report()
	log.Printf("[soak] %d rounds, %d ticks, results %v", report.Rounds, report.Ticks, report.Wins)
	if len(report.Violations) > 0 {
		log.Fatalf("[soak] %d invariant violations", len(report.Violations))
	}
}
