package main

import (
	"fmt"
	"os"

	"taxicab/internal/config"
	"taxicab/internal/logging"
	"taxicab/internal/walker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	route, err := walker.Parse(cfg.Instructions)
	if err != nil {
		log.Fatal().Err(err).Msg("parse instructions")
	}

	pos := walker.Walk(route, log)
	log.Info().
		Stringer("pos", pos).
		Int("distance", pos.Manhattan()).
		Int("instructions", len(route)).
		Msg("walk done")
	fmt.Println(walker.DistanceLine(pos))
}
