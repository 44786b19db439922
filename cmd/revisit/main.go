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

	tracker := walker.FirstRevisit(route, log)
	if tracker.State() != walker.Found {
		log.Warn().Stringer("final", tracker.Position()).Msg("no revisit")
	}
	fmt.Println(walker.RevisitLine(tracker))
}
