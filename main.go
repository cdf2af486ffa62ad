package main

import (
	"crypto/rand"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/config"
	"github.com/robalobadob/guess/internal/console"
	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/logging"
	"github.com/robalobadob/guess/internal/prompt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(config.Config{LogLevel: "warn", LogFormat: "auto"}, os.Stderr)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg, os.Stderr)

	g, err := game.New(rand.Reader)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	state, err := console.Play(prompt.New(os.Stdin, os.Stdout), g)
	if err != nil {
		log.Fatal().Err(err).Str("game", g.ID).Msg("terminal failed")
	}
	log.Debug().Str("game", g.ID).Str("state", string(state)).Msg("exiting")
}
