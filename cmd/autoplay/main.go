package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/connect4/automatic"
	"github.com/domino14/connect4/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep, err := automatic.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("running games")
	}
	if cfg.GetBool(config.ConfigHistogram) {
		if err := rep.PrintLengthHistogram(os.Stderr, 12, 50); err != nil {
			log.Err(err).Msg("printing histogram")
		}
	}
	out, err := rep.YAML()
	if err != nil {
		log.Fatal().Err(err).Msg("marshalling report")
	}

	path := cfg.GetString(config.ConfigOutput)
	if path == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("writing report")
	}
	log.Info().Str("path", path).Int("games", rep.Games).Msg("report written")
}
