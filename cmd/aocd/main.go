package main

import (
	"flag"

	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/observability"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/puzzles/builtin"
	"github.com/danmuck/aocctl/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "cmd/aocd/config.toml", "path to the aocd TOML config")
	flag.Parse()

	observability.InitLogger("aocd")
	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load aocd config")
	}
	log.Info().Str("path", *configPath).Msg("loaded aocd config")

	registry, err := builtin.NewRegistry(builtin.DefaultOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register puzzles")
	}
	runner := puzzles.NewRunner(registry, puzzles.RunnerConfig{Concurrency: cfg.Concurrency})

	srv := server.Appear(cfg, runner)
	log.Info().Str("id", srv.ID).Str("addr", srv.Addr).Msg("aocd started")
	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("aocd stopped")
	}
}
