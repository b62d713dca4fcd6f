package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rmedeiros/mediastore/pkg/commands"
	"github.com/rmedeiros/mediastore/pkg/config"
	"github.com/rmedeiros/mediastore/pkg/logger"
	"github.com/rmedeiros/mediastore/pkg/storage/s3"
)

func main() {
	// Initialize logger with default settings for now
	logger.Init("info", "json")
	log := logger.Get()

	// Credentials may live in a .env next to the binary
	_ = godotenv.Load()

	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <config.json> <upload|delete|url> <key>...\n", os.Args[0])
		os.Exit(2)
	}

	configFile := os.Args[1]
	command := os.Args[2]
	keys := os.Args[3:]

	if err := config.Validate(configFile); err != nil {
		log.Fatal().Err(err).Str("config_file", configFile).Msg("invalid config file")
	}

	cfg, err := config.ParseConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config file")
	}

	// Re-init with the configured level/format
	logger.Init(cfg.GetLogLevel(), cfg.GetLogFormat())
	log = logger.Get()

	log.Info().
		Str("config_file", configFile).
		Str("command", command).
		Int("keys", len(keys)).
		Msg("starting mediastore")

	ctx := context.Background()

	gw, err := s3.New(ctx, s3.Config{
		Endpoint:        cfg.Endpoint,
		Region:          cfg.GetRegion(),
		Bucket:          cfg.Bucket,
		AccessKeyID:     cfg.GetAccessKeyID(),
		SecretAccessKey: cfg.GetSecretAccessKey(),
		StagingDir:      cfg.GetStagingDir(),
		ForcePathStyle:  cfg.ForcePathStyle,
		PresignExpiry:   cfg.GetPresignExpiry(),
	}, *log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gateway")
	}
	defer gw.Close()

	out, err := commands.Run(ctx, gw, *log, command, keys)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	if out != "" {
		fmt.Println(out)
	}

	log.Info().Str("command", command).Msg("mediastore completed successfully")
}
