// Package commands dispatches CLI commands onto a storage.Gateway.
package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rmedeiros/mediastore/pkg/storage"
)

// Supported commands.
const (
	Upload = "upload"
	Delete = "delete"
	URL    = "url"
)

// Run executes command against the gateway and returns its printable output
// (only the url command produces any). Batch commands log one line per key.
func Run(ctx context.Context, gw storage.Gateway, logger zerolog.Logger, command string, keys []string) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("command %q requires at least one key", command)
	}

	switch command {
	case Upload:
		results, err := gw.Upload(ctx, keys...)
		logResults(logger, command, results)
		return "", err

	case Delete:
		results, err := gw.Delete(ctx, keys...)
		logResults(logger, command, results)
		return "", err

	case URL:
		if len(keys) != 1 {
			return "", fmt.Errorf("command %q takes exactly one key", command)
		}

		url, err := gw.PresignedURL(ctx, keys[0])
		if err != nil {
			return "", err
		}
		if url == "" {
			logger.Warn().Str("key", keys[0]).Msg("object not found, no URL generated")
		}
		return url, nil

	default:
		return "", fmt.Errorf("unknown command: %s", command)
	}
}

func logResults(logger zerolog.Logger, command string, results []storage.Result) {
	for _, r := range results {
		if r.Success {
			logger.Info().
				Str("command", command).
				Str("key", r.Key).
				Dur("duration", r.Duration).
				Msg("key processed")
		} else {
			logger.Error().
				Err(r.Error).
				Str("command", command).
				Str("key", r.Key).
				Dur("duration", r.Duration).
				Msg("key failed")
		}
	}
}
