package config

import (
	"os"
	"time"

	"github.com/rmedeiros/mediastore/pkg/staging"
)

// Environment variables that override file-based credentials so secrets can
// stay out of the config file entirely.
const (
	EnvAccessKeyID     = "MEDIASTORE_ACCESS_KEY_ID"
	EnvSecretAccessKey = "MEDIASTORE_SECRET_ACCESS_KEY"
)

// Config is the root configuration structure
type Config struct {
	Endpoint             string `json:"endpoint,omitempty"`               // optional, for MinIO / LocalStack
	Region               string `json:"region,omitempty"`                 // default: us-east-1
	Bucket               string `json:"bucket"`
	AccessKeyID          string `json:"access_key_id,omitempty"`          // env override preferred
	SecretAccessKey      string `json:"secret_access_key,omitempty"`      // env override preferred
	StagingDir           string `json:"staging_dir,omitempty"`            // default: temp/media
	ForcePathStyle       bool   `json:"force_path_style,omitempty"`       // for MinIO / LocalStack
	PresignExpirySeconds int    `json:"presign_expiry_seconds,omitempty"` // default: 3600
	LogLevel             string `json:"log_level,omitempty"`              // debug, info, warn, error (default: info)
	LogFormat            string `json:"log_format,omitempty"`             // json, console (default: json)
}

// GetRegion returns the region (defaults to us-east-1)
func (c *Config) GetRegion() string {
	if c.Region != "" {
		return c.Region
	}
	return "us-east-1"
}

// GetStagingDir returns the local staging root (defaults to temp/media)
func (c *Config) GetStagingDir() string {
	if c.StagingDir != "" {
		return c.StagingDir
	}
	return staging.DefaultDir
}

// GetPresignExpiry returns the presigned URL validity window (defaults to 3600s)
func (c *Config) GetPresignExpiry() time.Duration {
	if c.PresignExpirySeconds > 0 {
		return time.Duration(c.PresignExpirySeconds) * time.Second
	}
	return 3600 * time.Second
}

// GetAccessKeyID returns the access key id, preferring the environment
func (c *Config) GetAccessKeyID() string {
	if v := os.Getenv(EnvAccessKeyID); v != "" {
		return v
	}
	return c.AccessKeyID
}

// GetSecretAccessKey returns the secret access key, preferring the environment
func (c *Config) GetSecretAccessKey() string {
	if v := os.Getenv(EnvSecretAccessKey); v != "" {
		return v
	}
	return c.SecretAccessKey
}

// GetLogLevel returns the log level (defaults to info)
func (c *Config) GetLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	return "info"
}

// GetLogFormat returns the log format (defaults to json)
func (c *Config) GetLogFormat() string {
	if c.LogFormat != "" {
		return c.LogFormat
	}
	return "json"
}
