package s3

import (
	"fmt"
	"time"

	"github.com/rmedeiros/mediastore/pkg/staging"
	"github.com/rmedeiros/mediastore/pkg/storage"
)

// DefaultPresignExpiry is the validity window of generated presigned URLs.
const DefaultPresignExpiry = 3600 * time.Second

// Config holds the connection settings for one bucket. Values are fixed at
// construction time; the gateway never mutates them.
type Config struct {
	Endpoint        string // optional, for MinIO / LocalStack / R2
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	StagingDir      string        // local staging root, defaults to temp/media
	ForcePathStyle  bool          // required by MinIO and LocalStack
	PresignExpiry   time.Duration // defaults to DefaultPresignExpiry
}

func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("%w: missing bucket", storage.ErrInvalidConfig)
	}
	if c.Region == "" {
		return fmt.Errorf("%w: missing region", storage.ErrInvalidConfig)
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("%w: missing credentials", storage.ErrInvalidConfig)
	}
	return nil
}

func (c *Config) stagingDir() string {
	if c.StagingDir != "" {
		return c.StagingDir
	}
	return staging.DefaultDir
}

func (c *Config) presignExpiry() time.Duration {
	if c.PresignExpiry > 0 {
		return c.PresignExpiry
	}
	return DefaultPresignExpiry
}

// redactKeyID keeps just enough of an access key id to recognize it in logs.
func redactKeyID(keyID string) string {
	if len(keyID) <= 4 {
		return "****"
	}
	return keyID[:4] + "****"
}
