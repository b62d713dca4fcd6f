package storage

import (
	"context"
	"time"
)

// Gateway performs object-level operations against a single configured bucket.
// Implementations are safe for concurrent use: nothing mutates gateway state
// after construction.
type Gateway interface {
	// Upload ships staged local files to the bucket, one per key.
	// Each key maps to a staging file under the configured staging directory;
	// after a successful upload the staged copy (and its now-empty parent
	// directory) is removed. Every key is processed; the returned error
	// aggregates the keys that failed.
	Upload(ctx context.Context, keys ...string) ([]Result, error)

	// Delete removes the objects identified by keys from the bucket.
	// Every key is processed; the returned error aggregates failures.
	Delete(ctx context.Context, keys ...string) ([]Result, error)

	// PresignedURL returns a time-limited GET URL for key, or "" (with a nil
	// error) when the object does not exist. Probe failures other than
	// not-found surface as errors.
	PresignedURL(ctx context.Context, key string) (string, error)

	// Close releases resources held by the gateway.
	Close() error
}

// Result records the outcome of one key in a batch operation.
type Result struct {
	Key      string
	Success  bool
	Error    error
	Duration time.Duration
}

// Failed returns the subset of results that did not succeed.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
