package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUpload        = errors.New("upload failed")
	ErrDelete        = errors.New("delete failed")
	ErrNotFound      = errors.New("object not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// WrapError attaches operation and key context to an error while keeping the
// cause reachable through errors.Is / errors.As.
func WrapError(operation, key string, err error) error {
	return fmt.Errorf("%s %q: %w", operation, key, err)
}

// BatchError folds the failed results of a batch operation into a single
// error wrapping kind. Returns nil when nothing failed.
func BatchError(kind error, results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}

	keys := make([]string, 0, len(failed))
	for _, r := range failed {
		keys = append(keys, r.Key)
	}

	return fmt.Errorf("%w: %d of %d keys (%s): %w",
		kind, len(failed), len(results), strings.Join(keys, ", "), failed[0].Error)
}
