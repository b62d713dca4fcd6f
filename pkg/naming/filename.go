// Package naming generates bucket object keys for uploaded media files.
package naming

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

const (
	// TimestampFormat is the second-resolution part of a media key.
	TimestampFormat = "2006-01-02-15-04-05"

	randomMin = 1000
	randomMax = 9999
)

var invalidRunes = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// ImageFilename builds the object key for an image owned by an entity:
//
//	<EntityType>/<stamp>/<stamp>-<4-digit random>.<ext>
//
// where stamp is the entity's creation timestamp down to microseconds and ext
// is taken verbatim from the original filename (case preserved). The final
// segment passes through ValidFilename, so whatever the uploader named the
// file, the stored key is filesystem- and URL-safe.
func ImageFilename(entityType string, createdAt time.Time, original string) string {
	stamp := Timestamp(createdAt)
	name := fmt.Sprintf("%s-%04d.%s", stamp, randomSuffix(), extension(original))
	return fmt.Sprintf("%s/%s/%s", entityType, stamp, ValidFilename(name))
}

// Timestamp renders a creation time as the key segment used by ImageFilename.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s-%06d", t.Format(TimestampFormat), t.Nanosecond()/1000)
}

// ValidFilename strips a filename down to [A-Za-z0-9._-]: surrounding
// whitespace is trimmed, inner spaces become underscores, everything else
// outside the set is dropped.
func ValidFilename(filename string) string {
	filename = strings.ReplaceAll(strings.TrimSpace(filename), " ", "_")
	return invalidRunes.ReplaceAllString(filename, "")
}

// extension returns everything after the last dot, or the whole name when
// there is no dot.
func extension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx+1:]
	}
	return filename
}

func randomSuffix() int {
	return randomMin + rand.Intn(randomMax-randomMin+1)
}
