// Package convert re-encodes uploaded images to lossy WEBP before they are
// staged for upload.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	// Registered decoders for the accepted input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog"
)

var (
	ErrConversion        = errors.New("conversion failed")
	ErrMissingDependency = errors.New("content integration not configured")
)

// DefaultQuality is the fixed lossy encoding quality.
const DefaultQuality = 75

// replacedExtensions are swapped for .webp in the converted name, first
// match wins.
var replacedExtensions = []string{".jpg", ".jpeg", ".png", ".svg", ".gif"}

// Source is an in-memory image pending conversion.
type Source struct {
	Name string
	Data []byte
}

// Content is the minimal surface the consuming model layer needs from a
// converted image.
type Content interface {
	Name() string
	Size() int64
	Bytes() []byte
}

// Factory adapts converted bytes into the caller's content type. The model
// integration supplies one at construction; without it the converter refuses
// to run.
type Factory func(name string, data []byte) (Content, error)

// Converter re-encodes images to WEBP at a fixed quality.
type Converter struct {
	factory Factory
	quality float32
	logger  zerolog.Logger
}

// New returns a Converter that hands results to factory. A nil factory is
// legal at construction and rejected at conversion time, mirroring an absent
// model integration.
func New(factory Factory, logger zerolog.Logger) *Converter {
	return &Converter{
		factory: factory,
		quality: DefaultQuality,
		logger:  logger,
	}
}

// ToWebP converts each source to lossy WEBP, forcing a 3-channel color
// conversion, and renames it by swapping the original extension for .webp.
// Every source is processed; the first failure is reported after the batch
// completes.
func (c *Converter) ToWebP(sources ...*Source) ([]Content, error) {
	if c.factory == nil {
		return nil, ErrMissingDependency
	}

	contents := make([]Content, 0, len(sources))
	var firstErr error

	for _, src := range sources {
		content, err := c.convertOne(src)
		if err != nil {
			c.logger.Error().Err(err).Str("name", src.Name).Msg("conversion failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		c.logger.Debug().
			Str("name", content.Name()).
			Int64("size", content.Size()).
			Msg("converted to webp")
		contents = append(contents, content)
	}

	return contents, firstErr
}

func (c *Converter) convertOne(src *Source) (Content, error) {
	img, _, err := image.Decode(bytes.NewReader(src.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrConversion, src.Name, err)
	}

	// EncodeRGB drops any alpha channel, the WEBP equivalent of an RGB
	// conversion.
	data, err := webp.EncodeRGB(img, c.quality)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %q: %w", ErrConversion, src.Name, err)
	}

	content, err := c.factory(WebPName(src.Name), data)
	if err != nil {
		return nil, fmt.Errorf("%w: wrap %q: %w", ErrConversion, src.Name, err)
	}

	return content, nil
}

// WebPName swaps the first known extension found in name for .webp. Names
// without a known extension pass through unchanged.
func WebPName(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range replacedExtensions {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)] + ".webp"
		}
	}
	return name
}
