package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T) image.Image {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 128, A: 255})
		}
	}
	return img
}

func pngSource(t *testing.T, name string) *Source {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(t)))
	return &Source{Name: name, Data: buf.Bytes()}
}

func gifSource(t *testing.T, name string) *Source {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, testImage(t), nil))
	return &Source{Name: name, Data: buf.Bytes()}
}

func assertWebP(t *testing.T, data []byte) {
	t.Helper()

	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestToWebP(t *testing.T) {
	conv := New(MemFactory, zerolog.Nop())

	t.Run("png source", func(t *testing.T) {
		contents, err := conv.ToWebP(pngSource(t, "photo.png"))
		require.NoError(t, err)
		require.Len(t, contents, 1)

		assert.Equal(t, "photo.webp", contents[0].Name())
		assert.Equal(t, int64(len(contents[0].Bytes())), contents[0].Size())
		assertWebP(t, contents[0].Bytes())
	})

	t.Run("gif source", func(t *testing.T) {
		contents, err := conv.ToWebP(gifSource(t, "anim.gif"))
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, "anim.webp", contents[0].Name())
		assertWebP(t, contents[0].Bytes())
	})

	t.Run("batch continues past undecodable source", func(t *testing.T) {
		bad := &Source{Name: "broken.jpg", Data: []byte("not an image")}

		contents, err := conv.ToWebP(pngSource(t, "a.png"), bad, pngSource(t, "b.png"))
		assert.ErrorIs(t, err, ErrConversion)
		require.Len(t, contents, 2, "good sources must still convert")
		assert.Equal(t, "a.webp", contents[0].Name())
		assert.Equal(t, "b.webp", contents[1].Name())
	})

	t.Run("factory failure wraps conversion error", func(t *testing.T) {
		failing := New(func(string, []byte) (Content, error) {
			return nil, errors.New("model layer rejected content")
		}, zerolog.Nop())

		contents, err := failing.ToWebP(pngSource(t, "a.png"))
		assert.ErrorIs(t, err, ErrConversion)
		assert.Empty(t, contents)
	})

	t.Run("nil factory fails fast", func(t *testing.T) {
		bare := New(nil, zerolog.Nop())

		contents, err := bare.ToWebP(pngSource(t, "a.png"))
		assert.ErrorIs(t, err, ErrMissingDependency)
		assert.Nil(t, contents)
	})
}

func TestWebPName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "jpg", in: "photo.jpg", want: "photo.webp"},
		{name: "jpeg", in: "photo.jpeg", want: "photo.webp"},
		{name: "png", in: "photo.png", want: "photo.webp"},
		{name: "gif", in: "photo.gif", want: "photo.webp"},
		{name: "svg", in: "logo.svg", want: "logo.webp"},
		{name: "uppercase extension", in: "photo.JPG", want: "photo.webp"},
		{name: "unknown extension passes through", in: "archive.bmp", want: "archive.bmp"},
		{name: "no extension passes through", in: "photo", want: "photo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WebPName(tt.in))
		})
	}
}
