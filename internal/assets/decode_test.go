package assets

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   string
		err    error
	}{
		{"radiance", []byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n"), "hdr", nil},
		{"rgbe", []byte("#?RGBE\n"), "hdr", nil},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}, "png", nil},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}, "jpg", nil},
		{"zip is not an image", []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}, "", ErrUnsupportedFormat},
		{"plain text", []byte("hello world"), "", ErrUnsupportedFormat},
		{"empty", nil, "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sniffFormat(tt.header)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeImageFilePNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "metal.png", 4, 2, color.RGBA{R: 200, A: 255})

	img, format, err := decodeImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestDecodeImageFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	_, _, err := decodeImageFile(path)
	assert.ErrorIs(t, err, ErrNotFound)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Path)
}

func TestDecodeImageFileUnsupported(t *testing.T) {
	path := writeRaw(t, t.TempDir(), "notes.png", []byte("definitely not pixels"))

	_, _, err := decodeImageFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeImageFileCorrupt(t *testing.T) {
	// Valid PNG signature, garbage body.
	data := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, []byte("garbage chunk data")...)
	path := writeRaw(t, t.TempDir(), "broken.png", data)

	_, format, err := decodeImageFile(path)
	assert.Equal(t, "png", format)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeImageFileCorruptHDR(t *testing.T) {
	path := writeRaw(t, t.TempDir(), "building.hdr", []byte("#?RADIANCE\n"))

	_, format, err := decodeImageFile(path)
	assert.Equal(t, "hdr", format)
	assert.ErrorIs(t, err, ErrDecode)
}
