package assets

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/h2non/filetype"
	"github.com/mdouchement/hdr/codec/rgbe"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// filetype needs at most this many bytes to match any known signature.
const sniffLen = 262

const formatHDR = "hdr"

var radianceMagic = [][]byte{
	[]byte("#?RADIANCE"),
	[]byte("#?RGBE"),
}

var imageFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
	"tif":  true,
}

// sniffFormat identifies the image format from the leading bytes of a file.
func sniffFormat(header []byte) (string, error) {
	for _, magic := range radianceMagic {
		if bytes.HasPrefix(header, magic) {
			return formatHDR, nil
		}
	}

	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnsupportedFormat
	}
	if !imageFormats[kind.Extension] {
		return "", ErrUnsupportedFormat
	}
	return kind.Extension, nil
}

// decodeImageFile opens path, checks its signature and decodes it. All
// failures are *LoadError values wrapping one of the package sentinels.
func decodeImageFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", loadError(path, ErrNotFound, nil)
		}
		return nil, "", loadError(path, ErrDecode, err)
	}
	defer f.Close()

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", loadError(path, ErrDecode, err)
	}
	format, err := sniffFormat(header[:n])
	if err != nil {
		return nil, "", loadError(path, ErrUnsupportedFormat, nil)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", loadError(path, ErrDecode, err)
	}

	var img image.Image
	if format == formatHDR {
		img, err = rgbe.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, format, loadError(path, ErrDecode, err)
	}
	return img, format, nil
}
