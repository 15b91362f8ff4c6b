// Package imaging converts uploaded bitmap screenshots into web-deliverable
// PNGs with content-addressed filenames.
package imaging

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"image/png"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when the input is not a decodable BMP.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ConvertedImage is the result of a conversion: the PNG bytes plus the
// filename derived from the source content.
type ConvertedImage struct {
	Filename string
	Data     []byte
}

// Convert decodes src as a BMP image and re-encodes it as PNG. The filename
// is the hex MD5 of src plus ".png", so identical uploads map to the same
// stored asset. src is never modified.
func Convert(src []byte) (ConvertedImage, error) {
	sum := md5.Sum(src)
	name := hex.EncodeToString(sum[:]) + ".png"

	img, err := bmp.Decode(bytes.NewReader(src))
	if err != nil {
		return ConvertedImage{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ConvertedImage{}, fmt.Errorf("encode png: %w", err)
	}

	return ConvertedImage{Filename: name, Data: buf.Bytes()}, nil
}
