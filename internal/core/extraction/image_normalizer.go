package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when an image upload carries no bytes.
var ErrEmptyImage = errors.New("image is empty")

// NormalizeImage prepares raw upload bytes for Tesseract. JPEG and PNG are
// returned untouched; GIF, BMP, TIFF and WebP are decoded and re-encoded as
// PNG so OCR does not depend on how Leptonica was built. The first frame is
// used for animated or multi-page inputs.
//
// Bytes Go cannot decode are handed back unchanged with a nil error, so
// Leptonica still gets a chance to read them. format is empty when the
// format could not be detected.
func NormalizeImage(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, "", nil
	}

	switch format {
	case "jpeg", "png":
		return data, format, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, format, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, format, fmt.Errorf("encode png from %s: %w", format, err)
	}
	return buf.Bytes(), format, nil
}
