package core

import (
	"bytes"
	"context"
)

// OCRLanguage is the Tesseract language every image is recognized with.
const OCRLanguage = "eng"

// PDFTextExtractor returns the text of every page of a PDF, page 1 first.
// The reader is positioned at offset 0 when passed in.
type PDFTextExtractor interface {
	ExtractText(ctx context.Context, pdf *bytes.Reader) (string, error)
}

// OCRTextExtractor recognizes the text rendered in a raster image.
type OCRTextExtractor interface {
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}
