//go:build integration

package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/markdave123-py/textract-api/internal/core"
)

// renderText draws s in basicfont and upscales it so Tesseract sees glyphs
// of a realistic size.
func renderText(t *testing.T, s string) []byte {
	t.Helper()

	small := image.NewRGBA(image.Rect(0, 0, 7*len(s)+20, 30))
	draw.Draw(small, small.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 20),
	}
	d.DrawString(s)

	const scale = 6
	big := image.NewRGBA(image.Rect(0, 0, small.Bounds().Dx()*scale, small.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, big); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestTesseractEngine_RecognizesRenderedText(t *testing.T) {
	dir := os.Getenv("TESSDATA_DIR")
	e := NewTesseractEngine(dir, zap.NewNop())

	text, err := e.Recognize(context.Background(), renderText(t, "INVOICE #42"), core.OCRLanguage)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	// OCR noise: accept the words without insisting on exact punctuation.
	norm := strings.ToUpper(text)
	if !strings.Contains(norm, "INVOICE") || !strings.Contains(norm, "42") {
		t.Fatalf("expected INVOICE #42 in OCR output, got %q", text)
	}
}

func TestTesseractEngine_RejectsGarbage(t *testing.T) {
	e := NewTesseractEngine(os.Getenv("TESSDATA_DIR"), zap.NewNop())

	if _, err := e.Recognize(context.Background(), []byte("not an image"), core.OCRLanguage); err == nil {
		t.Fatal("expected error for non-image bytes")
	}
}
