package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/core"
	"github.com/markdave123-py/textract-api/internal/core/extraction"
)

var _ core.OCRTextExtractor = (*TesseractEngine)(nil)

// TesseractEngine implements core.OCRTextExtractor with gosseract. A fresh
// client is created per call; Tesseract handles are not safe for concurrent use.
type TesseractEngine struct {
	tessdataDir   string
	logger        *zap.Logger
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine builds an engine reading language data from tessdataDir.
func NewTesseractEngine(tessdataDir string, logger *zap.Logger) *TesseractEngine {
	return &TesseractEngine{
		tessdataDir:   tessdataDir,
		logger:        logger,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs OCR over the whole image and returns the recognized text as-is.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	imgData, format, err := extraction.NormalizeImage(image)
	if err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if e.tessdataDir != "" {
		if err := c.SetTessdataPrefix(e.tessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(language); err != nil {
		return "", fmt.Errorf("set language %s: %w", language, err)
	}
	if err := c.SetImageFromBytes(imgData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	e.logger.Debug("ocr completed",
		zap.String("format", format),
		zap.String("language", language),
		zap.Int("chars", len(text)))

	return text, nil
}
