package extraction

import (
	"bytes"
	"context"
	"fmt"

	"code.sajari.com/docconv"
	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/core"
)

var _ core.PDFTextExtractor = (*DocconvExtractor)(nil)

// DocconvExtractor implements core.PDFTextExtractor using sajari/docconv.
// docconv shells out to poppler's pdftotext, which must be on PATH.
type DocconvExtractor struct {
	logger *zap.Logger
}

func NewDocconvExtractor(logger *zap.Logger) *DocconvExtractor {
	return &DocconvExtractor{logger: logger}
}

// ExtractText converts the whole document in one pass; pdftotext emits pages in order.
func (e *DocconvExtractor) ExtractText(ctx context.Context, src *bytes.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, meta, err := docconv.ConvertPDF(src)
	if err != nil {
		return "", fmt.Errorf("docconv: convert pdf: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.logger.Debug("docconv extracted pdf text",
		zap.String("pages", meta["Pages"]),
		zap.Int("chars", len(body)))

	return body, nil
}
