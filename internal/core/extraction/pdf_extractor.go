package extraction

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/core"
)

var _ core.PDFTextExtractor = (*NativePDFExtractor)(nil)

// NativePDFExtractor implements core.PDFTextExtractor in pure Go using ledongthuc/pdf.
type NativePDFExtractor struct {
	logger *zap.Logger
}

func NewNativePDFExtractor(logger *zap.Logger) *NativePDFExtractor {
	return &NativePDFExtractor{logger: logger}
}

// ExtractText walks pages 1..N and concatenates their plain text in page order.
// Pages without a dictionary are skipped.
func (e *NativePDFExtractor) ExtractText(ctx context.Context, src *bytes.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := pdf.NewReader(src, src.Size())
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		sb.WriteString(text)
	}

	e.logger.Debug("pdf text extracted",
		zap.Int("pages", numPages),
		zap.Int("chars", sb.Len()))

	return sb.String(), nil
}
