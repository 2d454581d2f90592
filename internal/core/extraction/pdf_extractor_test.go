package extraction

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/testutil"
)

func TestNativePDFExtractor_SinglePage(t *testing.T) {
	e := NewNativePDFExtractor(zap.NewNop())

	got, err := e.ExtractText(context.Background(), bytes.NewReader(testutil.BuildPDF("Hello World")))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(got, "Hello World") {
		t.Fatalf("expected %q in extracted text, got %q", "Hello World", got)
	}
}

func TestNativePDFExtractor_PageOrder(t *testing.T) {
	e := NewNativePDFExtractor(zap.NewNop())
	raw := testutil.BuildPDF("Alpha page", "Bravo page", "Charlie page")

	got, err := e.ExtractText(context.Background(), bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	a, b, c := strings.Index(got, "Alpha"), strings.Index(got, "Bravo"), strings.Index(got, "Charlie")
	if a < 0 || b < 0 || c < 0 {
		t.Fatalf("missing page text in %q", got)
	}
	if !(a < b && b < c) {
		t.Fatalf("pages out of order: alpha=%d bravo=%d charlie=%d in %q", a, b, c, got)
	}
}

func TestNativePDFExtractor_BlankPage(t *testing.T) {
	e := NewNativePDFExtractor(zap.NewNop())

	got, err := e.ExtractText(context.Background(), bytes.NewReader(testutil.BuildPDF("   ")))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Fatalf("expected whitespace-only text, got %q", got)
	}
}

func TestNativePDFExtractor_Corrupt(t *testing.T) {
	e := NewNativePDFExtractor(zap.NewNop())

	if _, err := e.ExtractText(context.Background(), bytes.NewReader([]byte("definitely not a pdf"))); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestNativePDFExtractor_CancelledContext(t *testing.T) {
	e := NewNativePDFExtractor(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.ExtractText(ctx, bytes.NewReader(testutil.BuildPDF("Hello World"))); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
