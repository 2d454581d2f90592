package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/core"
	"github.com/markdave123-py/textract-api/internal/models"
)

// Upload is one file taken from a multipart request.
type Upload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// DefaultArchiveTimeout bounds a single archive upload.
const DefaultArchiveTimeout = 2 * time.Minute

// UploadService classifies an upload and routes it to the PDF or OCR extractor.
type UploadService struct {
	pdf            core.PDFTextExtractor
	ocr            core.OCRTextExtractor
	archiver       core.UploadArchiver
	archiveTimeout time.Duration
	archives       sync.WaitGroup
	logger         *zap.Logger
}

// NewUploadService wires the extractors. archiver may be nil.
func NewUploadService(pdf core.PDFTextExtractor, ocr core.OCRTextExtractor, archiver core.UploadArchiver, logger *zap.Logger) *UploadService {
	return &UploadService{
		pdf:            pdf,
		ocr:            ocr,
		archiver:       archiver,
		archiveTimeout: DefaultArchiveTimeout,
		logger:         logger,
	}
}

// Wait blocks until every in-flight archive upload has finished.
func (s *UploadService) Wait() {
	s.archives.Wait()
}

// Handle runs a single extraction attempt. It never panics and never returns
// an error; every outcome is folded into the result's failure tag.
func (s *UploadService) Handle(ctx context.Context, up *Upload) models.ExtractionResult {
	if up == nil || up.Content == nil || up.Size == 0 {
		return models.FailureResult(models.KindUnknown, models.FailureMissingFile, nil)
	}

	kind := Classify(up.FileName)
	switch kind {
	case models.KindPDF:
		return s.extract(ctx, up, kind, s.extractPDF)
	case models.KindImage:
		return s.extract(ctx, up, kind, s.extractImage)
	default:
		return models.FailureResult(kind, models.FailureUnsupportedFormat, nil)
	}
}

type extractFunc func(ctx context.Context, data []byte) (string, error)

func (s *UploadService) extract(ctx context.Context, up *Upload, kind models.FileKind, fn extractFunc) (res models.ExtractionResult) {
	start := time.Now()
	log := s.logger.With(zap.String("file", up.FileName), zap.Stringer("kind", kind))

	defer func() {
		if r := recover(); r != nil {
			log.Error("extractor panicked", zap.Any("panic", r))
			res = models.FailureResult(kind, models.FailureExtraction, fmt.Errorf("extractor panic: %v", r))
		}
	}()

	data, err := readAll(up.Content, up.Size)
	if err != nil {
		log.Error("failed to buffer upload", zap.Error(err))
		return models.FailureResult(kind, models.FailureExtraction, fmt.Errorf("read upload: %w", err))
	}
	if len(data) == 0 {
		return models.FailureResult(kind, models.FailureMissingFile, nil)
	}

	// Runs after extraction whatever its outcome.
	defer s.archive(ctx, log, up.FileName, kind, data)

	text, err := fn(ctx, data)
	if err != nil {
		log.Error("extraction failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return models.FailureResult(kind, models.FailureExtraction, err)
	}

	if strings.TrimSpace(text) == "" {
		log.Info("no legible text", zap.Duration("took", time.Since(start)))
		return models.FailureResult(kind, models.FailureNoLegibleText, nil)
	}

	log.Info("text extracted",
		zap.Int("bytes", len(data)),
		zap.Int("chars", len(text)),
		zap.Duration("took", time.Since(start)))
	return models.TextResult(kind, text)
}

func (s *UploadService) extractPDF(ctx context.Context, data []byte) (string, error) {
	r := bytes.NewReader(data)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind pdf: %w", err)
	}
	return s.pdf.ExtractText(ctx, r)
}

func (s *UploadService) extractImage(ctx context.Context, data []byte) (string, error) {
	return s.ocr.Recognize(ctx, data, core.OCRLanguage)
}

// archive copies the upload to object storage in the background, detached
// from the request context and bounded by archiveTimeout.
func (s *UploadService) archive(ctx context.Context, log *zap.Logger, fileName string, kind models.FileKind, data []byte) {
	if s.archiver == nil {
		return
	}

	s.archives.Add(1)
	go func() {
		defer s.archives.Done()

		actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.archiveTimeout)
		defer cancel()

		archived, err := s.archiver.Archive(actx, fileName, kind, data)
		if err != nil {
			log.Warn("upload archive failed", zap.Error(err))
			return
		}
		log.Debug("upload archived", zap.String("id", archived.ID), zap.String("url", archived.StorageURL))
	}()
}

// readAll buffers the upload, pre-sizing from the declared length when known.
func readAll(r io.Reader, declared int64) ([]byte, error) {
	var buf bytes.Buffer
	if declared > 0 && declared < 1<<31 {
		buf.Grow(int(declared))
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
