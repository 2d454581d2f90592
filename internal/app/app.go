// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/api"
	"github.com/markdave123-py/textract-api/internal/api/handlers"
	"github.com/markdave123-py/textract-api/internal/config"
	"github.com/markdave123-py/textract-api/internal/core"
	"github.com/markdave123-py/textract-api/internal/core/extraction"
	objectclient "github.com/markdave123-py/textract-api/internal/core/object-client"
	"github.com/markdave123-py/textract-api/internal/core/ocr"
	"github.com/markdave123-py/textract-api/internal/server"
	"github.com/markdave123-py/textract-api/internal/services"
)

// ErrUnsupportedBackend is returned when PDF_BACKEND names no known extractor.
var ErrUnsupportedBackend = errors.New("unsupported pdf backend")

type App struct {
	Uploads *services.UploadService
	Server  *server.Server
	logger  *zap.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pdfExtractor, err := newPDFExtractor(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("PDF extractor ready", zap.String("backend", cfg.PDFBackend))

	ocrEngine := ocr.NewTesseractEngine(cfg.TessdataDir, logger)
	logger.Info("OCR engine ready",
		zap.String("tessdata", cfg.TessdataDir),
		zap.String("language", core.OCRLanguage))

	var archiver core.UploadArchiver
	if cfg.ArchiveBucket != "" {
		objClient, err := objectclient.NewS3Client(appCtx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the upload archive, %w", err)
		}
		archiver = objectclient.NewUploadArchiver(objClient)
	}

	uploads := services.NewUploadService(pdfExtractor, ocrEngine, archiver, logger)
	uploadHandler := handlers.NewUploadHandler(uploads, cfg.MaxUploadBytes, logger)

	router := api.NewRouter(api.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		JWTSecret:      cfg.JWTSecret,
	}, uploadHandler, logger)

	srv := server.NewServer(cfg, router, logger)

	return &App{Uploads: uploads, Server: srv, logger: logger}, nil
}

func newPDFExtractor(cfg *config.Config, logger *zap.Logger) (core.PDFTextExtractor, error) {
	switch cfg.PDFBackend {
	case config.PDFBackendNative:
		return extraction.NewNativePDFExtractor(logger), nil
	case config.PDFBackendDocconv:
		return extraction.NewDocconvExtractor(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.PDFBackend)
	}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	return a.Server.Run(ctx)
}

// Close waits for background archive uploads, then flushes the logger.
func (a *App) Close() {
	a.Uploads.Wait()
	_ = a.logger.Sync()
}
