package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/markdave123-py/textract-api/internal/models"
	"github.com/markdave123-py/textract-api/internal/services"
)

// UploadFormField is the multipart field the file is read from.
const UploadFormField = "file"

// Parts above this size spill to temporary files while parsing.
const multipartMemory = 32 << 20

// Dispatcher turns one upload into an extraction result.
type Dispatcher interface {
	Handle(ctx context.Context, up *services.Upload) models.ExtractionResult
}

type UploadHandler struct {
	dispatcher Dispatcher
	maxBytes   int64
	logger     *zap.Logger
}

func NewUploadHandler(dispatcher Dispatcher, maxBytes int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{dispatcher: dispatcher, maxBytes: maxBytes, logger: logger}
}

// Upload handles POST /api/upload: one multipart file in, extracted text out.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Message: models.MsgUploadTooLarge})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Message: models.MsgUploadTooLarge})
			return
		}
		if !carriesNoForm(err) {
			h.logger.Warn("multipart body unreadable", zap.Error(err))
			h.respond(w, models.FailureResult(models.KindUnknown, models.FailureExtraction, fmt.Errorf("read upload: %w", err)))
			return
		}
		h.logger.Debug("request carries no multipart form", zap.Error(err))
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	var up *services.Upload
	file, header, err := r.FormFile(UploadFormField)
	if err == nil {
		defer file.Close()
		up = &services.Upload{FileName: header.Filename, Size: header.Size, Content: file}
	}

	h.respond(w, h.dispatcher.Handle(r.Context(), up))
}

// carriesNoForm reports whether a multipart parse error means the client sent
// no form at all, as opposed to a form that broke off while being read.
func carriesNoForm(err error) bool {
	return errors.Is(err, http.ErrNotMultipart) ||
		errors.Is(err, http.ErrMissingBoundary) ||
		errors.Is(err, io.EOF)
}

func (h *UploadHandler) respond(w http.ResponseWriter, res models.ExtractionResult) {
	switch res.Failure {
	case models.FailureNone:
		writeJSON(w, http.StatusOK, models.TextResponse{Text: res.Text})
	case models.FailureMissingFile:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: models.MsgMissingFile})
	case models.FailureUnsupportedFormat:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: models.MsgUnsupportedFormat})
	case models.FailureNoLegibleText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(models.MsgNoLegibleText))
	default:
		detail := "unknown error"
		if res.Err != nil {
			detail = res.Err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: models.MsgExtractionFailure,
			Error:   detail,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
