package services

import (
	"path/filepath"
	"strings"

	"github.com/markdave123-py/textract-api/internal/models"
)

var (
	pdfExtensions   = map[string]struct{}{".pdf": {}}
	imageExtensions = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".tiff": {}, ".webp": {},
	}
)

// Classify picks the extraction path from the file name's extension alone,
// ignoring case. File contents are never inspected.
func Classify(fileName string) models.FileKind {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := pdfExtensions[ext]; ok {
		return models.KindPDF
	}
	if _, ok := imageExtensions[ext]; ok {
		return models.KindImage
	}
	return models.KindUnknown
}
