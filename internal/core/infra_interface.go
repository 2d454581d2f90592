package core

import (
	"context"

	"github.com/markdave123-py/textract-api/internal/models"
)

// UploadArchiver keeps a copy of accepted uploads in object storage.
// Implementations must not retain data after returning.
type UploadArchiver interface {
	Archive(ctx context.Context, fileName string, kind models.FileKind, data []byte) (*models.ArchivedUpload, error)
}
