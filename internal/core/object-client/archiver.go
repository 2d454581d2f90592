package objectclient

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/markdave123-py/textract-api/internal/core"
	"github.com/markdave123-py/textract-api/internal/models"
)

var _ core.UploadArchiver = (*UploadArchiver)(nil)

// UploadArchiver stores accepted uploads under uploads/<yyyy>/<mm>/<dd>/<id>/<name>.
type UploadArchiver struct {
	client ObjectClient
	now    func() time.Time
}

func NewUploadArchiver(client ObjectClient) *UploadArchiver {
	return &UploadArchiver{client: client, now: time.Now}
}

func (a *UploadArchiver) Archive(ctx context.Context, fileName string, kind models.FileKind, data []byte) (*models.ArchivedUpload, error) {
	id := uuid.NewString()
	key := a.objectKey(id, fileName)
	contentType := contentTypeFor(fileName)

	url, err := a.client.UploadFile(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", fileName, err)
	}

	return &models.ArchivedUpload{
		ID:          id,
		FileName:    fileName,
		Kind:        kind.String(),
		ContentType: contentType,
		Size:        int64(len(data)),
		StorageURL:  url,
	}, nil
}

// objectKey creates a consistent S3 key layout.
func (a *UploadArchiver) objectKey(id, fileName string) string {
	// Removes any client-supplied path components
	name := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return path.Join("uploads", a.now().UTC().Format("2006/01/02"), id, name)
}

func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
