package objectclient

import (
	"context"
	"io"
)

// ObjectClient is the slice of object storage the upload archive needs.
// It’s abstract so you can replace AWS with MinIO, GCP, etc. easily.
type ObjectClient interface {
	UploadFile(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)
}
