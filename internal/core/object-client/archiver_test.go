package objectclient

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/markdave123-py/textract-api/internal/models"
)

type fakeObjectClient struct {
	key         string
	body        string
	contentType string
	err         error
}

func (f *fakeObjectClient) UploadFile(_ context.Context, key string, data io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(data)
	f.key, f.body, f.contentType = key, string(b), contentType
	return "https://archive.example/" + key, nil
}

func TestUploadArchiver_Archive(t *testing.T) {
	client := &fakeObjectClient{}
	a := NewUploadArchiver(client)
	a.now = func() time.Time { return time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC) }

	got, err := a.Archive(context.Background(), `C:\scans\My Receipt.PDF`, models.KindPDF, []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	wantPrefix := "uploads/2026/03/09/" + got.ID + "/"
	if !strings.HasPrefix(client.key, wantPrefix) {
		t.Errorf("key = %q, want prefix %q", client.key, wantPrefix)
	}
	if !strings.HasSuffix(client.key, "/My_Receipt.PDF") {
		t.Errorf("key = %q, want sanitized file name suffix", client.key)
	}
	if client.body != "%PDF-1.4" {
		t.Errorf("body = %q", client.body)
	}
	if client.contentType != "application/pdf" {
		t.Errorf("contentType = %q, want application/pdf", client.contentType)
	}
	if got.Kind != "pdf" || got.Size != 8 || got.StorageURL != "https://archive.example/"+client.key {
		t.Errorf("unexpected archived upload: %+v", got)
	}
}

func TestUploadArchiver_ArchiveError(t *testing.T) {
	a := NewUploadArchiver(&fakeObjectClient{err: errors.New("bucket gone")})

	if _, err := a.Archive(context.Background(), "a.png", models.KindImage, []byte{1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"scan.png", "image/png"},
		{"scan.JPG", "image/jpeg"},
		{"doc.pdf", "application/pdf"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentTypeFor(tt.name); got != tt.want {
				t.Errorf("contentTypeFor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
