package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
)

// ProgressFunc receives upload progress as a fraction in [0,1]. Values are
// non-decreasing; 1 is delivered only after a successful response.
type ProgressFunc func(fraction float64)

// UploadRequest describes one file transfer.
type UploadRequest struct {
	Body        io.Reader
	DisplayName string
	SizeBytes   int64
	// MimeType is optional; it is guessed from DisplayName when empty.
	MimeType string
}

// Client is the remote file-store contract used by the services.
type Client interface {
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Ping(ctx context.Context) error
	List(ctx context.Context, cred models.Credential) ([]models.FileRecord, error)
	Search(ctx context.Context, cred models.Credential, query string) ([]models.FileRecord, error)
	Upload(ctx context.Context, cred models.Credential, req UploadRequest, progress ProgressFunc) (models.FileRecord, error)
	Delete(ctx context.Context, cred models.Credential, id string) error
	GenerateShareLink(ctx context.Context, cred models.Credential, id string) (string, models.FileRecord, error)
}
