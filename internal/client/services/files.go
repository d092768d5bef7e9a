package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/collection"
	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/client/notify"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

// CredentialSource yields the credential to use for one operation. It is
// evaluated every time so a login or logout in between takes effect.
type CredentialSource func(ctx context.Context) models.Credential

// FileService is the dashboard: it owns the visible file collection and
// keeps it in line with the server after every mutation.
//
// Contract:
//   - Refresh/Search replace the collection on success and keep it on failure.
//   - Delete/Share apply their result locally, then reconcile.
//   - Upload delegates to the UploadController, which reconciles on success.
//   - Files returns a snapshot; Wait blocks until background refreshes finish.
type FileService interface {
	Refresh(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (string, error)
	Upload(ctx context.Context, req client.UploadRequest) (*UploadTask, error)
	Files() []models.FileRecord
	Collection() *collection.FileCollection
	Wait()
}

type FileServiceOption func(*fileService)

func WithSink(s notify.Sink) FileServiceOption {
	return func(f *fileService) { f.sink = s }
}

func WithLogger(l logging.Logger) FileServiceOption {
	return func(f *fileService) { f.logger = l }
}

// WithBlockingRefresh makes mutations wait for their reconciling refresh
// instead of running it in the background.
func WithBlockingRefresh(b bool) FileServiceOption {
	return func(f *fileService) { f.blocking = b }
}

type fileService struct {
	client   client.Client
	creds    CredentialSource
	files    *collection.FileCollection
	sink     notify.Sink
	logger   logging.Logger
	blocking bool
	uploads  *UploadController

	bg sync.WaitGroup
}

func NewFileService(c client.Client, creds CredentialSource, opts ...FileServiceOption) FileService {
	s := &fileService{
		client: c,
		creds:  creds,
		files:  collection.New(),
		sink:   notify.Nop{},
		logger: logging.Nop{},
	}
	for _, o := range opts {
		o(s)
	}
	s.uploads = NewUploadController(c, s.files, creds, s.sink, s.logger, s.reconcile)
	return s
}

func (s *fileService) Files() []models.FileRecord { return s.files.Snapshot() }

func (s *fileService) Collection() *collection.FileCollection { return s.files }

func (s *fileService) Wait() { s.bg.Wait() }

func (s *fileService) Refresh(ctx context.Context) error {
	records, err := s.client.List(context.WithoutCancel(ctx), s.creds(ctx))
	if err != nil {
		s.fail(ctx, "list files", err, MsgFetchFailed)
		return fmt.Errorf("refresh: %w", err)
	}
	s.files.ReplaceAll(records)
	s.logger.Debug(ctx, "files refreshed", "count", len(records))
	return nil
}

// Search replaces the collection with the matches for query. The query is
// sent as given, blank or not.
func (s *fileService) Search(ctx context.Context, query string) error {
	records, err := s.client.Search(context.WithoutCancel(ctx), s.creds(ctx), query)
	if err != nil {
		s.fail(ctx, "search files", err, MsgSearchFailed)
		return fmt.Errorf("search: %w", err)
	}
	s.files.ReplaceAll(records)
	s.logger.Debug(ctx, "search applied", "query", query, "count", len(records))
	return nil
}

// Delete asks the server to remove id even when it is not visible locally.
func (s *fileService) Delete(ctx context.Context, id string) error {
	if id == "" {
		s.sink.Error("", MsgInvalidFileID)
		return ErrInvalidID
	}

	if err := s.client.Delete(context.WithoutCancel(ctx), s.creds(ctx), id); err != nil {
		fallback := MsgDeleteFailed
		if errors.Is(err, client.ErrNotFound) {
			fallback = MsgFileNotFound
		}
		s.fail(ctx, "delete file", err, fallback, "id", id)
		return fmt.Errorf("delete %s: %w", id, err)
	}

	s.files.RemoveByID(id)
	s.sink.Success("", MsgDeleted)
	s.logger.Info(ctx, "file deleted", "id", id)
	s.reconcile(ctx)
	return nil
}

func (s *fileService) Share(ctx context.Context, id string) (string, error) {
	if id == "" {
		s.sink.Error("", MsgInvalidFileID)
		return "", ErrInvalidID
	}

	link, rec, err := s.client.GenerateShareLink(context.WithoutCancel(ctx), s.creds(ctx), id)
	if err != nil {
		fallback := MsgShareFailed
		if errors.Is(err, client.ErrNotFound) {
			fallback = MsgFileNotFound
		}
		s.fail(ctx, "share file", err, fallback, "id", id)
		return "", fmt.Errorf("share %s: %w", id, err)
	}

	rec.ShareURL = link
	s.files.PatchByID(id, rec)
	s.sink.Success("", MsgShareGenerated)
	s.logger.Info(ctx, "share url generated", "id", id)
	s.reconcile(ctx)
	return link, nil
}

func (s *fileService) Upload(ctx context.Context, req client.UploadRequest) (*UploadTask, error) {
	return s.uploads.Upload(ctx, req)
}

// reconcile re-fetches the list after a mutation. Failures are already
// reported by Refresh.
func (s *fileService) reconcile(ctx context.Context) {
	if s.blocking {
		_ = s.Refresh(ctx)
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		_ = s.Refresh(ctx)
	}()
}

func (s *fileService) fail(ctx context.Context, op string, err error, fallback string, args ...any) {
	s.sink.Error("", messageFor(err, fallback))
	s.logger.Warn(ctx, op+" failed", append(args, "error", err)...)
}
