package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/collection"
	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/client/notify"
	"github.com/dmitrijs2005/gophfiles/internal/client/progress"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
	"github.com/google/uuid"
)

type TaskState int

const (
	TaskSelected TaskState = iota
	TaskSizeChecked
	TaskInFlight
	TaskSucceeded
	TaskFailed
)

func (s TaskState) String() string {
	switch s {
	case TaskSelected:
		return "selected"
	case TaskSizeChecked:
		return "size-checked"
	case TaskInFlight:
		return "in-flight"
	case TaskSucceeded:
		return "succeeded"
	case TaskFailed:
		return "failed"
	}
	return fmt.Sprintf("TaskState(%d)", int(s))
}

// Settled reports whether the task reached a terminal state.
func (s TaskState) Settled() bool { return s == TaskSucceeded || s == TaskFailed }

// UploadTask is one user-initiated upload. Its ID keys every notification
// the task emits.
type UploadTask struct {
	ID          string
	DisplayName string
	SizeBytes   int64
	Progress    *progress.Slot

	mu     sync.Mutex
	state  TaskState
	record models.FileRecord
	err    error
}

func (t *UploadTask) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Result returns the stored record on success or the failure cause.
func (t *UploadTask) Result() (models.FileRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record, t.err
}

func (t *UploadTask) advance(s TaskState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

func (t *UploadTask) settle(rec models.FileRecord, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.state, t.err = TaskFailed, err
		return
	}
	t.state, t.record = TaskSucceeded, rec
}

// UploadController runs upload tasks: size check, transfer with progress,
// then either append-and-reconcile or a classified failure.
type UploadController struct {
	client    client.Client
	files     *collection.FileCollection
	creds     CredentialSource
	sink      notify.Sink
	logger    logging.Logger
	reconcile func(ctx context.Context)
	newID     func() string
}

// NewUploadController wires a controller. reconcile runs after each
// successful upload and may be nil.
func NewUploadController(
	c client.Client,
	files *collection.FileCollection,
	creds CredentialSource,
	sink notify.Sink,
	logger logging.Logger,
	reconcile func(ctx context.Context),
) *UploadController {
	if reconcile == nil {
		reconcile = func(context.Context) {}
	}
	return &UploadController{
		client:    c,
		files:     files,
		creds:     creds,
		sink:      sink,
		logger:    logger,
		reconcile: reconcile,
		newID:     uuid.NewString,
	}
}

// Upload runs one task to completion. The returned task is settled; err is
// its failure cause. The collection is only touched on success and failed
// uploads are never retried.
func (u *UploadController) Upload(ctx context.Context, req client.UploadRequest) (*UploadTask, error) {
	task := &UploadTask{
		ID:          u.newID(),
		DisplayName: req.DisplayName,
		SizeBytes:   req.SizeBytes,
		Progress:    progress.NewSlot(),
	}
	log := u.logger.With("task", task.ID, "name", req.DisplayName)

	if req.SizeBytes > client.MaxUploadSize {
		task.Progress.Close()
		return task, u.failed(ctx, log, task, client.ErrSizeLimitExceeded)
	}
	task.advance(TaskSizeChecked)

	task.advance(TaskInFlight)
	u.sink.Loading(task.ID, uploadingMessage(req.DisplayName, 0))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for f := range task.Progress.Updates() {
			u.sink.Loading(task.ID, uploadingMessage(req.DisplayName, f))
		}
	}()

	rec, err := u.client.Upload(context.WithoutCancel(ctx), u.creds(ctx), req, func(f float64) {
		task.Progress.Set(f)
	})
	task.Progress.Close()
	<-done

	if err != nil {
		return task, u.failed(ctx, log, task, err)
	}

	u.files.Append(rec)
	task.settle(rec, nil)
	u.sink.Success(task.ID, MsgUploaded)
	log.Info(ctx, "file uploaded", "id", rec.ID, "size", rec.SizeBytes)

	u.reconcile(ctx)
	return task, nil
}

func (u *UploadController) failed(ctx context.Context, log logging.Logger, task *UploadTask, err error) error {
	task.settle(models.FileRecord{}, err)
	u.sink.Error(task.ID, uploadMessage(err))
	log.Warn(ctx, "upload failed", "error", err)
	return fmt.Errorf("upload %s: %w", task.DisplayName, err)
}

func uploadingMessage(name string, fraction float64) string {
	return fmt.Sprintf("Uploading %s: %d%%", name, int(fraction*100))
}
