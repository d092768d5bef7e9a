package services

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

// fakeClient is a tiny in-memory file server implementing client.Client.
// Unset methods panic through the embedded nil interface.
type fakeClient struct {
	client.Client

	mu       sync.Mutex
	server   []models.FileRecord
	calls    map[string]int
	nextID   int
	shareSeq int

	listErr   error
	searchErr error
	uploadErr error
	deleteErr error
	shareErr  error
	loginErr  error
	pingErr   error

	// listGate, when set, blocks List until it is closed.
	listGate chan struct{}
	// progress steps reported before the upload settles.
	steps []float64

	loginToken string
	loginUser  models.User
}

func newFakeClient(records ...models.FileRecord) *fakeClient {
	return &fakeClient{server: slices.Clone(records), calls: map[string]int{}, nextID: 100}
}

func (f *fakeClient) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) enter(op string, cred models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if !cred.Present() {
		return client.ErrNoCredential
	}
	return nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["login"]++
	if f.loginErr != nil {
		return "", models.User{}, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ping"]++
	return f.pingErr
}

func (f *fakeClient) List(ctx context.Context, cred models.Credential) ([]models.FileRecord, error) {
	if err := f.enter("list", cred); err != nil {
		return nil, err
	}
	if f.listGate != nil {
		<-f.listGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.server), nil
}

func (f *fakeClient) Search(ctx context.Context, cred models.Credential, query string) ([]models.FileRecord, error) {
	if err := f.enter("search", cred); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []models.FileRecord
	for _, r := range f.server {
		if strings.Contains(r.DisplayName, query) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeClient) Upload(ctx context.Context, cred models.Credential, req client.UploadRequest, progress client.ProgressFunc) (models.FileRecord, error) {
	if err := f.enter("upload", cred); err != nil {
		return models.FileRecord{}, err
	}
	if req.Body != nil {
		_, _ = io.Copy(io.Discard, req.Body)
	}
	for _, s := range f.steps {
		progress(s)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return models.FileRecord{}, f.uploadErr
	}
	f.nextID++
	rec := models.FileRecord{
		ID:          strconv.Itoa(f.nextID),
		DisplayName: req.DisplayName,
		SizeBytes:   req.SizeBytes,
	}
	f.server = append(f.server, rec)
	progress(1)
	return rec, nil
}

func (f *fakeClient) Delete(ctx context.Context, cred models.Credential, id string) error {
	if err := f.enter("delete", cred); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	i := slices.IndexFunc(f.server, func(r models.FileRecord) bool { return r.ID == id })
	if i < 0 {
		return client.ErrNotFound
	}
	f.server = slices.Delete(f.server, i, i+1)
	return nil
}

func (f *fakeClient) GenerateShareLink(ctx context.Context, cred models.Credential, id string) (string, models.FileRecord, error) {
	if err := f.enter("share", cred); err != nil {
		return "", models.FileRecord{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shareErr != nil {
		return "", models.FileRecord{}, f.shareErr
	}
	i := slices.IndexFunc(f.server, func(r models.FileRecord) bool { return r.ID == id })
	if i < 0 {
		return "", models.FileRecord{}, client.ErrNotFound
	}
	f.shareSeq++
	link := "https://files.example/s/" + id + "/" + strconv.Itoa(f.shareSeq)
	f.server[i].ShareURL = link
	return link, f.server[i], nil
}

func loggedIn(context.Context) models.Credential { return models.NewCredential("tok") }

func loggedOut(context.Context) models.Credential { return models.NoCredential() }

func rec(id, name string) models.FileRecord {
	return models.FileRecord{ID: id, DisplayName: name, StoredName: id + "_" + name, SizeBytes: 10}
}

func ids(records []models.FileRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func nopLogger() logging.Logger { return logging.Nop{} }
