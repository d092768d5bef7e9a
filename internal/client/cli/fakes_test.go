package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/collection"
	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/client/services"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

type fakeAuth struct {
	services.AuthService

	mu        sync.Mutex
	loginUser string
	loginPass string
	loginErr  error
	logoutErr error
	pingErr   error
	pings     int
	cred      models.Credential
	user      models.User
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.Credential, error) {
	f.loginUser, f.loginPass = email, password
	if f.loginErr != nil {
		return models.NoCredential(), f.loginErr
	}
	f.cred = models.NewCredential("tok")
	return f.cred, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.cred = models.NoCredential()
	return nil
}

func (f *fakeAuth) Current(context.Context) models.Credential { return f.cred }

func (f *fakeAuth) User(context.Context) (models.User, bool) {
	return f.user, f.cred.Present()
}

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

type fakeFiles struct {
	services.FileService

	coll       *collection.FileCollection
	server     []models.FileRecord
	refreshErr error
	searched   string
	deleted    []string
	shared     []string
	uploaded   []client.UploadRequest
	body       string
}

func newFakeFiles(records ...models.FileRecord) *fakeFiles {
	return &fakeFiles{coll: collection.New(), server: records}
}

func (f *fakeFiles) Refresh(context.Context) error {
	if f.refreshErr != nil {
		return f.refreshErr
	}
	f.coll.ReplaceAll(f.server)
	return nil
}

func (f *fakeFiles) Search(_ context.Context, q string) error {
	f.searched = q
	var out []models.FileRecord
	for _, r := range f.server {
		if strings.Contains(r.DisplayName, q) {
			out = append(out, r)
		}
	}
	f.coll.ReplaceAll(out)
	return nil
}

func (f *fakeFiles) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFiles) Share(_ context.Context, id string) (string, error) {
	f.shared = append(f.shared, id)
	return "https://files.example/s/" + id, nil
}

func (f *fakeFiles) Upload(_ context.Context, req client.UploadRequest) (*services.UploadTask, error) {
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	f.uploaded = append(f.uploaded, req)
	return &services.UploadTask{DisplayName: req.DisplayName, SizeBytes: req.SizeBytes}, nil
}

func (f *fakeFiles) Files() []models.FileRecord             { return f.coll.Snapshot() }
func (f *fakeFiles) Collection() *collection.FileCollection { return f.coll }
func (f *fakeFiles) Wait()                                  {}

func newTestApp(as *fakeAuth, fs *fakeFiles, input string) *App {
	return &App{
		authService: as,
		fileService: fs,
		logger:      logging.Nop{},
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         io.Discard,
	}
}
