package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, email, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLogin_SuccessLoadsFiles(t *testing.T) {
	capturePrints(t)
	stubInputs(t, "alice@example.org", "secret")
	as := &fakeAuth{}
	fs := newFakeFiles(models.FileRecord{ID: "1", DisplayName: "a.txt"})
	a := newTestApp(as, fs, "")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.org", as.loginUser)
	assert.Equal(t, "secret", as.loginPass)
	assert.Equal(t, 1, fs.coll.Len())
}

func TestLogin_Failure(t *testing.T) {
	capturePrints(t)
	stubInputs(t, "alice@example.org", "wrong")
	as := &fakeAuth{loginErr: errors.New("unauthorized")}
	fs := newFakeFiles(models.FileRecord{ID: "1"})
	a := newTestApp(as, fs, "")

	require.Error(t, a.Login(context.Background()))
	assert.Zero(t, fs.coll.Len())
}

func TestLogin_EmptyEmail(t *testing.T) {
	out := capturePrints(t)
	stubInputs(t, "", "x")
	as := &fakeAuth{}
	a := newTestApp(as, newFakeFiles(), "")

	require.ErrorIs(t, a.Login(context.Background()), errEmptyEmail)
	assert.Empty(t, as.loginUser)
	assert.Contains(t, *out, "Email is required")
}

func TestLogout_ClearsFiles(t *testing.T) {
	as := &fakeAuth{cred: models.NewCredential("tok")}
	fs := newFakeFiles(models.FileRecord{ID: "1"})
	require.NoError(t, fs.Refresh(context.Background()))
	a := newTestApp(as, fs, "")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, as.cred.Present())
	assert.Zero(t, fs.coll.Len())
}

func TestLogout_ErrorPropagates(t *testing.T) {
	as := &fakeAuth{cred: models.NewCredential("tok"), logoutErr: errors.New("clean-fail")}
	fs := newFakeFiles(models.FileRecord{ID: "1"})
	require.NoError(t, fs.Refresh(context.Background()))
	a := newTestApp(as, fs, "")

	require.Error(t, a.Logout(context.Background()))
	assert.Equal(t, 1, fs.coll.Len())
}
