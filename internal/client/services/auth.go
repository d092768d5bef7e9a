package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/client/notify"
	"github.com/dmitrijs2005/gophfiles/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophfiles/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Logout: forget the stored session.
//   - Current: the credential to attach to the next request (absent when
//     logged out or when the token has expired).
//   - User: the profile stored with the session.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Credential, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) models.Credential
	User(ctx context.Context) (models.User, bool)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Repository
	sink   notify.Sink
	logger logging.Logger
	now    func() time.Time

	mu     sync.Mutex
	cached *session.Session
}

func NewAuthService(c client.Client, store session.Repository, sink notify.Sink, logger logging.Logger) AuthService {
	return &authService{client: c, store: store, sink: sink, logger: logger, now: time.Now}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Credential, error) {
	token, user, err := a.client.Login(ctx, email, password)
	if err != nil {
		msg := MsgBadCredentials
		if !errors.Is(err, client.ErrUnauthorized) {
			msg = MsgLoginFailed
			if m, ok := client.RejectionMessage(err); ok && m != "" {
				msg = m
			}
		}
		a.sink.Error("", msg)
		a.logger.Warn(ctx, "login failed", "email", email, "error", err)
		return models.NoCredential(), fmt.Errorf("login error: %w", err)
	}

	s := session.Session{Token: token, User: user}
	if err := a.store.Save(ctx, s); err != nil {
		a.sink.Error("", MsgLoginFailed)
		a.logger.Error(ctx, "session saving failed", "error", err)
		return models.NoCredential(), fmt.Errorf("session saving error: %w", err)
	}
	a.remember(&s)

	a.sink.Success("", MsgLoggedIn)
	a.logger.Info(ctx, "logged in", "user", user.ID)
	return s.Credential(), nil
}

// Logout drops the stored session first; the in-memory copy goes only once
// the store has let go of the token.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.remember(&session.Session{})
	a.sink.Success("", MsgLoggedOut)
	return nil
}

func (a *authService) Current(ctx context.Context) models.Credential {
	s := a.load(ctx)
	cred := s.Credential()
	if cred.Present() && cred.Expired(a.now()) {
		a.logger.Debug(ctx, "stored token expired")
		return models.NoCredential()
	}
	return cred
}

func (a *authService) User(ctx context.Context) (models.User, bool) {
	s := a.load(ctx)
	return s.User, s.Token != ""
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// load reads the stored session once; later calls use the cached copy.
// A store failure is logged and treated as logged out.
func (a *authService) load(ctx context.Context) session.Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cached != nil {
		return *a.cached
	}
	s, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error(ctx, "session loading failed", "error", err)
		return session.Session{}
	}
	a.cached = &s
	return s
}

func (a *authService) remember(s *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cached = s
}
