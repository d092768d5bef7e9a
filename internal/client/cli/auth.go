package cli

import (
	"context"
	"errors"
)

// getSimpleText, getPassword and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

var errEmptyEmail = errors.New("email is required")

// Login prompts for an email and password and authenticates. The outcome is
// reported by the auth service; a successful login also loads the files.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		printlnFn("Email is required")
		return errEmptyEmail
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if _, err := a.authService.Login(ctx, email, password); err != nil {
		return err
	}
	return a.List(ctx)
}

// Logout forgets the stored session. Background requests still in flight
// will fail as unauthorized, which is reported like any other failure.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.fileService.Collection().ReplaceAll(nil)
	return nil
}
