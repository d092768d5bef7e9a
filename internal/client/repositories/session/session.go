// Package session persists the signed-in user's token and profile in the
// local sqlite database so a restart keeps the user logged in.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/dmitrijs2005/gophfiles/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is what the store holds. A zero Session means nobody is logged in.
type Session struct {
	Token string
	User  models.User
}

func (s Session) Credential() models.Credential {
	return models.NewCredential(s.Token)
}

type Repository interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save replaces the stored session atomically.
func (r *SQLiteRepository) Save(ctx context.Context, s Session) error {
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(s.Token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, user)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (Session, error) {
	token, err := get(ctx, r.db, keyToken)
	if err != nil {
		return Session{}, err
	}
	if len(token) == 0 {
		return Session{}, nil
	}

	s := Session{Token: string(token)}
	raw, err := get(ctx, r.db, keyUser)
	if err != nil {
		return Session{}, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.User); err != nil {
			return Session{}, fmt.Errorf("decode user: %w", err)
		}
	}
	return s, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
