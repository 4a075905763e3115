package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/cheikhtourad19/artshop-cli/internal/client/session/migrations"

	_ "modernc.org/sqlite"
)

// Storage keys for the persisted session record.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound is returned by Store.Get when a key has no value.
var ErrNotFound = errors.New("not found")

// Store persists the session record (bearer token plus serialized user)
// between runs. Both keys are written together and cleared together.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetSession(ctx context.Context, token string, user []byte) error
	ClearSession(ctx context.Context) error
	Close() error
}

// SQLiteStore keeps the session record in a local SQLite key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the session database at dsn and runs
// the schema migrations.
func OpenStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, nil
}

// SetSession writes the token and the serialized user record in a single
// transaction, so a crash cannot leave one without the other.
func (s *SQLiteStore) SetSession(ctx context.Context, token string, user []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsert := `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := tx.ExecContext(ctx, upsert, KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("set session token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, KeyUser, user); err != nil {
		return fmt.Errorf("set session user: %w", err)
	}
	return tx.Commit()
}

// ClearSession removes the whole session record. Clearing an already empty
// store is not an error.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
