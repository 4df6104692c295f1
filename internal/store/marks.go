package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	"github.com/msto63/iadate/pkg/iatime"
)

// Mark is a named IA instant
type Mark struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Ticks     int64     `json:"ticks"`
	CreatedAt time.Time `json:"created_at"`
}

// Instant returns the mark as an IA instant
func (m *Mark) Instant() iatime.Instant {
	return iatime.FromTicks(m.Ticks)
}

// MarkStore persists named instants
type MarkStore interface {
	Save(ctx context.Context, name string, at iatime.Instant) (*Mark, error)
	Get(ctx context.Context, nameOrID string) (*Mark, error)
	List(ctx context.Context) ([]*Mark, error)
	Delete(ctx context.Context, nameOrID string) error
	Close() error
}

// SQLiteMarkStore implements MarkStore using SQLite
type SQLiteMarkStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/marks.db",
	}
}

// NewSQLiteMarkStore opens or creates the marks database
func NewSQLiteMarkStore(cfg Config) (*SQLiteMarkStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "store.Open")
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open")
	}

	store := &SQLiteMarkStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.Open")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteMarkStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS marks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		ticks INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_marks_ticks ON marks(ticks);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save stores a new mark. Names are unique.
func (s *SQLiteMarkStore) Save(ctx context.Context, name string, at iatime.Instant) (*Mark, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, mdwerror.New("mark name must not be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("store.Save")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mark := &Mark{
		ID:        uuid.New().String(),
		Name:      name,
		Ticks:     at.Ticks(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO marks (id, name, ticks, created_at)
		VALUES (?, ?, ?, ?)
	`, mark.ID, mark.Name, mark.Ticks, mark.CreatedAt)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, mdwerror.Newf("mark %q already exists", name).
				WithCode(mdwerror.CodeDuplicateEntry).
				WithOperation("store.Save").
				WithDetail("name", name)
		}
		return nil, dbError(err, "failed to insert mark", "store.Save")
	}

	return mark, nil
}

// Get returns the mark with the given name or ID
func (s *SQLiteMarkStore) Get(ctx context.Context, nameOrID string) (*Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, ticks, created_at FROM marks
		WHERE name = ? OR id = ?
	`, nameOrID, nameOrID)

	var m Mark
	if err := row.Scan(&m.ID, &m.Name, &m.Ticks, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(nameOrID, "store.Get")
		}
		return nil, dbError(err, "failed to query mark", "store.Get")
	}

	return &m, nil
}

// List returns all marks ordered by instant
func (s *SQLiteMarkStore) List(ctx context.Context) ([]*Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, ticks, created_at FROM marks
		ORDER BY ticks ASC, name ASC
	`)
	if err != nil {
		return nil, dbError(err, "failed to query marks", "store.List")
	}
	defer rows.Close()

	var marks []*Mark
	for rows.Next() {
		var m Mark
		if err := rows.Scan(&m.ID, &m.Name, &m.Ticks, &m.CreatedAt); err != nil {
			return nil, dbError(err, "failed to scan mark", "store.List")
		}
		marks = append(marks, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate marks", "store.List")
	}

	return marks, nil
}

// Delete removes the mark with the given name or ID
func (s *SQLiteMarkStore) Delete(ctx context.Context, nameOrID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM marks WHERE name = ? OR id = ?`, nameOrID, nameOrID)
	if err != nil {
		return dbError(err, "failed to delete mark", "store.Delete")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return dbError(err, "failed to read affected rows", "store.Delete")
	}
	if n == 0 {
		return notFound(nameOrID, "store.Delete")
	}

	return nil
}

// Ping verifies the database is reachable
func (s *SQLiteMarkStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return dbError(err, "ping failed", "store.Ping")
	}
	return nil
}

// Close closes the database
func (s *SQLiteMarkStore) Close() error {
	return s.db.Close()
}

func dbError(err error, message, op string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(op)
}

func notFound(nameOrID, op string) error {
	return mdwerror.Newf("mark %q not found", nameOrID).
		WithCode(mdwerror.CodeNotFound).
		WithOperation(op).
		WithDetail("mark", nameOrID)
}
