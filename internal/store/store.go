package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raphi011/ggo/internal/ggoerr"

	_ "modernc.org/sqlite" // Pure Go SQLite driver.
)

// Store wraps the SQLite usage database.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps and age cutoffs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (or creates) the database at path and applies pending
// migrations. A migration failure is returned as an error and the store is
// closed; callers must treat it as fatal.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("create data directory: %w", err))
	}

	db, err := sql.Open("sqlite", dataSourceName(path))
	if err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("open database: %w", err))
	}
	// One process, one statement at a time; a single connection keeps
	// VACUUM and PRAGMA reads on the same handle.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, ggoerr.NewStorage(fmt.Errorf("open database: %w", err))
	}

	if err := runMigrations(ctx, db, migrations, s.now); err != nil {
		_ = db.Close()
		return nil, ggoerr.NewStorage(fmt.Errorf("run migrations: %w", err))
	}

	return s, nil
}

// dataSourceName builds the file: URI for path. SQLite percent-decodes the
// path, so each segment is escaped to keep '?', '#' and '%' literal.
func dataSourceName(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	query := url.Values{"_pragma": {"journal_mode(wal)", "busy_timeout(5000)"}}
	return "file:" + strings.Join(segments, "/") + "?" + query.Encode()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Size returns the database size in bytes (page_count * page_size).
func (s *Store) Size(ctx context.Context) (int64, error) {
	var pageCount, pageSize int64
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("read page count: %w", err))
	}
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("read page size: %w", err))
	}
	return pageCount * pageSize, nil
}

// Optimize reclaims free pages and refreshes query planner statistics.
func (s *Store) Optimize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return ggoerr.NewStorage(fmt.Errorf("vacuum: %w", err))
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE"); err != nil {
		return ggoerr.NewStorage(fmt.Errorf("analyze: %w", err))
	}
	return nil
}

func (s *Store) nowUnix() int64 {
	return s.now().Unix()
}
