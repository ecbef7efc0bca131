package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/memora-labs/memora/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	// Postgres driver for multi-learner deployments.
	_ "github.com/lib/pq"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a Store for the given driver ("sqlite" or "postgres") and
// DSN. SQLite gets the recommended pragmas applied; both dialects run
// auto-migration on open.
func Open(driver, dsn string) (*Store, error) {
	var (
		db      *sql.DB
		entDial string
		err     error
	)

	switch driver {
	case "sqlite", "":
		db, err = sql.Open("sqlite", sqliteDSN(dsn))
		entDial = dialect.SQLite
	case "postgres":
		db, err = sql.Open("postgres", dsn)
		entDial = dialect.Postgres
	default:
		return nil, fmt.Errorf("unknown store driver: %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	drv := entsql.OpenDB(entDial, db)
	client := ent.NewClient(ent.Driver(drv))

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if err := seedSequence(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Repos returns non-transactional repositories backed by this store.
func (s *Store) Repos() *Repos {
	return newRepos(s.client)
}

// InTx runs fn with repositories bound to a single database transaction.
// A non-nil error from fn rolls everything back. The submission pipeline
// uses this so mastery, schedule, and counter updates land together or
// not at all.
func (s *Store) InTx(ctx context.Context, fn func(*Repos) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(newRepos(tx.Client())); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// sqliteDSN attaches the connection pragmas as DSN parameters so every
// pooled connection gets them, not just the one a PRAGMA statement
// happens to execute on.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join([]string{
		"_pragma=busy_timeout(5000)",
		"_pragma=journal_mode(WAL)",
		"_pragma=foreign_keys(1)",
		"_pragma=synchronous(NORMAL)",
	}, "&")
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MEMORA_DB environment variable
// 2. $XDG_DATA_HOME/memora/memora.db
// 3. ~/.local/share/memora/memora.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MEMORA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "memora", "memora.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
