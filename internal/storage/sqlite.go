package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

// SQLite is the production KV: one table of JSONB documents in a local
// libSQL database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at path,
// configured for concurrent use: WAL journal mode, 5 s busy timeout.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// libSQL rejects Exec for PRAGMAs that return rows; QueryContext
	// with a drained result handles both kinds uniformly.
	for _, p := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		rows, err := db.QueryContext(ctx, p)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %s: %w", p, err)
		}
		rows.Close()
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS entities (
		key  TEXT PRIMARY KEY,
		data JSONB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating entities table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM entities WHERE key = ?`, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entities (key, data) VALUES (?, jsonb(?))
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		key, string(data),
	)
	return err
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entities WHERE key = ?`, key)
	return err
}

func (s *SQLite) List(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM entities WHERE key LIKE ? || '%'`, prefix,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Ping reports whether the database is reachable, for health checks.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
