// SPDX-License-Identifier: MIT

package artifact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps artifacts as zstd-compressed blobs in one SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("artifact: sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("artifact: sqlite: %w", err)
	}

	// EncodeAll and DecodeAll are safe for concurrent use on one instance.
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("artifact: zstd: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("artifact: zstd: %w", err)
	}

	s := &SQLiteStore{db: db, enc: enc, dec: dec}
	if err := s.ensureSchema(); err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS artifacts (
  name TEXT PRIMARY KEY,
  size INTEGER NOT NULL,
  data BLOB NOT NULL,
  created_at INTEGER NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("artifact: sqlite: schema: %w", err)
	}

	return nil
}

// Close releases the database handle and the zstd decoder.
func (s *SQLiteStore) Close() error {
	s.dec.Close()
	_ = s.enc.Close()

	return s.db.Close()
}

// Put compresses data and upserts it under name.
func (s *SQLiteStore) Put(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	blob := s.enc.EncodeAll(data, make([]byte, 0, len(data)/2))
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO artifacts (name, size, data, created_at)
VALUES (?, ?, ?, ?)
`, name, len(data), blob, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("artifact: sqlite: put: %w", err)
	}

	return nil
}

// Get loads and decompresses the artifact.
func (s *SQLiteStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var (
		size int
		blob []byte
	)
	err := s.db.QueryRowContext(ctx, `SELECT size, data FROM artifacts WHERE name = ?`, name).Scan(&size, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("artifact: sqlite: get: %w", err)
	}

	data, err := s.dec.DecodeAll(blob, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("artifact: zstd: %w", err)
	}

	return data, nil
}
