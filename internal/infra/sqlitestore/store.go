package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	registryapp "github.com/schemalens/schemalens/internal/app/registry"
	"github.com/schemalens/schemalens/internal/domain"
)

// Store persists the schema registry in a single SQLite file.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path required")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) SaveSchema(ctx context.Context, record registryapp.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schemas (id, name, draft, document, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			draft = excluded.draft,
			document = excluded.document,
			created_at = excluded.created_at
	`, record.ID, record.Name, string(record.Draft), record.Document, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save schema %s: %w", record.Name, err)
	}
	return nil
}

func (s *Store) LoadSchema(ctx context.Context, name string) (registryapp.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, draft, document, created_at FROM schemas WHERE name = ?", name)
	record, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return registryapp.Record{}, registryapp.ErrSchemaNotFound
		}
		return registryapp.Record{}, fmt.Errorf("load schema %s: %w", name, err)
	}
	return record, nil
}

func (s *Store) ListSchemas(ctx context.Context) ([]registryapp.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, draft, document, created_at FROM schemas ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	defer rows.Close()

	var records []registryapp.Record
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan schema row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema rows: %w", err)
	}
	return records, nil
}

func (s *Store) DeleteSchema(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM schemas WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete schema %s: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete schema %s: %w", name, err)
	}
	if affected == 0 {
		return registryapp.ErrSchemaNotFound
	}
	return nil
}

func scanRecord(scan func(dest ...any) error) (registryapp.Record, error) {
	var record registryapp.Record
	var draft string
	if err := scan(&record.ID, &record.Name, &draft, &record.Document, &record.CreatedAt); err != nil {
		return registryapp.Record{}, err
	}
	record.Draft = domain.Draft(draft)
	return record, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schemas (
			id TEXT NOT NULL,
			name TEXT PRIMARY KEY,
			draft TEXT NOT NULL,
			document BLOB NOT NULL,
			created_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create schemas table: %w", err)
	}
	return nil
}
