package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/prueflab/pruefgen/internal/archive/migrations"
	"github.com/prueflab/pruefgen/internal/domain"
)

// SQLiteStore persists exam documents in a local sqlite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the archive database at path with WAL mode
// enabled and applies all pending migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// single-writer sqlite
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate applies all pending SQL migrations from the embedded filesystem
func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get current version: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		version, err := parseVersion(name)
		if err != nil {
			slog.Warn("skipping non-migration file", "name", name, "error", err)
			continue
		}
		if version <= currentVersion {
			continue
		}

		data, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(data)); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT OR REPLACE INTO schema_migrations (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
		slog.Info("applied migration", "name", name, "version", version)
	}
	return nil
}

// parseVersion extracts the version number from a filename like "001_initial.sql"
func parseVersion(name string) (int, error) {
	parts := strings.SplitN(name, "_", 2)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid migration filename: %s", name)
	}
	var version int
	if _, err := fmt.Sscanf(parts[0], "%d", &version); err != nil {
		return 0, fmt.Errorf("parse version from %s: %w", name, err)
	}
	return version, nil
}

// Save persists a document together with its queryable metadata
func (s *SQLiteStore) Save(ctx context.Context, doc *domain.TestDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (run_id, seed, difficulty, generated_at, total_points, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		doc.RunID.String(), doc.Seed, string(doc.Difficulty), doc.GeneratedAt, doc.TotalPoints, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", doc.RunID, err)
	}
	return nil
}

// Load returns the full document for a run id
func (s *SQLiteStore) Load(ctx context.Context, runID uuid.UUID) (*domain.TestDocument, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM documents WHERE run_id = ?", runID.String(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", runID, domain.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query document %s: %w", runID, err)
	}

	var doc domain.TestDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", runID, err)
	}
	return &doc, nil
}

// List returns up to limit archive entries, newest first
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, seed, difficulty, generated_at, total_points
		 FROM documents ORDER BY generated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			id         string
			difficulty string
			generated  time.Time
		)
		if err := rows.Scan(&id, &e.Seed, &difficulty, &generated, &e.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		runID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		e.RunID = runID
		e.Difficulty = domain.Tier(difficulty)
		e.GeneratedAt = generated
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
