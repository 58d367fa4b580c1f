package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prueflab/pruefgen/internal/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
    run_id       UUID PRIMARY KEY,
    seed         BIGINT NOT NULL,
    difficulty   TEXT NOT NULL,
    generated_at TIMESTAMPTZ NOT NULL,
    total_points INTEGER NOT NULL,
    payload      JSONB NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_documents_generated_at ON documents(generated_at DESC);
`

// PostgresStore persists exam documents in a shared postgres database
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database named by url and ensures the schema
// exists.
func OpenPostgres(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Save persists a document together with its queryable metadata
func (s *PostgresStore) Save(ctx context.Context, doc *domain.TestDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (run_id, seed, difficulty, generated_at, total_points, payload)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.RunID, doc.Seed, string(doc.Difficulty), doc.GeneratedAt, doc.TotalPoints, payload,
	)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", doc.RunID, err)
	}
	return nil
}

// Load returns the full document for a run id
func (s *PostgresStore) Load(ctx context.Context, runID uuid.UUID) (*domain.TestDocument, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		"SELECT payload FROM documents WHERE run_id = $1", runID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", runID, domain.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query document %s: %w", runID, err)
	}

	var doc domain.TestDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", runID, err)
	}
	return &doc, nil
}

// List returns up to limit archive entries, newest first
func (s *PostgresStore) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx,
		`SELECT run_id, seed, difficulty, generated_at, total_points
		 FROM documents ORDER BY generated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			difficulty string
		)
		if err := rows.Scan(&e.RunID, &e.Seed, &difficulty, &e.GeneratedAt, &e.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		e.Difficulty = domain.Tier(difficulty)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
