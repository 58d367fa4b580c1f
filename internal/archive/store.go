// Package archive persists assembled exams so any run can be reprinted or
// audited later. Two backends exist: an embedded sqlite database for
// single-machine use and postgres for shared deployments. Both store the
// full document as JSON next to the queryable run metadata.
package archive

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Entry is the metadata row returned by listings; the full document is
// loaded on demand.
type Entry struct {
	RunID       uuid.UUID
	Seed        int64
	Difficulty  domain.Tier
	GeneratedAt time.Time
	TotalPoints int
}

// Store is the persistence contract for exam documents
type Store interface {
	// Save persists a document; saving the same run id twice is an error
	Save(ctx context.Context, doc *domain.TestDocument) error

	// Load returns the document for a run id, or ErrDocumentNotFound
	Load(ctx context.Context, runID uuid.UUID) (*domain.TestDocument, error)

	// List returns up to limit entries, newest first
	List(ctx context.Context, limit int) ([]Entry, error)

	Close() error
}
