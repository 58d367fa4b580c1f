package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prueflab/pruefgen/internal/archive"
	"github.com/prueflab/pruefgen/internal/assembler"
	"github.com/prueflab/pruefgen/internal/catalog"
)

func newTestServer(t *testing.T, withStore bool) *Server {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	cfg := Config{
		Assembler: assembler.New(reg, nil),
		Registry:  reg,
	}
	if withStore {
		store, err := archive.OpenSQLite(filepath.Join(t.TempDir(), "archive.db"))
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		cfg.Store = store
	}
	return NewServer(cfg)
}

func TestHandleGenerate(t *testing.T) {
	s := newTestServer(t, false)

	out, err := s.handleGenerate(context.Background(), GenerateInput{Difficulty: "hard", Seed: 4})
	if err != nil {
		t.Fatalf("handleGenerate: %v", err)
	}
	if out.Points != 100 {
		t.Errorf("points = %d, want 100", out.Points)
	}
	if out.Seed != 4 {
		t.Errorf("seed = %d, want 4", out.Seed)
	}
	if out.Archived {
		t.Error("archived without a store")
	}
	if !strings.Contains(out.Markdown, "# Einstufungstest Mathematik") {
		t.Error("markdown missing exam header")
	}
}

func TestHandleGenerateRejectsBadTier(t *testing.T) {
	s := newTestServer(t, false)
	if _, err := s.handleGenerate(context.Background(), GenerateInput{Difficulty: "extreme"}); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestHandleLookupRoundTrip(t *testing.T) {
	s := newTestServer(t, true)
	ctx := context.Background()

	generated, err := s.handleGenerate(ctx, GenerateInput{Seed: 8})
	if err != nil {
		t.Fatalf("handleGenerate: %v", err)
	}
	if !generated.Archived {
		t.Fatal("exam not archived despite store")
	}

	loaded, err := s.handleLookup(ctx, LookupInput{RunID: generated.RunID})
	if err != nil {
		t.Fatalf("handleLookup: %v", err)
	}
	if loaded.Seed != generated.Seed {
		t.Errorf("seed changed: %d vs %d", loaded.Seed, generated.Seed)
	}
	if len(loaded.Tasks) != generated.Tasks {
		t.Errorf("task count changed: %d vs %d", len(loaded.Tasks), generated.Tasks)
	}
}

func TestHandleLookupWithoutStore(t *testing.T) {
	s := newTestServer(t, false)
	if _, err := s.handleLookup(context.Background(), LookupInput{RunID: "x"}); err == nil {
		t.Error("lookup without archive must fail")
	}
}

func TestHandleTemplates(t *testing.T) {
	s := newTestServer(t, false)

	out, err := s.handleTemplates(context.Background(), TemplatesInput{})
	if err != nil {
		t.Fatalf("handleTemplates: %v", err)
	}
	if out.Total < 50 {
		t.Errorf("total = %d, want at least 50", out.Total)
	}
	if len(out.ByCategory) != 5 {
		t.Errorf("%d categories, want 5", len(out.ByCategory))
	}
}
