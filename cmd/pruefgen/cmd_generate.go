package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/prueflab/pruefgen/internal/archive"
	"github.com/prueflab/pruefgen/internal/assembler"
	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/config"
	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/events"
	"github.com/prueflab/pruefgen/internal/render"
)

// cmdGenerate produces one exam and writes it to stdout or files
func cmdGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	seed := fs.Int64("seed", cfg.Seed, "seed for reproducible generation (0 = random)")
	difficulty := fs.String("difficulty", cfg.Difficulty, "exam profile: easy, medium, hard")
	outPath := fs.String("o", "", "write the exam markdown to a file instead of stdout")
	jsonPath := fs.String("json", "", "additionally export per-task details as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tier, err := domain.ParseTier(*difficulty)
	if err != nil {
		return err
	}

	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	doc, err := assembler.New(registry, slog.Default()).Assemble(assembler.Options{
		Difficulty: tier,
		Seed:       *seed,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if err := store.Save(ctx, doc); err != nil {
			return fmt.Errorf("archive exam: %w", err)
		}
	}

	if cfg.AMQPURL != "" {
		conn, err := events.NewConnection(cfg.AMQPURL)
		if err != nil {
			return fmt.Errorf("connect event broker: %w", err)
		}
		defer conn.Close()
		if err := events.NewPublisher(conn, slog.Default()).PublishExamGenerated(ctx, doc); err != nil {
			return err
		}
	}

	markdown := render.Markdown(doc)
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("write exam: %w", err)
		}
		fmt.Print(render.Summary(doc))
		fmt.Printf("\n  Geschrieben nach %s\n", *outPath)
	} else {
		fmt.Print(markdown)
	}

	if *jsonPath != "" {
		details, err := json.MarshalIndent(doc.Details(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal details: %w", err)
		}
		if err := os.WriteFile(*jsonPath, details, 0o644); err != nil {
			return fmt.Errorf("write details: %w", err)
		}
	}
	return nil
}

// openStore builds the configured archive backend, or nil for none
func openStore(ctx context.Context, cfg *config.Config) (archive.Store, error) {
	switch cfg.ArchiveBackend {
	case config.ArchiveSQLite:
		return archive.OpenSQLite(cfg.ArchivePath)
	case config.ArchivePostgres:
		return archive.OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, nil
	}
}
