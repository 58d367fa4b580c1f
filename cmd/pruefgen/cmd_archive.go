package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/config"
	"github.com/prueflab/pruefgen/internal/render"
)

// cmdArchive lists or prints archived exams
func cmdArchive(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pruefgen archive <list|show> [run-id]")
	}
	if cfg.ArchiveBackend == config.ArchiveNone {
		return fmt.Errorf("no archive configured, set PRUEFGEN_ARCHIVE to sqlite or postgres")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch args[0] {
	case "list":
		entries, err := store.List(ctx, 20)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Keine archivierten Tests.")
			return nil
		}
		fmt.Printf("%-36s  %-19s  %-7s  %s\n", "Run-ID", "Erstellt", "Profil", "Seed")
		for _, e := range entries {
			fmt.Printf("%-36s  %-19s  %-7s  %d\n",
				e.RunID, e.GeneratedAt.Format("2006-01-02 15:04:05"), e.Difficulty, e.Seed)
		}
		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: pruefgen archive show <run-id>")
		}
		runID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("parse run id %q: %w", args[1], err)
		}
		doc, err := store.Load(ctx, runID)
		if err != nil {
			return err
		}
		fmt.Print(render.Markdown(doc))
		return nil

	default:
		return fmt.Errorf("unknown archive command: %s", args[0])
	}
}
