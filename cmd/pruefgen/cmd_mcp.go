package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prueflab/pruefgen/internal/assembler"
	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/config"
	mcpserver "github.com/prueflab/pruefgen/internal/mcp"
)

// cmdMCP starts the MCP server on stdio
func cmdMCP(cfg *config.Config) error {
	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	server := mcpserver.NewServer(mcpserver.Config{
		Assembler: assembler.New(registry, slog.Default()),
		Registry:  registry,
		Store:     store,
	})

	slog.Info("starting MCP server on stdio", "templates", registry.Count())
	if err := server.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
