package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prueflab/pruefgen/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	switch os.Args[1] {
	case "generate":
		err = cmdGenerate(cfg, os.Args[2:])
	case "templates":
		err = cmdTemplates()
	case "archive":
		err = cmdArchive(cfg, os.Args[2:])
	case "mcp":
		err = cmdMCP(cfg)
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("pruefgen %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func printUsage() {
	fmt.Println(`Pruefgen - Einstufungstest-Generator Mathematik

Usage:
  pruefgen <command> [arguments]

Generation Commands:
  generate        Generate a complete 100-point exam
  templates       Show the template catalog

Archive Commands:
  archive list    List archived exams
  archive show    Print an archived exam by run id

Integration Commands:
  mcp             Start MCP server (stdio)

Other:
  help            Show this help message
  version         Show version information

Environment:
  PRUEFGEN_SEED          Seed for reproducible runs (0 = random)
  PRUEFGEN_DIFFICULTY    easy | medium | hard
  PRUEFGEN_ARCHIVE       none | sqlite | postgres
  PRUEFGEN_ARCHIVE_PATH  sqlite database file
  PRUEFGEN_DATABASE_URL  postgres connection string
  PRUEFGEN_AMQP_URL      RabbitMQ URL for exam events
  PRUEFGEN_DEBUG         verbose logging

Examples:
  pruefgen generate                           # random exam to stdout
  pruefgen generate -seed 42 -difficulty hard # reproducible hard exam
  pruefgen generate -o exam.md -json exam.json
  pruefgen archive list                       # recent archived runs`)
}
