// Package mcp exposes exam generation over the Model Context Protocol so
// editors and assistants can create and look up exams as tools.
package mcp

import (
	"context"
	"fmt"

	mcp "github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/mcp-go/server"
	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/archive"
	"github.com/prueflab/pruefgen/internal/assembler"
	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/render"
)

// Server wraps the MCP server with exam generation tools
type Server struct {
	mcpServer *server.Server
	assembler *assembler.Assembler
	registry  *catalog.Registry
	store     archive.Store // nil when no archive is configured
}

// Config contains the collaborators for the MCP server
type Config struct {
	Assembler *assembler.Assembler
	Registry  *catalog.Registry
	Store     archive.Store
}

// NewServer creates the MCP server and registers all tools
func NewServer(cfg Config) *Server {
	s := &Server{
		assembler: cfg.Assembler,
		registry:  cfg.Registry,
		store:     cfg.Store,
	}

	s.mcpServer = server.New(server.Info{
		Name:    "pruefgen",
		Version: "0.1.0",
	}, server.WithInstructions(`
Pruefgen generates 100-point German math placement exams for trade
apprenticeships. Every exam has five categories of 20 points each, a 90
minute time limit and a pass mark of 60 points.

Available tools:
- pruefgen_generate: Generate a complete exam, optionally seeded
- pruefgen_lookup: Load an archived exam by run id
- pruefgen_templates: Inspect the template catalog
`))

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("pruefgen_generate").
		Description("Generate a complete placement exam. Identical seeds reproduce identical exams.").
		Handler(s.handleGenerate)

	s.mcpServer.Tool("pruefgen_lookup").
		Description("Load an archived exam by run id.").
		Handler(s.handleLookup)

	s.mcpServer.Tool("pruefgen_templates").
		Description("Report template counts per exam category.").
		Handler(s.handleTemplates)
}

// Input/Output types for tools

type GenerateInput struct {
	Difficulty string `json:"difficulty,omitempty" jsonschema:"description=Exam profile: easy / medium / hard,enum=easy,enum=medium,enum=hard"`
	Seed       int64  `json:"seed,omitempty" jsonschema:"description=Seed for reproducible generation; 0 draws a fresh one"`
}

type GenerateOutput struct {
	RunID    string `json:"run_id"`
	Seed     int64  `json:"seed"`
	Tasks    int    `json:"tasks"`
	Points   int    `json:"points"`
	Markdown string `json:"markdown"`
	Archived bool   `json:"archived"`
}

type LookupInput struct {
	RunID string `json:"run_id" jsonschema:"description=Run id of an archived exam"`
}

type LookupOutput struct {
	RunID    string              `json:"run_id"`
	Seed     int64               `json:"seed"`
	Tasks    []domain.TaskDetail `json:"tasks"`
	Markdown string              `json:"markdown"`
}

type TemplatesInput struct{}

type TemplatesOutput struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

func (s *Server) handleGenerate(ctx context.Context, input GenerateInput) (GenerateOutput, error) {
	difficulty := domain.TierMedium
	if input.Difficulty != "" {
		var err error
		difficulty, err = domain.ParseTier(input.Difficulty)
		if err != nil {
			return GenerateOutput{}, err
		}
	}

	doc, err := s.assembler.Assemble(assembler.Options{
		Difficulty: difficulty,
		Seed:       input.Seed,
	})
	if err != nil {
		return GenerateOutput{}, fmt.Errorf("generate exam: %w", err)
	}

	archived := false
	if s.store != nil {
		if err := s.store.Save(ctx, doc); err != nil {
			return GenerateOutput{}, fmt.Errorf("archive exam: %w", err)
		}
		archived = true
	}

	return GenerateOutput{
		RunID:    doc.RunID.String(),
		Seed:     doc.Seed,
		Tasks:    len(doc.Details()),
		Points:   doc.TaskPoints(),
		Markdown: render.Markdown(doc),
		Archived: archived,
	}, nil
}

func (s *Server) handleLookup(ctx context.Context, input LookupInput) (LookupOutput, error) {
	if s.store == nil {
		return LookupOutput{}, fmt.Errorf("no archive configured")
	}
	runID, err := uuid.Parse(input.RunID)
	if err != nil {
		return LookupOutput{}, fmt.Errorf("parse run id %q: %w", input.RunID, err)
	}

	doc, err := s.store.Load(ctx, runID)
	if err != nil {
		return LookupOutput{}, err
	}
	return LookupOutput{
		RunID:    doc.RunID.String(),
		Seed:     doc.Seed,
		Tasks:    doc.Details(),
		Markdown: render.Markdown(doc),
	}, nil
}

func (s *Server) handleTemplates(ctx context.Context, input TemplatesInput) (TemplatesOutput, error) {
	stats := s.registry.Stats()
	out := TemplatesOutput{
		Total:      s.registry.Count(),
		ByCategory: make(map[string]int, len(stats)),
	}
	for category, count := range stats {
		out.ByCategory[string(category)] = count
	}
	return out, nil
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}
