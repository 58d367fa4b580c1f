// Package assembler drives one complete exam run: it generates the tasks for
// a spec, stamps the run metadata and validates the finished document before
// handing it out.
package assembler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/generator"
)

// Options selects difficulty and seed for one run. A zero seed means the
// caller wants a time-derived one; Assemble records whichever seed was used
// in the document so any run can be reproduced.
type Options struct {
	Difficulty domain.Tier
	Seed       int64
	Spec       *domain.TestSpec // nil selects the default 100-point exam
}

// Assembler produces finished exam documents
type Assembler struct {
	generator *generator.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// New builds an assembler over a loaded template catalog
func New(registry *catalog.Registry, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		generator: generator.New(registry, logger),
		logger:    logger,
		now:       time.Now,
	}
}

// Assemble runs generation for the options and returns the validated exam
func (a *Assembler) Assemble(opts Options) (*domain.TestDocument, error) {
	spec := domain.DefaultTestSpec()
	if opts.Spec != nil {
		spec = *opts.Spec
	}
	seed := opts.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = domain.TierMedium
	}

	started := a.now()
	result, err := a.generator.Generate(spec, seed, difficulty)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	doc := &domain.TestDocument{
		RunID:            uuid.New(),
		Seed:             seed,
		Difficulty:       difficulty,
		GeneratedAt:      started.UTC(),
		TotalPoints:      spec.TotalPoints,
		TimeLimitMinutes: spec.TimeLimitMinutes,
		PassMark:         spec.PassMark,
		Scale:            domain.GradingScale(),
	}
	for _, slot := range spec.Slots {
		doc.Categories = append(doc.Categories, domain.CategoryResult{
			Category: slot.Category,
			Points:   slot.Points,
			Tasks:    result.Tasks[slot.Category],
		})
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	a.logger.Info("exam assembled",
		"run_id", doc.RunID,
		"seed", doc.Seed,
		"difficulty", doc.Difficulty,
		"tasks", len(doc.Details()),
		"duration", a.now().Sub(started))
	return doc, nil
}
