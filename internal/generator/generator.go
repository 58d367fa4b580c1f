// Package generator turns a test spec into concrete tasks. For every slot it
// walks the matching templates, samples parameters, solves, and lets quality
// control accept or reject the draft. Rejection is part of normal operation;
// only a slot that exhausts all its templates fails the run.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/quality"
)

// maxResamples is how often one template may be re-sampled for a slot before
// the generator rotates to the next template.
const maxResamples = 4

// equationSymbols are the variable letters an exam may use. One is drawn per
// run and used consistently across all equation tasks.
var equationSymbols = []string{"x", "y", "z", "a", "b", "n"}

// Generator produces exam tasks from the template catalog. It is stateless
// between runs; all per-run state lives on the stack of Generate.
type Generator struct {
	registry *catalog.Registry
	logger   *slog.Logger
}

// New builds a generator over a loaded catalog
func New(registry *catalog.Registry, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{registry: registry, logger: logger}
}

// Result groups the generated tasks by category in exam order
type Result struct {
	Tasks  map[domain.Category][]domain.GeneratedTask
	Symbol string
}

// Generate fills every slot of the spec. All randomness is drawn from a
// single source seeded by the caller, so identical seeds yield identical
// exams. The profile widens or narrows template sampling ranges without
// changing the slot structure.
func (g *Generator) Generate(spec domain.TestSpec, seed int64, profile domain.Tier) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	env := catalog.Env{
		Data:    g.registry.Values(),
		Symbol:  equationSymbols[rng.Intn(len(equationSymbols))],
		Profile: profile,
	}
	checker := quality.NewChecker(g.registry.Values().Bounds)

	result := &Result{
		Tasks:  make(map[domain.Category][]domain.GeneratedTask, len(spec.Slots)),
		Symbol: env.Symbol,
	}
	for _, slot := range spec.Slots {
		for _, tierSlot := range slot.Breakdown {
			for i := 0; i < tierSlot.Count; i++ {
				task, err := g.fillSlot(rng, env, checker, slot.Category, tierSlot)
				if err != nil {
					return nil, err
				}
				result.Tasks[slot.Category] = append(result.Tasks[slot.Category], task)
			}
		}
	}
	return result, nil
}

// fillSlot produces one accepted task for a tier slot. Templates are tried
// in rotated id order, skipping ids already spent in this run; each gets
// maxResamples draws before the next takes over. Only when every template
// is spent or rejected does the slot fail.
func (g *Generator) fillSlot(rng *rand.Rand, env catalog.Env, checker *quality.Checker,
	category domain.Category, slot domain.TierSlot) (domain.GeneratedTask, error) {

	candidates := g.registry.Find(category, slot.Tier, slot.Topic)
	if len(candidates) == 0 {
		return domain.GeneratedTask{}, fmt.Errorf("slot %s/%s/%q: no templates: %w",
			category, slot.Tier, slot.Topic, domain.ErrTemplatesExhausted)
	}

	offset := rng.Intn(len(candidates))
	for n := 0; n < len(candidates); n++ {
		tmpl := candidates[(offset+n)%len(candidates)]
		if checker.Spent(tmpl.ID) {
			continue
		}
		for attempt := 1; attempt <= maxResamples; attempt++ {
			draft, err := tmpl.Generate(rng, env)
			if err != nil {
				g.logger.Debug("template draw failed",
					"template", tmpl.ID, "attempt", attempt, "error", err)
				continue
			}
			signature := quality.Signature(draft.Operands)
			if len(signature) == 0 {
				signature = quality.FromParams(draft.Params)
			}
			if err := checker.Inspect(category, draft.Params, signature); err != nil {
				g.logger.Debug("draft rejected",
					"template", tmpl.ID, "attempt", attempt, "reason", err)
				continue
			}
			checker.Accept(category, tmpl.ID, signature)
			return domain.GeneratedTask{
				TemplateID:  tmpl.ID,
				Category:    category,
				Tier:        slot.Tier,
				Points:      slot.Points,
				Problem:     draft.Problem,
				Solution:    draft.Solution,
				Explanation: draft.Explanation,
				Params:      draft.Params,
				Signature:   signature,
				Diagram:     draft.Diagram,
				PlaceValues: draft.PlaceValues,
			}, nil
		}
	}
	return domain.GeneratedTask{}, fmt.Errorf("slot %s/%s/%q: %w",
		category, slot.Tier, slot.Topic, domain.ErrTemplatesExhausted)
}
