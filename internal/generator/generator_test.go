package generator

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/prueflab/pruefgen/internal/catalog"
	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/quality"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return New(reg, slog.Default())
}

func TestGenerateFillsEverySlot(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	result, err := g.Generate(spec, 1, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	total := 0
	for _, slot := range spec.Slots {
		tasks := result.Tasks[slot.Category]
		wantCount := 0
		for _, ts := range slot.Breakdown {
			wantCount += ts.Count
		}
		if len(tasks) != wantCount {
			t.Errorf("category %s: %d tasks, want %d", slot.Category, len(tasks), wantCount)
		}
		points := 0
		for _, task := range tasks {
			points += task.Points
			if task.Problem == "" || task.Solution == "" {
				t.Errorf("category %s: incomplete task %s", slot.Category, task.TemplateID)
			}
			if task.Category != slot.Category {
				t.Errorf("task %s carries category %s, slot is %s",
					task.TemplateID, task.Category, slot.Category)
			}
		}
		if points != slot.Points {
			t.Errorf("category %s: %d points, want %d", slot.Category, points, slot.Points)
		}
		total += points
	}
	if total != spec.TotalPoints {
		t.Errorf("exam total %d, want %d", total, spec.TotalPoints)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	a, err := g.Generate(spec, 42, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(spec, 42, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Symbol != b.Symbol {
		t.Errorf("symbol differs: %q vs %q", a.Symbol, b.Symbol)
	}
	for _, c := range domain.Categories() {
		at, bt := a.Tasks[c], b.Tasks[c]
		if len(at) != len(bt) {
			t.Fatalf("category %s: task counts differ", c)
		}
		for i := range at {
			if at[i].Problem != bt[i].Problem || at[i].Solution != bt[i].Solution {
				t.Errorf("category %s task %d differs under same seed:\n%q\n%q",
					c, i, at[i].Problem, bt[i].Problem)
			}
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	a, err := g.Generate(spec, 1, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(spec, 2, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	same := 0
	count := 0
	for _, c := range domain.Categories() {
		for i := range a.Tasks[c] {
			count++
			if i < len(b.Tasks[c]) && a.Tasks[c][i].Problem == b.Tasks[c][i].Problem {
				same++
			}
		}
	}
	if same == count {
		t.Error("different seeds produced an identical exam")
	}
}

func TestGenerateTopicSlotsArePinned(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	result, err := g.Generate(spec, 7, domain.TierMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// the fraction category mixes pinned fraction and equation slots; the
	// accepted tasks must come from correspondingly pinned templates
	i := 0
	for _, slot := range spec.Slots {
		if slot.Category != domain.CategoryFractions {
			continue
		}
		for _, ts := range slot.Breakdown {
			task := result.Tasks[slot.Category][i]
			tmpl, err := g.registry.Get(task.TemplateID)
			if err != nil {
				t.Fatalf("template %s not in registry: %v", task.TemplateID, err)
			}
			if tmpl.Topic != ts.Topic {
				t.Errorf("slot topic %q filled by template %s with topic %q",
					ts.Topic, tmpl.ID, tmpl.Topic)
			}
			if tmpl.Tier != ts.Tier {
				t.Errorf("slot tier %s filled by template %s with tier %s",
					ts.Tier, tmpl.ID, tmpl.Tier)
			}
			i++
		}
	}
}

func TestGenerateConsecutiveSimilarityBound(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	for seed := int64(1); seed <= 10; seed++ {
		result, err := g.Generate(spec, seed, domain.TierMedium)
		if err != nil {
			t.Fatalf("Generate(seed=%d): %v", seed, err)
		}
		for _, c := range domain.Categories() {
			tasks := result.Tasks[c]
			for i := 1; i < len(tasks); i++ {
				s := quality.Similarity(tasks[i].Signature, tasks[i-1].Signature)
				if s > 0.70 {
					t.Errorf("seed %d category %s: tasks %s and %s share %.2f of operands",
						seed, c, tasks[i-1].TemplateID, tasks[i].TemplateID, s)
				}
			}
		}
	}
}

func TestGenerateNeverReusesTemplate(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()

	for seed := int64(1); seed <= 10; seed++ {
		result, err := g.Generate(spec, seed, domain.TierMedium)
		if err != nil {
			t.Fatalf("Generate(seed=%d): %v", seed, err)
		}
		seen := make(map[string]bool)
		for _, c := range domain.Categories() {
			for _, task := range result.Tasks[c] {
				if seen[task.TemplateID] {
					t.Errorf("seed %d: template %s used twice", seed, task.TemplateID)
				}
				seen[task.TemplateID] = true
			}
		}
	}
}

func TestGenerateRejectsInvalidSpec(t *testing.T) {
	g := newTestGenerator(t)
	spec := domain.DefaultTestSpec()
	spec.Slots[0].Points = 7 // breaks the category sum

	_, err := g.Generate(spec, 1, domain.TierMedium)
	if !errors.Is(err, domain.ErrInvalidSpec) {
		t.Errorf("got %v, want ErrInvalidSpec", err)
	}
}
