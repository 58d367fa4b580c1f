package catalog

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/prueflab/pruefgen/internal/domain"
)

var (
	fractionLiteral = regexp.MustCompile(`\d+/\d+`)
	decimalLiteral  = regexp.MustCompile(`\d+,\d+`)
)

// countBrackets returns the number of opening bracket groups and how many of
// them are preceded by each required operator.
func countBrackets(problem string) (total, mul, add, sub int) {
	total = strings.Count(problem, "(")
	mul = strings.Count(problem, "· (")
	add = strings.Count(problem, "+ (")
	sub = strings.Count(problem, "- (")
	return
}

func TestMediumEquationStructure(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	env := testEnv(t, r)
	for _, tmpl := range r.Find(domain.CategoryFractions, domain.TierMedium, domain.TopicEquation) {
		tmpl := tmpl
		t.Run(tmpl.ID, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				d, err := tmpl.Generate(rand.New(rand.NewSource(seed)), env)
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				total, mul, add, sub := countBrackets(d.Problem)
				if total != 3 || mul != 1 || add != 1 || sub != 1 {
					t.Errorf("seed %d: bracket structure %d/%d/%d/%d in %q",
						seed, total, mul, add, sub, d.Problem)
				}
				if fractionLiteral.MatchString(d.Problem) {
					t.Errorf("seed %d: medium equation contains a fraction: %q", seed, d.Problem)
				}
				if decimalLiteral.MatchString(d.Problem) {
					t.Errorf("seed %d: medium equation contains a decimal: %q", seed, d.Problem)
				}
			}
		})
	}
}

func TestHardEquationStructure(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	env := testEnv(t, r)
	for _, tmpl := range r.Find(domain.CategoryFractions, domain.TierHard, domain.TopicEquation) {
		tmpl := tmpl
		t.Run(tmpl.ID, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				d, err := tmpl.Generate(rand.New(rand.NewSource(seed)), env)
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				total, mul, add, sub := countBrackets(d.Problem)
				if total != 3 || mul != 1 || add != 1 || sub != 1 {
					t.Errorf("seed %d: bracket structure %d/%d/%d/%d in %q",
						seed, total, mul, add, sub, d.Problem)
				}
				if !fractionLiteral.MatchString(d.Problem) {
					t.Errorf("seed %d: hard equation lacks a fraction: %q", seed, d.Problem)
				}
				if !decimalLiteral.MatchString(d.Problem) {
					t.Errorf("seed %d: hard equation lacks a decimal: %q", seed, d.Problem)
				}
			}
		})
	}
}

func TestEquationSymbolConsistency(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	env := testEnv(t, r)
	env.Symbol = "n"
	for _, tier := range []domain.Tier{domain.TierMedium, domain.TierHard} {
		for _, tmpl := range r.Find(domain.CategoryFractions, tier, domain.TopicEquation) {
			d, err := tmpl.Generate(rand.New(rand.NewSource(3)), env)
			if err != nil {
				t.Fatalf("%s: %v", tmpl.ID, err)
			}
			if !strings.Contains(d.Problem, "n") {
				t.Errorf("%s: problem does not use symbol n: %q", tmpl.ID, d.Problem)
			}
			if !strings.HasPrefix(d.Solution, "n = ") {
				t.Errorf("%s: solution line %q does not start with \"n = \"", tmpl.ID, d.Solution)
			}
			if strings.Contains(d.Problem, "x") {
				t.Errorf("%s: problem leaks default symbol x: %q", tmpl.ID, d.Problem)
			}
		}
	}
}
