package catalog

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/prueflab/pruefgen/internal/domain"
)

var denominatorLiteral = regexp.MustCompile(`\d+/(\d+)`)

// Every fraction that appears anywhere in a draft, including the expanded
// working in the explanation, has to keep its denominator below 100.
func TestFractionDenominatorsStayBelowHundred(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	env := testEnv(t, r)
	for _, tier := range []domain.Tier{domain.TierEasy, domain.TierMedium, domain.TierHard} {
		for _, tmpl := range r.Find(domain.CategoryFractions, tier, domain.TopicFraction) {
			tmpl := tmpl
			t.Run(tmpl.ID, func(t *testing.T) {
				for seed := int64(1); seed <= 200; seed++ {
					d, err := tmpl.Generate(rand.New(rand.NewSource(seed)), env)
					if err != nil {
						t.Fatalf("seed %d: %v", seed, err)
					}
					text := d.Problem + "\n" + d.Solution + "\n" + d.Explanation
					for _, m := range denominatorLiteral.FindAllStringSubmatch(text, -1) {
						den, err := strconv.Atoi(m[1])
						if err != nil {
							t.Fatalf("seed %d: parse %q: %v", seed, m[1], err)
						}
						if den >= 100 {
							t.Fatalf("seed %d: denominator %d in %q", seed, den, m[0])
						}
					}
				}
			})
		}
	}
}
