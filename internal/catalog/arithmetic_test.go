package catalog

import (
	"math/rand"
	"strings"
	"testing"
)

// The bracketed addend in the nested chains is sampled as f·k-d, which can
// land well below 1. The templates must lift it back into range so the
// rendered problem never shows a bare negative addend.
func TestNestedChainAddendStaysPositive(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	env := testEnv(t, r)
	ids := []string{
		"grundrechnung/verschachtelt-2a",
		"grundrechnung/verschachtelt-2b",
		"grundrechnung/negativ-1",
		"grundrechnung/negativ-2",
	}
	for _, id := range ids {
		tmpl, err := r.Get(id)
		if err != nil {
			t.Fatalf("Get(%s): %v", id, err)
		}
		t.Run(id, func(t *testing.T) {
			for seed := int64(1); seed <= 300; seed++ {
				d, err := tmpl.Generate(rand.New(rand.NewSource(seed)), env)
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				if e := d.Params["e"]; e < 1 {
					t.Errorf("seed %d: e = %v below its declared minimum in %q", seed, e, d.Problem)
				}
				if strings.Contains(d.Problem, "+ -") {
					t.Errorf("seed %d: bare negative addend in %q", seed, d.Problem)
				}
			}
		})
	}
}
