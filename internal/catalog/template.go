package catalog

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Env carries the run-scoped inputs a template may use: the shared value
// catalog, the caller's equation variable symbol and the exam's overall
// difficulty profile. The profile widens or narrows sampling ranges; it does
// not change a template's tier.
type Env struct {
	Data    *Values
	Symbol  string
	Profile domain.Tier
}

// Draft is the raw output of one template invocation, before quality control
// and point assignment.
type Draft struct {
	Problem     string
	Solution    string
	Explanation string

	// Params holds the sampled parameters by name for plausibility checks
	Params map[string]float64

	// Operands lists the numeric operands of the task in appearance order;
	// the generator sorts them into the task's signature.
	Operands []decimal.Decimal

	// Diagram is optional ASCII line-art, passed through verbatim
	Diagram string

	// PlaceValues is the optional typed solution table
	PlaceValues *domain.PlaceValueTable
}

// GenerateFunc is a pure function from a random source and environment to a
// drafted task. Implementations must draw all randomness from rng so that
// identical seeds reproduce identical exams.
type GenerateFunc func(rng *rand.Rand, env Env) (Draft, error)

// Template is one parameterized task definition. Templates are immutable
// after registry construction and shared read-only across runs.
type Template struct {
	ID       string
	Category domain.Category
	Tier     domain.Tier
	Topic    string
	Params   []domain.ParamRange
	Generate GenerateFunc
}

// sampling helpers shared by the template files

// intn draws an int from the inclusive range [min, max]
func intn(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// pick draws one element of a non-empty slice
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// dec converts an int to a decimal operand
func dec(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

// pr builds one ParamRange for template metadata
func pr(name string, min, max float64) domain.ParamRange {
	return domain.ParamRange{Name: name, Min: min, Max: max}
}
