package domain

import "github.com/shopspring/decimal"

// ParamRange declares the inclusive bounds for one sampled template variable.
// Quality control re-validates sampled values against these bounds before a
// task is accepted.
type ParamRange struct {
	Name string
	Min  float64
	Max  float64
}

// Contains reports whether v lies within the inclusive bounds
func (r ParamRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// GeneratedTask is a single exam task together with its exact solution.
// The solution is always derived from the same sampled parameters that were
// substituted into the problem text.
type GeneratedTask struct {
	TemplateID  string
	Category    Category
	Tier        Tier
	Points      int
	Problem     string
	Solution    string
	Explanation string

	// Params holds the sampled parameters by name, for plausibility checks.
	Params map[string]float64

	// Signature is the sorted multiset of numeric operands appearing in the
	// task, used for similarity comparison against the previous task of the
	// same category.
	Signature []decimal.Decimal

	// Diagram is an optional ASCII line-art block. Renderers must pass it
	// through byte-for-byte.
	Diagram string

	// PlaceValues is an optional structured solution table for number-sense
	// tasks. Renderers consume the typed rows, never re-parsed text.
	PlaceValues *PlaceValueTable
}
