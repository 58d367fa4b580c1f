// Package quality is the generation-time gate between a drafted task and the
// exam. It rejects drafts that repeat the numbers of the previous task in the
// same category and drafts whose sampled parameters fall outside the
// plausible real-world bounds of the value catalog.
package quality

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

// maxSimilarity is the acceptance bound: a draft sharing strictly more than
// this fraction of its operands with the previous accepted task of the same
// category is rejected.
const maxSimilarity = 0.70

// relToleranceDec is the fraction of the larger operand within which two
// operands count as the same number.
var relToleranceDec = decimal.RequireFromString("0.1")

// Checker remembers per-run acceptance state: the last accepted signature per
// category and every template id already spent. It is not safe for concurrent
// use; every run owns its own Checker.
type Checker struct {
	bounds  map[string]domain.ParamRange
	lastSig map[domain.Category][]decimal.Decimal
	used    map[string]struct{}
}

// NewChecker builds a checker with the given plausibility bounds, keyed by
// parameter name. Parameters without a bound pass unchecked.
func NewChecker(bounds map[string]domain.ParamRange) *Checker {
	return &Checker{
		bounds:  bounds,
		lastSig: make(map[domain.Category][]decimal.Decimal),
		used:    make(map[string]struct{}),
	}
}

// Spent reports whether a template id was already accepted in this run.
// A template produces at most one task per exam.
func (c *Checker) Spent(templateID string) bool {
	_, ok := c.used[templateID]
	return ok
}

// Inspect validates a drafted task's parameters and its operand signature
// against the previous accepted task of the category. A nil return means the
// draft may be accepted; rejection reasons wrap ErrImplausible or
// ErrTooSimilar.
func (c *Checker) Inspect(category domain.Category, params map[string]float64, signature []decimal.Decimal) error {
	for name, value := range params {
		bound, ok := c.bounds[name]
		if !ok {
			continue
		}
		if !bound.Contains(value) {
			return fmt.Errorf("parameter %s = %v outside [%v, %v]: %w",
				name, value, bound.Min, bound.Max, domain.ErrImplausible)
		}
	}
	prev, ok := c.lastSig[category]
	if !ok {
		return nil
	}
	if s := Similarity(signature, prev); s > maxSimilarity {
		return fmt.Errorf("similarity %.2f to previous %s task: %w", s, category, domain.ErrTooSimilar)
	}
	return nil
}

// Accept records an accepted task: its signature becomes the comparison
// point for the category and its template is spent for the rest of the run.
func (c *Checker) Accept(category domain.Category, templateID string, signature []decimal.Decimal) {
	c.lastSig[category] = Signature(signature)
	c.used[templateID] = struct{}{}
}

// Signature sorts a copy of the operands ascending, producing the canonical
// form Similarity expects.
func Signature(operands []decimal.Decimal) []decimal.Decimal {
	sig := make([]decimal.Decimal, len(operands))
	copy(sig, operands)
	sort.Slice(sig, func(i, j int) bool { return sig[i].LessThan(sig[j]) })
	return sig
}

// Similarity compares two operand multisets and returns the shared fraction
// in [0, 1]. Both inputs are sorted first, then paired positionally; a pair
// counts as shared when the operands differ by less than a tenth of the
// larger magnitude. Length differences count against similarity: the shared
// count is divided by the longer length.
func Similarity(a, b []decimal.Decimal) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	as := Signature(a)
	bs := Signature(b)
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	shared := 0
	for i := 0; i < n; i++ {
		if closeEnough(as[i], bs[i]) {
			shared++
		}
	}
	longer := len(as)
	if len(bs) > longer {
		longer = len(bs)
	}
	return float64(shared) / float64(longer)
}

func closeEnough(a, b decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	max := a.Abs()
	if b.Abs().GreaterThan(max) {
		max = b.Abs()
	}
	if max.IsZero() {
		return diff.IsZero()
	}
	return diff.LessThan(max.Mul(relToleranceDec))
}

// FromParams derives a signature from the sampled parameters of a template
// that reports no explicit operands. Values with no exact representation are
// silently dropped so the comparison stays total.
func FromParams(params map[string]float64) []decimal.Decimal {
	vals := make([]decimal.Decimal, 0, len(params))
	for _, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vals = append(vals, decimal.NewFromFloat(v))
	}
	return Signature(vals)
}
