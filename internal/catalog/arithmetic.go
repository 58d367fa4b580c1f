package catalog

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/numeric"
	"github.com/prueflab/pruefgen/internal/solver"
)

// bound is an inclusive integer sampling range
type bound struct{ lo, hi int }

func (b bound) sample(rng *rand.Rand) int { return intn(rng, b.lo, b.hi) }

func (b bound) rangeFor(name string) domain.ParamRange {
	return pr(name, float64(b.lo), float64(b.hi))
}

// solveChain evaluates the problem through the solver and renders the
// solution. Every arithmetic template routes its final answer through here
// so problem text and solution can never drift apart.
func solveChain(problem string) (string, decimal.Decimal, error) {
	result, err := solver.Evaluate(problem)
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("solve %q: %w", problem, err)
	}
	return numeric.FormatIntOrDec(result), result, nil
}

func paramsOf(names []string, vals []int) map[string]float64 {
	m := make(map[string]float64, len(vals))
	for i, v := range vals {
		m[names[i]] = float64(v)
	}
	return m
}

func operandsOf(vals []int) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(vals))
	for _, v := range vals {
		out = append(out, dec(v))
	}
	return out
}

// chainTemplate builds an arithmetic template from a problem layout and an
// explanation writer. names, bounds and the sampled values line up by index.
func chainTemplate(id string, tier domain.Tier, names []string, bounds []bound,
	layout func(v []int) string, explain func(v []int, solution string) string) *Template {

	params := make([]domain.ParamRange, len(names))
	for i, n := range names {
		params[i] = bounds[i].rangeFor(n)
	}

	return &Template{
		ID:       id,
		Category: domain.CategoryArithmetic,
		Tier:     tier,
		Params:   params,
		Generate: func(rng *rand.Rand, env Env) (Draft, error) {
			vals := make([]int, len(bounds))
			for i, b := range bounds {
				vals[i] = b.sample(rng)
			}
			problem := layout(vals)
			solution, _, err := solveChain(problem)
			if err != nil {
				return Draft{}, err
			}
			return Draft{
				Problem:     problem,
				Solution:    solution,
				Explanation: explain(vals, solution),
				Params:      paramsOf(names, vals),
				Operands:    operandsOf(vals),
			}, nil
		},
	}
}

func fmtInt(v int) string { return numeric.FormatIntOrDec(dec(v)) }

func arithmeticTemplates() []*Template {
	var ts []*Template

	// Easy: plain operator chains, two range variants each
	addNames := []string{"a", "b", "c"}
	addLayout := func(v []int) string { return fmt.Sprintf("%d + %d - %d", v[0], v[1], v[2]) }
	addExplain := func(v []int, sol string) string {
		return fmt.Sprintf("Schritt 1: %d + %d = %s\nSchritt 2: %s - %d = %s",
			v[0], v[1], fmtInt(v[0]+v[1]), fmtInt(v[0]+v[1]), v[2], sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/addition-1", domain.TierEasy, addNames,
			[]bound{{50, 500}, {20, 200}, {10, 100}}, addLayout, addExplain),
		chainTemplate("grundrechnung/addition-2", domain.TierEasy, addNames,
			[]bound{{100, 999}, {50, 500}, {20, 300}}, addLayout, addExplain),
	)

	subLayout := func(v []int) string { return fmt.Sprintf("%d - %d - %d", v[0], v[1], v[2]) }
	subExplain := func(v []int, sol string) string {
		return fmt.Sprintf("Schritt 1: %d - %d = %s\nSchritt 2: %s - %d = %s",
			v[0], v[1], fmtInt(v[0]-v[1]), fmtInt(v[0]-v[1]), v[2], sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/subtraktion-1", domain.TierEasy, addNames,
			[]bound{{500, 1000}, {100, 400}, {50, 200}}, subLayout, subExplain),
		chainTemplate("grundrechnung/subtraktion-2", domain.TierEasy, addNames,
			[]bound{{300, 700}, {80, 250}, {30, 120}}, subLayout, subExplain),
	)

	mulNames := []string{"a", "b"}
	mulLayout := func(v []int) string { return fmt.Sprintf("%d · %d", v[0], v[1]) }
	mulExplain := func(v []int, sol string) string {
		return fmt.Sprintf("%d · %d = %s", v[0], v[1], sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/multiplikation-1", domain.TierEasy, mulNames,
			[]bound{{12, 25}, {3, 12}}, mulLayout, mulExplain),
		chainTemplate("grundrechnung/multiplikation-2", domain.TierEasy, mulNames,
			[]bound{{15, 35}, {4, 9}}, mulLayout, mulExplain),
	)

	// Division samples the divisor and quotient, then multiplies, so the
	// task always divides evenly.
	divTemplate := func(id string, divisor, quotient bound) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryArithmetic,
			Tier:     domain.TierEasy,
			Params: []domain.ParamRange{
				pr("dividend", float64(divisor.lo*quotient.lo), float64(divisor.hi*quotient.hi)),
				divisor.rangeFor("divisor"),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				b := divisor.sample(rng)
				q := quotient.sample(rng)
				a := b * q
				problem := fmt.Sprintf("%d : %d", a, b)
				solution, _, err := solveChain(problem)
				if err != nil {
					return Draft{}, err
				}
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: fmt.Sprintf("%d : %d = %s", a, b, solution),
					Params:      map[string]float64{"dividend": float64(a), "divisor": float64(b)},
					Operands:    operandsOf([]int{a, b}),
				}, nil
			},
		}
	}
	ts = append(ts,
		divTemplate("grundrechnung/division-1", bound{5, 15}, bound{10, 50}),
		divTemplate("grundrechnung/division-2", bound{6, 12}, bound{15, 80}),
	)

	// Medium: one bracket group, precedence traps
	kpNames := []string{"a", "b", "c", "d"}
	kpLayout := func(v []int) string { return fmt.Sprintf("%d - (%d + %d · %d)", v[0], v[1], v[2], v[3]) }
	kpExplain := func(v []int, sol string) string {
		return fmt.Sprintf("Schritt 1: %d · %d = %s\nSchritt 2: %d + %s = %s\nSchritt 3: %d - %s = %s",
			v[2], v[3], fmtInt(v[2]*v[3]),
			v[1], fmtInt(v[2]*v[3]), fmtInt(v[1]+v[2]*v[3]),
			v[0], fmtInt(v[1]+v[2]*v[3]), sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/klammer-plus-1", domain.TierMedium, kpNames,
			[]bound{{80, 150}, {10, 30}, {3, 8}, {5, 15}}, kpLayout, kpExplain),
		chainTemplate("grundrechnung/klammer-plus-2", domain.TierMedium, kpNames,
			[]bound{{120, 250}, {15, 40}, {4, 9}, {6, 12}}, kpLayout, kpExplain),
	)

	kmNames := []string{"a", "b", "c", "d"}
	kmLayout := func(v []int) string { return fmt.Sprintf("(%d + %d) · %d - %d", v[0], v[1], v[2], v[3]) }
	kmExplain := func(v []int, sol string) string {
		return fmt.Sprintf("Schritt 1: %d + %d = %s\nSchritt 2: %s · %d = %s\nSchritt 3: %s - %d = %s",
			v[0], v[1], fmtInt(v[0]+v[1]),
			fmtInt(v[0]+v[1]), v[2], fmtInt((v[0]+v[1])*v[2]),
			fmtInt((v[0]+v[1])*v[2]), v[3], sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/klammer-minus-1", domain.TierMedium, kmNames,
			[]bound{{20, 40}, {10, 25}, {2, 6}, {10, 30}}, kmLayout, kmExplain),
		chainTemplate("grundrechnung/klammer-minus-2", domain.TierMedium, kmNames,
			[]bound{{30, 60}, {12, 28}, {3, 7}, {15, 45}}, kmLayout, kmExplain),
	)

	kxLayout := func(v []int) string { return fmt.Sprintf("%d + %d · (%d + %d)", v[0], v[1], v[2], v[3]) }
	kxExplain := func(v []int, sol string) string {
		return fmt.Sprintf("Schritt 1: %d + %d = %s\nSchritt 2: %d · %s = %s\nSchritt 3: %d + %s = %s",
			v[2], v[3], fmtInt(v[2]+v[3]),
			v[1], fmtInt(v[2]+v[3]), fmtInt(v[1]*(v[2]+v[3])),
			v[0], fmtInt(v[1]*(v[2]+v[3])), sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/klammer-mal-1", domain.TierMedium, kmNames,
			[]bound{{100, 200}, {5, 15}, {3, 8}, {20, 50}}, kxLayout, kxExplain),
		chainTemplate("grundrechnung/klammer-mal-2", domain.TierMedium, kmNames,
			[]bound{{150, 300}, {6, 12}, {4, 9}, {25, 60}}, kxLayout, kxExplain),
	)

	// Hard: nested brackets and negative values
	n6 := []string{"a", "b", "c", "d", "e", "f"}
	v1Layout := func(v []int) string {
		return fmt.Sprintf("%d - [%d + %d · (%d - %d)] + %d", v[0], v[1], v[2], v[3], v[4], v[5])
	}
	v1Explain := func(v []int, sol string) string {
		inner := v[3] - v[4]
		mult := v[2] * inner
		bracket := v[1] + mult
		return fmt.Sprintf(
			"Schritt 1: %d - %d = %s\nSchritt 2: %d · %s = %s\nSchritt 3: %d + %s = %s\nSchritt 4: %d - %s = %s\nSchritt 5: %s + %d = %s",
			v[3], v[4], fmtInt(inner),
			v[2], fmtInt(inner), fmtInt(mult),
			v[1], fmtInt(mult), fmtInt(bracket),
			v[0], fmtInt(bracket), fmtInt(v[0]-bracket),
			fmtInt(v[0]-bracket), v[5], sol)
	}
	ts = append(ts,
		chainTemplate("grundrechnung/verschachtelt-1a", domain.TierHard, n6,
			[]bound{{100, 200}, {8, 20}, {2, 6}, {10, 25}, {3, 8}, {10, 40}}, v1Layout, v1Explain),
		chainTemplate("grundrechnung/verschachtelt-1b", domain.TierHard, n6,
			[]bound{{150, 280}, {10, 24}, {3, 7}, {12, 30}, {4, 9}, {15, 50}}, v1Layout, v1Explain),
	)

	// Divisor last; the dividend bracket is sampled as divisor·k so the
	// division step stays integral.
	v2Template := func(id string, ba, bb, bc, bd, bf bound, kMax int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryArithmetic,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				ba.rangeFor("a"), bb.rangeFor("b"), bc.rangeFor("c"),
				bd.rangeFor("d"), pr("e", 1, float64(bf.hi*kMax)), bf.rangeFor("f"),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				a := ba.sample(rng)
				b := bb.sample(rng)
				c := bc.sample(rng)
				d := bd.sample(rng)
				f := bf.sample(rng)
				// choose e so that d+e is a multiple of f
				k := intn(rng, 2, kMax)
				e := f*k - d
				for e < 1 {
					e += f
				}
				problem := fmt.Sprintf("[%d - (%d · %d)] + (%d + %d) : %d", a, b, c, d, e, f)
				solution, _, err := solveChain(problem)
				if err != nil {
					return Draft{}, err
				}
				mult := b * c
				first := a - mult
				second := d + e
				div := second / f
				expl := fmt.Sprintf(
					"Schritt 1: %d · %d = %s\nSchritt 2: %d - %s = %s\nSchritt 3: %d + %d = %s\nSchritt 4: %s : %d = %s\nSchritt 5: %s + %s = %s",
					b, c, fmtInt(mult),
					a, fmtInt(mult), fmtInt(first),
					d, e, fmtInt(second),
					fmtInt(second), f, fmtInt(div),
					fmtInt(first), fmtInt(div), solution)
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: expl,
					Params:      paramsOf(n6, []int{a, b, c, d, e, f}),
					Operands:    operandsOf([]int{a, b, c, d, e, f}),
				}, nil
			},
		}
	}
	ts = append(ts,
		v2Template("grundrechnung/verschachtelt-2a",
			bound{150, 250}, bound{20, 40}, bound{3, 7}, bound{5, 15}, bound{2, 5}, 10),
		v2Template("grundrechnung/verschachtelt-2b",
			bound{200, 350}, bound{25, 45}, bound{4, 8}, bound{8, 20}, bound{3, 6}, 12),
	)

	negLayout := func(v []int) string {
		return fmt.Sprintf("-%d + (-%d) · %d - (%d + %d) : %d", v[0], v[1], v[2], v[3], v[4], v[5])
	}
	negTemplate := func(id string, ba, bb, bc, bd, bf bound, kMax int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryArithmetic,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				ba.rangeFor("a"), bb.rangeFor("b"), bc.rangeFor("c"),
				bd.rangeFor("d"), pr("e", 1, float64(bf.hi*kMax)), bf.rangeFor("f"),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				a := ba.sample(rng)
				b := bb.sample(rng)
				c := bc.sample(rng)
				d := bd.sample(rng)
				f := bf.sample(rng)
				k := intn(rng, 3, kMax)
				e := f*k - d
				for e < 1 {
					e += f
				}
				vals := []int{a, b, c, d, e, f}
				problem := negLayout(vals)
				solution, _, err := solveChain(problem)
				if err != nil {
					return Draft{}, err
				}
				negMult := -b * c
				sum := d + e
				div := sum / f
				expl := fmt.Sprintf(
					"Schritt 1: (-%d) · %d = %s\nSchritt 2: %d + %d = %s\nSchritt 3: %s : %d = %s\nSchritt 4: -%d + %s = %s\nSchritt 5: %s - %s = %s",
					b, c, fmtInt(negMult),
					d, e, fmtInt(sum),
					fmtInt(sum), f, fmtInt(div),
					a, fmtInt(negMult), fmtInt(-a+negMult),
					fmtInt(-a+negMult), fmtInt(div), solution)
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: expl,
					Params:      paramsOf(n6, vals),
					Operands:    operandsOf(vals),
				}, nil
			},
		}
	}
	ts = append(ts,
		negTemplate("grundrechnung/negativ-1",
			bound{20, 50}, bound{2, 8}, bound{3, 9}, bound{15, 40}, bound{2, 6}, 12),
		negTemplate("grundrechnung/negativ-2",
			bound{30, 70}, bound{3, 9}, bound{4, 10}, bound{20, 50}, bound{3, 7}, 14),
	)

	return ts
}
