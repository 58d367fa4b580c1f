package catalog

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/solver"
)

// denominatorPair draws two denominators where neither divides the other
// and the common denominator stays below 100. That forces an actual
// expansion step instead of a one-line rewrite.
func denominatorPair(rng *rand.Rand, lo, hi int) (int, int) {
	for {
		d1 := intn(rng, lo, hi)
		d2 := intn(rng, lo, hi)
		if d1 == d2 || d1%d2 == 0 || d2%d1 == 0 {
			continue
		}
		if lcmInt(d1, d2) >= 100 {
			continue
		}
		return d1, d2
	}
}

func properNumerator(rng *rand.Rand, den int) int {
	return intn(rng, 1, den-1)
}

func lcmInt(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

func fractionDraft(problem, solution, explanation string, fracs []solver.Fraction) Draft {
	ops := make([]decimal.Decimal, 0, len(fracs))
	params := make(map[string]float64, len(fracs)*2)
	for i, f := range fracs {
		ops = append(ops, decimal.NewFromBigRat(f.Rat(), 4))
		params[fmt.Sprintf("z%d", i+1)] = float64(f.Num())
		params[fmt.Sprintf("n%d", i+1)] = float64(f.Den())
	}
	return Draft{Problem: problem, Solution: solution, Explanation: explanation, Params: params, Operands: ops}
}

func fractionTemplates() []*Template {
	var ts []*Template

	addSub := func(id string, tier domain.Tier, denLo, denHi int, subtract bool) *Template {
		op := "+"
		if subtract {
			op = "-"
		}
		return &Template{
			ID:       id,
			Category: domain.CategoryFractions,
			Tier:     tier,
			Topic:    domain.TopicFraction,
			Params: []domain.ParamRange{
				pr("n1", float64(denLo), float64(denHi)),
				pr("n2", float64(denLo), float64(denHi)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				d1, d2 := denominatorPair(rng, denLo, denHi)
				a, err := solver.NewFraction(int64(properNumerator(rng, d1)), int64(d1))
				if err != nil {
					return Draft{}, err
				}
				b, err := solver.NewFraction(int64(properNumerator(rng, d2)), int64(d2))
				if err != nil {
					return Draft{}, err
				}
				if subtract && a.Cmp(b) < 0 {
					a, b = b, a
				}
				var result solver.Fraction
				var lcd int64
				if subtract {
					result, lcd = solver.Sub(a, b)
				} else {
					result, lcd = solver.Add(a, b)
				}
				problem := fmt.Sprintf("%s %s %s", a, op, b)
				ea := a.Num() * (lcd / a.Den())
				eb := b.Num() * (lcd / b.Den())
				expl := fmt.Sprintf(
					"Hauptnenner von %d und %d: %d\nErweitern: %s = %d/%d und %s = %d/%d\n%d/%d %s %d/%d = %s",
					a.Den(), b.Den(), lcd,
					a, ea, lcd, b, eb, lcd,
					ea, lcd, op, eb, lcd, result)
				return fractionDraft(problem, result.String(), expl, []solver.Fraction{a, b}), nil
			},
		}
	}
	ts = append(ts,
		addSub("bruch/addition-1", domain.TierEasy, 3, 9, false),
		addSub("bruch/addition-2", domain.TierEasy, 4, 12, false),
		addSub("bruch/subtraktion-1", domain.TierEasy, 3, 10, true),
		addSub("bruch/subtraktion-2", domain.TierMedium, 5, 15, true),
	)

	// Mixed numbers: whole part plus proper fraction on each side.
	mixed := func(id string, tier domain.Tier, wholeHi int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryFractions,
			Tier:     tier,
			Topic:    domain.TopicFraction,
			Params: []domain.ParamRange{
				pr("g1", 1, float64(wholeHi)),
				pr("g2", 1, float64(wholeHi)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				d1, d2 := denominatorPair(rng, 3, 9)
				g1 := intn(rng, 2, wholeHi)
				g2 := intn(rng, 1, g1)
				z1 := properNumerator(rng, d1)
				z2 := properNumerator(rng, d2)
				a, err := solver.NewFraction(int64(g1*d1+z1), int64(d1))
				if err != nil {
					return Draft{}, err
				}
				b, err := solver.NewFraction(int64(g2*d2+z2), int64(d2))
				if err != nil {
					return Draft{}, err
				}
				result, lcd := solver.Add(a, b)
				problem := fmt.Sprintf("%d %d/%d + %d %d/%d", g1, z1, d1, g2, z2, d2)
				expl := fmt.Sprintf(
					"Umwandeln: %d %d/%d = %s und %d %d/%d = %s\nHauptnenner: %d\n%s + %s = %s",
					g1, z1, d1, a, g2, z2, d2, b, lcd, a, b, result)
				return fractionDraft(problem, result.String(), expl, []solver.Fraction{a, b}), nil
			},
		}
	}
	ts = append(ts,
		mixed("bruch/gemischt-1", domain.TierMedium, 5),
		mixed("bruch/gemischt-2", domain.TierMedium, 8),
	)

	mul := func(id string, tier domain.Tier, denHi int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryFractions,
			Tier:     tier,
			Topic:    domain.TopicFraction,
			Params: []domain.ParamRange{
				pr("n1", 2, float64(denHi)),
				pr("n2", 2, float64(denHi)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				var a, b solver.Fraction
				for {
					d1 := intn(rng, 3, denHi)
					d2 := intn(rng, 3, denHi)
					var err error
					a, err = solver.NewFraction(int64(properNumerator(rng, d1)), int64(d1))
					if err != nil {
						return Draft{}, err
					}
					b, err = solver.NewFraction(int64(properNumerator(rng, d2)), int64(d2))
					if err != nil {
						return Draft{}, err
					}
					// The product denominator appears in the working, so it
					// has to obey the two-digit bound as well.
					if a.Den()*b.Den() < 100 {
						break
					}
				}
				result, rawDen := solver.Mul(a, b)
				problem := fmt.Sprintf("%s · %s", a, b)
				expl := fmt.Sprintf(
					"Zähler mal Zähler, Nenner mal Nenner: %d · %d = %d und %d · %d = %d\n%d/%d = %s",
					a.Num(), b.Num(), a.Num()*b.Num(),
					a.Den(), b.Den(), rawDen,
					a.Num()*b.Num(), rawDen, result)
				return fractionDraft(problem, result.String(), expl, []solver.Fraction{a, b}), nil
			},
		}
	}
	ts = append(ts,
		mul("bruch/multiplikation-1", domain.TierHard, 9),
		mul("bruch/multiplikation-2", domain.TierHard, 12),
	)

	div := func(id string, denHi int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryFractions,
			Tier:     domain.TierHard,
			Topic:    domain.TopicFraction,
			Params: []domain.ParamRange{
				pr("n1", 2, float64(denHi)),
				pr("n2", 2, float64(denHi)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				var a, b solver.Fraction
				for {
					d1 := intn(rng, 3, denHi)
					d2 := intn(rng, 3, denHi)
					var err error
					a, err = solver.NewFraction(int64(properNumerator(rng, d1)), int64(d1))
					if err != nil {
						return Draft{}, err
					}
					b, err = solver.NewFraction(int64(properNumerator(rng, d2)), int64(d2))
					if err != nil {
						return Draft{}, err
					}
					// Inverting the divisor puts its numerator into the
					// denominator, so that product carries the bound here.
					if a.Den()*b.Num() < 100 {
						break
					}
				}
				result, rawDen, err := solver.Div(a, b)
				if err != nil {
					return Draft{}, err
				}
				problem := fmt.Sprintf("%s : %s", a, b)
				expl := fmt.Sprintf(
					"Dividieren heißt mit dem Kehrwert multiplizieren: %s · %d/%d\n%d/%d = %s",
					a, b.Den(), b.Num(),
					a.Num()*b.Den(), rawDen, result)
				return fractionDraft(problem, result.String(), expl, []solver.Fraction{a, b}), nil
			},
		}
	}
	ts = append(ts,
		div("bruch/division-1", 9),
		div("bruch/division-2", 12),
	)

	return ts
}
