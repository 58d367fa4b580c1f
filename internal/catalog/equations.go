package catalog

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/numeric"
	"github.com/prueflab/pruefgen/internal/solver"
)

// term renders a bracket interior like "3x + 4" or "2x - 5" with the
// exam's variable symbol.
func term(coeff, c int, symbol string) string {
	op := "+"
	if c < 0 {
		op = "-"
		c = -c
	}
	if coeff == 1 {
		return fmt.Sprintf("%s %s %d", symbol, op, c)
	}
	return fmt.Sprintf("%d%s %s %d", coeff, symbol, op, c)
}

func ratStr(r *big.Rat) string {
	return numeric.FormatTrimmed(numeric.FromRat(r, 3), 3)
}

// equationMedium builds equations with exactly three bracket groups, one
// multiplied, one added, one subtracted, all coefficients integral:
//
//	m·(a1x + b1) + (a2x + b2) - (a3x + b3) = r
//
// The target solution is drawn first and r computed from it, so the
// equation always has a unique integral solution.
func equationMedium(id string) *Template {
	return &Template{
		ID:       id,
		Category: domain.CategoryFractions,
		Tier:     domain.TierMedium,
		Topic:    domain.TopicEquation,
		Params: []domain.ParamRange{
			pr("m", 2, 5), pr("x", -10, 10),
		},
		Generate: func(rng *rand.Rand, env Env) (Draft, error) {
			for {
				m := intn(rng, 2, 5)
				a1, a2, a3 := intn(rng, 1, 4), intn(rng, 1, 5), intn(rng, 1, 5)
				sign := func() int {
					if rng.Intn(2) == 0 {
						return 1
					}
					return -1
				}
				b1 := sign() * intn(rng, 1, 8)
				b2 := sign() * intn(rng, 1, 9)
				b3 := sign() * intn(rng, 1, 9)
				coeff := m*a1 + a2 - a3
				if coeff == 0 {
					continue
				}
				x0 := intn(rng, -10, 10)
				if x0 == 0 {
					continue
				}
				konst := m*b1 + b2 - b3
				r := coeff*x0 + konst
				sym := env.Symbol
				problem := fmt.Sprintf("%d · (%s) + (%s) - (%s) = %d",
					m, term(a1, b1, sym), term(a2, b2, sym), term(a3, b3, sym), r)
				sol := solver.SolveLinear(big.NewRat(int64(coeff), 1), big.NewRat(int64(konst), 1),
					new(big.Rat), big.NewRat(int64(r), 1), sym)
				if sol.State != solver.SolutionUnique {
					continue
				}
				expl := fmt.Sprintf(
					"Klammern auflösen: %d%s %+d + %d%s %+d - %d%s %+d = %d\nZusammenfassen: %d%s %+d = %d\n%d%s = %d\n%s",
					m*a1, sym, m*b1, a2, sym, b2, a3, sym, -b3, r,
					coeff, sym, konst, r,
					coeff, sym, r-konst,
					sol.Line())
				return Draft{
					Problem:     problem,
					Solution:    sol.Line(),
					Explanation: expl,
					Params: map[string]float64{
						"m": float64(m), "x": float64(x0),
					},
					Operands: []decimal.Decimal{dec(m), dec(coeff), dec(konst), dec(r)},
				}, nil
			}
		},
	}
}

// equationHard keeps the three bracket groups but multiplies the first with
// a proper fraction and places a decimal constant inside the second:
//
//	p/q·(a1x + b1) + (a2x - d) - (a3x + b3) = r
func equationHard(id string) *Template {
	return &Template{
		ID:       id,
		Category: domain.CategoryFractions,
		Tier:     domain.TierHard,
		Topic:    domain.TopicEquation,
		Params: []domain.ParamRange{
			pr("q", 2, 4), pr("x", -8, 8),
		},
		Generate: func(rng *rand.Rand, env Env) (Draft, error) {
			for {
				q := intn(rng, 2, 4)
				p := intn(rng, 1, q-1)
				// a1 a multiple of q keeps the x coefficient integral
				a1 := q * intn(rng, 1, 3)
				a2, a3 := intn(rng, 1, 5), intn(rng, 1, 5)
				b1 := q * intn(rng, 1, 3)
				b3 := intn(rng, 1, 9)
				// decimal constant with one fractional digit, e.g. 2,5
				dTenths := intn(rng, 5, 95)
				dRat := big.NewRat(int64(dTenths), 10)

				frac := big.NewRat(int64(p), int64(q))
				coeff := new(big.Rat).Mul(frac, big.NewRat(int64(a1), 1))
				coeff.Add(coeff, big.NewRat(int64(a2-a3), 1))
				if coeff.Sign() == 0 {
					continue
				}
				konst := new(big.Rat).Mul(frac, big.NewRat(int64(b1), 1))
				konst.Sub(konst, dRat)
				konst.Sub(konst, big.NewRat(int64(b3), 1))

				x0 := intn(rng, -8, 8)
				if x0 == 0 {
					continue
				}
				r := new(big.Rat).Mul(coeff, big.NewRat(int64(x0), 1))
				r.Add(r, konst)

				sym := env.Symbol
				dStr := numeric.Format(numeric.FromRat(dRat, 1), 1, false)
				problem := fmt.Sprintf("%d/%d · (%s) + (%d%s - %s) - (%s) = %s",
					p, q, term(a1, b1, sym), a2, sym, dStr, term(a3, b3, sym), ratStr(r))
				sol := solver.SolveLinear(coeff, konst, new(big.Rat), r, sym)
				if sol.State != solver.SolutionUnique {
					continue
				}
				expl := fmt.Sprintf(
					"Klammern auflösen: %s%s + %s + %d%s - %s - %d%s - %s = %s\nZusammenfassen: %s%s + %s = %s\n%s",
					ratStr(new(big.Rat).Mul(frac, big.NewRat(int64(a1), 1))), sym,
					ratStr(new(big.Rat).Mul(frac, big.NewRat(int64(b1), 1))),
					a2, sym, dStr, a3, sym, fmtInt(b3),
					ratStr(r),
					ratStr(coeff), sym, ratStr(konst), ratStr(r),
					sol.Line())
				return Draft{
					Problem:     problem,
					Solution:    sol.Line(),
					Explanation: expl,
					Params: map[string]float64{
						"q": float64(q), "x": float64(x0),
					},
					Operands: []decimal.Decimal{
						numeric.FromRat(frac, 4), dec(a2), dec(a3), numeric.FromRat(r, 4),
					},
				}, nil
			}
		},
	}
}

func equationTemplates() []*Template {
	return []*Template{
		equationMedium("gleichung/drei-klammern-1"),
		equationMedium("gleichung/drei-klammern-2"),
		equationHard("gleichung/bruch-dezimal-1"),
		equationHard("gleichung/bruch-dezimal-2"),
	}
}
