package solver

import (
	"math/big"

	"github.com/prueflab/pruefgen/internal/numeric"
)

// SolutionState classifies the outcome of solving a linear equation
type SolutionState string

const (
	SolutionUnique   SolutionState = "unique"
	SolutionNone     SolutionState = "none"
	SolutionInfinite SolutionState = "infinite"
)

// LinearSolution is the uniform result of solving a*x + b = c*x + d. Callers
// never receive a bare number: a degenerate equation yields the same shape
// with State set accordingly and Value nil.
type LinearSolution struct {
	State  SolutionState
	Symbol string
	Value  *big.Rat // set only when State is SolutionUnique
}

// SolveLinear solves a*x + b = c*x + d for the variable named by symbol. The
// symbol is a display token only; it has no effect on the arithmetic. When
// a == c there is no unique solution: the equation is contradictory if
// b != d and an identity otherwise.
func SolveLinear(a, b, c, d *big.Rat, symbol string) LinearSolution {
	if a.Cmp(c) == 0 {
		if b.Cmp(d) == 0 {
			return LinearSolution{State: SolutionInfinite, Symbol: symbol}
		}
		return LinearSolution{State: SolutionNone, Symbol: symbol}
	}
	num := new(big.Rat).Sub(d, b)
	den := new(big.Rat).Sub(a, c)
	return LinearSolution{
		State:  SolutionUnique,
		Symbol: symbol,
		Value:  new(big.Rat).Quo(num, den),
	}
}

// Line renders the solution as it appears in the solution key, e.g.
// "x = 2,50". Degenerate outcomes become explanatory text instead of a
// value; they are reported, not raised.
func (s LinearSolution) Line() string {
	switch s.State {
	case SolutionUnique:
		return s.Symbol + " = " + numeric.FormatTrimmed(numeric.FromRat(s.Value, 3), 3)
	case SolutionInfinite:
		return "unendlich viele Lösungen"
	default:
		return "keine eindeutige Lösung"
	}
}
