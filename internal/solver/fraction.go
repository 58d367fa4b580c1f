package solver

import (
	"fmt"
	"math/big"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Fraction is an exact rational kept in lowest terms. The solver only
// reports denominators; keeping every solving step's denominator below the
// exam bound is the generator's job.
type Fraction struct {
	r *big.Rat
}

// NewFraction builds a fraction from numerator and denominator
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("fraction %d/%d: %w", num, den, domain.ErrDivisionByZero)
	}
	return Fraction{r: big.NewRat(num, den)}, nil
}

// Num returns the numerator in lowest terms
func (f Fraction) Num() int64 { return f.r.Num().Int64() }

// Den returns the denominator in lowest terms, always positive
func (f Fraction) Den() int64 { return f.r.Denom().Int64() }

// Rat returns a copy of the underlying rational
func (f Fraction) Rat() *big.Rat { return new(big.Rat).Set(f.r) }

// Cmp compares two fractions like big.Rat.Cmp
func (f Fraction) Cmp(g Fraction) int { return f.r.Cmp(g.r) }

// String renders the fraction in lowest terms, as a bare integer when the
// denominator reduces to one.
func (f Fraction) String() string {
	if f.r.IsInt() {
		return f.r.Num().String()
	}
	return fmt.Sprintf("%s/%s", f.r.Num(), f.r.Denom())
}

// LCD returns the least common denominator of two fractions
func LCD(f, g Fraction) int64 {
	return lcm(f.Den(), g.Den())
}

// Add returns f+g in lowest terms together with the least common denominator
// used on the solving path.
func Add(f, g Fraction) (Fraction, int64) {
	return Fraction{r: new(big.Rat).Add(f.r, g.r)}, LCD(f, g)
}

// Sub returns f-g in lowest terms together with the least common denominator
func Sub(f, g Fraction) (Fraction, int64) {
	return Fraction{r: new(big.Rat).Sub(f.r, g.r)}, LCD(f, g)
}

// Mul returns f*g in lowest terms together with the denominator of the
// unreduced product, the largest denominator on the solving path.
func Mul(f, g Fraction) (Fraction, int64) {
	return Fraction{r: new(big.Rat).Mul(f.r, g.r)}, f.Den() * g.Den()
}

// Div returns f/g in lowest terms together with the denominator of the
// unreduced quotient.
func Div(f, g Fraction) (Fraction, int64, error) {
	if g.r.Sign() == 0 {
		return Fraction{}, 0, fmt.Errorf("divide by %s: %w", g, domain.ErrDivisionByZero)
	}
	return Fraction{r: new(big.Rat).Quo(f.r, g.r)}, f.Den() * abs(g.Num()), nil
}

func gcd(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
