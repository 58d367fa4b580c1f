// Package solver evaluates the arithmetic the exam generator builds: raw
// expressions with deliberately adversarial bracket nesting, linear
// equations, fraction arithmetic and metric unit conversion. All internal
// arithmetic runs on exact rationals; results cross into the decimal layer
// only at the boundary.
package solver

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/numeric"
)

// Evaluate computes an arithmetic expression with the four basic operators,
// unary negation and nested round or square brackets, honoring standard
// operator precedence. The German operator spellings (·, ×, :, ÷) and comma
// decimals are accepted. The result is quantized to four fractional digits.
func Evaluate(expr string) (decimal.Decimal, error) {
	p := &parser{input: normalize(expr)}
	r, err := p.parseExpr()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return decimal.Decimal{}, fmt.Errorf("evaluate %q: trailing input at %d: %w", expr, p.pos, domain.ErrInvalidExpr)
	}
	return numeric.FromRat(r, 4), nil
}

func normalize(expr string) string {
	r := strings.NewReplacer("·", "*", "×", "*", ":", "/", "÷", "/", ",", ".")
	return r.Replace(expr)
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles addition and subtraction
func (p *parser) parseExpr() (*big.Rat, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = new(big.Rat).Add(left, right)
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = new(big.Rat).Sub(left, right)
		default:
			return left, nil
		}
	}
}

// parseTerm handles multiplication and division
func (p *parser) parseTerm() (*big.Rat, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = new(big.Rat).Mul(left, right)
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if right.Sign() == 0 {
				return nil, domain.ErrDivisionByZero
			}
			left = new(big.Rat).Quo(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (*big.Rat, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Neg(v), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*big.Rat, error) {
	switch c := p.peek(); c {
	case '(', '[':
		closing := byte(')')
		if c == '[' {
			closing = ']'
		}
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != closing {
			return nil, fmt.Errorf("missing %q: %w", string(closing), domain.ErrInvalidExpr)
		}
		p.pos++
		return v, nil
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (*big.Rat, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("expected number at %d: %w", start, domain.ErrInvalidExpr)
	}
	r, ok := new(big.Rat).SetString(p.input[start:p.pos])
	if !ok {
		return nil, fmt.Errorf("bad number %q: %w", p.input[start:p.pos], domain.ErrInvalidExpr)
	}
	return r, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
