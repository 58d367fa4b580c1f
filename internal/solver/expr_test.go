package solver

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"3 + 4", "7"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"100 - [12 + 3 · (10 - 4)] + 20", "90"},
		{"[150 - (20 · 3)] + (5 + 15) : 4", "95"},
		{"-20 + (-3) · 4 - (15 + 5) : 2", "-42"},
		{"10 : 4", "2.5"},
		{"1 : 3", "0.3333"},
		{"2,5 + 1,5", "4"},
		{"7 × 8", "56"},
		{"-(3 + 4)", "-7"},
		{"((2))", "2"},
		{"5 - - 3", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}
			if !got.Equal(mustDec(t, tt.want)) {
				t.Errorf("Evaluate(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"3 +", domain.ErrInvalidExpr},
		{"(3 + 4", domain.ErrInvalidExpr},
		{"[3 + 4)", domain.ErrInvalidExpr},
		{"3 4", domain.ErrInvalidExpr},
		{"5 : 0", domain.ErrDivisionByZero},
		{"", domain.ErrInvalidExpr},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if _, err := Evaluate(tt.expr); !errors.Is(err, tt.want) {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}
}
