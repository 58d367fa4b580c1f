package solver

import (
	"errors"
	"testing"

	"github.com/prueflab/pruefgen/internal/domain"
)

func frac(t *testing.T, num, den int64) Fraction {
	t.Helper()
	f, err := NewFraction(num, den)
	if err != nil {
		t.Fatalf("NewFraction(%d, %d): %v", num, den, err)
	}
	return f
}

func TestNewFraction(t *testing.T) {
	f := frac(t, 4, 8)
	if f.Num() != 1 || f.Den() != 2 {
		t.Errorf("4/8 = %d/%d, want 1/2", f.Num(), f.Den())
	}

	if _, err := NewFraction(1, 0); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("NewFraction(1, 0) = %v, want ErrDivisionByZero", err)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		n1, d1, n2, d2 int64
		want           string
		wantLCD        int64
	}{
		{1, 4, 1, 6, "5/12", 12},
		{2, 3, 1, 3, "1", 3},
		{3, 8, 5, 12, "19/24", 24},
		{1, 2, 1, 2, "1", 2},
	}

	for _, tt := range tests {
		sum, lcd := Add(frac(t, tt.n1, tt.d1), frac(t, tt.n2, tt.d2))
		if sum.String() != tt.want {
			t.Errorf("%d/%d + %d/%d = %s, want %s", tt.n1, tt.d1, tt.n2, tt.d2, sum, tt.want)
		}
		if lcd != tt.wantLCD {
			t.Errorf("%d/%d + %d/%d lcd = %d, want %d", tt.n1, tt.d1, tt.n2, tt.d2, lcd, tt.wantLCD)
		}
	}
}

func TestSub(t *testing.T) {
	diff, lcd := Sub(frac(t, 3, 4), frac(t, 1, 6))
	if diff.String() != "7/12" || lcd != 12 {
		t.Errorf("3/4 - 1/6 = %s (lcd %d), want 7/12 (lcd 12)", diff, lcd)
	}
}

func TestMul(t *testing.T) {
	prod, den := Mul(frac(t, 2, 3), frac(t, 3, 4))
	if prod.String() != "1/2" {
		t.Errorf("2/3 · 3/4 = %s, want 1/2", prod)
	}
	if den != 12 {
		t.Errorf("unreduced denominator = %d, want 12", den)
	}
}

func TestDiv(t *testing.T) {
	quot, den, err := Div(frac(t, 2, 3), frac(t, 4, 5))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if quot.String() != "5/6" {
		t.Errorf("2/3 : 4/5 = %s, want 5/6", quot)
	}
	if den != 12 {
		t.Errorf("unreduced denominator = %d, want 12", den)
	}

	zero, _ := NewFraction(0, 1)
	if _, _, err := Div(frac(t, 1, 2), zero); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("Div by zero = %v, want ErrDivisionByZero", err)
	}
}

func TestFraction_String(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
	}{
		{6, 3, "2"},
		{-1, 2, "-1/2"},
		{0, 5, "0"},
		{7, 12, "7/12"},
	}
	for _, tt := range tests {
		if got := frac(t, tt.num, tt.den).String(); got != tt.want {
			t.Errorf("%d/%d String() = %q, want %q", tt.num, tt.den, got, tt.want)
		}
	}
}
