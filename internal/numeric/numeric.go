// Package numeric is the exact decimal layer of the exam generator. Every
// numeric output of the engine passes through here: quantization uses
// round-half-away-from-zero on an exact decimal representation, and
// formatting is locale-correct (comma decimal separator, optional period
// grouping) without ever falling back to scientific notation.
package numeric

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

// FromFloat converts a float into an exact decimal. Non-finite input is a
// formatting failure, never a silent placeholder.
func FromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, fmt.Errorf("convert %v: %w", v, domain.ErrNotFinite)
	}
	return decimal.NewFromFloat(v), nil
}

// Quantize rounds d to scale fractional digits using round-half-away-from-zero
// ("kaufmännisches Runden"). Exact .5 boundaries round away from zero for
// positive and negative values alike.
func Quantize(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.Round(scale)
}

// Format renders d with exactly places fractional digits, a comma as decimal
// separator and, if thousands is set, a period as grouping separator.
func Format(d decimal.Decimal, places int32, thousands bool) string {
	s := d.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	if thousands {
		intPart = group(intPart)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatIntOrDec renders d as a bare integer when its quantized value has no
// fractional part, and with exactly two fractional digits otherwise.
func FormatIntOrDec(d decimal.Decimal) string {
	q := Quantize(d, 2)
	if q.IsInteger() {
		return Format(q, 0, false)
	}
	return Format(q, 2, false)
}

// FormatTrimmed renders d with at most maxPlaces fractional digits, dropping
// trailing zeros and a dangling separator. Used for rounded values and unit
// conversion results where fixed-width output would suggest false precision.
func FormatTrimmed(d decimal.Decimal, maxPlaces int32) string {
	s := Format(Quantize(d, maxPlaces), maxPlaces, false)
	if strings.ContainsRune(s, ',') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ",")
	}
	return s
}

// group inserts a period every three digits from the right
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
