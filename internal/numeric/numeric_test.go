package numeric

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestQuantize_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in    string
		scale int32
		want  string
	}{
		{"2.5", 0, "3"},
		{"-2.5", 0, "-3"},
		{"1.005", 2, "1.01"},
		{"1.004", 2, "1"},
		{"0.45", 1, "0.5"},
		{"-0.45", 1, "-0.5"},
		{"12.344", 2, "12.34"},
		{"12.345", 2, "12.35"},
	}

	for _, tt := range tests {
		got := Quantize(dec(tt.in), tt.scale)
		if !got.Equal(dec(tt.want)) {
			t.Errorf("Quantize(%s, %d) = %s, want %s", tt.in, tt.scale, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in        string
		places    int32
		thousands bool
		want      string
	}{
		{"1234.5", 2, true, "1.234,50"},
		{"1234.5", 2, false, "1234,50"},
		{"1234567.891", 2, true, "1.234.567,89"},
		{"-1234.5", 2, true, "-1.234,50"},
		{"0.0000001", 7, false, "0,0000001"},
		{"1000000000", 0, true, "1.000.000.000"},
		{"42", 0, false, "42"},
	}

	for _, tt := range tests {
		got := Format(dec(tt.in), tt.places, tt.thousands)
		if got != tt.want {
			t.Errorf("Format(%s, %d, %v) = %q, want %q", tt.in, tt.places, tt.thousands, got, tt.want)
		}
	}
}

func TestFormat_NeverScientific(t *testing.T) {
	for _, in := range []string{"0.0000001", "123456789", "1000000000", "0.000001"} {
		got := Format(dec(in), 7, false)
		if strings.ContainsAny(got, "eE") {
			t.Errorf("Format(%s) = %q contains scientific notation", in, got)
		}
		if strings.Contains(got, ".") {
			t.Errorf("Format(%s) = %q contains a period decimal separator", in, got)
		}
	}
}

func TestFormatIntOrDec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.0", "12"},
		{"12.1", "12,10"},
		{"12.345", "12,35"},
		{"-3.00", "-3"},
		{"0", "0"},
	}

	for _, tt := range tests {
		if got := FormatIntOrDec(dec(tt.in)); got != tt.want {
			t.Errorf("FormatIntOrDec(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTrimmed(t *testing.T) {
	tests := []struct {
		in        string
		maxPlaces int32
		want      string
	}{
		{"1.2300", 4, "1,23"},
		{"5.0000", 4, "5"},
		{"0.1", 4, "0,1"},
		{"1500", 0, "1500"},
	}

	for _, tt := range tests {
		if got := FormatTrimmed(dec(tt.in), tt.maxPlaces); got != tt.want {
			t.Errorf("FormatTrimmed(%s, %d) = %q, want %q", tt.in, tt.maxPlaces, got, tt.want)
		}
	}
}

func TestRoundToPlace(t *testing.T) {
	tests := []struct {
		in    string
		place Place
		want  string
	}{
		{"2.5", PlaceUnit, "3"},
		{"1499.5", PlaceTen, "1500"},
		{"1.005", PlaceHundredth, "1.01"},
		{"12345.678", PlaceThousand, "12000"},
		{"12500", PlaceThousand, "13000"},
		{"-2.5", PlaceUnit, "-3"},
		{"987654.3", PlaceTenThousand, "990000"},
		{"1234567", PlaceMillion, "1000000"},
		{"0.0004", PlaceThousandth, "0"},
		{"0.0005", PlaceThousandth, "0.001"},
	}

	for _, tt := range tests {
		got, err := RoundToPlace(dec(tt.in), tt.place)
		if err != nil {
			t.Fatalf("RoundToPlace(%s, %s) error: %v", tt.in, tt.place, err)
		}
		if !got.Equal(dec(tt.want)) {
			t.Errorf("RoundToPlace(%s, %s) = %s, want %s", tt.in, tt.place, got, tt.want)
		}
	}

	if _, err := RoundToPlace(dec("1"), Place("X")); !errors.Is(err, domain.ErrUnknownPlace) {
		t.Errorf("RoundToPlace with bad place = %v, want ErrUnknownPlace", err)
	}
}

func TestFromFloat(t *testing.T) {
	if _, err := FromFloat(math.NaN()); !errors.Is(err, domain.ErrNotFinite) {
		t.Errorf("FromFloat(NaN) = %v, want ErrNotFinite", err)
	}
	if _, err := FromFloat(math.Inf(1)); !errors.Is(err, domain.ErrNotFinite) {
		t.Errorf("FromFloat(+Inf) = %v, want ErrNotFinite", err)
	}
	d, err := FromFloat(1.5)
	if err != nil || !d.Equal(dec("1.5")) {
		t.Errorf("FromFloat(1.5) = %s, %v", d, err)
	}
}
