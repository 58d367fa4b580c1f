package solver

import (
	"errors"
	"math/big"
	"testing"

	"github.com/prueflab/pruefgen/internal/domain"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Rat
		from  string
		to    string
		want  *big.Rat
	}{
		{"km to m", big.NewRat(3, 1), "km", "m", big.NewRat(3000, 1)},
		{"cm to m", big.NewRat(250, 1), "cm", "m", big.NewRat(5, 2)},
		{"mm to km", big.NewRat(1, 1), "mm", "km", big.NewRat(1, 1_000_000)},
		{"ha to m2", big.NewRat(2, 1), "ha", "m²", big.NewRat(20_000, 1)},
		{"cm2 to dm2", big.NewRat(75, 1), "cm²", "dm²", big.NewRat(3, 4)},
		{"l to cm3", big.NewRat(1, 1), "l", "cm³", big.NewRat(1000, 1)},
		{"m3 to l", big.NewRat(3, 2), "m³", "l", big.NewRat(1500, 1)},
		{"hl to l", big.NewRat(4, 1), "hl", "l", big.NewRat(400, 1)},
		{"t to kg", big.NewRat(7, 2), "t", "kg", big.NewRat(3500, 1)},
		{"g to t", big.NewRat(500, 1), "g", "t", big.NewRat(1, 2000)},
		{"h to min", big.NewRat(5, 4), "h", "min", big.NewRat(75, 1)},
		{"s to h", big.NewRat(5400, 1), "s", "h", big.NewRat(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert(%s, %s, %s): %v", tt.value, tt.from, tt.to, err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s",
					tt.value, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertIsExact(t *testing.T) {
	// round trip through a small unit must reproduce the input exactly
	v := big.NewRat(123456789, 1000)
	down, err := Convert(v, "m³", "mm³")
	if err != nil {
		t.Fatal(err)
	}
	up, err := Convert(down, "mm³", "m³")
	if err != nil {
		t.Fatal(err)
	}
	if up.Cmp(v) != 0 {
		t.Errorf("round trip changed value: %s -> %s", v, up)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := Convert(big.NewRat(1, 1), "furlong", "m"); !errors.Is(err, domain.ErrUnknownUnit) {
		t.Errorf("unknown source unit: got %v, want ErrUnknownUnit", err)
	}
	if _, err := Convert(big.NewRat(1, 1), "m", "parsec"); !errors.Is(err, domain.ErrUnknownUnit) {
		t.Errorf("unknown target unit: got %v, want ErrUnknownUnit", err)
	}
	if _, err := Convert(big.NewRat(1, 1), "kg", "m"); !errors.Is(err, domain.ErrUnitDimension) {
		t.Errorf("mass to length: got %v, want ErrUnitDimension", err)
	}
}
