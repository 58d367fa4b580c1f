package solver

import (
	"fmt"
	"math/big"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Dimension groups units that may be converted into each other
type Dimension string

const (
	DimLength Dimension = "length"
	DimArea   Dimension = "area"
	DimVolume Dimension = "volume"
	DimMass   Dimension = "mass"
	DimTime   Dimension = "time"
)

type unit struct {
	dim    Dimension
	factor *big.Rat // exact factor to the dimension's base unit
}

func rat(num, den int64) *big.Rat { return big.NewRat(num, den) }

// units maps unit symbols to their dimension and exact scale factor relative
// to the base unit (m, m², m³, kg, s).
var units = map[string]unit{
	// Length
	"mm": {DimLength, rat(1, 1000)},
	"cm": {DimLength, rat(1, 100)},
	"dm": {DimLength, rat(1, 10)},
	"m":  {DimLength, rat(1, 1)},
	"km": {DimLength, rat(1000, 1)},
	// Area
	"mm²": {DimArea, rat(1, 1_000_000)},
	"cm²": {DimArea, rat(1, 10_000)},
	"dm²": {DimArea, rat(1, 100)},
	"m²":  {DimArea, rat(1, 1)},
	"a":   {DimArea, rat(100, 1)},
	"ha":  {DimArea, rat(10_000, 1)},
	"km²": {DimArea, rat(1_000_000, 1)},
	// Volume
	"mm³": {DimVolume, rat(1, 1_000_000_000)},
	"cm³": {DimVolume, rat(1, 1_000_000)},
	"dm³": {DimVolume, rat(1, 1000)},
	"m³":  {DimVolume, rat(1, 1)},
	"ml":  {DimVolume, rat(1, 1_000_000)},
	"cl":  {DimVolume, rat(1, 100_000)},
	"dl":  {DimVolume, rat(1, 10_000)},
	"l":   {DimVolume, rat(1, 1000)},
	"hl":  {DimVolume, rat(1, 10)},
	// Mass
	"mg": {DimMass, rat(1, 1_000_000)},
	"g":  {DimMass, rat(1, 1000)},
	"kg": {DimMass, rat(1, 1)},
	"t":  {DimMass, rat(1000, 1)},
	// Time
	"s":   {DimTime, rat(1, 1)},
	"min": {DimTime, rat(60, 1)},
	"h":   {DimTime, rat(3600, 1)},
	"d":   {DimTime, rat(86400, 1)},
}

// Convert rescales value from one metric unit into another. Factors are exact
// rationals, so converting 1 cm³ to m³ yields exactly 1/1000000 with no
// floating approximation. Units of different dimensions do not convert.
func Convert(value *big.Rat, from, to string) (*big.Rat, error) {
	uf, ok := units[from]
	if !ok {
		return nil, fmt.Errorf("convert from %q: %w", from, domain.ErrUnknownUnit)
	}
	ut, ok := units[to]
	if !ok {
		return nil, fmt.Errorf("convert to %q: %w", to, domain.ErrUnknownUnit)
	}
	if uf.dim != ut.dim {
		return nil, fmt.Errorf("convert %q to %q: %w", from, to, domain.ErrUnitDimension)
	}
	base := new(big.Rat).Mul(value, uf.factor)
	return base.Quo(base, ut.factor), nil
}
