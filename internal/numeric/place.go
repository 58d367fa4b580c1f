package numeric

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
)

// Place names a decimal place for rounding tasks. The codes follow the
// place-value table header: lowercase for fractional places, uppercase for
// integer places.
type Place string

const (
	PlaceThousandth      Place = "t"
	PlaceHundredth       Place = "h"
	PlaceTenth           Place = "z"
	PlaceUnit            Place = "E"
	PlaceTen             Place = "Z"
	PlaceHundred         Place = "H"
	PlaceThousand        Place = "T"
	PlaceTenThousand     Place = "ZT"
	PlaceHundredThousand Place = "HT"
	PlaceMillion         Place = "M"
)

// scale maps a place to the number of fractional digits to keep; negative
// values denote integer places (ten = -1, hundred = -2, ...).
func (p Place) scale() (int32, bool) {
	switch p {
	case PlaceThousandth:
		return 3, true
	case PlaceHundredth:
		return 2, true
	case PlaceTenth:
		return 1, true
	case PlaceUnit:
		return 0, true
	case PlaceTen:
		return -1, true
	case PlaceHundred:
		return -2, true
	case PlaceThousand:
		return -3, true
	case PlaceTenThousand:
		return -4, true
	case PlaceHundredThousand:
		return -5, true
	case PlaceMillion:
		return -6, true
	default:
		return 0, false
	}
}

// RoundToPlace rounds d to the named place. Fractional places quantize
// directly; integer places shift the value down by the place's power of ten,
// quantize to zero fractional digits, and shift back up, so large magnitudes
// never pick up representation artifacts.
func RoundToPlace(d decimal.Decimal, p Place) (decimal.Decimal, error) {
	sc, ok := p.scale()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("round to %q: %w", p, domain.ErrUnknownPlace)
	}
	if sc >= 0 {
		return Quantize(d, sc), nil
	}
	shifted := Quantize(d.Shift(sc), 0)
	return shifted.Shift(-sc), nil
}
