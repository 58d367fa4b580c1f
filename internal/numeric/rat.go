package numeric

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FromRat converts an exact rational into a decimal quantized to scale
// fractional digits with round-half-away-from-zero. The intermediate
// conversion carries four guard digits so the final quantization sees the
// true value, not a pre-rounded one.
func FromRat(r *big.Rat, scale int32) decimal.Decimal {
	return Quantize(decimal.NewFromBigRat(r, scale+4), scale)
}
