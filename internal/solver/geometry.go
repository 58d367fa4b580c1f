package solver

import "github.com/shopspring/decimal"

// Geometry helpers for the spatial-reasoning and word-problem templates.
// All formulas are exact over decimals; the shapes are rectilinear, so no
// irrational constants enter the solution key.

// RectangleArea returns length × width
func RectangleArea(length, width decimal.Decimal) decimal.Decimal {
	return length.Mul(width)
}

// RectanglePerimeter returns 2 × (length + width)
func RectanglePerimeter(length, width decimal.Decimal) decimal.Decimal {
	return length.Add(width).Mul(decimal.NewFromInt(2))
}

// TriangleArea returns base × height / 2
func TriangleArea(base, height decimal.Decimal) decimal.Decimal {
	return base.Mul(height).Div(decimal.NewFromInt(2))
}

// LShapeArea returns the area of an L-shaped workpiece built from a main
// rectangle l1×w1 and an attached rectangle l2×w2.
func LShapeArea(l1, w1, l2, w2 decimal.Decimal) decimal.Decimal {
	return RectangleArea(l1, w1).Add(RectangleArea(l2, w2))
}

// LShapePerimeter returns the perimeter of the L-shape with the attachment
// sitting on top of the main rectangle. The outline is rectilinear:
// horizontal edges sum to 2·l1, vertical edges to 2·(w1+w2), independent of
// the attachment's length.
func LShapePerimeter(l1, w1, w2 decimal.Decimal) decimal.Decimal {
	return l1.Add(w1).Add(w2).Mul(decimal.NewFromInt(2))
}

// CuboidVolume returns length × width × height
func CuboidVolume(length, width, height decimal.Decimal) decimal.Decimal {
	return length.Mul(width).Mul(height)
}

// CuboidSurface returns 2 × (lw + lh + wh)
func CuboidSurface(length, width, height decimal.Decimal) decimal.Decimal {
	lw := length.Mul(width)
	lh := length.Mul(height)
	wh := width.Mul(height)
	return lw.Add(lh).Add(wh).Mul(decimal.NewFromInt(2))
}
