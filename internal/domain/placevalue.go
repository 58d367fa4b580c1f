package domain

// PlaceValueColumns is the fixed header of the place-value table: row label,
// hundred-thousands down to units, the decimal separator, then tenths,
// hundredths and thousandths. Renderers must emit exactly these eleven
// columns per row.
var PlaceValueColumns = [11]string{"Nr", "HT", "ZT", "T", "H", "Z", "E", ",", "z", "h", "t"}

// PlaceValueRow is one data row of the place-value table. Each digit field
// holds a single digit or is empty when the number has no digit at that
// place.
type PlaceValueRow struct {
	Label            string // item number, e.g. "1."
	HundredThousands string
	TenThousands     string
	Thousands        string
	Hundreds         string
	Tens             string
	Units            string
	Tenths           string
	Hundredths       string
	Thousandths      string
}

// Columns returns the row as eleven cells matching PlaceValueColumns. The
// decimal-separator cell is always a comma.
func (r PlaceValueRow) Columns() [11]string {
	return [11]string{
		r.Label,
		r.HundredThousands,
		r.TenThousands,
		r.Thousands,
		r.Hundreds,
		r.Tens,
		r.Units,
		",",
		r.Tenths,
		r.Hundredths,
		r.Thousandths,
	}
}

// PlaceValueTable is the structured solution table for the place-value task
type PlaceValueTable struct {
	Rows []PlaceValueRow
}
