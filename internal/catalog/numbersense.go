package catalog

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/numeric"
	"github.com/prueflab/pruefgen/internal/solver"
)

// numberLineDiagram draws an eleven-tick ASCII number line with an arrow
// under tick k. Tick spacing is six characters.
func numberLineDiagram(max, k int) string {
	const ticks = 10
	var line strings.Builder
	for i := 0; i < ticks; i++ {
		line.WriteString("|-----")
	}
	line.WriteString("|")

	labels := fmt.Sprintf("%-*s%s", ticks*6+1-len(fmt.Sprint(max)), "0", fmt.Sprint(max))
	arrow := strings.Repeat(" ", k*6) + "^"
	return line.String() + "\n" + labels + "\n" + arrow
}

func placeName(p numeric.Place) string {
	switch p {
	case numeric.PlaceTenth:
		return "Zehntel"
	case numeric.PlaceHundredth:
		return "Hundertstel"
	case numeric.PlaceUnit:
		return "Einer"
	case numeric.PlaceTen:
		return "Zehner"
	case numeric.PlaceHundred:
		return "Hunderter"
	case numeric.PlaceThousand:
		return "Tausender"
	default:
		return string(p)
	}
}

// placeValueRow distributes the digits of a number with three fractional
// digits into the table columns. Leading integer columns stay empty.
func placeValueRow(label string, whole int, frac3 int) domain.PlaceValueRow {
	digits := fmt.Sprintf("%06d", whole)
	cells := [6]string{}
	seen := false
	for i := 0; i < 6; i++ {
		if digits[i] != '0' {
			seen = true
		}
		if seen || i == 5 {
			cells[i] = string(digits[i])
		}
	}
	f := fmt.Sprintf("%03d", frac3)
	return domain.PlaceValueRow{
		Label:            label,
		HundredThousands: cells[0],
		TenThousands:     cells[1],
		Thousands:        cells[2],
		Hundreds:         cells[3],
		Tens:             cells[4],
		Units:            cells[5],
		Tenths:           string(f[0]),
		Hundredths:       string(f[1]),
		Thousandths:      string(f[2]),
	}
}

func numberSenseTemplates() []*Template {
	var ts []*Template

	zahlenstrahl := func(id string, max int) *Template {
		step := max / 10
		return &Template{
			ID:       id,
			Category: domain.CategoryNumberSense,
			Tier:     domain.TierEasy,
			Topic:    domain.TopicNumberLine,
			Params: []domain.ParamRange{
				pr("wert", float64(step), float64(max-step)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				k := intn(rng, 1, 9)
				value := k * step
				problem := fmt.Sprintf(
					"Der Zahlenstrahl reicht von 0 bis %s. Welche Zahl zeigt der Pfeil?",
					numeric.Format(dec(max), 0, true))
				solution := numeric.Format(dec(value), 0, true)
				expl := fmt.Sprintf(
					"Der Strahl ist in 10 gleiche Abschnitte zu je %s geteilt. Der Pfeil steht am %d. Teilstrich: %d · %s = %s",
					numeric.Format(dec(step), 0, true), k, k,
					numeric.Format(dec(step), 0, true), solution)
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: expl,
					Params:      map[string]float64{"wert": float64(value)},
					Operands:    []decimal.Decimal{dec(value), dec(max)},
					Diagram:     numberLineDiagram(max, k),
				}, nil
			},
		}
	}
	ts = append(ts,
		zahlenstrahl("zahlenraum/zahlenstrahl-1", 1000),
		zahlenstrahl("zahlenraum/zahlenstrahl-2", 500),
	)

	stellenwert := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryNumberSense,
			Tier:     domain.TierMedium,
			Topic:    domain.TopicPlaceValue,
			Params: []domain.ParamRange{
				pr("zahl", 1000, 999999),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				whole := intn(rng, 1000, 999999)
				frac := intn(rng, 1, 999)
				value := dec(whole).Add(decimal.New(int64(frac), -3))
				rendered := numeric.FormatTrimmed(value, 3)
				problem := fmt.Sprintf(
					"Trage die Zahl %s in die Stellenwerttafel ein und schreibe den ganzzahligen Teil in Worten.",
					rendered)
				words := numeric.Words(int64(whole))
				table := &domain.PlaceValueTable{
					Rows: []domain.PlaceValueRow{placeValueRow("1.", whole, frac)},
				}
				expl := fmt.Sprintf(
					"Jede Ziffer wandert in ihre Spalte, von Hunderttausendern bis Tausendsteln.\nIn Worten: %s",
					words)
				return Draft{
					Problem:     problem,
					Solution:    words,
					Explanation: expl,
					Params:      map[string]float64{"zahl": float64(whole)},
					Operands:    []decimal.Decimal{value},
					PlaceValues: table,
				}, nil
			},
		}
	}
	ts = append(ts,
		stellenwert("zahlenraum/stellenwert-1"),
		stellenwert("zahlenraum/stellenwert-2"),
	)

	runden := func(id string, places []numeric.Place, wholeHi int) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryNumberSense,
			Tier:     domain.TierMedium,
			Topic:    domain.TopicRounding,
			Params: []domain.ParamRange{
				pr("zahl", 1, float64(wholeHi)),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				place := pick(rng, places)
				whole := intn(rng, 100, wholeHi)
				frac := intn(rng, 1, 999)
				value := dec(whole).Add(decimal.New(int64(frac), -3))
				rounded, err := numeric.RoundToPlace(value, place)
				if err != nil {
					return Draft{}, err
				}
				problem := fmt.Sprintf("Runde %s auf %s.",
					numeric.FormatTrimmed(value, 3), placeName(place))
				solution := numeric.FormatTrimmed(rounded, 3)
				expl := fmt.Sprintf(
					"Die Ziffer rechts neben dem %s-Platz entscheidet: ab 5 wird aufgerundet.\n%s ≈ %s",
					placeName(place), numeric.FormatTrimmed(value, 3), solution)
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: expl,
					Params:      map[string]float64{"zahl": float64(whole)},
					Operands:    []decimal.Decimal{value},
				}, nil
			},
		}
	}
	ts = append(ts,
		runden("zahlenraum/runden-1",
			[]numeric.Place{numeric.PlaceTen, numeric.PlaceHundred, numeric.PlaceUnit}, 9999),
		runden("zahlenraum/runden-2",
			[]numeric.Place{numeric.PlaceTenth, numeric.PlaceHundredth}, 999),
	)

	// Unit conversions; the sampled value is exact in the source unit and
	// the solver's rational factors keep the target exact too.
	type conversion struct {
		from, to string
		loSteps  int
		hiSteps  int
		stepNum  int64 // sampled value = steps * stepNum/stepDen
		stepDen  int64
	}
	einheiten := func(id string, tier domain.Tier, choices []conversion) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryNumberSense,
			Tier:     tier,
			Topic:    domain.TopicUnits,
			Params: []domain.ParamRange{
				pr("wert", 1, 10000),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				c := pick(rng, choices)
				steps := intn(rng, c.loSteps, c.hiSteps)
				value := big.NewRat(int64(steps)*c.stepNum, c.stepDen)
				converted, err := solver.Convert(value, c.from, c.to)
				if err != nil {
					return Draft{}, err
				}
				vStr := numeric.FormatTrimmed(numeric.FromRat(value, 4), 4)
				rStr := numeric.FormatTrimmed(numeric.FromRat(converted, 6), 6)
				problem := fmt.Sprintf("Wandle um: %s %s = ? %s", vStr, c.from, c.to)
				solution := fmt.Sprintf("%s %s", rStr, c.to)
				expl := fmt.Sprintf("%s %s = %s %s", vStr, c.from, rStr, c.to)
				f, _ := value.Float64()
				return Draft{
					Problem:     problem,
					Solution:    solution,
					Explanation: expl,
					Params:      map[string]float64{"wert": f},
					Operands:    []decimal.Decimal{numeric.FromRat(value, 4)},
				}, nil
			},
		}
	}
	ts = append(ts,
		einheiten("zahlenraum/einheiten-leicht-1", domain.TierEasy, []conversion{
			{"m", "cm", 2, 90, 1, 1},
			{"kg", "g", 2, 50, 1, 1},
			{"cm", "mm", 3, 80, 1, 1},
		}),
		einheiten("zahlenraum/einheiten-leicht-2", domain.TierEasy, []conversion{
			{"km", "m", 1, 30, 1, 1},
			{"l", "ml", 1, 20, 1, 1},
			{"t", "kg", 1, 15, 1, 1},
		}),
		einheiten("zahlenraum/einheiten-mittel-1", domain.TierMedium, []conversion{
			{"km", "m", 5, 95, 1, 10}, // 0,5 .. 9,5 km
			{"g", "kg", 5, 90, 50, 1}, // 250 .. 4500 g
			{"min", "s", 2, 45, 1, 1},
		}),
		einheiten("zahlenraum/einheiten-mittel-2", domain.TierMedium, []conversion{
			{"m", "km", 50, 950, 10, 1},
			{"l", "hl", 20, 400, 5, 1},
			{"h", "min", 1, 19, 1, 2}, // 0,5 .. 9,5 h
		}),
		einheiten("zahlenraum/einheiten-schwer-1", domain.TierHard, []conversion{
			{"cm³", "m³", 10, 400, 50_000, 1},
			{"m²", "ha", 50, 900, 100, 1},
			{"dm³", "l", 3, 900, 1, 1},
		}),
		einheiten("zahlenraum/einheiten-schwer-2", domain.TierHard, []conversion{
			{"mm²", "cm²", 10, 900, 5, 1},
			{"ml", "l", 25, 950, 4, 1},
			{"a", "m²", 2, 80, 1, 2}, // 1 .. 40 a in halves
		}),
	)

	return ts
}
