package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prueflab/pruefgen/internal/domain"
	"github.com/prueflab/pruefgen/internal/numeric"
	"github.com/prueflab/pruefgen/internal/solver"
)

// viewsDiagram draws front, side and top view of an a×b×c block of unit
// cubes, one # per cube face.
func viewsDiagram(a, b, c int) string {
	row := func(n int) string { return strings.Repeat("#", n) }
	var sb strings.Builder
	sb.WriteString("Vorderansicht:\n")
	for i := 0; i < c; i++ {
		sb.WriteString(row(a) + "\n")
	}
	sb.WriteString("Seitenansicht:\n")
	for i := 0; i < c; i++ {
		sb.WriteString(row(b) + "\n")
	}
	sb.WriteString("Draufsicht:\n")
	for i := 0; i < b; i++ {
		sb.WriteString(row(a) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// cubeNetDiagram is the cross-shaped net of a cube
const cubeNetDiagram = `    +--+
    |  |
+--+--+--+--+
|  |  |  |  |
+--+--+--+--+
    |  |
    +--+`

// lShapeDiagram sketches the L outline; proportions are symbolic, the
// measurements live in the problem text.
const lShapeDiagram = `+----------+
|          |
|          |
+-----+    |
      |    |
      +----+`

func spatialTemplates() []*Template {
	var ts []*Template

	ansichten := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategorySpatial,
			Tier:     domain.TierEasy,
			Topic:    domain.TopicViews,
			Params: []domain.ParamRange{
				pr("laenge", 2, 5), pr("breite", 2, 4), pr("hoehe", 1, 3),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				a := intn(rng, 2, 5)
				b := intn(rng, 2, 4)
				c := intn(rng, 1, 3)
				total := a * b * c
				problem := "Die drei Ansichten zeigen einen Körper aus gleich großen Würfeln. Aus wie vielen Würfeln besteht er?"
				expl := fmt.Sprintf(
					"Draufsicht: %d · %d = %d Würfel pro Schicht\nVorderansicht zeigt %d Schichten: %d · %d = %d Würfel",
					a, b, a*b, c, a*b, c, total)
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%d Würfel", total),
					Explanation: expl,
					Params: map[string]float64{
						"laenge": float64(a), "breite": float64(b), "hoehe": float64(c),
					},
					Operands: []decimal.Decimal{dec(a), dec(b), dec(c)},
					Diagram:  viewsDiagram(a, b, c),
				}, nil
			},
		}
	}
	ts = append(ts,
		ansichten("raum/ansichten-1"),
		ansichten("raum/ansichten-2"),
	)

	koerpernetz := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategorySpatial,
			Tier:     domain.TierEasy,
			Topic:    domain.TopicNet,
			Params: []domain.ParamRange{
				pr("kante", 2, 12),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				e := intn(rng, 2, 12)
				area := int(solver.CuboidSurface(dec(e), dec(e), dec(e)).IntPart())
				problem := fmt.Sprintf(
					"Das Netz zeigt einen Würfel mit Kantenlänge %d cm. Wie groß ist seine Oberfläche?", e)
				expl := fmt.Sprintf(
					"Das Netz besteht aus 6 gleichen Quadraten.\nEine Fläche: %d · %d = %d cm²\nOberfläche: 6 · %d = %d cm²",
					e, e, e*e, e*e, area)
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%d cm²", area),
					Explanation: expl,
					Params:      map[string]float64{"kante": float64(e)},
					Operands:    []decimal.Decimal{dec(e)},
					Diagram:     cubeNetDiagram,
				}, nil
			},
		}
	}
	ts = append(ts,
		koerpernetz("raum/koerpernetz-1"),
		koerpernetz("raum/koerpernetz-2"),
	)

	// L-shaped floor plan: top rectangle l1×w1 with a narrower l2×w2 block
	// attached underneath, left-aligned.
	geometrie := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategorySpatial,
			Tier:     domain.TierMedium,
			Topic:    domain.TopicGeometry,
			Params: []domain.ParamRange{
				pr("l1", 6, 20), pr("w1", 3, 10), pr("l2", 2, 19), pr("w2", 2, 8),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				l1 := intn(rng, 6, 20)
				w1 := intn(rng, 3, 10)
				l2 := intn(rng, 2, l1-1)
				w2 := intn(rng, 2, 8)
				area := solver.LShapeArea(dec(l1), dec(w1), dec(l2), dec(w2))
				perimeter := solver.LShapePerimeter(dec(l1), dec(w1), dec(w2))
				problem := fmt.Sprintf(
					"Eine L-förmige Werkstattfläche besteht aus einem Rechteck %d m × %d m und einem angesetzten Rechteck %d m × %d m. Berechne Flächeninhalt und Umfang.",
					l1, w1, l2, w2)
				expl := fmt.Sprintf(
					"Schritt 1: Fläche: %d · %d + %d · %d = %s m²\nSchritt 2: Umfang: 2 · (%d + %d + %d) = %s m",
					l1, w1, l2, w2, num(area),
					l1, w1, w2, num(perimeter))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("Fläche %s m², Umfang %s m", num(area), num(perimeter)),
					Explanation: expl,
					Params: map[string]float64{
						"l1": float64(l1), "w1": float64(w1), "l2": float64(l2), "w2": float64(w2),
					},
					Operands: []decimal.Decimal{dec(l1), dec(w1), dec(l2), dec(w2)},
					Diagram:  lShapeDiagram,
				}, nil
			},
		}
	}
	ts = append(ts,
		geometrie("raum/l-flaeche-1"),
		geometrie("raum/l-flaeche-2"),
	)

	// Cuboid volume in litres plus the weight of the filled tank.
	volumen := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategorySpatial,
			Tier:     domain.TierHard,
			Topic:    domain.TopicVolume,
			Params: []domain.ParamRange{
				pr("laenge", 40, 200), pr("breite", 30, 120), pr("hoehe", 20, 100),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				l := intn(rng, 4, 20) * 10
				b := intn(rng, 3, 12) * 10
				h := intn(rng, 2, 10) * 10
				volume := solver.CuboidVolume(dec(l), dec(b), dec(h))
				litres := volume.Div(dec(1000))
				problem := fmt.Sprintf(
					"Ein quaderförmiger Wassertank ist innen %d cm lang, %d cm breit und %d cm hoch. Wie viele Liter fasst er und wie schwer ist das Wasser? (1 Liter Wasser wiegt 1 kg)",
					l, b, h)
				expl := fmt.Sprintf(
					"Schritt 1: Volumen: %d · %d · %d = %s cm³\nSchritt 2: %s cm³ = %s Liter\nSchritt 3: Masse: %s kg",
					l, b, h, numeric.Format(volume, 0, true),
					numeric.Format(volume, 0, true), numeric.Format(litres, 0, true),
					numeric.Format(litres, 0, true))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%s Liter, %s kg", numeric.Format(litres, 0, true), numeric.Format(litres, 0, true)),
					Explanation: expl,
					Params: map[string]float64{
						"laenge": float64(l), "breite": float64(b), "hoehe": float64(h),
					},
					Operands: []decimal.Decimal{dec(l), dec(b), dec(h)},
				}, nil
			},
		}
	}
	ts = append(ts,
		volumen("raum/tankvolumen-1"),
		volumen("raum/tankvolumen-2"),
	)

	return ts
}
