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

func eur(d decimal.Decimal) string {
	return numeric.Format(numeric.Quantize(d, 2), 2, true) + " €"
}

func num(d decimal.Decimal) string {
	return numeric.FormatIntOrDec(d)
}

// weeksPerMonth is the payroll convention for converting monthly wages to
// hourly rates.
var weeksPerMonth = decimal.RequireFromString("4.33")

func wordTemplates() []*Template {
	var ts []*Template

	// Monthly gross wage to hourly rate for a sampled trade.
	gehalt := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierMedium,
			Params: []domain.ParamRange{
				pr("gehalt", 1000, 5000), pr("wochenstunden", 20, 50),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				t := pick(rng, env.Data.Trades)
				// wages move in 50 € steps
				wage := intn(rng, t.WageMin/50, t.WageMax/50) * 50
				hours := intn(rng, t.HoursMin, t.HoursMax)
				monthly := dec(wage)
				monthlyHours := weeksPerMonth.Mul(dec(hours))
				hourly := numeric.Quantize(monthly.Div(monthlyHours), 2)
				problem := fmt.Sprintf(
					"Ein %s verdient %s brutto im Monat und arbeitet %d Stunden pro Woche. Wie hoch ist der Brutto-Stundenlohn? (1 Monat = 4,33 Wochen)",
					t.Name, eur(monthly), hours)
				expl := fmt.Sprintf(
					"Schritt 1: Monatsstunden: %d · 4,33 = %s Stunden\nSchritt 2: Stundenlohn: %s : %s = %s",
					hours, num(numeric.Quantize(monthlyHours, 2)),
					eur(monthly), num(numeric.Quantize(monthlyHours, 2)), eur(hourly))
				return Draft{
					Problem:     problem,
					Solution:    eur(hourly),
					Explanation: expl,
					Params: map[string]float64{
						"gehalt":        float64(wage),
						"wochenstunden": float64(hours),
					},
					Operands: []decimal.Decimal{monthly, dec(hours)},
				}, nil
			},
		}
	}

	// Weight and cost of a solid material block from its dimensions.
	material := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierMedium,
			Params: []domain.ParamRange{
				pr("laenge", 10, 60), pr("breite", 5, 30), pr("hoehe", 2, 10),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				// only materials priced by the kilogram fit this task
				var priced []Material
				for _, c := range env.Data.Materials {
					if strings.HasSuffix(c.PriceKey, "_kg") {
						priced = append(priced, c)
					}
				}
				m := pick(rng, priced)
				l := intn(rng, 10, 60)
				b := intn(rng, 5, 30)
				h := intn(rng, 2, 10)
				volume := solver.CuboidVolume(dec(l), dec(b), dec(h))
				density := decimal.NewFromFloat(m.Density)
				// density in kg/dm³, dimensions in cm
				kg := numeric.Quantize(volume.Div(dec(1000)).Mul(density), 2)
				price := decimal.NewFromFloat(env.Data.Price(m.PriceKey))
				cost := numeric.Quantize(kg.Mul(price), 2)
				problem := fmt.Sprintf(
					"Ein Block aus %s ist %d cm lang, %d cm breit und %d cm hoch. Die Dichte beträgt %s %s, der Kilopreis %s. Wie viel wiegt der Block und was kostet er?",
					m.Name, l, b, h, numeric.FormatTrimmed(density, 2), m.Unit, eur(price))
				expl := fmt.Sprintf(
					"Schritt 1: Volumen: %d · %d · %d = %s cm³ = %s dm³\nSchritt 2: Masse: %s · %s = %s kg\nSchritt 3: Kosten: %s · %s = %s",
					l, b, h, num(volume), numeric.FormatTrimmed(volume.Div(dec(1000)), 3),
					numeric.FormatTrimmed(volume.Div(dec(1000)), 3), numeric.FormatTrimmed(density, 2), num(kg),
					num(kg), eur(price), eur(cost))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%s kg, %s", num(kg), eur(cost)),
					Explanation: expl,
					Params: map[string]float64{
						"laenge": float64(l), "breite": float64(b), "hoehe": float64(h),
					},
					Operands: []decimal.Decimal{dec(l), dec(b), dec(h), density, price},
				}, nil
			},
		}
	}

	// Production output over a working period, with per-piece revenue.
	produktion := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierMedium,
			Params: []domain.ParamRange{
				pr("stueck", 20, 120), pr("stunden", 6, 10), pr("tage", 5, 20),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				firm := pick(rng, env.Data.Firms)
				perHour := intn(rng, 20, 120)
				hours := intn(rng, 6, 10)
				days := intn(rng, 5, 20)
				// per-piece price in 10-cent steps
				piece := decimal.New(int64(intn(rng, 15, 85)), -1)
				total := perHour * hours * days
				revenue := numeric.Quantize(dec(total).Mul(piece), 2)
				problem := fmt.Sprintf(
					"Die Firma %s fertigt %d Werkstücke pro Stunde. Gearbeitet wird %d Stunden täglich an %d Tagen. Jedes Werkstück bringt %s. Wie viele Werkstücke entstehen und wie hoch ist der Erlös?",
					firm, perHour, hours, days, eur(piece))
				expl := fmt.Sprintf(
					"Schritt 1: Stückzahl: %d · %d · %d = %s Stück\nSchritt 2: Erlös: %s · %s = %s",
					perHour, hours, days, num(dec(total)),
					num(dec(total)), eur(piece), eur(revenue))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%s Stück, %s", num(dec(total)), eur(revenue)),
					Explanation: expl,
					Params: map[string]float64{
						"stueck": float64(perHour), "stunden": float64(hours), "tage": float64(days),
					},
					Operands: []decimal.Decimal{dec(perHour), dec(hours), dec(days), piece},
				}, nil
			},
		}
	}

	// Energy cost of a machine over a working month.
	energie := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierMedium,
			Params: []domain.ParamRange{
				pr("leistung", 2, 15), pr("stunden", 4, 12), pr("tage", 10, 22),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				power := intn(rng, 2, 15)
				hours := intn(rng, 4, 12)
				days := intn(rng, 10, 22)
				tariff := decimal.NewFromFloat(env.Data.Price("strom_kwh"))
				kwh := dec(power * hours * days)
				cost := numeric.Quantize(kwh.Mul(tariff), 2)
				problem := fmt.Sprintf(
					"Eine Maschine mit %d kW Leistung läuft %d Stunden täglich an %d Arbeitstagen. Eine Kilowattstunde kostet %s. Wie hoch sind die Stromkosten?",
					power, hours, days, eur(tariff))
				expl := fmt.Sprintf(
					"Schritt 1: Verbrauch: %d · %d · %d = %s kWh\nSchritt 2: Kosten: %s · %s = %s",
					power, hours, days, num(kwh),
					num(kwh), eur(tariff), eur(cost))
				return Draft{
					Problem:     problem,
					Solution:    eur(cost),
					Explanation: expl,
					Params: map[string]float64{
						"leistung": float64(power), "stunden": float64(hours), "tage": float64(days),
					},
					Operands: []decimal.Decimal{dec(power), dec(hours), dec(days), tariff},
				}, nil
			},
		}
	}

	// Two pumps emptying a basin together; the volume is sampled as a
	// multiple of the combined rate so the time comes out whole.
	pumpsystem := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				pr("rate1", 40, 150), pr("rate2", 30, 120), pr("minuten", 15, 90),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				r1 := intn(rng, 4, 15) * 10
				r2 := intn(rng, 3, 12) * 10
				minutes := intn(rng, 15, 90)
				volume := (r1 + r2) * minutes
				perPump1 := r1 * minutes
				problem := fmt.Sprintf(
					"Ein Becken fasst %s Liter. Pumpe A fördert %d Liter pro Minute, Pumpe B %d Liter pro Minute. Wie lange brauchen beide Pumpen gemeinsam, um das Becken zu leeren, und wie viele Liter fördert Pumpe A dabei?",
					numeric.Format(dec(volume), 0, true), r1, r2)
				expl := fmt.Sprintf(
					"Schritt 1: Gemeinsame Förderleistung: %d + %d = %d Liter pro Minute\nSchritt 2: Dauer: %s : %d = %d Minuten\nSchritt 3: Anteil Pumpe A: %d · %d = %s Liter",
					r1, r2, r1+r2,
					numeric.Format(dec(volume), 0, true), r1+r2, minutes,
					r1, minutes, numeric.Format(dec(perPump1), 0, true))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%d Minuten, %s Liter", minutes, numeric.Format(dec(perPump1), 0, true)),
					Explanation: expl,
					Params: map[string]float64{
						"rate1": float64(r1), "rate2": float64(r2), "minuten": float64(minutes),
					},
					Operands: []decimal.Decimal{dec(volume), dec(r1), dec(r2)},
				}, nil
			},
		}
	}

	// Mixing two batches of different per-kg prices into one blend.
	mischung := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				pr("menge1", 20, 200), pr("menge2", 20, 200),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				m1 := intn(rng, 2, 20) * 10
				m2 := intn(rng, 2, 20) * 10
				p1 := decimal.New(int64(intn(rng, 20, 60)), -1)
				p2 := decimal.New(int64(intn(rng, 61, 120)), -1)
				cost1 := dec(m1).Mul(p1)
				cost2 := dec(m2).Mul(p2)
				blend := numeric.Quantize(cost1.Add(cost2).Div(dec(m1+m2)), 2)
				problem := fmt.Sprintf(
					"In einem Lager werden %d kg Granulat zu %s pro kg mit %d kg Granulat zu %s pro kg gemischt. Was kostet ein Kilogramm der Mischung?",
					m1, eur(p1), m2, eur(p2))
				expl := fmt.Sprintf(
					"Schritt 1: Wert Sorte 1: %d · %s = %s\nSchritt 2: Wert Sorte 2: %d · %s = %s\nSchritt 3: Gesamtmenge: %d + %d = %d kg\nSchritt 4: Mischpreis: %s : %d = %s",
					m1, eur(p1), eur(cost1),
					m2, eur(p2), eur(cost2),
					m1, m2, m1+m2,
					eur(cost1.Add(cost2)), m1+m2, eur(blend))
				return Draft{
					Problem:     problem,
					Solution:    eur(blend) + " pro kg",
					Explanation: expl,
					Params: map[string]float64{
						"menge1": float64(m1), "menge2": float64(m2),
					},
					Operands: []decimal.Decimal{dec(m1), dec(m2), p1, p2},
				}, nil
			},
		}
	}

	// Delivery planning: trips needed for a load plus distance cost.
	logistik := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				pr("ladung", 500, 12000), pr("kapazitaet", 500, 3000), pr("strecke", 10, 120),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				firm := pick(rng, env.Data.Firms)
				capacity := intn(rng, 5, 30) * 100
				trips := intn(rng, 3, 8)
				rest := intn(rng, 1, capacity/100) * 50
				load := capacity*(trips-1) + rest
				distance := intn(rng, 10, 120)
				perKM := decimal.New(int64(intn(rng, 8, 25)), -1)
				// each trip is out and back
				totalKM := trips * distance * 2
				cost := numeric.Quantize(dec(totalKM).Mul(perKM), 2)
				problem := fmt.Sprintf(
					"Die Firma %s muss %s kg Material zu einer %d km entfernten Baustelle liefern. Der LKW lädt maximal %s kg, ein gefahrener Kilometer kostet %s. Wie viele Fahrten sind nötig und was kosten sie insgesamt? (Hin- und Rückweg zählen)",
					firm, numeric.Format(dec(load), 0, true), distance,
					numeric.Format(dec(capacity), 0, true), eur(perKM))
				expl := fmt.Sprintf(
					"Schritt 1: Fahrten: %s : %s = %d Fahrten (aufgerundet)\nSchritt 2: Strecke: %d · %d · 2 = %s km\nSchritt 3: Kosten: %s · %s = %s",
					numeric.Format(dec(load), 0, true), numeric.Format(dec(capacity), 0, true), trips,
					trips, distance, numeric.Format(dec(totalKM), 0, true),
					numeric.Format(dec(totalKM), 0, true), eur(perKM), eur(cost))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%d Fahrten, %s", trips, eur(cost)),
					Explanation: expl,
					Params: map[string]float64{
						"ladung": float64(load), "kapazitaet": float64(capacity), "strecke": float64(distance),
					},
					Operands: []decimal.Decimal{dec(load), dec(capacity), dec(distance), perKM},
				}, nil
			},
		}
	}

	// Inverse proportion: fewer workers need proportionally more time.
	personalplanung := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				pr("arbeiter1", 2, 12), pr("arbeiter2", 2, 12), pr("tage", 2, 30),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				w2 := intn(rng, 2, 6)
				factor := intn(rng, 2, 4)
				w1 := w2 * factor
				d1 := intn(rng, 2, 8)
				d2 := d1 * factor
				workerDays := w1 * d1
				problem := fmt.Sprintf(
					"%d Monteure schaffen einen Auftrag in %d Tagen. Wegen Urlaubs stehen nur %d Monteure zur Verfügung. Wie viele Tage brauchen sie für denselben Auftrag?",
					w1, d1, w2)
				expl := fmt.Sprintf(
					"Schritt 1: Arbeitsaufwand: %d · %d = %d Monteurtage\nSchritt 2: Dauer: %d : %d = %d Tage",
					w1, d1, workerDays, workerDays, w2, d2)
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%d Tage", d2),
					Explanation: expl,
					Params: map[string]float64{
						"arbeiter1": float64(w1), "arbeiter2": float64(w2), "tage": float64(d1),
					},
					Operands: []decimal.Decimal{dec(w1), dec(d1), dec(w2)},
				}, nil
			},
		}
	}

	// Fencing a rectangular plot, priced per running metre.
	zaun := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierMedium,
			Params: []domain.ParamRange{
				pr("laenge", 20, 80), pr("breite", 10, 50),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				l := intn(rng, 20, 80)
				w := intn(rng, 10, 50)
				// per-metre price in 50-cent steps
				perMetre := decimal.New(int64(intn(rng, 24, 90)*5), -1)
				perimeter := solver.RectanglePerimeter(dec(l), dec(w))
				cost := numeric.Quantize(perimeter.Mul(perMetre), 2)
				problem := fmt.Sprintf(
					"Ein rechteckiges Betriebsgelände ist %d m lang und %d m breit. Es wird vollständig eingezäunt, ein Meter Zaun kostet %s. Wie lang ist der Zaun und was kostet er?",
					l, w, eur(perMetre))
				expl := fmt.Sprintf(
					"Schritt 1: Umfang: 2 · (%d + %d) = %s m\nSchritt 2: Kosten: %s · %s = %s",
					l, w, num(perimeter),
					num(perimeter), eur(perMetre), eur(cost))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%s m Zaun, %s", num(perimeter), eur(cost)),
					Explanation: expl,
					Params: map[string]float64{
						"laenge": float64(l), "breite": float64(w),
					},
					Operands: []decimal.Decimal{dec(l), dec(w), perMetre},
				}, nil
			},
		}
	}

	// Painting a triangular gable wall twice, priced per square metre.
	giebel := func(id string) *Template {
		return &Template{
			ID:       id,
			Category: domain.CategoryWordProblems,
			Tier:     domain.TierHard,
			Params: []domain.ParamRange{
				pr("breite", 6, 14), pr("hoehe", 3, 7),
			},
			Generate: func(rng *rand.Rand, env Env) (Draft, error) {
				b := intn(rng, 6, 14)
				h := intn(rng, 3, 7)
				// per-m² price in 10-cent steps
				perSqm := decimal.New(int64(intn(rng, 25, 60)), -1)
				area := solver.TriangleArea(dec(b), dec(h))
				painted := area.Mul(dec(2))
				cost := numeric.Quantize(painted.Mul(perSqm), 2)
				problem := fmt.Sprintf(
					"Eine dreieckige Giebelwand ist %d m breit und %d m hoch. Sie bekommt zwei Anstriche, ein Quadratmeter Anstrich kostet %s. Wie groß ist die Wandfläche und was kosten die Anstriche?",
					b, h, eur(perSqm))
				expl := fmt.Sprintf(
					"Schritt 1: Wandfläche: %d · %d : 2 = %s m²\nSchritt 2: Gestrichene Fläche: 2 · %s = %s m²\nSchritt 3: Kosten: %s · %s = %s",
					b, h, num(area),
					num(area), num(painted),
					num(painted), eur(perSqm), eur(cost))
				return Draft{
					Problem:     problem,
					Solution:    fmt.Sprintf("%s m², %s", num(area), eur(cost)),
					Explanation: expl,
					Params: map[string]float64{
						"breite": float64(b), "hoehe": float64(h),
					},
					Operands: []decimal.Decimal{dec(b), dec(h), perSqm},
				}, nil
			},
		}
	}

	ts = append(ts,
		gehalt("textaufgabe/gehalt-1"),
		gehalt("textaufgabe/gehalt-2"),
		material("textaufgabe/material-1"),
		material("textaufgabe/material-2"),
		produktion("textaufgabe/produktion-1"),
		energie("textaufgabe/energie-1"),
		pumpsystem("textaufgabe/pumpsystem-1"),
		pumpsystem("textaufgabe/pumpsystem-2"),
		zaun("textaufgabe/zaun-1"),
		mischung("textaufgabe/mischung-1"),
		logistik("textaufgabe/logistik-1"),
		giebel("textaufgabe/giebel-1"),
		personalplanung("textaufgabe/personalplanung-1"),
	)
	return ts
}
