// Package catalog holds the template catalog: fifty-plus parameterized task
// definitions tagged by category, tier and topic, plus the realistic-value
// data word problems draw from. The catalog is loaded once per process and
// shared read-only across runs.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/prueflab/pruefgen/internal/domain"
)

//go:embed data/values.yaml
var valuesYAML []byte

// Trade describes one occupation with its wage and weekly-hours ranges
type Trade struct {
	Name     string
	WageMin  int
	WageMax  int
	HoursMin int
	HoursMax int
}

// Material describes a workpiece material with density and price reference
type Material struct {
	Name     string
	Density  float64
	Unit     string
	PriceKey string
}

// Values is the realistic-value catalog for word-problem templates. Trades
// and materials are kept as name-sorted slices so sampling stays
// deterministic under a fixed seed.
type Values struct {
	Trades    []Trade
	Prices    map[string]float64
	Materials []Material
	Firms     []string
	Bounds    map[string]domain.ParamRange
}

type valuesFile struct {
	Berufe map[string]struct {
		GehaltMin  int `yaml:"gehalt_min"`
		GehaltMax  int `yaml:"gehalt_max"`
		StundenMin int `yaml:"stunden_min"`
		StundenMax int `yaml:"stunden_max"`
	} `yaml:"berufe"`
	Preise       map[string]float64 `yaml:"preise"`
	Materialien  map[string]struct {
		Dichte  float64 `yaml:"dichte"`
		Einheit string  `yaml:"einheit"`
		Preis   string  `yaml:"preis"`
	} `yaml:"materialien"`
	Firmen         []string `yaml:"firmen"`
	Plausibilitaet map[string]struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"plausibilitaet"`
}

// LoadValues parses and validates the embedded value catalog
func LoadValues() (*Values, error) {
	var file valuesFile
	if err := yaml.Unmarshal(valuesYAML, &file); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}

	v := &Values{
		Prices: file.Preise,
		Firms:  file.Firmen,
		Bounds: make(map[string]domain.ParamRange),
	}

	for name, b := range file.Berufe {
		if b.GehaltMin <= 0 || b.GehaltMax < b.GehaltMin {
			return nil, fmt.Errorf("trade %s: bad wage range [%d, %d]", name, b.GehaltMin, b.GehaltMax)
		}
		if b.StundenMin <= 0 || b.StundenMax < b.StundenMin {
			return nil, fmt.Errorf("trade %s: bad hours range [%d, %d]", name, b.StundenMin, b.StundenMax)
		}
		v.Trades = append(v.Trades, Trade{
			Name:     name,
			WageMin:  b.GehaltMin,
			WageMax:  b.GehaltMax,
			HoursMin: b.StundenMin,
			HoursMax: b.StundenMax,
		})
	}
	sort.Slice(v.Trades, func(i, j int) bool { return v.Trades[i].Name < v.Trades[j].Name })

	for name, m := range file.Materialien {
		if _, ok := file.Preise[m.Preis]; !ok {
			return nil, fmt.Errorf("material %s: unknown price key %q", name, m.Preis)
		}
		if m.Dichte <= 0 {
			return nil, fmt.Errorf("material %s: bad density %v", name, m.Dichte)
		}
		v.Materials = append(v.Materials, Material{
			Name:     name,
			Density:  m.Dichte,
			Unit:     m.Einheit,
			PriceKey: m.Preis,
		})
	}
	sort.Slice(v.Materials, func(i, j int) bool { return v.Materials[i].Name < v.Materials[j].Name })

	for name, b := range file.Plausibilitaet {
		if b.Max < b.Min {
			return nil, fmt.Errorf("plausibility bound %s: min %v > max %v", name, b.Min, b.Max)
		}
		v.Bounds[name] = domain.ParamRange{Name: name, Min: b.Min, Max: b.Max}
	}

	if len(v.Trades) == 0 || len(v.Materials) == 0 || len(v.Firms) == 0 {
		return nil, fmt.Errorf("value catalog incomplete: %d trades, %d materials, %d firms",
			len(v.Trades), len(v.Materials), len(v.Firms))
	}
	return v, nil
}

// Price returns the catalog price for a key
func (v *Values) Price(key string) float64 {
	return v.Prices[key]
}
