package domain

import "fmt"

// Tier represents the difficulty tier of a task or of the whole exam profile
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// ParseTier converts a user-supplied tier name into a Tier
func ParseTier(s string) (Tier, error) {
	switch s {
	case "easy", "einfach":
		return TierEasy, nil
	case "medium", "mittel":
		return TierMedium, nil
	case "hard", "schwer":
		return TierHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty tier: %q", s)
	}
}

// Category identifies one of the five fixed exam categories
type Category string

const (
	CategoryArithmetic   Category = "grundrechenarten"
	CategoryNumberSense  Category = "zahlenraum"
	CategoryWordProblems Category = "textaufgaben"
	CategoryFractions    Category = "brueche-gleichungen"
	CategorySpatial      Category = "raumvorstellung"
)

// Categories returns the five categories in exam order
func Categories() []Category {
	return []Category{
		CategoryArithmetic,
		CategoryNumberSense,
		CategoryWordProblems,
		CategoryFractions,
		CategorySpatial,
	}
}

// Title returns the printable heading for a category
func (c Category) Title() string {
	switch c {
	case CategoryArithmetic:
		return "Grundrechenarten"
	case CategoryNumberSense:
		return "Zahlenraum"
	case CategoryWordProblems:
		return "Textaufgaben"
	case CategoryFractions:
		return "Brüche und Gleichungen"
	case CategorySpatial:
		return "Raumvorstellung"
	default:
		return string(c)
	}
}
