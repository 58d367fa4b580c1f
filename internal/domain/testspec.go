package domain

// Topic names used by the fixed exam breakdown to pin specific task kinds
// within a category.
const (
	TopicNumberLine = "zahlenstrahl"
	TopicPlaceValue = "stellenwert"
	TopicRounding   = "runden"
	TopicUnits      = "einheiten"
	TopicFraction   = "bruch"
	TopicEquation   = "gleichung"
	TopicViews      = "ansichten"
	TopicNet        = "koerpernetz"
	TopicGeometry   = "geometrie"
	TopicVolume     = "volumen"
)

// DefaultTestSpec returns the fixed 100-point exam structure: five categories
// of 20 points each, with the documented per-tier point mix.
func DefaultTestSpec() TestSpec {
	return TestSpec{
		TotalPoints:      100,
		TimeLimitMinutes: 90,
		PassMark:         60,
		Slots: []CategorySlot{
			{
				Category: CategoryArithmetic,
				Points:   20,
				Breakdown: []TierSlot{
					{Tier: TierEasy, Count: 2, Points: 2},
					{Tier: TierMedium, Count: 2, Points: 3},
					{Tier: TierHard, Count: 2, Points: 5},
				},
			},
			{
				Category: CategoryNumberSense,
				Points:   20,
				Breakdown: []TierSlot{
					{Tier: TierEasy, Count: 1, Points: 5, Topic: TopicNumberLine},
					{Tier: TierMedium, Count: 1, Points: 5, Topic: TopicPlaceValue},
					{Tier: TierMedium, Count: 1, Points: 3, Topic: TopicRounding},
					{Tier: TierEasy, Count: 1, Points: 2, Topic: TopicUnits},
					{Tier: TierMedium, Count: 1, Points: 2, Topic: TopicUnits},
					{Tier: TierHard, Count: 1, Points: 3, Topic: TopicUnits},
				},
			},
			{
				Category: CategoryWordProblems,
				Points:   20,
				Breakdown: []TierSlot{
					{Tier: TierMedium, Count: 1, Points: 10},
					{Tier: TierHard, Count: 1, Points: 10},
				},
			},
			{
				Category: CategoryFractions,
				Points:   20,
				Breakdown: []TierSlot{
					{Tier: TierEasy, Count: 1, Points: 4, Topic: TopicFraction},
					{Tier: TierMedium, Count: 1, Points: 4, Topic: TopicFraction},
					{Tier: TierHard, Count: 1, Points: 4, Topic: TopicFraction},
					{Tier: TierMedium, Count: 1, Points: 4, Topic: TopicEquation},
					{Tier: TierHard, Count: 1, Points: 4, Topic: TopicEquation},
				},
			},
			{
				Category: CategorySpatial,
				Points:   20,
				Breakdown: []TierSlot{
					{Tier: TierEasy, Count: 1, Points: 5, Topic: TopicViews},
					{Tier: TierEasy, Count: 1, Points: 5, Topic: TopicNet},
					{Tier: TierMedium, Count: 1, Points: 5, Topic: TopicGeometry},
					{Tier: TierHard, Count: 1, Points: 5, Topic: TopicVolume},
				},
			},
		},
	}
}
