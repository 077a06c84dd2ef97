package spelldpr

import "github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"

const (
	// a d10 cantrip hitting 65% of the time
	cantripDieAverage = 5.5
	cantripHitRate    = 0.65
	worthSlotRatio    = 1.5
)

// Single target damage a slot of each level is expected to buy
var slotBaselines = map[int]float64{
	0: 5,
	1: 12,
	2: 18,
	3: 28,
	4: 35,
	5: 45,
	6: 55,
	7: 65,
	8: 75,
	9: 90,
}

const defaultSlotBaseline = 10

// CantripDice is the number of damage dice a cantrip rolls at a character
// level
func CantripDice(casterLevel int) int {
	switch {
	case casterLevel >= 17:
		return 4
	case casterLevel >= 11:
		return 3
	case casterLevel >= 5:
		return 2
	default:
		return 1
	}
}

func rateEfficiency(total float64, slotLevel, casterLevel int) *dnd5e.EfficiencyAnalysis {
	return &dnd5e.EfficiencyAnalysis{
		DamagePerSlotLevel: round2(total / float64(max(1, slotLevel))),
		DamagePerAction:    round2(total),
		VsCantrip:          compareToCantrip(total, casterLevel),
		SlotEfficiency:     rateSlot(total, slotLevel),
	}
}

func compareToCantrip(total float64, casterLevel int) dnd5e.CantripComparison {
	cantrip := float64(CantripDice(casterLevel)) * cantripDieAverage * cantripHitRate
	ratio := total / cantrip

	return dnd5e.CantripComparison{
		CantripDamage: round2(cantrip),
		Ratio:         round2(ratio),
		WorthSlot:     ratio > worthSlotRatio,
	}
}

func rateSlot(total float64, slotLevel int) dnd5e.SlotEfficiency {
	baseline, ok := slotBaselines[slotLevel]
	if !ok {
		baseline = defaultSlotBaseline
	}
	ratio := total / baseline

	rating := dnd5e.EfficiencyPoor
	switch {
	case ratio >= 1.3:
		rating = dnd5e.EfficiencyExcellent
	case ratio >= 1.0:
		rating = dnd5e.EfficiencyGood
	case ratio >= 0.7:
		rating = dnd5e.EfficiencyAverage
	}

	return dnd5e.SlotEfficiency{Rating: rating, Score: round2(ratio)}
}
