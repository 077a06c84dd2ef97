package breakpoint

import (
	"math"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

const (
	// abstract value of a stun, about two rounds of damage
	stunValue = 20.0
	// ki value scales as kiScarcity / remaining ki
	kiScarcity = 10.0
)

// StunningStrike weighs spending ki on a stun attempt against a target
// with targetConSave
func StunningStrike(monkLevel, wisdomMod, targetConSave, remainingKi int) *dnd5e.StunningStrikeAnalysis {
	dc := 8 + int(math.Ceil(float64(monkLevel)/4)) + 1 + wisdomMod
	fail := probability.SaveFailProbability(dc, targetConSave)

	expected := fail * stunValue
	kiValue := kiScarcity / float64(max(1, remainingKi))

	var reasoning string
	switch {
	case fail < 0.25:
		reasoning = "Low success chance - save your ki"
	case fail < 0.5:
		reasoning = "Moderate chance - use if target is high priority"
	default:
		reasoning = "Good chance - worth attempting"
	}

	return &dnd5e.StunningStrikeAnalysis{
		DC:              dc,
		TargetSaveBonus: targetConSave,
		FailProbability: int(math.Round(fail * 100)),
		RecommendUse:    expected > kiValue,
		Reasoning:       reasoning,
	}
}

// Average smite damage by slot level: 2d8, 3d8, 4d8, 5d8
var smiteDamage = []float64{9, 13.5, 18, 22.5}

const scarceSlotRatio = 0.3

// DivineSmite lists the smite choices for one hit. slots[i] is the number
// of remaining slots of level i+1; empty levels are skipped.
func DivineSmite(paladinLevel int, slots []int, targetHP, targetMaxHP int, crit bool) *dnd5e.DivineSmiteAnalysis {
	totalSlots := paladinLevel/2 + 2

	result := &dnd5e.DivineSmiteAnalysis{
		IsCrit:  crit,
		Options: []dnd5e.SmiteOption{},
	}

	for level := 1; level <= min(len(smiteDamage), len(slots)); level++ {
		remaining := slots[level-1]
		if remaining <= 0 {
			continue
		}

		damage := smiteDamage[level-1]
		if crit {
			damage *= 2
		}
		canKill := float64(targetHP) <= damage
		scarcity := float64(remaining) / float64(totalSlots)

		var rec string
		switch {
		case crit:
			rec = "Always smite on crits!"
		case canKill:
			rec = "Smite to secure the kill"
		case scarcity < scarceSlotRatio:
			rec = "Conserve slots - target isn't critical"
		default:
			rec = "Smite if target is high priority"
		}

		result.Options = append(result.Options, dnd5e.SmiteOption{
			SlotLevel:      level,
			ExpectedDamage: round(damage, 1),
			CanKill:        canKill,
			Recommendation: rec,
		})
	}

	switch {
	case crit:
		result.GeneralAdvice = "SMITE! Crits double your smite dice."
	case targetMaxHP > 0 && float64(targetHP)/float64(targetMaxHP) < 0.25:
		result.GeneralAdvice = "Target is low - smite to finish them"
	default:
		result.GeneralAdvice = "Consider saving slots for crits unless this target must die now"
	}

	return result
}

// SpellSlotPacing spreads the remaining slots over the expected encounters
// of an adventuring day
func SpellSlotPacing(slots []int, encounters int) *dnd5e.SlotPacing {
	encounters = max(1, encounters)

	total := 0
	for _, n := range slots {
		total += n
	}
	perEncounter := float64(total) / float64(encounters)

	var recs []string
	switch {
	case perEncounter < 1:
		recs = []string{
			"Conserve heavily - rely on cantrips for most encounters",
			"Save leveled spells for emergencies or boss fights",
		}
	case perEncounter < 2:
		recs = []string{
			"Use one leveled spell per encounter on average",
			"Save high-level slots for difficult fights",
		}
	default:
		recs = []string{
			"You have slots to spare - don't be afraid to use them",
			"Lead with strong spells to end fights quickly",
		}
	}

	return &dnd5e.SlotPacing{
		TotalSlots:         total,
		ExpectedEncounters: encounters,
		SlotsPerEncounter:  round(perEncounter, 1),
		ShortRestsExpected: encounters / 3,
		Recommendations:    recs,
	}
}
