// Package spelldpr computes expected damage per round for spells and
// rates how well they use a spell slot.
package spelldpr

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/aoe"
	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

const (
	// NoteNoDamage marks utility and control spells
	NoteNoDamage = "Utility/control spell - no direct damage"

	// crits double the dice at a flat 5%, whatever the crit range
	spellCritChance  = 0.05
	halfDamagePhrase = "half as much damage"
)

// Analyze computes the expected damage of casting fact at its own level.
// It never fails: missing or unreadable damage yields a result whose
// Damage.HasDamage is false with a note explaining why.
func Analyze(fact *dnd5e.SpellFact, ctx dnd5e.CombatContext) *dnd5e.SpellAnalysis {
	return AnalyzeAt(fact, ctx, fact.Level)
}

// AnalyzeAt analyzes fact cast with a slot of slotLevel. Slots above the
// spell's level add the dice named in its higher level text.
func AnalyzeAt(fact *dnd5e.SpellFact, ctx dnd5e.CombatContext, slotLevel int) *dnd5e.SpellAnalysis {
	result := &dnd5e.SpellAnalysis{
		Spell: dnd5e.SpellSummary{
			Key:           fact.Key,
			Name:          fact.Name,
			Level:         fact.Level,
			School:        fact.School,
			Concentration: fact.Concentration,
			Ritual:        fact.Ritual,
		},
		Context: dnd5e.ContextSummary{
			CasterLevel:      ctx.CasterLevel,
			SpellDC:          ctx.SpellDC(),
			SpellAttackBonus: ctx.AttackBonus(),
		},
	}
	if slotLevel > fact.Level {
		result.Spell.CastLevel = slotLevel
	} else {
		slotLevel = fact.Level
	}

	if strings.TrimSpace(fact.DamageRoll) == "" {
		result.Damage = &dnd5e.DamageAnalysis{HasDamage: false, Note: NoteNoDamage}
		return result
	}

	damageText, scalingRule := fact.DamageRoll, fact.HigherLevel
	override, hasOverride := damageOverrides[fact.NormalizedKey()]
	if hasOverride {
		damageText = override.Damage
		scalingRule = override.SlotScaling
	}
	damageText = dice.Scale(damageText, fact.Level, slotLevel, scalingRule)

	expr, err := dice.Parse(damageText)
	if err != nil {
		result.Damage = &dnd5e.DamageAnalysis{
			HasDamage: false,
			Note:      fmt.Sprintf("Could not parse damage: %s", fact.DamageRoll),
		}
		return result
	}

	average := expr.Average()
	desc := strings.ToLower(fact.Description)

	hitChance := 1.0
	saveForHalf := false
	switch {
	case fact.AttackRoll:
		hitChance = probability.HitProbability(ctx.AttackBonus(), ctx.TargetAC, probability.Roll{})
	case fact.SavingThrow != "":
		ability, _ := dnd5e.ParseAbility(string(fact.SavingThrow))
		hitChance = probability.SaveFailProbability(ctx.SpellDC(), ctx.TargetSaves.For(ability))
		saveForHalf = strings.Contains(desc, halfDamagePhrase)
	}

	expected := average * hitChance
	if saveForHalf {
		expected += average * (1 - hitChance) * 0.5
	}
	if fact.AttackRoll {
		expected += average * spellCritChance
	}

	estimate := aoe.EstimateTargets(fact.Description, aoe.Options{
		ExpectedTargets: ctx.ExpectedTargets,
		Clustered:       ctx.Clustered,
	})
	total := expected * float64(estimate.Targets)

	var chain *dnd5e.ChainMechanic
	if hasOverride && override.ChainChance > 0 {
		bonus := chainBonus(average, override.ChainChance, hitChance)
		total += bonus
		chain = &dnd5e.ChainMechanic{
			Chance:              override.ChainChance,
			Description:         override.ChainDescription,
			ExpectedBonusDamage: round2(bonus),
		}
	}

	var sustained *float64
	if fact.Concentration && strings.TrimSpace(fact.Duration) != "" {
		v := round2(total * float64(EstimateDuration(fact.Duration)))
		sustained = &v
	}

	types := detectDamageTypes(fact)

	damage := &dnd5e.DamageAnalysis{
		HasDamage:           true,
		BaseDamage:          damageText,
		AverageRoll:         round2(average),
		Minimum:             expr.Minimum(),
		Maximum:             expr.Maximum(),
		HitChance:           percent(hitChance),
		SaveForHalf:         saveForHalf,
		ExpectedDamage:      round2(expected),
		Targets:             estimate.Targets,
		MaxTargets:          estimate.MaxTargets,
		TotalExpectedDamage: round2(total),
		SustainedDamage:     sustained,
		ChainMechanic:       chain,
		DamageTypes:         types.Types,
		DamageTypeChoice:    types.Choice,
		DamageTypeRandom:    types.Random,
	}
	if hasOverride {
		damage.BaseDamageNote = fmt.Sprintf("Corrected from source damage %q", fact.DamageRoll)
	}

	result.Damage = damage
	// upcast damage is rated against the spell's own level
	result.Efficiency = rateEfficiency(total, fact.Level, ctx.CasterLevel)
	result.Tactical = tacticalNotes(fact, estimate.Targets)

	return result
}

// chainBonus sums the geometric series of repeat hits. Each repeat needs
// the chain to trigger and a fresh hit, and carries the crit bonus.
func chainBonus(average, chance, hitChance float64) float64 {
	pq := chance * hitChance
	if pq >= 1 {
		return 0
	}
	return average * (1 + spellCritChance) * pq / (1 - pq)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percent(p float64) int {
	return int(math.Round(p * 100))
}
