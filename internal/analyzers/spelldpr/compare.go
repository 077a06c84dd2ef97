package spelldpr

import (
	"sort"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// MaxSlotRecommendations caps the BestForSlot result
const MaxSlotRecommendations = 10

// Compare analyzes every spell under the same context and orders them by
// total expected damage, highest first
func Compare(facts []*dnd5e.SpellFact, ctx dnd5e.CombatContext) *dnd5e.SpellComparison {
	analyses := make([]*dnd5e.SpellAnalysis, 0, len(facts))
	for _, fact := range facts {
		analyses = append(analyses, Analyze(fact, ctx))
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].TotalExpectedDamage() > analyses[j].TotalExpectedDamage()
	})

	result := &dnd5e.SpellComparison{Spells: analyses}
	if len(analyses) == 0 {
		return result
	}
	result.BestDamage = analyses[0].Spell.Name

	var best *dnd5e.SpellAnalysis
	for _, a := range analyses {
		if a.Efficiency == nil {
			continue
		}
		if best == nil || a.DamagePerSlotLevel() > best.DamagePerSlotLevel() {
			best = a
		}
	}
	if best != nil {
		result.BestEfficiency = best.Spell.Name
	}

	return result
}

// BestForSlot ranks the leveled damage spells that fit a slot of
// slotLevel, each cast at that slot, by damage per slot level
func BestForSlot(facts []*dnd5e.SpellFact, slotLevel int, ctx dnd5e.CombatContext) []*dnd5e.SpellAnalysis {
	var analyses []*dnd5e.SpellAnalysis
	for _, fact := range facts {
		if fact.Level <= 0 || fact.Level > slotLevel || fact.DamageRoll == "" {
			continue
		}
		a := AnalyzeAt(fact, ctx, slotLevel)
		if a.Damage == nil || !a.Damage.HasDamage {
			continue
		}
		analyses = append(analyses, a)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].DamagePerSlotLevel() > analyses[j].DamagePerSlotLevel()
	})

	if len(analyses) > MaxSlotRecommendations {
		analyses = analyses[:MaxSlotRecommendations]
	}
	return analyses
}

var cantripTiers = []struct {
	level int
	dice  int
}{
	{1, 1},
	{5, 2},
	{11, 3},
	{17, 4},
}

// CantripScaling analyzes a cantrip at each character level where its
// dice count steps up. The first damage term gets the tier's dice count.
func CantripScaling(fact *dnd5e.SpellFact, ctx dnd5e.CombatContext) []dnd5e.CantripTier {
	tiers := make([]dnd5e.CantripTier, 0, len(cantripTiers))
	for _, tier := range cantripTiers {
		scaled := fact.Clone()
		if expr, err := dice.Parse(fact.DamageRoll); err == nil && len(expr.Terms) > 0 {
			first := &expr.Terms[0]
			first.Count = tier.dice
			if first.Keep != nil && first.Keep.Count > tier.dice {
				first.Keep = &dice.Keep{Mode: first.Keep.Mode, Count: tier.dice}
			}
			scaled.DamageRoll = dice.Format(expr)
		}

		tiers = append(tiers, dnd5e.CantripTier{
			Level:    tier.level,
			Dice:     tier.dice,
			Analysis: Analyze(scaled, ctx.With(dnd5e.WithCasterLevel(tier.level))),
		})
	}
	return tiers
}
