package breakpoint

import (
	"fmt"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// Constitution save bonuses used for the stunning strike report
const (
	badConSave     = 0
	averageConSave = 3
	goodConSave    = 6
)

// Target hit points assumed for the divine smite report
const (
	smiteTargetHP    = 50
	smiteTargetMaxHP = 100
)

// Calculate builds every analysis that applies to the character: power
// attack tables for GWM or Sharpshooter, reckless attack for barbarians,
// stunning strike for monks, divine smite for paladins and slot pacing for
// anyone with spell slots.
func Calculate(c *entities.Character) (*dnd5e.BreakpointReport, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character")
	}

	report := &dnd5e.BreakpointReport{
		Character: dnd5e.CharacterSummary{
			Name:  c.DisplayName(),
			Class: c.Class,
			Level: c.Level,
		},
		Recommendations: []string{},
	}

	if feat, ok := PowerAttackFeat(c.Feats); ok {
		report.Feat = featBreakpoints(feat, c)
		normal, adv := report.Feat.Normal.Breakpoint, report.Feat.WithAdvantage.Breakpoint
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("%s: Always use vs AC ≤%d", feat, min(normal, adv)),
			fmt.Sprintf("%s: Never use vs AC ≥%d", feat, max(normal, adv)+3),
			fmt.Sprintf("%s: With advantage, threshold increases by ~%d AC", feat, adv-normal),
		)
	}

	if c.IsClass(dnd5e.ClassBarbarian) {
		report.RecklessAttack = RecklessAttack(c.AttackBonus, c.BaseDamage, c.EnemyDamage(), probability.AttackOptions{})
		report.Recommendations = append(report.Recommendations,
			"Reckless Attack: Best when you have high HP and resistance",
			"Reckless Attack: Avoid when facing many enemies or low HP",
		)
	}

	if c.IsClass(dnd5e.ClassMonk) {
		wis, ki := c.WisdomModifier(), c.KiPoints()
		report.StunningStrike = &dnd5e.StunningStrikeReport{
			VsBadCon:     StunningStrike(c.Level, wis, badConSave, ki),
			VsAverageCon: StunningStrike(c.Level, wis, averageConSave, ki),
			VsGoodCon:    StunningStrike(c.Level, wis, goodConSave, ki),
		}
		report.Recommendations = append(report.Recommendations,
			"Stunning Strike: Target low-CON enemies (casters, rogues)",
			"Stunning Strike: Save ki vs high-CON brutes",
		)
	}

	if c.IsClass(dnd5e.ClassPaladin) {
		slots := c.Resources.SpellSlots
		if len(slots) == 0 {
			slots = entities.DefaultPaladinSlots
		}
		report.DivineSmite = &dnd5e.DivineSmiteReport{
			OnCrit: DivineSmite(c.Level, slots, smiteTargetHP, smiteTargetMaxHP, true),
			OnHit:  DivineSmite(c.Level, slots, smiteTargetHP, smiteTargetMaxHP, false),
		}
		report.Recommendations = append(report.Recommendations,
			"Divine Smite: Always smite on critical hits",
			"Divine Smite: Save slots for crits unless you need to secure a kill",
		)
	}

	if len(c.Resources.SpellSlots) > 0 {
		report.SpellPacing = SpellSlotPacing(c.Resources.SpellSlots, c.Encounters())
	}

	return report, nil
}

// PowerAttackFeat picks the power attack feat from a feat list, preferring
// Great Weapon Master when both are present
func PowerAttackFeat(feats []string) (string, bool) {
	found := ""
	for _, f := range feats {
		switch f {
		case dnd5e.FeatGreatWeaponMaster:
			return f, true
		case dnd5e.FeatSharpshooter:
			found = f
		}
	}
	return found, found != ""
}

func featBreakpoints(feat string, c *entities.Character) *dnd5e.FeatBreakpoints {
	normal := PowerAttack(feat, c.AttackBonus, c.BaseDamage, probability.AttackOptions{})
	adv := PowerAttack(feat, c.AttackBonus, c.BaseDamage, probability.AttackOptions{
		Roll: probability.Roll{Advantage: true},
	})

	return &dnd5e.FeatBreakpoints{
		Feat: feat,
		Normal: dnd5e.FeatAdvice{
			Breakpoint: normal.Breakpoint,
			Advice:     fmt.Sprintf("Use %s against AC %d or lower", feat, normal.Breakpoint),
			Table:      normal,
		},
		WithAdvantage: dnd5e.FeatAdvice{
			Breakpoint: adv.Breakpoint,
			Advice:     fmt.Sprintf("With advantage: use %s against AC %d or lower", feat, adv.Breakpoint),
			Table:      adv,
		},
	}
}
