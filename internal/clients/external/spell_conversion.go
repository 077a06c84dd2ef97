package external

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
	internalDnd5e "github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// The SRD API does not say whether a spell uses an attack roll
var attackSpells = map[string]bool{
	"acid-arrow":          true,
	"chill-touch":         true,
	"chromatic-orb":       true,
	"eldritch-blast":      true,
	"fire-bolt":           true,
	"flame-blade":         true,
	"guiding-bolt":        true,
	"inflict-wounds":      true,
	"produce-flame":       true,
	"ray-of-enfeeblement": true,
	"ray-of-frost":        true,
	"ray-of-sickness":     true,
	"scorching-ray":       true,
	"shocking-grasp":      true,
	"spiritual-weapon":    true,
	"vampiric-touch":      true,
}

// SRD damage strings sometimes add the caster's modifier as "+ MOD"
var modifierToken = regexp.MustCompile(`(?i)\s*\+\s*mod\b`)

// ConvertSpell converts a dnd5e-api spell into a spell fact. Damage is taken
// at the spell's own slot and the per-slot scaling is derived from the
// next slot's damage.
func ConvertSpell(spell *entities.Spell) (*internalDnd5e.SpellFact, error) {
	if spell == nil {
		return nil, errors.InvalidArgument("spell is nil")
	}
	if spell.Key == "" {
		return nil, errors.InvalidArgument("spell has no key")
	}

	fact := &internalDnd5e.SpellFact{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
		AttackRoll:    attackSpells[spell.Key],
		Source:        SourceSRD,
	}
	if spell.SpellSchool != nil {
		fact.School = strings.ToLower(spell.SpellSchool.Name)
	}

	for _, class := range spell.SpellClasses {
		if class != nil {
			fact.Classes = append(fact.Classes, strings.ToLower(class.Name))
		}
	}

	if spell.SpellDamage != nil {
		if spell.SpellDamage.SpellDamageType != nil {
			fact.DamageTypes = []string{strings.ToLower(spell.SpellDamage.SpellDamageType.Name)}
		}
		if slots := spell.SpellDamage.SpellDamageAtSlotLevel; slots != nil {
			fact.DamageRoll = cleanDamage(damageAtSlot(spell.SpellLevel, slots))
			if fact.DamageRoll != "" && spell.SpellLevel > 0 {
				next := cleanDamage(damageAtSlot(spell.SpellLevel+1, slots))
				fact.HigherLevel = slotScalingText(fact.DamageRoll, next, spell.SpellLevel)
			}
		}
	}

	success := ""
	if spell.DC != nil {
		if spell.DC.DCType != nil {
			if ability, ok := internalDnd5e.ParseAbility(spell.DC.DCType.Name); ok {
				fact.SavingThrow = ability
			}
		}
		success = strings.ToLower(spell.DC.DCSuccess)
	}

	fact.Description = describe(spell, fact, success)

	return fact, nil
}

// damageAtSlot returns the damage at a slot level. Cantrips report their
// base damage under the first slot.
func damageAtSlot(level int, slots *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return slots.FirstLevel
	case 2:
		return slots.SecondLevel
	case 3:
		return slots.ThirdLevel
	case 4:
		return slots.FourthLevel
	case 5:
		return slots.FifthLevel
	case 6:
		return slots.SixthLevel
	case 7:
		return slots.SeventhLevel
	case 8:
		return slots.EighthLevel
	case 9:
		return slots.NinthLevel
	default:
		return ""
	}
}

func cleanDamage(s string) string {
	return strings.TrimSpace(modifierToken.ReplaceAllString(s, ""))
}

// slotScalingText writes the higher level sentence the analyzer scales
// with, or "" when the next slot adds no dice of the base die size
func slotScalingText(base, next string, level int) string {
	if next == "" {
		return ""
	}
	baseExpr, err := dice.Parse(base)
	if err != nil || !baseExpr.HasDice() {
		return ""
	}
	nextExpr, err := dice.Parse(next)
	if err != nil {
		return ""
	}

	sides := baseExpr.Terms[0].Sides
	diff := countDice(nextExpr, sides) - countDice(baseExpr, sides)
	if diff <= 0 {
		return ""
	}

	return fmt.Sprintf(
		"When you cast this spell using a spell slot of %s level or higher, the damage increases by %dd%d for each slot level above %s.",
		ordinal(level+1), diff, sides, ordinal(level),
	)
}

func countDice(expr *dice.Expression, sides int) int {
	n := 0
	for _, t := range expr.Terms {
		if t.Sides == sides {
			n += t.Count
		}
	}
	return n
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// describe rebuilds the rules text the API leaves out, phrased the way the
// target estimator and save detection read it
func describe(spell *entities.Spell, fact *internalDnd5e.SpellFact, success string) string {
	var parts []string

	if area := areaPhrase(spell); area != "" {
		if fact.SavingThrow != "" {
			parts = append(parts, fmt.Sprintf("Each creature in %s must make a %s saving throw.",
				area, titleAbility(fact.SavingThrow)))
		} else {
			parts = append(parts, fmt.Sprintf("Each creature in %s is affected.", area))
		}
	}

	damage := fact.DamageRoll
	if damage != "" && len(fact.DamageTypes) > 0 {
		damage += " " + fact.DamageTypes[0]
	}

	switch {
	case damage == "":
	case fact.SavingThrow != "":
		sentence := fmt.Sprintf("A target takes %s damage on a failed save", damage)
		if success == "half" {
			sentence += ", or half as much damage on a successful one."
		} else {
			sentence += "."
		}
		parts = append(parts, sentence)
	case fact.AttackRoll:
		parts = append(parts, fmt.Sprintf("Make a spell attack against the target. On a hit, the target takes %s damage.", damage))
	default:
		parts = append(parts, fmt.Sprintf("The spell deals %s damage.", damage))
	}

	return strings.Join(parts, " ")
}

func areaPhrase(spell *entities.Spell) string {
	if spell.AreaOfEffect == nil {
		return ""
	}

	size := spell.AreaOfEffect.Size
	switch strings.ToLower(fmt.Sprint(spell.AreaOfEffect.Type)) {
	case "sphere":
		return fmt.Sprintf("a %d-foot-radius sphere", size)
	case "cylinder":
		return fmt.Sprintf("a %d-foot-radius, 40-foot-high cylinder", size)
	case "cone":
		return fmt.Sprintf("a %d-foot cone", size)
	case "cube":
		return fmt.Sprintf("a %d-foot cube", size)
	case "line":
		return fmt.Sprintf("a line %d feet long and 5 feet wide", size)
	default:
		return ""
	}
}

func titleAbility(a internalDnd5e.Ability) string {
	s := string(a)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
