package spelldpr

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

const choosableTypes = `acid|cold|fire|force|lightning|necrotic|poison|psychic|radiant|thunder`

var (
	choosePattern = regexp.MustCompile(
		`you choose (?:` + choosableTypes + `)(?:,\s*(?:` + choosableTypes + `))*,?\s*or\s*(?:` + choosableTypes + `)`)
	damageTypeWord = regexp.MustCompile(`\b(?:` + choosableTypes + `)\b`)
)

type damageTypeInfo struct {
	Types  []string
	Choice bool
	Random bool
}

// detectDamageTypes works out which damage types a spell deals and whether
// the caster picks or the dice decide. Known spells come first, then the
// description wording, then the declared types.
func detectDamageTypes(fact *dnd5e.SpellFact) damageTypeInfo {
	if types, ok := damageTypeChoices[fact.NormalizedKey()]; ok {
		return damageTypeInfo{
			Types:  append([]string(nil), types...),
			Choice: len(types) > 1,
		}
	}

	desc := strings.ToLower(fact.Description)

	if phrase := choosePattern.FindString(desc); phrase != "" {
		types := unique(damageTypeWord.FindAllString(phrase, -1))
		if len(types) >= 2 {
			return damageTypeInfo{Types: types, Choice: true}
		}
	}

	if strings.Contains(desc, "chaos bolt") ||
		(strings.Contains(desc, "determines the") && strings.Contains(desc, "damage type")) {
		return damageTypeInfo{
			Types:  append([]string(nil), randomDamageTypes...),
			Random: true,
		}
	}

	return damageTypeInfo{Types: append([]string(nil), fact.DamageTypes...)}
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
