package dnd5e

import "strings"

// ParseAbility accepts full names and three letter abbreviations in any
// case. Unknown text returns false.
func ParseAbility(s string) (Ability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if a, ok := abilityAliases[s]; ok {
		return a, true
	}
	for _, a := range Abilities {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Short returns the upper case abbreviation, e.g. DEX
func (a Ability) Short() string {
	for short, full := range abilityAliases {
		if full == a {
			return strings.ToUpper(short)
		}
	}
	return strings.ToUpper(string(a))
}
