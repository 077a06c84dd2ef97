// Package engine holds the core rules math. Subpackages cover dice,
// probability and area estimates.
package engine

// AbilityModifier is floor((score - 10) / 2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus for a character level, +2 at level 1 rising by one
// every four levels. Levels below 1 get +2.
func ProficiencyBonus(level int) int {
	if level < 1 {
		return 2
	}
	return 2 + (level-1)/4
}
