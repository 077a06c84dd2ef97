package testutils

import (
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// Fireball is the classic level 3 area save spell
func Fireball() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "fireball",
		Name:        "Fireball",
		Level:       3,
		School:      "evocation",
		CastingTime: "1 action",
		Range:       "150 feet",
		Duration:    "Instantaneous",
		DamageRoll:  "8d6",
		DamageTypes: []string{dnd5e.DamageFire},
		SavingThrow: dnd5e.AbilityDexterity,
		Classes:     []string{dnd5e.ClassSorcerer, dnd5e.ClassWizard},
		Description: "Each creature in a 20-foot-radius sphere centered on that point must make a Dexterity " +
			"saving throw. A target takes 8d6 fire damage on a failed save, or half as much damage on a " +
			"successful one.",
		HigherLevel: "When you cast this spell using a spell slot of 4th level or higher, the damage increases " +
			"by 1d6 for each slot level above 3rd.",
	}
}

// FireBolt is a single target attack cantrip
func FireBolt() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "fire-bolt",
		Name:        "Fire Bolt",
		Level:       0,
		School:      "evocation",
		Duration:    "Instantaneous",
		DamageRoll:  "1d10",
		DamageTypes: []string{dnd5e.DamageFire},
		AttackRoll:  true,
		Classes:     []string{dnd5e.ClassSorcerer, dnd5e.ClassWizard},
		Description: "You hurl a mote of fire at a creature or object within range.",
	}
}

// MagicMissile always hits with three darts
func MagicMissile() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "magic-missile",
		Name:        "Magic Missile",
		Level:       1,
		School:      "evocation",
		Duration:    "Instantaneous",
		DamageRoll:  "1d4+1",
		DamageTypes: []string{dnd5e.DamageForce},
		Classes:     []string{dnd5e.ClassSorcerer, dnd5e.ClassWizard},
		Description: "You create three glowing darts of magical force. Each dart hits a creature of your " +
			"choice that you can see within range.",
	}
}

// HoldPerson has no damage roll
func HoldPerson() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:           "hold-person",
		Name:          "Hold Person",
		Level:         2,
		School:        "enchantment",
		Duration:      "Concentration, up to 1 minute",
		Concentration: true,
		SavingThrow:   dnd5e.AbilityWisdom,
		Classes:       []string{dnd5e.ClassBard, dnd5e.ClassCleric, dnd5e.ClassWizard},
		Description:   "The target must succeed on a Wisdom saving throw or be paralyzed for the duration.",
	}
}

// Fighter is a level 5 great weapon fighter
func Fighter() *entities.Character {
	return &entities.Character{
		Name:        "Brunhild",
		Class:       dnd5e.ClassFighter,
		Level:       5,
		AttackBonus: 7,
		BaseDamage:  10,
		AC:          18,
		Feats:       []string{dnd5e.FeatGreatWeaponMaster},
	}
}
