package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// Defaults applied to unset Character fields
const (
	DefaultWisdomModifier      = 3
	DefaultKi                  = 5
	DefaultExpectedEnemyDamage = 10
	DefaultExpectedEncounters  = 4
)

// DefaultPaladinSlots is assumed when a paladin lists no slots
var DefaultPaladinSlots = []int{2, 2}

// Character is the martial or caster profile analyzed for breakpoints
type Character struct {
	Name        string    `json:"name" toml:"name"`
	Class       string    `json:"class" toml:"class"`
	Level       int       `json:"level" toml:"level"`
	AttackBonus int       `json:"attack_bonus" toml:"attack_bonus"`
	BaseDamage  float64   `json:"base_damage" toml:"base_damage"`
	AC          int       `json:"ac" toml:"ac"`
	Feats       []string  `json:"feats,omitempty" toml:"feats"`
	Wisdom      *int      `json:"wisdom,omitempty" toml:"wisdom"`
	Resources   Resources `json:"resources" toml:"resources"`
}

// Resources are the limited-use pools a character spends
type Resources struct {
	Ki *int `json:"ki,omitempty" toml:"ki"`
	// SpellSlots[i] is the number of remaining slots of level i+1
	SpellSlots          []int   `json:"spell_slots,omitempty" toml:"spell_slots"`
	ExpectedEnemyDamage float64 `json:"expected_enemy_damage,omitempty" toml:"expected_enemy_damage"`
	ExpectedEncounters  int     `json:"expected_encounters,omitempty" toml:"expected_encounters"`
}

// Validate checks the fields breakpoint analysis relies on
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("level", c.Level, 1, 20, vb)
	if c.BaseDamage < 0 {
		vb.Field("base_damage", "must not be negative")
	}
	for i, n := range c.Resources.SpellSlots {
		if n < 0 {
			vb.Fieldf("resources.spell_slots", "level %d slots must not be negative", i+1)
		}
	}
	if c.Resources.Ki != nil && *c.Resources.Ki < 0 {
		vb.Field("resources.ki", "must not be negative")
	}

	return vb.Build()
}

// IsClass compares the class case-insensitively
func (c *Character) IsClass(class string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Class), class)
}

// DisplayName falls back to "Character"
func (c *Character) DisplayName() string {
	if c.Name == "" {
		return "Character"
	}
	return c.Name
}

// WisdomModifier returns Wisdom or the default
func (c *Character) WisdomModifier() int {
	if c.Wisdom == nil {
		return DefaultWisdomModifier
	}
	return *c.Wisdom
}

// KiPoints returns Resources.Ki or the default
func (c *Character) KiPoints() int {
	if c.Resources.Ki == nil {
		return DefaultKi
	}
	return *c.Resources.Ki
}

// EnemyDamage returns the expected damage per enemy attack
func (c *Character) EnemyDamage() float64 {
	if c.Resources.ExpectedEnemyDamage <= 0 {
		return DefaultExpectedEnemyDamage
	}
	return c.Resources.ExpectedEnemyDamage
}

// Encounters returns the expected encounters per long rest
func (c *Character) Encounters() int {
	if c.Resources.ExpectedEncounters <= 0 {
		return DefaultExpectedEncounters
	}
	return c.Resources.ExpectedEncounters
}
