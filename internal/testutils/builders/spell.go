// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// SpellBuilder provides a fluent interface for building test SpellFact instances
type SpellBuilder struct {
	fact *dnd5e.SpellFact
}

// NewSpellBuilder creates a level 1 spell with no damage
func NewSpellBuilder(key string) *SpellBuilder {
	return &SpellBuilder{
		fact: &dnd5e.SpellFact{
			Key:      key,
			Name:     key,
			Level:    1,
			Duration: "Instantaneous",
		},
	}
}

// WithName sets the display name
func (b *SpellBuilder) WithName(name string) *SpellBuilder {
	b.fact.Name = name
	return b
}

// WithLevel sets the spell level, 0 for cantrips
func (b *SpellBuilder) WithLevel(level int) *SpellBuilder {
	b.fact.Level = level
	return b
}

// WithDamage sets the damage roll and types
func (b *SpellBuilder) WithDamage(roll string, types ...string) *SpellBuilder {
	b.fact.DamageRoll = roll
	b.fact.DamageTypes = types
	return b
}

// WithSave makes the spell a saving throw spell
func (b *SpellBuilder) WithSave(ability dnd5e.Ability) *SpellBuilder {
	b.fact.SavingThrow = ability
	return b
}

// WithAttackRoll makes the spell a spell attack
func (b *SpellBuilder) WithAttackRoll() *SpellBuilder {
	b.fact.AttackRoll = true
	return b
}

// WithConcentration marks the spell as concentration with a duration
func (b *SpellBuilder) WithConcentration(duration string) *SpellBuilder {
	b.fact.Concentration = true
	b.fact.Duration = duration
	return b
}

// WithDescription sets the rules text the heuristics read
func (b *SpellBuilder) WithDescription(desc string) *SpellBuilder {
	b.fact.Description = desc
	return b
}

// WithHigherLevel sets the upcast text
func (b *SpellBuilder) WithHigherLevel(text string) *SpellBuilder {
	b.fact.HigherLevel = text
	return b
}

// WithClasses sets the casting classes
func (b *SpellBuilder) WithClasses(classes ...string) *SpellBuilder {
	b.fact.Classes = classes
	return b
}

// Build returns a copy so one builder can produce several facts
func (b *SpellBuilder) Build() *dnd5e.SpellFact {
	return b.fact.Clone()
}
