package builders

import (
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a level 5 character with +7 to hit and 10
// damage per hit
func NewCharacterBuilder(class string) *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			Name:        "Test Character",
			Class:       class,
			Level:       5,
			AttackBonus: 7,
			BaseDamage:  10,
			AC:          16,
		},
	}
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithAttack sets attack bonus and average damage per hit
func (b *CharacterBuilder) WithAttack(bonus int, damage float64) *CharacterBuilder {
	b.character.AttackBonus = bonus
	b.character.BaseDamage = damage
	return b
}

// WithFeats sets the feat list
func (b *CharacterBuilder) WithFeats(feats ...string) *CharacterBuilder {
	b.character.Feats = feats
	return b
}

// WithSpellSlots sets remaining slots, first entry is level 1
func (b *CharacterBuilder) WithSpellSlots(slots ...int) *CharacterBuilder {
	b.character.Resources.SpellSlots = slots
	return b
}

// WithKi sets remaining ki
func (b *CharacterBuilder) WithKi(ki int) *CharacterBuilder {
	b.character.Resources.Ki = &ki
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	c := *b.character
	c.Feats = append([]string(nil), b.character.Feats...)
	c.Resources.SpellSlots = append([]int(nil), b.character.Resources.SpellSlots...)
	return &c
}
