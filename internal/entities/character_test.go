package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dpr/internal/entities"
)

func TestCharacterDefaults(t *testing.T) {
	c := &entities.Character{Class: "Monk", Level: 5}

	assert.Equal(t, "Character", c.DisplayName())
	assert.True(t, c.IsClass("monk"))
	assert.Equal(t, entities.DefaultWisdomModifier, c.WisdomModifier())
	assert.Equal(t, entities.DefaultKi, c.KiPoints())
	assert.Equal(t, float64(entities.DefaultExpectedEnemyDamage), c.EnemyDamage())
	assert.Equal(t, entities.DefaultExpectedEncounters, c.Encounters())
	assert.NoError(t, c.Validate())
}

func TestCharacterExplicitZeroes(t *testing.T) {
	wis, ki := 0, 0
	c := &entities.Character{Level: 5, Wisdom: &wis, Resources: entities.Resources{Ki: &ki}}

	assert.Equal(t, 0, c.WisdomModifier())
	assert.Equal(t, 0, c.KiPoints())
}

func TestCharacterValidate(t *testing.T) {
	ki := -1
	c := &entities.Character{
		Level:      0,
		BaseDamage: -2,
		Resources:  entities.Resources{Ki: &ki, SpellSlots: []int{2, -1}},
	}

	err := c.Validate()
	assert.Error(t, err)
	for _, field := range []string{"level", "base_damage", "resources.ki", "resources.spell_slots"} {
		assert.Contains(t, err.Error(), field)
	}
}
