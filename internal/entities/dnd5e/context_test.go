package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

func TestDefaultCombatContext(t *testing.T) {
	ctx := dnd5e.DefaultCombatContext()

	assert.Equal(t, 15, ctx.SpellDC())
	assert.Equal(t, 7, ctx.AttackBonus())
	assert.Equal(t, 15, ctx.TargetAC)
	assert.Equal(t, 3, ctx.TargetSaves.For(dnd5e.AbilityDexterity))
	assert.Equal(t, -1, ctx.TargetSaves.For(dnd5e.AbilityCharisma))
	assert.Equal(t, 0, ctx.TargetSaves.For("luck"))
	assert.NoError(t, ctx.Validate())
}

func TestNewCombatContextOptions(t *testing.T) {
	ctx := dnd5e.NewCombatContext(
		dnd5e.WithCasterLevel(11),
		dnd5e.WithAbilityModifier(5),
		dnd5e.WithProficiencyBonus(4),
		dnd5e.WithTargetAC(18),
		dnd5e.WithExpectedTargets(3),
		dnd5e.WithClustered(true),
	)

	assert.Equal(t, 17, ctx.SpellDC())
	assert.Equal(t, 9, ctx.AttackBonus())
	assert.Equal(t, 11, ctx.CasterLevel)
	assert.Equal(t, 18, ctx.TargetAC)
	assert.Equal(t, 3, ctx.ExpectedTargets)
	assert.True(t, ctx.Clustered)

	// With copies; the original is untouched
	other := ctx.With(dnd5e.WithTargetAC(12))
	assert.Equal(t, 12, other.TargetAC)
	assert.Equal(t, 18, ctx.TargetAC)
}

func TestCombatContextValidate(t *testing.T) {
	ctx := dnd5e.NewCombatContext(dnd5e.WithCasterLevel(0), dnd5e.WithTargetAC(0))

	err := ctx.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "caster_level")
	assert.Contains(t, err.Error(), "target_ac")
}

func TestParseAbility(t *testing.T) {
	testCases := []struct {
		input    string
		expected dnd5e.Ability
		ok       bool
	}{
		{"dexterity", dnd5e.AbilityDexterity, true},
		{"DEX", dnd5e.AbilityDexterity, true},
		{" Wisdom ", dnd5e.AbilityWisdom, true},
		{"con", dnd5e.AbilityConstitution, true},
		{"luck", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			a, ok := dnd5e.ParseAbility(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, a)
		})
	}

	assert.Equal(t, "INT", dnd5e.AbilityIntelligence.Short())
}
