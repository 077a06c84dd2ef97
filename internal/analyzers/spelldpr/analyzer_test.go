package spelldpr_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/spelldpr"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

type AnalyzerTestSuite struct {
	suite.Suite
	ctx dnd5e.CombatContext
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerTestSuite))
}

func (s *AnalyzerTestSuite) SetupTest() {
	s.ctx = dnd5e.DefaultCombatContext()
}

func fireball() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "fireball",
		Name:        "Fireball",
		Level:       3,
		School:      "evocation",
		Duration:    "Instantaneous",
		DamageRoll:  "8d6",
		DamageTypes: []string{dnd5e.DamageFire},
		SavingThrow: dnd5e.AbilityDexterity,
		Description: "A bright streak flashes from your pointing finger to a point you choose within range and then " +
			"blossoms with a low roar into an explosion of flame. Each creature in a 20-foot-radius sphere centered " +
			"on that point must make a Dexterity saving throw. A target takes 8d6 fire damage on a failed save, " +
			"or half as much damage on a successful one.",
		HigherLevel: "When you cast this spell using a spell slot of 4th level or higher, the damage increases " +
			"by 1d6 for each slot level above 3rd.",
	}
}

func fireBolt() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "fire-bolt",
		Name:        "Fire Bolt",
		Level:       0,
		DamageRoll:  "1d10",
		DamageTypes: []string{dnd5e.DamageFire},
		AttackRoll:  true,
		Description: "You hurl a mote of fire at a creature or object within range. Make a ranged spell attack " +
			"against the target.",
	}
}

func magicMissile() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:         "magic-missile",
		Name:        "Magic Missile",
		Level:       1,
		DamageRoll:  "1d4+1",
		DamageTypes: []string{dnd5e.DamageForce},
		Description: "You create three glowing darts of magical force. Each dart hits a creature of your choice " +
			"that you can see within range. A dart deals 1d4 + 1 force damage to its target.",
		HigherLevel: "The spell creates one more dart for each slot level above 1st.",
	}
}

func chaosBolt() *dnd5e.SpellFact {
	return &dnd5e.SpellFact{
		Key:        "wikidot_chaos-bolt",
		Name:       "Chaos Bolt",
		Level:      1,
		DamageRoll: "1d6",
		AttackRoll: true,
		Description: "You hurl an undulating, warbling mass of chaotic energy at one creature in range. Make a " +
			"ranged spell attack against the target. On a hit, the target takes 2d8 + 1d6 damage. Choose one of " +
			"the d8s. The number rolled on that die determines the attack's damage type.",
		HigherLevel: "When you cast this spell using a spell slot of 2nd level or higher, each target takes 1d6 " +
			"extra damage of the type rolled for each slot level above 1st.",
	}
}

func (s *AnalyzerTestSuite) TestSaveForHalfSingleTarget() {
	fact := &dnd5e.SpellFact{
		Key:         "test-burst",
		Name:        "Test Burst",
		Level:       3,
		DamageRoll:  "8d6",
		SavingThrow: dnd5e.AbilityDexterity,
		Description: "A creature you can see must make a Dexterity saving throw, taking 8d6 fire damage on a " +
			"failed save, or half as much damage on a successful one.",
	}

	result := spelldpr.Analyze(fact, s.ctx)

	s.Require().NotNil(result.Damage)
	s.True(result.Damage.HasDamage)
	s.Equal(15, result.Context.SpellDC)
	s.Equal(55, result.Damage.HitChance)
	s.True(result.Damage.SaveForHalf)
	s.InDelta(28.0, result.Damage.AverageRoll, 0.001)
	s.InDelta(21.7, result.Damage.ExpectedDamage, 0.001)
	s.Equal(1, result.Damage.Targets)
	s.InDelta(21.7, result.Damage.TotalExpectedDamage, 0.001)
	s.Equal(8, result.Damage.Minimum)
	s.Equal(48, result.Damage.Maximum)
	s.Nil(result.Damage.SustainedDamage)

	s.Require().NotNil(result.Efficiency)
	s.InDelta(7.23, result.Efficiency.DamagePerSlotLevel, 0.001)
	s.InDelta(7.15, result.Efficiency.VsCantrip.CantripDamage, 0.001)
	s.True(result.Efficiency.VsCantrip.WorthSlot)
	s.Equal(dnd5e.EfficiencyAverage, result.Efficiency.SlotEfficiency.Rating)

	s.Require().NotNil(result.Tactical)
	s.Equal([]string{"DEX save - less effective vs agile enemies"}, result.Tactical.Notes)
	s.Equal([]dnd5e.ConditionTag{dnd5e.ConditionTargetLowDex}, result.Tactical.BestConditions)
	s.False(result.Tactical.IsAoE)
}

func (s *AnalyzerTestSuite) TestFireball() {
	result := spelldpr.Analyze(fireball(), s.ctx)

	s.Require().True(result.Damage.HasDamage)
	s.Equal(13, result.Damage.Targets)
	s.Equal(52, result.Damage.MaxTargets)
	s.InDelta(21.7, result.Damage.ExpectedDamage, 0.001)
	s.InDelta(282.1, result.Damage.TotalExpectedDamage, 0.001)
	s.Equal("8d6", result.Damage.BaseDamage)
	s.Empty(result.Damage.BaseDamageNote)
	s.Equal([]string{dnd5e.DamageFire}, result.Damage.DamageTypes)
	s.False(result.Damage.DamageTypeChoice)
	s.False(result.Damage.DamageTypeRandom)
	s.Zero(result.Spell.CastLevel)

	s.Equal(dnd5e.EfficiencyExcellent, result.Efficiency.SlotEfficiency.Rating)
	s.True(result.Tactical.IsAoE)
	s.Contains(result.Tactical.Notes, "AoE spell - best with 13+ clustered enemies")
	s.Equal([]dnd5e.ConditionTag{
		dnd5e.ConditionTargetLowDex,
		dnd5e.ConditionMultipleTargets,
	}, result.Tactical.BestConditions)
}

func (s *AnalyzerTestSuite) TestExpectedTargetsCapped() {
	ctx := s.ctx.With(dnd5e.WithExpectedTargets(4))

	result := spelldpr.Analyze(fireball(), ctx)

	s.Equal(4, result.Damage.Targets)
	s.InDelta(86.8, result.Damage.TotalExpectedDamage, 0.001)
}

func (s *AnalyzerTestSuite) TestAttackRollAddsCritBonus() {
	result := spelldpr.Analyze(fireBolt(), s.ctx)

	s.Equal(7, result.Context.SpellAttackBonus)
	s.Equal(65, result.Damage.HitChance)
	s.False(result.Damage.SaveForHalf)
	// 5.5 x 0.65 plus 5% of 5.5 for crits
	s.InDelta(3.85, result.Damage.ExpectedDamage, 0.001)
	s.Equal(1, result.Damage.Targets)
	s.InDelta(3.85, result.Efficiency.DamagePerSlotLevel, 0.001)
	s.Equal(dnd5e.EfficiencyAverage, result.Efficiency.SlotEfficiency.Rating)
	s.False(result.Efficiency.VsCantrip.WorthSlot)
}

func (s *AnalyzerTestSuite) TestAutoHitProjectiles() {
	result := spelldpr.Analyze(magicMissile(), s.ctx)

	s.Equal(100, result.Damage.HitChance)
	s.InDelta(3.5, result.Damage.ExpectedDamage, 0.001)
	s.Equal(3, result.Damage.Targets)
	s.InDelta(10.5, result.Damage.TotalExpectedDamage, 0.001)
}

func (s *AnalyzerTestSuite) TestNoDamage() {
	fact := &dnd5e.SpellFact{
		Key:         "hold-person",
		Name:        "Hold Person",
		Level:       2,
		AttackRoll:  true,
		SavingThrow: dnd5e.AbilityWisdom,
		Description: "Choose a humanoid that you can see within range. The target must succeed on a Wisdom " +
			"saving throw or be paralyzed for the duration.",
	}

	result := spelldpr.Analyze(fact, s.ctx)

	s.Require().NotNil(result.Damage)
	s.False(result.Damage.HasDamage)
	s.Equal(spelldpr.NoteNoDamage, result.Damage.Note)
	s.Nil(result.Efficiency)
	s.Nil(result.Tactical)
	s.Equal("Hold Person", result.Spell.Name)
}

func (s *AnalyzerTestSuite) TestUnparsableDamage() {
	fact := &dnd5e.SpellFact{Key: "odd", Name: "Odd", Level: 1, DamageRoll: "special"}

	result := spelldpr.Analyze(fact, s.ctx)

	s.False(result.Damage.HasDamage)
	s.Equal("Could not parse damage: special", result.Damage.Note)
	s.Nil(result.Efficiency)
}

func (s *AnalyzerTestSuite) TestChaosBoltOverride() {
	result := spelldpr.Analyze(chaosBolt(), s.ctx)

	s.Require().True(result.Damage.HasDamage)
	s.Equal("2d8+1d6", result.Damage.BaseDamage)
	s.Equal(`Corrected from source damage "1d6"`, result.Damage.BaseDamageNote)
	s.InDelta(12.5, result.Damage.AverageRoll, 0.001)
	s.InDelta(8.75, result.Damage.ExpectedDamage, 0.001)

	s.Require().NotNil(result.Damage.ChainMechanic)
	s.InDelta(0.125, result.Damage.ChainMechanic.Chance, 0.0001)
	s.InDelta(1.16, result.Damage.ChainMechanic.ExpectedBonusDamage, 0.001)
	s.InDelta(9.91, result.Damage.TotalExpectedDamage, 0.001)

	s.True(result.Damage.DamageTypeRandom)
	s.False(result.Damage.DamageTypeChoice)
	s.Len(result.Damage.DamageTypes, 8)
}

func (s *AnalyzerTestSuite) TestAnalyzeAtUpcasts() {
	s.Run("adds scaling dice", func() {
		result := spelldpr.AnalyzeAt(fireball(), s.ctx, 5)

		s.Equal(5, result.Spell.CastLevel)
		s.Equal("10d6", result.Damage.BaseDamage)
		s.InDelta(35.0, result.Damage.AverageRoll, 0.001)
	})

	s.Run("override scaling merges into matching dice", func() {
		result := spelldpr.AnalyzeAt(chaosBolt(), s.ctx, 3)

		s.Equal("2d8+3d6", result.Damage.BaseDamage)
	})

	s.Run("slot below spell level casts at spell level", func() {
		result := spelldpr.AnalyzeAt(fireball(), s.ctx, 1)

		s.Zero(result.Spell.CastLevel)
		s.Equal("8d6", result.Damage.BaseDamage)
	})

	s.Run("no scaling text leaves damage alone", func() {
		fact := fireball()
		fact.HigherLevel = ""

		result := spelldpr.AnalyzeAt(fact, s.ctx, 5)

		s.Equal(5, result.Spell.CastLevel)
		s.Equal("8d6", result.Damage.BaseDamage)
	})
}

func (s *AnalyzerTestSuite) TestSustainedDamage() {
	fact := &dnd5e.SpellFact{
		Key:           "crackle",
		Name:          "Crackle",
		Level:         1,
		Duration:      "Concentration, up to 1 minute",
		Concentration: true,
		DamageRoll:    "1d12",
		AttackRoll:    true,
		Description:   "A beam of crackling energy lances out toward a creature within range.",
	}

	result := spelldpr.Analyze(fact, s.ctx)

	s.Require().NotNil(result.Damage.SustainedDamage)
	s.InDelta(45.5, *result.Damage.SustainedDamage, 0.001)
	s.Contains(result.Tactical.Notes, "Requires concentration - can be interrupted")
	s.Contains(result.Tactical.BestConditions, dnd5e.ConditionMaintainConcentration)
}

func (s *AnalyzerTestSuite) TestDamageTypeDetection() {
	testCases := []struct {
		name   string
		fact   *dnd5e.SpellFact
		types  []string
		choice bool
		random bool
	}{
		{
			name:   "known choice spell",
			fact:   &dnd5e.SpellFact{Key: "srd_chromatic-orb", Level: 1, DamageRoll: "3d8", AttackRoll: true},
			types:  []string{"acid", "cold", "fire", "lightning", "poison", "thunder"},
			choice: true,
		},
		{
			name:  "known single type",
			fact:  &dnd5e.SpellFact{Key: "flame-blade", Level: 2, DamageRoll: "3d6", AttackRoll: true},
			types: []string{"fire"},
		},
		{
			name: "you choose phrase",
			fact: &dnd5e.SpellFact{
				Key:         "prismatic-burst",
				Level:       2,
				DamageRoll:  "4d6",
				Description: "When you cast it, you choose acid, cold, or fire as the damage type.",
			},
			types:  []string{"acid", "cold", "fire"},
			choice: true,
		},
		{
			name: "declared types",
			fact: &dnd5e.SpellFact{
				Key:         "ice-knife",
				Level:       1,
				DamageRoll:  "1d10",
				DamageTypes: []string{"piercing", "cold"},
			},
			types: []string{"piercing", "cold"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := spelldpr.Analyze(tc.fact, s.ctx)

			s.Equal(tc.types, result.Damage.DamageTypes)
			s.Equal(tc.choice, result.Damage.DamageTypeChoice)
			s.Equal(tc.random, result.Damage.DamageTypeRandom)
		})
	}
}

func (s *AnalyzerTestSuite) TestIdempotent() {
	fact := fireball()

	first := spelldpr.Analyze(fact, s.ctx)
	second := spelldpr.Analyze(fact, s.ctx)

	s.Equal(first, second)
	s.Equal(fireball(), fact)
}
