package dnd5e

import "github.com/KirkDiggler/rpg-dpr/internal/errors"

// SaveBonuses are a target's saving throw bonuses
type SaveBonuses struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// For returns the bonus for an ability, 0 for unknown abilities
func (s SaveBonuses) For(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// CombatContext describes the caster and the typical target
type CombatContext struct {
	ProficiencyBonus int         `json:"proficiency_bonus"`
	AbilityModifier  int         `json:"ability_modifier"`
	CasterLevel      int         `json:"caster_level"`
	TargetAC         int         `json:"target_ac"`
	TargetSaves      SaveBonuses `json:"target_saves"`
	// ExpectedTargets of 1 or less lets the area estimate decide
	ExpectedTargets    int  `json:"expected_targets"`
	ExpectedEncounters int  `json:"expected_encounters"`
	Clustered          bool `json:"clustered"`
}

// DefaultCombatContext is a level 5 caster with +4 in its casting stat
// against an AC 15 target
func DefaultCombatContext() CombatContext {
	return CombatContext{
		ProficiencyBonus: 3,
		AbilityModifier:  4,
		CasterLevel:      5,
		TargetAC:         15,
		TargetSaves: SaveBonuses{
			Strength:     2,
			Dexterity:    3,
			Constitution: 3,
			Intelligence: 0,
			Wisdom:       1,
			Charisma:     -1,
		},
		ExpectedTargets:    1,
		ExpectedEncounters: 4,
	}
}

// CombatOption adjusts a context under construction
type CombatOption func(*CombatContext)

// NewCombatContext applies opts over the defaults
func NewCombatContext(opts ...CombatOption) CombatContext {
	ctx := DefaultCombatContext()
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}

// With returns a copy of c with opts applied
func (c CombatContext) With(opts ...CombatOption) CombatContext {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func WithProficiencyBonus(bonus int) CombatOption {
	return func(c *CombatContext) { c.ProficiencyBonus = bonus }
}

func WithAbilityModifier(mod int) CombatOption {
	return func(c *CombatContext) { c.AbilityModifier = mod }
}

func WithCasterLevel(level int) CombatOption {
	return func(c *CombatContext) { c.CasterLevel = level }
}

func WithTargetAC(ac int) CombatOption {
	return func(c *CombatContext) { c.TargetAC = ac }
}

func WithTargetSaves(saves SaveBonuses) CombatOption {
	return func(c *CombatContext) { c.TargetSaves = saves }
}

func WithExpectedTargets(n int) CombatOption {
	return func(c *CombatContext) { c.ExpectedTargets = n }
}

func WithExpectedEncounters(n int) CombatOption {
	return func(c *CombatContext) { c.ExpectedEncounters = n }
}

func WithClustered(clustered bool) CombatOption {
	return func(c *CombatContext) { c.Clustered = clustered }
}

// SpellDC is 8 + proficiency + ability modifier
func (c CombatContext) SpellDC() int {
	return 8 + c.ProficiencyBonus + c.AbilityModifier
}

// AttackBonus is proficiency + ability modifier
func (c CombatContext) AttackBonus() int {
	return c.ProficiencyBonus + c.AbilityModifier
}

// Validate checks the context is usable for analysis
func (c CombatContext) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("caster_level", c.CasterLevel, 1, 20, vb)
	errors.ValidatePositive("target_ac", c.TargetAC, vb)
	errors.ValidateRange("proficiency_bonus", c.ProficiencyBonus, 0, 10, vb)
	if c.ExpectedTargets < 0 {
		vb.Field("expected_targets", "must not be negative")
	}
	if c.ExpectedEncounters < 0 {
		vb.Field("expected_encounters", "must not be negative")
	}

	return vb.Build()
}
