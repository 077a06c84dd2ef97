package dnd5e

// SpellSummary identifies the analyzed spell. CastLevel is set only when
// a higher slot was used.
type SpellSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	CastLevel     int    `json:"cast_level,omitempty"`
	School        string `json:"school,omitempty"`
	Concentration bool   `json:"concentration"`
	Ritual        bool   `json:"ritual"`
}

// ContextSummary echoes the numbers derived from the combat context
type ContextSummary struct {
	CasterLevel      int `json:"caster_level"`
	SpellDC          int `json:"spell_dc"`
	SpellAttackBonus int `json:"spell_attack_bonus"`
}

// ChainMechanic is a chance for the effect to repeat on a new target
type ChainMechanic struct {
	Chance              float64 `json:"chance"`
	Description         string  `json:"description"`
	ExpectedBonusDamage float64 `json:"expected_bonus_damage"`
}

// DamageAnalysis holds the expected damage figures. Damage values are
// rounded to two decimals and HitChance is a whole percent.
type DamageAnalysis struct {
	HasDamage           bool           `json:"has_damage"`
	Note                string         `json:"note,omitempty"`
	BaseDamage          string         `json:"base_damage,omitempty"`
	BaseDamageNote      string         `json:"base_damage_note,omitempty"`
	AverageRoll         float64        `json:"average_roll"`
	Minimum             int            `json:"minimum"`
	Maximum             int            `json:"maximum"`
	HitChance           int            `json:"hit_chance"`
	SaveForHalf         bool           `json:"save_for_half"`
	ExpectedDamage      float64        `json:"expected_damage"`
	Targets             int            `json:"targets"`
	MaxTargets          int            `json:"max_targets"`
	TotalExpectedDamage float64        `json:"total_expected_damage"`
	SustainedDamage     *float64       `json:"sustained_damage"`
	ChainMechanic       *ChainMechanic `json:"chain_mechanic,omitempty"`
	DamageTypes         []string       `json:"damage_types,omitempty"`
	DamageTypeChoice    bool           `json:"damage_type_choice"`
	DamageTypeRandom    bool           `json:"damage_type_random"`
}

// CantripComparison measures a spell against a cantrip at the same level
type CantripComparison struct {
	CantripDamage float64 `json:"cantrip_damage"`
	Ratio         float64 `json:"ratio"`
	WorthSlot     bool    `json:"worth_slot"`
}

// SlotEfficiency compares damage to what the slot level usually buys
type SlotEfficiency struct {
	Rating EfficiencyRating `json:"rating"`
	Score  float64          `json:"score"`
}

// EfficiencyAnalysis relates damage to resources spent
type EfficiencyAnalysis struct {
	DamagePerSlotLevel float64           `json:"damage_per_slot_level"`
	DamagePerAction    float64           `json:"damage_per_action"`
	VsCantrip          CantripComparison `json:"vs_cantrip"`
	SlotEfficiency     SlotEfficiency    `json:"slot_efficiency"`
}

// TacticalAnalysis is advice for using the spell well
type TacticalAnalysis struct {
	Notes          []string       `json:"notes"`
	BestConditions []ConditionTag `json:"best_conditions"`
	IsControl      bool           `json:"is_control"`
	IsAoE          bool           `json:"is_aoe"`
}

// SpellAnalysis is the full result for one spell. Efficiency and Tactical
// are nil when the spell deals no damage.
type SpellAnalysis struct {
	Spell      SpellSummary        `json:"spell"`
	Context    ContextSummary      `json:"context"`
	Damage     *DamageAnalysis     `json:"damage"`
	Efficiency *EfficiencyAnalysis `json:"efficiency,omitempty"`
	Tactical   *TacticalAnalysis   `json:"tactical,omitempty"`
}

// TotalExpectedDamage is 0 for spells without damage
func (a *SpellAnalysis) TotalExpectedDamage() float64 {
	if a == nil || a.Damage == nil {
		return 0
	}
	return a.Damage.TotalExpectedDamage
}

// DamagePerSlotLevel is 0 for spells without damage
func (a *SpellAnalysis) DamagePerSlotLevel() float64 {
	if a == nil || a.Efficiency == nil {
		return 0
	}
	return a.Efficiency.DamagePerSlotLevel
}

// SpellComparison ranks several spells under one context
type SpellComparison struct {
	Spells         []*SpellAnalysis `json:"spells"`
	BestDamage     string           `json:"best_damage,omitempty"`
	BestEfficiency string           `json:"best_efficiency,omitempty"`
}

// CantripTier is a cantrip analyzed at a character level where its dice
// count changes
type CantripTier struct {
	Level    int            `json:"level"`
	Dice     int            `json:"dice"`
	Analysis *SpellAnalysis `json:"analysis"`
}
