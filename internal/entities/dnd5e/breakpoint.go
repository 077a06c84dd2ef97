package dnd5e

// BreakpointRow compares a baseline attack with a modified one at one AC
type BreakpointRow struct {
	AC          int     `json:"ac"`
	BaselineDPR float64 `json:"baseline_dpr"`
	ModifiedDPR float64 `json:"modified_dpr"`
	Recommended bool    `json:"recommended"`
	// Difference is the net gain of the modified attack, after any cost
	Difference       float64 `json:"difference"`
	ExtraDamageTaken float64 `json:"extra_damage_taken,omitempty"`
}

// BreakpointTable sweeps target AC for one option
type BreakpointTable struct {
	Option    string          `json:"option"`
	Advantage bool            `json:"advantage"`
	Rows      []BreakpointRow `json:"rows"`
	// Breakpoint is the highest AC where the option is recommended, 0 if none
	Breakpoint int `json:"breakpoint"`
}

// Row returns the row for ac, false when ac is outside the sweep
func (t *BreakpointTable) Row(ac int) (BreakpointRow, bool) {
	for _, r := range t.Rows {
		if r.AC == ac {
			return r, true
		}
	}
	return BreakpointRow{}, false
}

// FeatAdvice pairs a table with a one line summary
type FeatAdvice struct {
	Breakpoint int              `json:"breakpoint"`
	Advice     string           `json:"advice"`
	Table      *BreakpointTable `json:"table"`
}

// FeatBreakpoints is the power attack analysis for a feat
type FeatBreakpoints struct {
	Feat          string     `json:"feat"`
	Normal        FeatAdvice `json:"normal"`
	WithAdvantage FeatAdvice `json:"with_advantage"`
}

// StunningStrikeAnalysis is the value of spending ki against one target
type StunningStrikeAnalysis struct {
	DC              int `json:"dc"`
	TargetSaveBonus int `json:"target_save_bonus"`
	// FailProbability is a whole percent
	FailProbability int    `json:"fail_probability"`
	RecommendUse    bool   `json:"recommend_use"`
	Reasoning       string `json:"reasoning"`
}

// StunningStrikeReport covers weak, average and strong Constitution saves
type StunningStrikeReport struct {
	VsBadCon     *StunningStrikeAnalysis `json:"vs_bad_con"`
	VsAverageCon *StunningStrikeAnalysis `json:"vs_average_con"`
	VsGoodCon    *StunningStrikeAnalysis `json:"vs_good_con"`
}

// SmiteOption is smiting with one slot level
type SmiteOption struct {
	SlotLevel      int     `json:"slot_level"`
	ExpectedDamage float64 `json:"expected_damage"`
	CanKill        bool    `json:"can_kill"`
	Recommendation string  `json:"recommendation"`
}

// DivineSmiteAnalysis lists smite options for one hit
type DivineSmiteAnalysis struct {
	IsCrit        bool          `json:"is_crit"`
	Options       []SmiteOption `json:"options"`
	GeneralAdvice string        `json:"general_advice"`
}

// DivineSmiteReport covers a crit and a normal hit
type DivineSmiteReport struct {
	OnCrit *DivineSmiteAnalysis `json:"on_crit"`
	OnHit  *DivineSmiteAnalysis `json:"on_hit"`
}

// SlotPacing spreads spell slots over an adventuring day
type SlotPacing struct {
	TotalSlots         int      `json:"total_slots"`
	ExpectedEncounters int      `json:"expected_encounters"`
	SlotsPerEncounter  float64  `json:"slots_per_encounter"`
	ShortRestsExpected int      `json:"short_rests_expected"`
	Recommendations    []string `json:"recommendations"`
}

// CharacterSummary identifies the analyzed character
type CharacterSummary struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
}

// BreakpointReport collects every analysis that applies to a character
type BreakpointReport struct {
	Character       CharacterSummary      `json:"character"`
	Feat            *FeatBreakpoints      `json:"feat,omitempty"`
	RecklessAttack  *BreakpointTable      `json:"reckless_attack,omitempty"`
	StunningStrike  *StunningStrikeReport `json:"stunning_strike,omitempty"`
	DivineSmite     *DivineSmiteReport    `json:"divine_smite,omitempty"`
	SpellPacing     *SlotPacing           `json:"spell_pacing,omitempty"`
	Recommendations []string              `json:"recommendations"`
}
