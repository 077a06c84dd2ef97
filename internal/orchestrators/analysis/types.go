package analysis

import (
	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/breakpoint"
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// AnalyzeSpellsInput names spells by store key, passes facts directly, or
// both. A nil Context uses the default combat context. SlotLevel 0 casts
// each spell at its own level.
type AnalyzeSpellsInput struct {
	Keys      []string
	Facts     []*dnd5e.SpellFact
	Context   *dnd5e.CombatContext
	SlotLevel int
}

// AnalyzeSpellsOutput holds one result per resolved spell, facts first and
// then keys in the order given
type AnalyzeSpellsOutput struct {
	Results []*dnd5e.SpellAnalysis `json:"results"`
	// Missing lists keys the store did not have
	Missing []string `json:"missing,omitempty"`
}

// CompareSpellsInput defines the request for ranking spells
type CompareSpellsInput struct {
	Keys    []string
	Facts   []*dnd5e.SpellFact
	Context *dnd5e.CombatContext
}

// CompareSpellsOutput defines the response for ranking spells
type CompareSpellsOutput struct {
	Comparison *dnd5e.SpellComparison `json:"comparison"`
	Missing    []string               `json:"missing,omitempty"`
}

// BestForSlotInput searches the store for the best spells to cast with a
// slot. Class narrows the search to one class list.
type BestForSlotInput struct {
	SlotLevel int
	Class     string
	Context   *dnd5e.CombatContext
}

// BestForSlotOutput is ranked by damage per slot level
type BestForSlotOutput struct {
	Results []*dnd5e.SpellAnalysis `json:"results"`
}

// CantripScalingInput takes a stored key or a fact
type CantripScalingInput struct {
	Key     string
	Fact    *dnd5e.SpellFact
	Context *dnd5e.CombatContext
}

// CantripScalingOutput defines the response for cantrip scaling
type CantripScalingOutput struct {
	Tiers []dnd5e.CantripTier `json:"tiers"`
}

// BreakpointsInput defines the request for character breakpoints
type BreakpointsInput struct {
	Character *entities.Character
}

// BreakpointsOutput carries the report and its printable cards
type BreakpointsOutput struct {
	Report     *dnd5e.BreakpointReport `json:"report"`
	CheatSheet *breakpoint.CheatSheet  `json:"cheat_sheet"`
}

// ImportSpellsInput filters which SRD spells to import
type ImportSpellsInput struct {
	Level *int
	Class string
	// DamageOnly skips spells with no damage roll
	DamageOnly bool
}

// ImportSpellsOutput summarizes an import run
type ImportSpellsOutput struct {
	ImportID string   `json:"import_id"`
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Skipped  []string `json:"skipped,omitempty"`
	Failed   []string `json:"failed,omitempty"`
}
