package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

var _ core.Entity = (*SpellFact)(nil)

// SpellFact is the rules data the analyzers read. It is produced by the
// SRD client or loaded from JSON and never modified by analysis.
type SpellFact struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	School        string   `json:"school,omitempty"`
	CastingTime   string   `json:"casting_time,omitempty"`
	Range         string   `json:"range,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Concentration bool     `json:"concentration"`
	Ritual        bool     `json:"ritual"`
	DamageRoll    string   `json:"damage_roll,omitempty"`
	DamageTypes   []string `json:"damage_types,omitempty"`
	// SavingThrow is empty when the spell has no save
	SavingThrow Ability  `json:"saving_throw,omitempty"`
	AttackRoll  bool     `json:"attack_roll"`
	Classes     []string `json:"classes,omitempty"`
	Description string   `json:"description,omitempty"`
	HigherLevel string   `json:"higher_level,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// GetID returns the spell key
func (s *SpellFact) GetID() string {
	return s.Key
}

// GetType returns the entity type for rpg-toolkit
func (s *SpellFact) GetType() string {
	return EntityTypeSpell
}

// NormalizedKey strips the source prefixes importers put on keys
func (s *SpellFact) NormalizedKey() string {
	return NormalizeKey(s.Key)
}

// NormalizeKey strips a leading "wikidot_" or "srd_"
func NormalizeKey(key string) string {
	for _, prefix := range []string{"wikidot_", "srd_"} {
		if strings.HasPrefix(key, prefix) {
			return strings.TrimPrefix(key, prefix)
		}
	}
	return key
}

// IsCantrip reports whether the spell is level 0
func (s *SpellFact) IsCantrip() bool {
	return s.Level == 0
}

// HasClass reports whether class can cast the spell
func (s *SpellFact) HasClass(class string) bool {
	for _, c := range s.Classes {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s
func (s *SpellFact) Clone() *SpellFact {
	out := *s
	out.DamageTypes = append([]string(nil), s.DamageTypes...)
	out.Classes = append([]string(nil), s.Classes...)
	return &out
}
