package spelldpr

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

var saveNotes = map[dnd5e.Ability]struct {
	note string
	tag  dnd5e.ConditionTag
}{
	dnd5e.AbilityDexterity:    {"DEX save - less effective vs agile enemies", dnd5e.ConditionTargetLowDex},
	dnd5e.AbilityConstitution: {"CON save - less effective vs tough enemies", dnd5e.ConditionTargetLowCon},
	dnd5e.AbilityWisdom:       {"WIS save - effective vs low-WIS creatures", dnd5e.ConditionTargetLowWis},
	dnd5e.AbilityIntelligence: {"INT save - very effective vs beasts/undead", dnd5e.ConditionTargetLowInt},
}

var controlConditions = []string{"restrained", "paralyzed", "stunned"}

func tacticalNotes(fact *dnd5e.SpellFact, targets int) *dnd5e.TacticalAnalysis {
	t := &dnd5e.TacticalAnalysis{
		Notes:          []string{},
		BestConditions: []dnd5e.ConditionTag{},
	}
	add := func(note string, tag dnd5e.ConditionTag) {
		t.Notes = append(t.Notes, note)
		if tag != "" {
			t.BestConditions = append(t.BestConditions, tag)
		}
	}

	if fact.Concentration {
		add("Requires concentration - can be interrupted", dnd5e.ConditionMaintainConcentration)
	}

	if ability, ok := dnd5e.ParseAbility(string(fact.SavingThrow)); ok {
		if n, ok := saveNotes[ability]; ok {
			add(n.note, n.tag)
		}
	}

	if targets > 1 {
		add(fmt.Sprintf("AoE spell - best with %d+ clustered enemies", targets), dnd5e.ConditionMultipleTargets)
		t.IsAoE = true
	}

	if fact.Ritual {
		add("Can be cast as ritual (no slot, +10 min)", "")
	}

	desc := strings.ToLower(fact.Description)
	for _, condition := range controlConditions {
		if strings.Contains(desc, condition) {
			add("Applies powerful condition - tactical control", dnd5e.ConditionControlSpell)
			t.IsControl = true
			break
		}
	}

	if strings.Contains(desc, "bonus action") {
		add("Uses bonus action - good action economy", dnd5e.ConditionBonusAction)
	}

	return t
}
