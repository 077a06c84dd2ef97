package breakpoint

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// SectionKind controls how a cheat sheet section is laid out
type SectionKind string

const (
	SectionStats     SectionKind = "stats"
	SectionDecision  SectionKind = "decision"
	SectionTips      SectionKind = "tips"
	SectionReference SectionKind = "reference"
)

// Priority orders decision rules from "do it" to "don't"
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rule is one line of a decision card
type Rule struct {
	Condition string   `json:"condition"`
	Action    string   `json:"action"`
	Priority  Priority `json:"priority"`
}

// Section is one card on the sheet
type Section struct {
	Kind      SectionKind `json:"kind"`
	Title     string      `json:"title"`
	Items     []string    `json:"items,omitempty"`
	Rules     []Rule      `json:"rules,omitempty"`
	Modifiers []string    `json:"modifiers,omitempty"`
	Notes     []string    `json:"notes,omitempty"`
}

// CheatSheet is a printable set of decision cards for one character
type CheatSheet struct {
	Character dnd5e.CharacterSummary `json:"character"`
	Header    string                 `json:"header"`
	Sections  []Section              `json:"sections"`
}

// NewCheatSheet turns a breakpoint report into decision cards. report may
// be nil, in which case only the generic cards are produced.
func NewCheatSheet(c *entities.Character, report *dnd5e.BreakpointReport) *CheatSheet {
	class := cases.Title(language.English).String(c.Class)

	sheet := &CheatSheet{
		Character: dnd5e.CharacterSummary{Name: c.DisplayName(), Class: c.Class, Level: c.Level},
		Header:    fmt.Sprintf("%s - Level %d %s", c.DisplayName(), c.Level, class),
	}

	sheet.add(Section{
		Kind:  SectionStats,
		Title: "Combat Stats",
		Items: []string{
			fmt.Sprintf("Attack Bonus: %+d", c.AttackBonus),
			fmt.Sprintf("Base Damage: %g", c.BaseDamage),
			fmt.Sprintf("AC: %d", c.AC),
		},
	})

	if report != nil && report.Feat != nil {
		sheet.add(powerAttackCard(report.Feat))
	}
	if c.IsClass(dnd5e.ClassBarbarian) {
		sheet.add(recklessCard())
	}
	if c.IsClass(dnd5e.ClassMonk) {
		sheet.add(stunningCard(c, report))
	}
	if c.IsClass(dnd5e.ClassPaladin) {
		sheet.add(smiteCard())
	}

	sheet.add(Section{
		Kind:  SectionTips,
		Title: "Combat Priority",
		Items: []string{
			"1. Eliminate enemy casters first (concentration)",
			"2. Focus fire - dead enemies deal no damage",
			"3. Control > Damage when outnumbered",
			"4. Save resources for hard fights",
		},
	})
	sheet.add(Section{
		Kind:  SectionReference,
		Title: "Action Economy",
		Items: []string{
			"Action: Attack, Cast, Dash, Dodge, Help, Hide",
			"Bonus Action: Class features, some spells",
			"Reaction: Opportunity Attack, Shield, Counterspell",
			"Free: Drop item, speak briefly",
		},
	})

	return sheet
}

func (s *CheatSheet) add(section Section) {
	s.Sections = append(s.Sections, section)
}

// Section returns the first section with title
func (s *CheatSheet) Section(title string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Title == title {
			return sec, true
		}
	}
	return Section{}, false
}

func powerAttackCard(feat *dnd5e.FeatBreakpoints) Section {
	bp := feat.Normal.Breakpoint
	return Section{
		Kind:  SectionDecision,
		Title: fmt.Sprintf("%s (-5/+10)", feat.Feat),
		Rules: []Rule{
			{Condition: fmt.Sprintf("AC ≤ %d", bp-2), Action: "ALWAYS use", Priority: PriorityHigh},
			{Condition: fmt.Sprintf("AC %d-%d", bp-1, bp+1), Action: "Use with advantage only", Priority: PriorityMedium},
			{Condition: fmt.Sprintf("AC ≥ %d", bp+2), Action: "DO NOT use", Priority: PriorityLow},
		},
		Modifiers: []string{
			"Bless active: +2 to AC thresholds",
			"Advantage: +3 to AC thresholds",
			"Disadvantage: -4 to AC thresholds",
		},
	}
}

func recklessCard() Section {
	return Section{
		Kind:  SectionDecision,
		Title: OptionRecklessAttack,
		Rules: []Rule{
			{Condition: "High HP, few enemies, have resistance", Action: "USE Reckless", Priority: PriorityHigh},
			{Condition: "Low HP or many enemies", Action: "SKIP Reckless", Priority: PriorityLow},
		},
		Notes: []string{
			"Gives YOU advantage",
			"Gives ENEMIES advantage against you",
			"Best value when Rage is active (resistance)",
		},
	}
}

func stunningCard(c *entities.Character, report *dnd5e.BreakpointReport) Section {
	var dc int
	if report != nil && report.StunningStrike != nil && report.StunningStrike.VsAverageCon != nil {
		dc = report.StunningStrike.VsAverageCon.DC
	} else {
		dc = StunningStrike(c.Level, c.WisdomModifier(), averageConSave, c.KiPoints()).DC
	}

	return Section{
		Kind:  SectionDecision,
		Title: "Stunning Strike",
		Rules: []Rule{
			{Condition: "vs. Casters/Rogues (low CON)", Action: "WORTH IT - attempt stun", Priority: PriorityHigh},
			{Condition: "vs. Warriors (average CON)", Action: "Use on high-priority targets only", Priority: PriorityMedium},
			{Condition: "vs. Brutes/Giants (high CON)", Action: "SAVE YOUR KI", Priority: PriorityLow},
		},
		Notes: []string{
			fmt.Sprintf("Your DC: %d", dc),
			"Stunned = incapacitated, auto-fail STR/DEX saves, attacks have advantage",
			"Ki is precious - don't waste on unlikely stuns",
		},
	}
}

func smiteCard() Section {
	return Section{
		Kind:  SectionDecision,
		Title: "Divine Smite",
		Rules: []Rule{
			{Condition: "You rolled a CRIT", Action: "ALWAYS SMITE (double dice!)", Priority: PriorityHigh},
			{Condition: "Target is almost dead", Action: "Smite to secure kill", Priority: PriorityMedium},
			{Condition: "Normal hit, target healthy", Action: "Save slots for crits", Priority: PriorityLow},
		},
		Notes: []string{
			"1st: 2d8 (9 avg) | 2nd: 3d8 (13.5 avg)",
			"3rd: 4d8 (18 avg) | 4th: 5d8 (22.5 avg)",
			"+1d8 vs undead/fiends",
			"Crits DOUBLE all smite dice!",
		},
	}
}

// WriteText renders the sheet as plain text cards
func (s *CheatSheet) WriteText(w io.Writer) error {
	var b strings.Builder

	b.WriteString(s.Header + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(s.Header))) + "\n")

	for _, sec := range s.Sections {
		b.WriteString("\n" + strings.ToUpper(sec.Title) + "\n")
		for _, item := range sec.Items {
			b.WriteString("  " + item + "\n")
		}
		for _, r := range sec.Rules {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", r.Priority, r.Condition, r.Action)
		}
		for _, m := range sec.Modifiers {
			b.WriteString("  * " + m + "\n")
		}
		for _, n := range sec.Notes {
			b.WriteString("  - " + n + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
