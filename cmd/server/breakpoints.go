package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dpr/internal/charts"
	"github.com/KirkDiggler/rpg-dpr/internal/config"
	"github.com/KirkDiggler/rpg-dpr/internal/entities"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis"
)

var breakpointsFlags struct {
	characterFile string
	name          string
	class         string
	level         int
	attackBonus   int
	baseDamage    float64
	ac            int
	feats         []string
	wisdom        int
	ki            int
	slots         []int
	enemyDamage   float64
	encounters    int
	chart         string
	cheatSheet    bool
	output        string
}

var breakpointsCmd = &cobra.Command{
	Use:   "breakpoints",
	Short: "Find when power attacks and class features pay off",
	Long: `Sweep target AC for a character's feats and class features. Examples:

  breakpoints --class fighter --level 5 --attack-bonus 7 --base-damage 10 --feat GWM
  breakpoints --character monk.toml --cheat-sheet
  breakpoints --character barbarian.toml --chart barbarian.html`,
	RunE: runBreakpoints,
}

func init() {
	f := breakpointsCmd.Flags()
	f.StringVar(&breakpointsFlags.characterFile, "character", "", "TOML character file, flags override its values")
	f.StringVar(&breakpointsFlags.name, "name", "", "character name")
	f.StringVar(&breakpointsFlags.class, "class", "", "character class")
	f.IntVar(&breakpointsFlags.level, "level", 1, "character level")
	f.IntVar(&breakpointsFlags.attackBonus, "attack-bonus", 5, "attack bonus")
	f.Float64Var(&breakpointsFlags.baseDamage, "base-damage", 10, "average damage per hit")
	f.IntVar(&breakpointsFlags.ac, "ac", 15, "character armor class")
	f.StringSliceVar(&breakpointsFlags.feats, "feat", nil, "feat such as GWM or SS (repeatable)")
	f.IntVar(&breakpointsFlags.wisdom, "wisdom", entities.DefaultWisdomModifier, "wisdom modifier")
	f.IntVar(&breakpointsFlags.ki, "ki", entities.DefaultKi, "remaining ki points")
	f.IntSliceVar(&breakpointsFlags.slots, "slots", nil, "remaining slots per level, e.g. 4,3,2")
	f.Float64Var(&breakpointsFlags.enemyDamage, "enemy-damage", entities.DefaultExpectedEnemyDamage,
		"expected damage per enemy attack")
	f.IntVar(&breakpointsFlags.encounters, "encounters", entities.DefaultExpectedEncounters,
		"expected encounters per long rest")
	f.StringVar(&breakpointsFlags.chart, "chart", "", "write an HTML chart of the breakpoint tables")
	f.BoolVar(&breakpointsFlags.cheatSheet, "cheat-sheet", false, "print decision cards instead of JSON")
	f.StringVarP(&breakpointsFlags.output, "output", "o", "", "write output here instead of stdout")
}

func runBreakpoints(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	character, err := breakpointCharacter(cmd)
	if err != nil {
		return err
	}

	svc, err := newServices(ctx, servicesOptions{})
	if err != nil {
		return err
	}
	defer svc.Close(context.Background())

	out, err := svc.analysis.Breakpoints(ctx, &analysis.BreakpointsInput{Character: character})
	if err != nil {
		return err
	}

	if breakpointsFlags.chart != "" {
		err := charts.WriteFile(breakpointsFlags.chart, func(w io.Writer) error {
			return charts.RenderBreakpoints(w, out.Report, charts.DefaultConfig())
		})
		if err != nil {
			return err
		}
	}

	w, closeOutput, err := outputWriter(breakpointsFlags.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	if breakpointsFlags.cheatSheet {
		return out.CheatSheet.WriteText(w)
	}
	return writeJSON(w, out.Report)
}

// breakpointCharacter starts from the TOML file when given and applies
// any flag the user set
func breakpointCharacter(cmd *cobra.Command) (*entities.Character, error) {
	character := &entities.Character{}
	if breakpointsFlags.characterFile != "" {
		loaded, err := config.LoadCharacter(breakpointsFlags.characterFile)
		if err != nil {
			return nil, err
		}
		character = loaded
	}

	fromFile := breakpointsFlags.characterFile != ""
	set := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}

	if set("name") {
		character.Name = breakpointsFlags.name
	}
	if set("class") {
		character.Class = breakpointsFlags.class
	}
	if set("level") {
		character.Level = breakpointsFlags.level
	}
	if set("attack-bonus") {
		character.AttackBonus = breakpointsFlags.attackBonus
	}
	if set("base-damage") {
		character.BaseDamage = breakpointsFlags.baseDamage
	}
	if set("ac") {
		character.AC = breakpointsFlags.ac
	}
	if set("feat") {
		character.Feats = breakpointsFlags.feats
	}
	if set("wisdom") {
		wisdom := breakpointsFlags.wisdom
		character.Wisdom = &wisdom
	}
	if set("ki") {
		ki := breakpointsFlags.ki
		character.Resources.Ki = &ki
	}
	if set("slots") {
		character.Resources.SpellSlots = breakpointsFlags.slots
	}
	if set("enemy-damage") {
		character.Resources.ExpectedEnemyDamage = breakpointsFlags.enemyDamage
	}
	if set("encounters") {
		character.Resources.ExpectedEncounters = breakpointsFlags.encounters
	}

	if err := character.Validate(); err != nil {
		return nil, err
	}
	return character, nil
}
