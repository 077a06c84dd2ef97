package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dpr/internal/charts"
	"github.com/KirkDiggler/rpg-dpr/internal/config"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis"
)

// Analysis modes
const (
	modeAnalyze  = "analyze"
	modeCompare  = "compare"
	modeBestSlot = "best-slot"
	modeCantrip  = "cantrip"
)

var analyzeFlags struct {
	file      string
	spells    []string
	profile   string
	mode      string
	slot      int
	class     string
	targets   int
	clustered bool
	chart     string
	output    string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute expected damage for spells",
	Long: `Analyze spells from a JSON file or the spell store. Examples:

  analyze --file spells.json
  analyze --spell fireball --spell lightning-bolt --mode compare --chart compare.html
  analyze --mode best-slot --slot 3 --class wizard --profile boss.toml
  analyze --mode cantrip --spell fire-bolt`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.file, "file", "", "JSON file with a spell or an array of spells")
	f.StringSliceVar(&analyzeFlags.spells, "spell", nil, "spell key to load from the store (repeatable)")
	f.StringVar(&analyzeFlags.profile, "profile", "", "TOML combat profile")
	f.StringVar(&analyzeFlags.mode, "mode", modeAnalyze, "analyze, compare, best-slot or cantrip")
	f.IntVar(&analyzeFlags.slot, "slot", 0, "cast level (analyze) or slot to fill (best-slot)")
	f.StringVar(&analyzeFlags.class, "class", "", "class spell list for best-slot")
	f.IntVar(&analyzeFlags.targets, "targets", 0, "expected targets, overrides the profile")
	f.BoolVar(&analyzeFlags.clustered, "clustered", false, "enemies are bunched together")
	f.StringVar(&analyzeFlags.chart, "chart", "", "write an HTML chart of the comparison")
	f.StringVarP(&analyzeFlags.output, "output", "o", "", "write JSON here instead of stdout")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	combat, err := config.LoadCombatProfile(analyzeFlags.profile)
	if err != nil {
		return err
	}
	if analyzeFlags.targets > 0 {
		combat.ExpectedTargets = analyzeFlags.targets
	}
	if cmd.Flags().Changed("clustered") {
		combat.Clustered = analyzeFlags.clustered
	}

	var facts []*dnd5e.SpellFact
	if analyzeFlags.file != "" {
		facts, err = config.LoadSpells(analyzeFlags.file)
		if err != nil {
			return err
		}
	}
	if len(facts) == 0 && len(analyzeFlags.spells) == 0 && analyzeFlags.mode != modeBestSlot {
		return errors.InvalidArgument("pass --file or at least one --spell")
	}

	svc, err := newServices(ctx, servicesOptions{})
	if err != nil {
		return err
	}
	defer svc.Close(context.Background())

	result, err := analyzeByMode(ctx, svc.analysis, facts, &combat)
	if err != nil {
		return err
	}

	w, closeOutput, err := outputWriter(analyzeFlags.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	return writeJSON(w, result)
}

func analyzeByMode(
	ctx context.Context,
	svc analysis.Service,
	facts []*dnd5e.SpellFact,
	combat *dnd5e.CombatContext,
) (any, error) {
	switch analyzeFlags.mode {
	case modeAnalyze:
		return svc.AnalyzeSpells(ctx, &analysis.AnalyzeSpellsInput{
			Keys:      analyzeFlags.spells,
			Facts:     facts,
			Context:   combat,
			SlotLevel: analyzeFlags.slot,
		})

	case modeCompare:
		out, err := svc.CompareSpells(ctx, &analysis.CompareSpellsInput{
			Keys:    analyzeFlags.spells,
			Facts:   facts,
			Context: combat,
		})
		if err != nil {
			return nil, err
		}
		if analyzeFlags.chart != "" {
			err := charts.WriteFile(analyzeFlags.chart, func(w io.Writer) error {
				return charts.RenderComparison(w, out.Comparison, charts.DefaultConfig())
			})
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	case modeBestSlot:
		return svc.BestForSlot(ctx, &analysis.BestForSlotInput{
			SlotLevel: analyzeFlags.slot,
			Class:     analyzeFlags.class,
			Context:   combat,
		})

	case modeCantrip:
		input := &analysis.CantripScalingInput{Context: combat}
		switch {
		case len(facts) > 0:
			input.Fact = facts[0]
		case len(analyzeFlags.spells) > 0:
			input.Key = analyzeFlags.spells[0]
		}
		return svc.CantripScaling(ctx, input)

	default:
		return nil, errors.InvalidArgumentf("unknown mode %q", analyzeFlags.mode)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to write JSON")
	}
	return nil
}
