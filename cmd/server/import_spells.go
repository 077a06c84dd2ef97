package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/analysis"
	redisclient "github.com/KirkDiggler/rpg-dpr/internal/redis"
)

var importFlags struct {
	level      int
	class      string
	damageOnly bool
}

var importSpellsCmd = &cobra.Command{
	Use:   "import-spells",
	Short: "Copy SRD spells into the spell store",
	Long: `Fetch spells from the D&D 5e SRD API and store them in Redis. Examples:

  import-spells
  import-spells --class wizard --damage-only
  import-spells --level 3`,
	RunE: runImportSpells,
}

func init() {
	f := importSpellsCmd.Flags()
	f.IntVar(&importFlags.level, "level", -1, "only import this spell level (0 for cantrips)")
	f.StringVar(&importFlags.class, "class", "", "only import this class's spells")
	f.BoolVar(&importFlags.damageOnly, "damage-only", false, "skip spells without a damage roll")
}

func runImportSpells(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := newServices(ctx, servicesOptions{withSRD: true})
	if err != nil {
		return err
	}
	defer svc.Close(context.Background())

	if err := redisclient.Ping(ctx, svc.redis); err != nil {
		return err
	}

	input := &analysis.ImportSpellsInput{
		Class:      importFlags.class,
		DamageOnly: importFlags.damageOnly,
	}
	if importFlags.level >= 0 {
		level := importFlags.level
		input.Level = &level
	}

	out, err := svc.analysis.ImportSpells(ctx, input)
	if err != nil {
		return err
	}
	if len(out.Failed) > 0 {
		slog.Warn("Some spells could not be imported", "keys", out.Failed)
	}

	return writeJSON(cmd.OutOrStdout(), out)
}
