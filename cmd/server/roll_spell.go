package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dpr/internal/orchestrators/dice"
)

var rollSpellFlags struct {
	entityID string
	context  string
	slot     int
	times    int
}

var rollSpellCmd = &cobra.Command{
	Use:   "roll-spell [spell-key]",
	Short: "Roll a stored spell's damage into a dice session",
	Long: `Roll the damage of a spell from the store and record it. Examples:

  roll-spell fireball --entity char-123
  roll-spell fireball --entity char-123 --slot 5 --times 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRollSpell,
}

func init() {
	f := rollSpellCmd.Flags()
	f.StringVar(&rollSpellFlags.entityID, "entity", "", "entity the session belongs to")
	f.StringVar(&rollSpellFlags.context, "context", "", "session context (defaults to spell:<key>)")
	f.IntVar(&rollSpellFlags.slot, "slot", 0, "slot level to cast with")
	f.IntVar(&rollSpellFlags.times, "times", 1, "number of targets to roll for")
	_ = rollSpellCmd.MarkFlagRequired("entity") // nolint:errcheck // flag is defined above
}

func runRollSpell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := newServices(ctx, servicesOptions{})
	if err != nil {
		return err
	}
	defer svc.Close(context.Background())

	out, err := svc.dice.RollSpell(ctx, &dice.RollSpellInput{
		EntityID:  rollSpellFlags.entityID,
		Context:   rollSpellFlags.context,
		SpellKey:  args[0],
		SlotLevel: rollSpellFlags.slot,
		Times:     rollSpellFlags.times,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Rolled %s\n", out.Notation)
	for _, roll := range out.Rolls {
		fmt.Fprintf(w, "  %s: %v = %d (expected %.1f)\n", roll.Description, roll.Dice, roll.Total, roll.Expected)
	}
	fmt.Fprintf(w, "Session %s now holds %d rolls\n", out.Session.Context, len(out.Session.Rolls))
	return nil
}
