// Package main is the entry point for the rpg-dpr server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dpr/cmd/server/client"
	"github.com/KirkDiggler/rpg-dpr/internal/config"
)

// cfg is loaded from the environment before any command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rpg-dpr",
	Short: "D&D 5e damage per round calculator",
	Long: `rpg-dpr computes expected damage per round for spells and martial
options, finds the armor class breakpoints for power attacks and serves
dice sessions over gRPC.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(cfg.Logger())
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(breakpointsCmd)
	rootCmd.AddCommand(importSpellsCmd)
	rootCmd.AddCommand(rollSpellCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
