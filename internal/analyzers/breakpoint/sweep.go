// Package breakpoint finds the target AC thresholds where trading accuracy
// or defense for damage stops paying off, and advises on limited class
// resources.
package breakpoint

import (
	"math"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

// The AC range every table sweeps
const (
	MinAC = 10
	MaxAC = 25
)

const (
	// power attack feats trade -5 to hit for +10 damage
	powerAttackPenalty = 5
	powerAttackDamage  = 10

	// enemies with advantage hit roughly a quarter more often
	enemyAdvantageFactor = 0.25

	// OptionRecklessAttack names the reckless attack table
	OptionRecklessAttack = "Reckless Attack"
)

// PowerAttack sweeps AC comparing a normal attack with the -5/+10 trade of
// Great Weapon Master or Sharpshooter. Advantage in opts applies to both.
func PowerAttack(feat string, attackBonus int, baseDamage float64, opts probability.AttackOptions) *dnd5e.BreakpointTable {
	table := newTable(feat, opts.Roll)

	for ac := MinAC; ac <= MaxAC; ac++ {
		normal := probability.ExpectedAttackDamage(attackBonus, ac, baseDamage, opts)
		power := probability.ExpectedAttackDamage(
			attackBonus-powerAttackPenalty, ac, baseDamage+powerAttackDamage, opts)

		table.Rows = append(table.Rows, dnd5e.BreakpointRow{
			AC:          ac,
			BaselineDPR: round(normal, 2),
			ModifiedDPR: round(power, 2),
			Recommended: power > normal,
			Difference:  round(power-normal, 2),
		})
	}

	table.Breakpoint = lastRecommended(table.Rows)
	return table
}

// RecklessAttack sweeps AC comparing a normal attack with one made at
// advantage, charging the damage enemies gain from attacking at advantage
// against the reckless attacker
func RecklessAttack(attackBonus int, baseDamage, enemyDamage float64, opts probability.AttackOptions) *dnd5e.BreakpointTable {
	table := newTable(OptionRecklessAttack, probability.Roll{Advantage: true})

	normalOpts, recklessOpts := opts, opts
	normalOpts.Roll = probability.Roll{}
	recklessOpts.Roll = probability.Roll{Advantage: true}

	extra := enemyDamage * enemyAdvantageFactor

	for ac := MinAC; ac <= MaxAC; ac++ {
		normal := probability.ExpectedAttackDamage(attackBonus, ac, baseDamage, normalOpts)
		reckless := probability.ExpectedAttackDamage(attackBonus, ac, baseDamage, recklessOpts)
		net := reckless - normal - extra

		table.Rows = append(table.Rows, dnd5e.BreakpointRow{
			AC:               ac,
			BaselineDPR:      round(normal, 2),
			ModifiedDPR:      round(reckless, 2),
			Recommended:      net > 0,
			Difference:       round(net, 2),
			ExtraDamageTaken: round(extra, 2),
		})
	}

	table.Breakpoint = lastRecommended(table.Rows)
	return table
}

func newTable(option string, roll probability.Roll) *dnd5e.BreakpointTable {
	return &dnd5e.BreakpointTable{
		Option:    option,
		Advantage: roll.Advantage && !roll.Disadvantage,
		Rows:      make([]dnd5e.BreakpointRow, 0, MaxAC-MinAC+1),
	}
}

func lastRecommended(rows []dnd5e.BreakpointRow) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Recommended {
			return rows[i].AC
		}
	}
	return 0
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
