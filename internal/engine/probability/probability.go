// Package probability models d20 attack rolls and saving throws.
//
// The thresholds deliberately follow the natural 1 and natural 20 rules:
// an attack needing 1 or less still misses on a 1, a save the target can
// only pass on a 20 still fails 95% of the time.
package probability

// Roll describes the d20 conditions of a single check
type Roll struct {
	Advantage    bool
	Disadvantage bool
}

// apply runs the advantage transform. Advantage and disadvantage cancel.
func (r Roll) apply(p float64) float64 {
	switch {
	case r.Advantage && !r.Disadvantage:
		return 1 - (1-p)*(1-p)
	case r.Disadvantage && !r.Advantage:
		return p * p
	default:
		return p
	}
}

// HitProbability is the chance an attack with attackBonus hits targetAC
func HitProbability(attackBonus, targetAC int, roll Roll) float64 {
	needed := targetAC - attackBonus

	var p float64
	switch {
	case needed <= 1:
		p = 0.95
	case needed >= 20:
		p = 0.05
	default:
		p = float64(21-needed) / 20
	}

	return roll.apply(p)
}

// DefaultCritRange is the lowest natural roll that crits without features
const DefaultCritRange = 20

// CritProbability is the chance of a critical hit when any natural roll of
// critRange or higher crits. A critRange of zero or less means 20.
func CritProbability(critRange int, roll Roll) float64 {
	if critRange <= 0 {
		critRange = DefaultCritRange
	}
	return roll.apply(float64(21-critRange) / 20)
}

// SaveFailProbability is the chance a target with saveBonus fails a save
// against dc
func SaveFailProbability(dc, saveBonus int) float64 {
	needed := dc - saveBonus

	switch {
	case needed <= 1:
		return 0.05
	case needed >= 20:
		return 0.95
	default:
		return float64(needed-1) / 20
	}
}

// AttackOptions modify a single weapon or spell attack
type AttackOptions struct {
	Roll
	// CritRange defaults to 20
	CritRange int
	// CritDice is the number of extra damage dice rolled on a crit, valued
	// at 3.5 each
	CritDice        int
	BonusCritDamage float64
}

// ExpectedAttackDamage is the expected damage of one attack. A crit is
// valued at 1.5x base damage plus the extra crit dice.
func ExpectedAttackDamage(attackBonus, targetAC int, baseDamage float64, opts AttackOptions) float64 {
	hit := HitProbability(attackBonus, targetAC, opts.Roll)
	crit := CritProbability(opts.CritRange, opts.Roll)

	critDamage := baseDamage*1.5 + float64(opts.CritDice)*3.5 + opts.BonusCritDamage
	return (hit-crit)*baseDamage + crit*critDamage
}
