package dice

import (
	"sort"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// TermRoll holds the faces rolled for one term
type TermRoll struct {
	Term    Term
	Rolls   []int
	Kept    []int
	Dropped []int
}

// RollResult is one random evaluation of an expression
type RollResult struct {
	Terms    []TermRoll
	Modifier int
	Total    int
}

// Roll evaluates expr once using roller. A nil roller uses the toolkit's
// default roller. Analysis never calls this; it exists for roll sessions.
func Roll(expr *Expression, roller toolkitdice.Roller) (*RollResult, error) {
	if expr == nil {
		return nil, errors.InvalidArgument("expression is required")
	}
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	result := &RollResult{
		Modifier: expr.Modifier,
		Total:    expr.Modifier,
	}

	for _, t := range expr.Terms {
		rolls, err := roller.RollN(t.Count, t.Sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", t)
		}

		tr := TermRoll{Term: t, Rolls: rolls, Kept: rolls}
		if t.Keep != nil {
			sorted := append([]int(nil), rolls...)
			sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
			if t.Keep.Mode == KeepHighest {
				tr.Kept = sorted[:t.Keep.Count]
				tr.Dropped = sorted[t.Keep.Count:]
			} else {
				tr.Kept = sorted[len(sorted)-t.Keep.Count:]
				tr.Dropped = sorted[:len(sorted)-t.Keep.Count]
			}
		}

		for _, v := range tr.Kept {
			result.Total += v
		}
		result.Terms = append(result.Terms, tr)
	}

	return result, nil
}

// Simulate returns only the total of one Roll
func Simulate(expr *Expression, roller toolkitdice.Roller) (int, error) {
	result, err := Roll(expr, roller)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
