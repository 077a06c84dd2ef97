package dice

import (
	"regexp"
	"strconv"
)

var scalingDicePattern = regexp.MustCompile(`(\d*)d(\d+)`)

// Scale adds the dice named in scalingRule once per level above baseLevel.
// The added dice merge into the first term with the same die size or are
// appended as a new term. Whenever scaling does not apply the base text is
// returned untouched.
func Scale(baseDamage string, baseLevel, castLevel int, scalingRule string) string {
	levels := castLevel - baseLevel
	if levels <= 0 || baseDamage == "" || scalingRule == "" {
		return baseDamage
	}

	base, err := Parse(baseDamage)
	if err != nil || !base.HasDice() {
		return baseDamage
	}

	m := scalingDicePattern.FindStringSubmatch(scalingRule)
	if m == nil {
		return baseDamage
	}
	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil || count <= 0 || sides <= 0 {
		return baseDamage
	}

	return ScaleExpression(base, sides, count*levels).String()
}

// ScaleExpression returns a copy of expr with extra dice of the given size
func ScaleExpression(expr *Expression, sides, extra int) *Expression {
	scaled := expr.Clone()
	for i := range scaled.Terms {
		if scaled.Terms[i].Sides == sides {
			scaled.Terms[i].Count += extra
			return scaled
		}
	}
	scaled.Terms = append(scaled.Terms, Term{Count: extra, Sides: sides})
	return scaled
}
