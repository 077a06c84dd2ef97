// Package dice parses damage expressions such as "8d6", "1d10+2d6+3" or
// "4d6kh3" and computes their average, minimum and maximum.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// KeepMode selects which dice of a term count toward the total
type KeepMode string

const (
	KeepHighest KeepMode = "highest"
	KeepLowest  KeepMode = "lowest"
)

// Keep is a keep-highest/keep-lowest rule on a term
type Keep struct {
	Mode  KeepMode
	Count int
}

// Term is one group of identical dice, e.g. 4d6kh3
type Term struct {
	Count int
	Sides int
	Keep  *Keep
}

// Kept returns the number of dice that contribute to the total
func (t Term) Kept() int {
	if t.Keep != nil {
		return t.Keep.Count
	}
	return t.Count
}

// String renders the term as NdS[khN]
func (t Term) String() string {
	s := fmt.Sprintf("%dd%d", t.Count, t.Sides)
	if t.Keep != nil {
		mode := "h"
		if t.Keep.Mode == KeepLowest {
			mode = "l"
		}
		s += fmt.Sprintf("k%s%d", mode, t.Keep.Count)
	}
	return s
}

// Expression is a parsed dice expression: dice terms plus one flat modifier.
// Callers treat it as immutable; use Clone before changing terms.
type Expression struct {
	Terms    []Term
	Modifier int
	Original string
}

// tokenPattern matches either a dice term or a signed flat number. Go's
// leftmost-first alternation prefers the dice branch, so "+12d6" is a term
// and never the modifier "+1".
var tokenPattern = regexp.MustCompile(`([+-]?)(\d*)d(\d+)(?:k([hl])(\d+))?|([+-]?)(\d+)`)

// Parse turns text into an Expression. Whitespace and case are ignored and
// characters that do not form a term are skipped, so "8d6 fire" parses.
// An unsigned number counts as a modifier only at the start ("5+2d6").
// Input with no dice and a zero modifier is rejected with an
// InvalidArgument error.
func Parse(text string) (*Expression, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), ""))
	if normalized == "" {
		return nil, errors.InvalidArgument("dice expression is empty")
	}

	expr := &Expression{Original: text}

	for _, loc := range tokenPattern.FindAllStringSubmatchIndex(normalized, -1) {
		group := func(i int) string {
			if loc[2*i] < 0 {
				return ""
			}
			return normalized[loc[2*i]:loc[2*i+1]]
		}

		if group(3) != "" {
			term, ok, err := parseTerm(group(2), group(3), group(4), group(5))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid dice expression %q", text)
			}
			if ok {
				expr.Terms = append(expr.Terms, term)
			}
			continue
		}

		sign, digits := group(6), group(7)
		if sign == "" && loc[0] != 0 {
			continue
		}
		value, err := strconv.Atoi(digits)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid modifier %q in dice expression %q", digits, text)
		}
		if sign == "-" {
			value = -value
		}
		expr.Modifier += value
	}

	if len(expr.Terms) == 0 && expr.Modifier == 0 {
		return nil, errors.InvalidArgumentf("no dice or modifier in %q", text)
	}

	return expr, nil
}

// MustParse is Parse for known-good literals; it panics on error
func MustParse(text string) *Expression {
	expr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return expr
}

func parseTerm(count, sides, keepMode, keepCount string) (Term, bool, error) {
	n := 1
	if count != "" {
		v, err := strconv.Atoi(count)
		if err != nil {
			return Term{}, false, errors.InvalidArgumentf("invalid dice count %q", count)
		}
		n = v
	}

	s, err := strconv.Atoi(sides)
	if err != nil {
		return Term{}, false, errors.InvalidArgumentf("invalid die size %q", sides)
	}

	// 0d6 and 1d0 contribute nothing
	if n <= 0 || s <= 0 {
		return Term{}, false, nil
	}

	term := Term{Count: n, Sides: s}
	if keepMode != "" {
		k, err := strconv.Atoi(keepCount)
		if err != nil {
			return Term{}, false, errors.InvalidArgumentf("invalid keep count %q", keepCount)
		}
		k = max(1, min(k, n))
		mode := KeepHighest
		if keepMode == "l" {
			mode = KeepLowest
		}
		term.Keep = &Keep{Mode: mode, Count: k}
	}

	return term, true, nil
}

// Clone returns a deep copy
func (e *Expression) Clone() *Expression {
	if e == nil {
		return nil
	}

	out := &Expression{
		Terms:    make([]Term, len(e.Terms)),
		Modifier: e.Modifier,
		Original: e.Original,
	}
	for i, t := range e.Terms {
		out.Terms[i] = t
		if t.Keep != nil {
			keep := *t.Keep
			out.Terms[i].Keep = &keep
		}
	}
	return out
}

// HasDice reports whether the expression has at least one dice term
func (e *Expression) HasDice() bool {
	return e != nil && len(e.Terms) > 0
}

// String renders the canonical form: terms joined by "+" then a signed
// modifier. A dice-free expression renders as its bare modifier.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	if len(e.Terms) == 0 {
		return strconv.Itoa(e.Modifier)
	}

	parts := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		parts[i] = t.String()
	}
	out := strings.Join(parts, "+")

	switch {
	case e.Modifier > 0:
		out += "+" + strconv.Itoa(e.Modifier)
	case e.Modifier < 0:
		out += strconv.Itoa(e.Modifier)
	}
	return out
}

// Format is the canonical rendering of expr, empty for nil
func Format(expr *Expression) string {
	return expr.String()
}
