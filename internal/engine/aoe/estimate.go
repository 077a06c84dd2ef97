package aoe

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule names the description pattern that produced an estimate
type Rule string

const (
	RuleNone         Rule = "none"
	RuleCone         Rule = "cone"
	RuleCylinder     Rule = "cylinder"
	RuleDistance     Rule = "distance"
	RuleCube         Rule = "cube"
	RuleLine         Rule = "line"
	RuleRadius       Rule = "radius"
	RuleChainTargets Rule = "chain_targets"
	RuleProjectiles  Rule = "projectiles"
	RuleFixedCount   Rule = "fixed_count"
	RuleEachCreature Rule = "each_creature"
	RuleSingleTarget Rule = "single_target"
)

const (
	eachCreatureCap   = 20
	eachCreatureGuess = 2
)

// Options tune an estimate
type Options struct {
	// ExpectedTargets above 1 overrides the default, capped at the maximum
	ExpectedTargets int
	Clustered       bool
}

// Estimate is the result of EstimateTargets
type Estimate struct {
	Targets        int
	MaxTargets     int
	DefaultTargets int
	Rule           Rule
	// Shape and Size are set when an area template matched
	Shape Shape
	Size  int
}

// IsArea reports whether an area template matched
func (e Estimate) IsArea() bool {
	return e.Shape != ""
}

var (
	conePattern           = regexp.MustCompile(`(\d+)[- ]foot[- ]cone`)
	cylinderAfterPattern  = regexp.MustCompile(`(?s)(\d+)[- ]foot[- ]radius.{0,30}?(?:cylinder|high)`)
	cylinderBeforePattern = regexp.MustCompile(`(?s)(?:cylinder|column).{0,50}?(\d+)[- ]foot[- ]radius`)
	distancePattern       = regexp.MustCompile(`to a distance of (\d+) feet`)
	cubePattern           = regexp.MustCompile(`(\d+)[- ]foot[- ]cube`)
	linePattern           = regexp.MustCompile(`(\d+)[- ]foot[- ]line`)
	lineLongPattern       = regexp.MustCompile(`line[^.]*?(\d+)[- ]feet? long`)
	radiusPattern         = regexp.MustCompile(`(\d+)[- ]foot[- ]radius`)
	pointStrikePattern    = regexp.MustCompile(`(?s)bolt.{0,20}(?:flash|strike|hit)`)
	projectilePattern     = regexp.MustCompile(`\b(two|three|four|five|six)\s+\w*\s*(?:darts?|bolts?|beams?|rays?|missiles?)\b`)
)

var numberWords = map[string]int{
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
}

type match struct {
	rule       Rule
	shape      Shape
	size       int
	maxTargets int
	defaults   int
}

type rule func(desc string, clustered bool) (match, bool)

// Evaluated in order; the first match wins. Specific templates come before
// the generic radius phrase, and fixed counts before "each creature".
var rules = []rule{
	areaRule(RuleCone, ShapeCone, conePattern),
	cylinderRule,
	areaRule(RuleDistance, ShapeEmanation, distancePattern),
	areaRule(RuleCube, ShapeCube, cubePattern),
	lineRule,
	radiusRule,
	phraseRule(RuleChainTargets, 4, "three other targets", "3 other targets"),
	projectileRule,
	phraseRule(RuleFixedCount, 2, "two creatures", "two targets"),
	phraseRule(RuleFixedCount, 3, "three creatures", "three targets"),
	phraseRule(RuleFixedCount, 4, "four creatures", "four targets"),
	eachCreatureRule,
	phraseRule(RuleSingleTarget, 1, "one creature", "one target", "a creature", "a target"),
}

// EstimateTargets reads a description and returns how many creatures the
// effect is expected to hit. Unrecognised text means a single target.
func EstimateTargets(description string, opts Options) Estimate {
	desc := strings.ToLower(description)

	m := match{rule: RuleNone, maxTargets: 1, defaults: 1}
	for _, r := range rules {
		if found, ok := r(desc, opts.Clustered); ok {
			m = found
			break
		}
	}

	targets := m.defaults
	if opts.ExpectedTargets > 1 {
		targets = min(opts.ExpectedTargets, m.maxTargets)
	}

	return Estimate{
		Targets:        targets,
		MaxTargets:     m.maxTargets,
		DefaultTargets: m.defaults,
		Rule:           m.rule,
		Shape:          m.shape,
		Size:           m.size,
	}
}

func areaMatch(name Rule, shape Shape, size int, clustered bool) match {
	squares := Squares(shape, size)
	return match{
		rule:       name,
		shape:      shape,
		size:       size,
		maxTargets: squares,
		defaults:   TargetsInSquares(squares, clustered),
	}
}

func firstInt(re *regexp.Regexp, desc string) (int, bool) {
	m := re.FindStringSubmatch(desc)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func areaRule(name Rule, shape Shape, re *regexp.Regexp) rule {
	return func(desc string, clustered bool) (match, bool) {
		size, ok := firstInt(re, desc)
		if !ok {
			return match{}, false
		}
		return areaMatch(name, shape, size, clustered), true
	}
}

func cylinderRule(desc string, clustered bool) (match, bool) {
	size, ok := firstInt(cylinderAfterPattern, desc)
	if !ok {
		size, ok = firstInt(cylinderBeforePattern, desc)
	}
	if !ok {
		return match{}, false
	}
	return areaMatch(RuleCylinder, ShapeCylinder, size, clustered), true
}

func lineRule(desc string, clustered bool) (match, bool) {
	size, ok := firstInt(linePattern, desc)
	if !ok {
		size, ok = firstInt(lineLongPattern, desc)
	}
	if !ok {
		return match{}, false
	}
	return areaMatch(RuleLine, ShapeLine, size, clustered), true
}

// radiusRule skips bolt-strikes-a-point wording; those spells mention a
// radius for something other than the damage area.
func radiusRule(desc string, clustered bool) (match, bool) {
	if pointStrikePattern.MatchString(desc) {
		return match{}, false
	}
	size, ok := firstInt(radiusPattern, desc)
	if !ok {
		return match{}, false
	}
	return areaMatch(RuleRadius, ShapeSphere, size, clustered), true
}

func projectileRule(desc string, _ bool) (match, bool) {
	m := projectilePattern.FindStringSubmatch(desc)
	if m == nil {
		return match{}, false
	}
	n := numberWords[m[1]]
	return match{rule: RuleProjectiles, maxTargets: n, defaults: n}, true
}

func eachCreatureRule(desc string, _ bool) (match, bool) {
	if !strings.Contains(desc, "each creature") && !strings.Contains(desc, "all creatures") {
		return match{}, false
	}
	return match{rule: RuleEachCreature, maxTargets: eachCreatureCap, defaults: eachCreatureGuess}, true
}

func phraseRule(name Rule, count int, phrases ...string) rule {
	return func(desc string, _ bool) (match, bool) {
		for _, p := range phrases {
			if strings.Contains(desc, p) {
				return match{rule: name, maxTargets: count, defaults: count}, true
			}
		}
		return match{}, false
	}
}
