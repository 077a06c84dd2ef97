package aoe_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/aoe"
)

type EstimateTestSuite struct {
	suite.Suite
}

func TestEstimateSuite(t *testing.T) {
	suite.Run(t, new(EstimateTestSuite))
}

func (s *EstimateTestSuite) TestRules() {
	testCases := []struct {
		name        string
		description string
		rule        aoe.Rule
		shape       aoe.Shape
		maxTargets  int
		defaults    int
	}{
		{
			name:        "burning hands cone",
			description: "Each creature in a 15-foot cone must make a Dexterity saving throw.",
			rule:        aoe.RuleCone,
			shape:       aoe.ShapeCone,
			maxTargets:  6,
			defaults:    2,
		},
		{
			name:        "moonbeam cylinder",
			description: "A silvery beam of pale light shines down in a 5-foot-radius, 40-foot-high cylinder.",
			rule:        aoe.RuleCylinder,
			shape:       aoe.ShapeCylinder,
			maxTargets:  4,
			defaults:    1,
		},
		{
			name:        "flame strike column",
			description: "A vertical column of divine fire roars down. Each creature in a 10-foot-radius area must save.",
			rule:        aoe.RuleCylinder,
			shape:       aoe.ShapeCylinder,
			maxTargets:  16,
			defaults:    4,
		},
		{
			name:        "spirit guardians",
			description: "You call forth spirits to protect you. They flit around you to a distance of 15 feet for the duration.",
			rule:        aoe.RuleDistance,
			shape:       aoe.ShapeEmanation,
			maxTargets:  36,
			defaults:    9,
		},
		{
			name:        "thunderwave cube",
			description: "A wave of thunderous force sweeps out from you. Each creature in a 15-foot cube originating from you must save.",
			rule:        aoe.RuleCube,
			shape:       aoe.ShapeCube,
			maxTargets:  9,
			defaults:    2,
		},
		{
			name:        "lightning bolt line",
			description: "A stroke of lightning forming a line 100 feet long and 5 feet wide blasts out from you.",
			rule:        aoe.RuleLine,
			shape:       aoe.ShapeLine,
			maxTargets:  20,
			defaults:    5,
		},
		{
			name:        "hyphenated line",
			description: "Each creature in a 60-foot line must make a Dexterity saving throw.",
			rule:        aoe.RuleLine,
			shape:       aoe.ShapeLine,
			maxTargets:  12,
			defaults:    3,
		},
		{
			name:        "bolt striking a point skips radius",
			description: "A bolt of lightning flashes down to a point. Creatures within a 5-foot radius of that point are hit.",
			rule:        aoe.RuleNone,
			maxTargets:  1,
			defaults:    1,
		},
		{
			name:        "chain lightning",
			description: "Three bolts then leap from that target to as many as three other targets.",
			rule:        aoe.RuleChainTargets,
			maxTargets:  4,
			defaults:    4,
		},
		{
			name:        "magic missile",
			description: "You create three glowing darts of magical force.",
			rule:        aoe.RuleProjectiles,
			maxTargets:  3,
			defaults:    3,
		},
		{
			name:        "scorching ray",
			description: "You create three rays of fire and hurl them at targets within range.",
			rule:        aoe.RuleProjectiles,
			maxTargets:  3,
			defaults:    3,
		},
		{
			name:        "two creatures",
			description: "Choose two creatures you can see within range.",
			rule:        aoe.RuleFixedCount,
			maxTargets:  2,
			defaults:    2,
		},
		{
			name:        "each creature",
			description: "Each creature of your choice that you can see must succeed on a saving throw.",
			rule:        aoe.RuleEachCreature,
			maxTargets:  20,
			defaults:    2,
		},
		{
			name:        "single target",
			description: "Make a ranged spell attack against a creature within range.",
			rule:        aoe.RuleSingleTarget,
			maxTargets:  1,
			defaults:    1,
		},
		{
			name:        "nothing recognised",
			description: "You hurl a mote of fire.",
			rule:        aoe.RuleNone,
			maxTargets:  1,
			defaults:    1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			est := aoe.EstimateTargets(tc.description, aoe.Options{})
			s.Assert().Equal(tc.rule, est.Rule)
			s.Assert().Equal(tc.shape, est.Shape)
			s.Assert().Equal(tc.maxTargets, est.MaxTargets)
			s.Assert().Equal(tc.defaults, est.DefaultTargets)
			s.Assert().Equal(tc.defaults, est.Targets)
		})
	}
}

func (s *EstimateTestSuite) TestFireball() {
	est := aoe.EstimateTargets("Each creature in a 20-foot-radius sphere centered on that point", aoe.Options{})

	s.Assert().Equal(aoe.RuleRadius, est.Rule)
	s.Assert().Equal(aoe.ShapeSphere, est.Shape)
	s.Assert().Equal(20, est.Size)
	s.Assert().Equal(52, est.MaxTargets)
	s.Assert().Equal(13, est.DefaultTargets)
	s.Assert().Equal(13, est.Targets)
	s.Assert().True(est.IsArea())
}

func (s *EstimateTestSuite) TestClustered() {
	est := aoe.EstimateTargets("a 20-foot-radius sphere", aoe.Options{Clustered: true})
	s.Assert().Equal(26, est.DefaultTargets)
}

func (s *EstimateTestSuite) TestExpectedTargets() {
	testCases := []struct {
		name     string
		expected int
		targets  int
	}{
		{"one means default", 1, 13},
		{"zero means default", 0, 13},
		{"override below cap", 5, 5},
		{"override capped at max", 80, 52},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			est := aoe.EstimateTargets("a 20-foot-radius sphere", aoe.Options{ExpectedTargets: tc.expected})
			s.Assert().Equal(tc.targets, est.Targets)
			s.Assert().Equal(52, est.MaxTargets)
		})
	}

	single := aoe.EstimateTargets("a creature you can see", aoe.Options{ExpectedTargets: 4})
	s.Assert().Equal(1, single.Targets)
}

func (s *EstimateTestSuite) TestPrecedence() {
	// cone wins over a later radius mention
	est := aoe.EstimateTargets("a 30-foot cone, then a 10-foot-radius sphere", aoe.Options{})
	s.Assert().Equal(aoe.RuleCone, est.Rule)
	s.Assert().Equal(21, est.MaxTargets)

	// an area wins over each creature
	est = aoe.EstimateTargets("each creature in a 10-foot cube", aoe.Options{})
	s.Assert().Equal(aoe.RuleCube, est.Rule)
}
