package probability_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
)

type ProbabilityTestSuite struct {
	suite.Suite
}

func TestProbabilitySuite(t *testing.T) {
	suite.Run(t, new(ProbabilityTestSuite))
}

func (s *ProbabilityTestSuite) TestHitProbability() {
	testCases := []struct {
		name     string
		bonus    int
		ac       int
		roll     probability.Roll
		expected float64
	}{
		{"needs 8", 7, 15, probability.Roll{}, 0.65},
		{"needs exactly 1 floors at 95%", 14, 15, probability.Roll{}, 0.95},
		{"trivial target floors at 95%", 20, 5, probability.Roll{}, 0.95},
		{"needs 20", 0, 20, probability.Roll{}, 0.05},
		{"impossible target still 5%", 0, 30, probability.Roll{}, 0.05},
		{"needs 2", 13, 15, probability.Roll{}, 0.95},
		{"needs 19", 0, 19, probability.Roll{}, 0.10},
		{"advantage", 7, 15, probability.Roll{Advantage: true}, 1 - 0.35*0.35},
		{"disadvantage", 7, 15, probability.Roll{Disadvantage: true}, 0.65 * 0.65},
		{"both cancel", 7, 15, probability.Roll{Advantage: true, Disadvantage: true}, 0.65},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().InDelta(tc.expected, probability.HitProbability(tc.bonus, tc.ac, tc.roll), 1e-9)
		})
	}
}

func (s *ProbabilityTestSuite) TestHitProbabilityBounds() {
	for bonus := -5; bonus <= 20; bonus++ {
		for ac := 5; ac <= 30; ac++ {
			p := probability.HitProbability(bonus, ac, probability.Roll{})
			s.Assert().GreaterOrEqual(p, 0.05)
			s.Assert().LessOrEqual(p, 0.95)

			adv := probability.HitProbability(bonus, ac, probability.Roll{Advantage: true})
			dis := probability.HitProbability(bonus, ac, probability.Roll{Disadvantage: true})
			s.Assert().GreaterOrEqual(adv, p)
			s.Assert().LessOrEqual(dis, p)
		}
	}
}

func (s *ProbabilityTestSuite) TestHitProbabilityMonotonic() {
	prev := 1.0
	for ac := 5; ac <= 30; ac++ {
		p := probability.HitProbability(5, ac, probability.Roll{})
		s.Assert().LessOrEqual(p, prev)
		prev = p
	}
}

func (s *ProbabilityTestSuite) TestCritProbability() {
	s.Assert().InDelta(0.05, probability.CritProbability(20, probability.Roll{}), 1e-9)
	s.Assert().InDelta(0.05, probability.CritProbability(0, probability.Roll{}), 1e-9)
	s.Assert().InDelta(0.10, probability.CritProbability(19, probability.Roll{}), 1e-9)
	s.Assert().InDelta(0.0975, probability.CritProbability(20, probability.Roll{Advantage: true}), 1e-9)
	s.Assert().InDelta(0.0025, probability.CritProbability(20, probability.Roll{Disadvantage: true}), 1e-9)
}

func (s *ProbabilityTestSuite) TestSaveFailProbability() {
	testCases := []struct {
		name     string
		dc       int
		bonus    int
		expected float64
	}{
		{"typical", 15, 3, 0.55},
		{"needs 1 only nat 1 fails", 5, 4, 0.05},
		{"huge bonus", 10, 15, 0.05},
		{"needs 20 only nat 20 passes", 20, 0, 0.95},
		{"beyond 20", 25, 0, 0.95},
		{"needs 2", 10, 8, 0.05},
		{"needs 19", 19, 0, 0.90},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().InDelta(tc.expected, probability.SaveFailProbability(tc.dc, tc.bonus), 1e-9)
		})
	}
}

func (s *ProbabilityTestSuite) TestSaveFailProbabilityMonotonic() {
	for _, dc := range []int{8, 13, 15, 19, 24} {
		prev := 1.0
		for bonus := -10; bonus <= 25; bonus++ {
			p := probability.SaveFailProbability(dc, bonus)
			s.Assert().LessOrEqual(p, prev, "dc %d bonus %d", dc, bonus)
			s.Assert().GreaterOrEqual(p, 0.05)
			s.Assert().LessOrEqual(p, 0.95)
			prev = p
		}
	}
}

func (s *ProbabilityTestSuite) TestExpectedAttackDamage() {
	// +7 vs AC 15 for 10 damage: hit 0.65, crit 0.05
	// (0.60 * 10) + (0.05 * 15) = 6.75
	s.Assert().InDelta(6.75,
		probability.ExpectedAttackDamage(7, 15, 10, probability.AttackOptions{}), 1e-9)

	// two extra crit dice add 0.05 * 7
	s.Assert().InDelta(7.1,
		probability.ExpectedAttackDamage(7, 15, 10, probability.AttackOptions{CritDice: 2}), 1e-9)

	withAdv := probability.ExpectedAttackDamage(7, 15, 10, probability.AttackOptions{
		Roll: probability.Roll{Advantage: true},
	})
	s.Assert().Greater(withAdv, 6.75)
}
