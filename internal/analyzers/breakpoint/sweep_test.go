package breakpoint_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/breakpoint"
	"github.com/KirkDiggler/rpg-dpr/internal/engine/probability"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

type SweepTestSuite struct {
	suite.Suite
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) TestPowerAttackCoversACRange() {
	table := breakpoint.PowerAttack(dnd5e.FeatGreatWeaponMaster, 7, 10, probability.AttackOptions{})

	s.Equal(dnd5e.FeatGreatWeaponMaster, table.Option)
	s.False(table.Advantage)
	s.Require().Len(table.Rows, breakpoint.MaxAC-breakpoint.MinAC+1)
	s.Equal(breakpoint.MinAC, table.Rows[0].AC)
	s.Equal(breakpoint.MaxAC, table.Rows[len(table.Rows)-1].AC)
}

func (s *SweepTestSuite) TestPowerAttackBreakpoint() {
	table := breakpoint.PowerAttack(dnd5e.FeatGreatWeaponMaster, 7, 10, probability.AttackOptions{})

	// highest AC where the -5/+10 attack beats the normal one
	want := 0
	for ac := breakpoint.MinAC; ac <= breakpoint.MaxAC; ac++ {
		power := probability.ExpectedAttackDamage(2, ac, 20, probability.AttackOptions{})
		normal := probability.ExpectedAttackDamage(7, ac, 10, probability.AttackOptions{})
		if power > normal {
			want = ac
		}
	}

	s.Equal(want, table.Breakpoint)
	s.Equal(18, table.Breakpoint)

	row, ok := table.Row(18)
	s.Require().True(ok)
	s.True(row.Recommended)
	s.InDelta(5.25, row.BaselineDPR, 0.001)
	s.InDelta(5.5, row.ModifiedDPR, 0.001)
	s.InDelta(0.25, row.Difference, 0.001)

	row, ok = table.Row(19)
	s.Require().True(ok)
	s.False(row.Recommended)
	s.Less(row.Difference, 0.0)

	_, ok = table.Row(30)
	s.False(ok)
}

func (s *SweepTestSuite) TestPowerAttackWithAdvantage() {
	table := breakpoint.PowerAttack(dnd5e.FeatSharpshooter, 7, 10, probability.AttackOptions{
		Roll: probability.Roll{Advantage: true},
	})

	s.True(table.Advantage)
	s.Equal(19, table.Breakpoint)
}

func (s *SweepTestSuite) TestPowerAttackNeverWorthIt() {
	// a huge base damage makes the +10 irrelevant next to the -5
	table := breakpoint.PowerAttack(dnd5e.FeatGreatWeaponMaster, 7, 200, probability.AttackOptions{})

	s.Zero(table.Breakpoint)
	for _, row := range table.Rows {
		s.False(row.Recommended, "ac %d", row.AC)
	}
}

func (s *SweepTestSuite) TestRecklessAttack() {
	table := breakpoint.RecklessAttack(7, 10, 10, probability.AttackOptions{})

	s.Equal(breakpoint.OptionRecklessAttack, table.Option)
	s.True(table.Advantage)
	s.Equal(21, table.Breakpoint)

	for _, row := range table.Rows {
		s.InDelta(2.5, row.ExtraDamageTaken, 0.001)
		want := row.AC >= 15 && row.AC <= 21
		s.Equal(want, row.Recommended, "ac %d", row.AC)
	}

	row, _ := table.Row(18)
	s.InDelta(5.25, row.BaselineDPR, 0.001)
	s.InDelta(0.24, row.Difference, 0.01)
}

func (s *SweepTestSuite) TestRecklessAttackCheapEnemies() {
	table := breakpoint.RecklessAttack(7, 10, 0, probability.AttackOptions{})

	// with no cost, advantage always helps
	for _, row := range table.Rows {
		s.True(row.Recommended, "ac %d", row.AC)
	}
	s.Equal(breakpoint.MaxAC, table.Breakpoint)
}
