package breakpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dpr/internal/analyzers/breakpoint"
)

func TestStunningStrike(t *testing.T) {
	testCases := []struct {
		name      string
		conSave   int
		ki        int
		fail      int
		recommend bool
		reasoning string
	}{
		{
			name:      "weak save",
			conSave:   0,
			ki:        5,
			fail:      65,
			recommend: true,
			reasoning: "Good chance - worth attempting",
		},
		{
			name:      "even odds",
			conSave:   3,
			ki:        5,
			fail:      50,
			recommend: true,
			reasoning: "Good chance - worth attempting",
		},
		{
			name:      "strong save",
			conSave:   6,
			ki:        5,
			fail:      35,
			recommend: true,
			reasoning: "Moderate chance - use if target is high priority",
		},
		{
			name:      "strong save and no ki left",
			conSave:   6,
			ki:        0,
			fail:      35,
			recommend: false,
			reasoning: "Moderate chance - use if target is high priority",
		},
		{
			name:      "nearly impossible",
			conSave:   12,
			ki:        5,
			fail:      5,
			recommend: false,
			reasoning: "Low success chance - save your ki",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := breakpoint.StunningStrike(5, 3, tc.conSave, tc.ki)

			assert.Equal(t, 14, result.DC)
			assert.Equal(t, tc.conSave, result.TargetSaveBonus)
			assert.Equal(t, tc.fail, result.FailProbability)
			assert.Equal(t, tc.recommend, result.RecommendUse)
			assert.Equal(t, tc.reasoning, result.Reasoning)
		})
	}
}

func TestStunningStrikeDCScalesWithLevel(t *testing.T) {
	assert.Equal(t, 13, breakpoint.StunningStrike(1, 3, 0, 5).DC)
	assert.Equal(t, 14, breakpoint.StunningStrike(8, 3, 0, 5).DC)
	assert.Equal(t, 15, breakpoint.StunningStrike(9, 3, 0, 5).DC)
	assert.Equal(t, 17, breakpoint.StunningStrike(20, 3, 0, 5).DC)
}

func TestDivineSmiteOnCrit(t *testing.T) {
	result := breakpoint.DivineSmite(5, []int{2, 2}, 50, 100, true)

	assert.True(t, result.IsCrit)
	require.Len(t, result.Options, 2)
	assert.InDelta(t, 18.0, result.Options[0].ExpectedDamage, 0.001)
	assert.InDelta(t, 27.0, result.Options[1].ExpectedDamage, 0.001)
	for _, opt := range result.Options {
		assert.Equal(t, "Always smite on crits!", opt.Recommendation)
		assert.False(t, opt.CanKill)
	}
	assert.Equal(t, "SMITE! Crits double your smite dice.", result.GeneralAdvice)
}

func TestDivineSmiteOnHit(t *testing.T) {
	result := breakpoint.DivineSmite(5, []int{2, 2}, 50, 100, false)

	require.Len(t, result.Options, 2)
	assert.Equal(t, 1, result.Options[0].SlotLevel)
	assert.InDelta(t, 9.0, result.Options[0].ExpectedDamage, 0.001)
	assert.InDelta(t, 13.5, result.Options[1].ExpectedDamage, 0.001)
	assert.Equal(t, "Smite if target is high priority", result.Options[0].Recommendation)
	assert.Equal(t, "Consider saving slots for crits unless this target must die now", result.GeneralAdvice)
}

func TestDivineSmiteScarceSlotsAndKills(t *testing.T) {
	result := breakpoint.DivineSmite(9, []int{1, 0, 1, 0, 3}, 10, 100, false)

	// empty levels are skipped and fifth level slots have no smite entry
	require.Len(t, result.Options, 2)
	assert.Equal(t, 1, result.Options[0].SlotLevel)
	assert.False(t, result.Options[0].CanKill)
	assert.Equal(t, "Conserve slots - target isn't critical", result.Options[0].Recommendation)

	assert.Equal(t, 3, result.Options[1].SlotLevel)
	assert.True(t, result.Options[1].CanKill)
	assert.Equal(t, "Smite to secure the kill", result.Options[1].Recommendation)

	assert.Equal(t, "Target is low - smite to finish them", result.GeneralAdvice)
}

func TestDivineSmiteNoSlots(t *testing.T) {
	result := breakpoint.DivineSmite(5, nil, 50, 100, false)

	assert.Empty(t, result.Options)
	assert.NotEmpty(t, result.GeneralAdvice)
}

func TestSpellSlotPacing(t *testing.T) {
	testCases := []struct {
		name       string
		slots      []int
		encounters int
		total      int
		perEnc     float64
		first      string
	}{
		{
			name:       "plenty",
			slots:      []int{4, 3, 2},
			encounters: 4,
			total:      9,
			perEnc:     2.3,
			first:      "You have slots to spare - don't be afraid to use them",
		},
		{
			name:       "one per fight",
			slots:      []int{4, 2},
			encounters: 4,
			total:      6,
			perEnc:     1.5,
			first:      "Use one leveled spell per encounter on average",
		},
		{
			name:       "scarce",
			slots:      []int{2},
			encounters: 4,
			total:      2,
			perEnc:     0.5,
			first:      "Conserve heavily - rely on cantrips for most encounters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := breakpoint.SpellSlotPacing(tc.slots, tc.encounters)

			assert.Equal(t, tc.total, result.TotalSlots)
			assert.Equal(t, tc.encounters, result.ExpectedEncounters)
			assert.InDelta(t, tc.perEnc, result.SlotsPerEncounter, 0.001)
			assert.Equal(t, 1, result.ShortRestsExpected)
			require.Len(t, result.Recommendations, 2)
			assert.Equal(t, tc.first, result.Recommendations[0])
		})
	}
}

func TestSpellSlotPacingZeroEncounters(t *testing.T) {
	result := breakpoint.SpellSlotPacing([]int{3}, 0)

	assert.Equal(t, 1, result.ExpectedEncounters)
	assert.InDelta(t, 3.0, result.SlotsPerEncounter, 0.001)
	assert.Equal(t, 0, result.ShortRestsExpected)
}
