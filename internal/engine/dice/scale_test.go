package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
)

func TestScale(t *testing.T) {
	testCases := []struct {
		name      string
		base      string
		baseLevel int
		castLevel int
		rule      string
		expected  string
	}{
		{
			name:      "merges into same die",
			base:      "8d6",
			baseLevel: 3,
			castLevel: 5,
			rule:      "the damage increases by 1d6 for each slot level above 3rd",
			expected:  "10d6",
		},
		{
			name:      "appends new die size",
			base:      "2d8+1d6",
			baseLevel: 1,
			castLevel: 3,
			rule:      "2d10 per slot",
			expected:  "2d8+1d6+4d10",
		},
		{
			name:      "keeps modifier",
			base:      "3d4+3",
			baseLevel: 1,
			castLevel: 2,
			rule:      "one more dart, d4",
			expected:  "4d4+3",
		},
		{
			name:      "same level unchanged",
			base:      "8d6",
			baseLevel: 3,
			castLevel: 3,
			rule:      "1d6",
			expected:  "8d6",
		},
		{
			name:      "lower level unchanged",
			base:      "8d6",
			baseLevel: 3,
			castLevel: 1,
			rule:      "1d6",
			expected:  "8d6",
		},
		{
			name:      "rule without dice unchanged",
			base:      "3d8",
			baseLevel: 2,
			castLevel: 4,
			rule:      "you can target one additional creature",
			expected:  "3d8",
		},
		{
			name:      "no dice in base unchanged",
			base:      "10",
			baseLevel: 1,
			castLevel: 4,
			rule:      "1d6",
			expected:  "10",
		},
		{
			name:      "empty rule unchanged",
			base:      "1d10",
			baseLevel: 0,
			castLevel: 5,
			expected:  "1d10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dice.Scale(tc.base, tc.baseLevel, tc.castLevel, tc.rule))
		})
	}
}

func TestScaleExpressionDoesNotMutate(t *testing.T) {
	base := dice.MustParse("8d6")
	scaled := dice.ScaleExpression(base, 6, 2)

	assert.Equal(t, 8, base.Terms[0].Count)
	assert.Equal(t, 10, scaled.Terms[0].Count)
}
