package dice_test

import (
	"fmt"
	"testing"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
)

// sequenceRoller hands out faces in order
type sequenceRoller struct {
	faces []int
	err   error
}

func (r *sequenceRoller) Roll(size int) (int, error) {
	faces, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return faces[0], nil
}

func (r *sequenceRoller) RollN(count, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.faces[:count]
	r.faces = r.faces[count:]
	return out, nil
}

var _ toolkitdice.Roller = (*sequenceRoller)(nil)

func TestRollPlain(t *testing.T) {
	roller := &sequenceRoller{faces: []int{3, 5, 2}}

	result, err := dice.Roll(dice.MustParse("2d6+1d4+2"), roller)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
	require.Len(t, result.Terms, 2)
	assert.Equal(t, []int{3, 5}, result.Terms[0].Kept)
	assert.Empty(t, result.Terms[0].Dropped)
}

func TestRollKeepHighest(t *testing.T) {
	roller := &sequenceRoller{faces: []int{2, 6, 1, 4}}

	result, err := dice.Roll(dice.MustParse("4d6kh3"), roller)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, []int{2, 6, 1, 4}, result.Terms[0].Rolls)
	assert.Equal(t, []int{6, 4, 2}, result.Terms[0].Kept)
	assert.Equal(t, []int{1}, result.Terms[0].Dropped)
}

func TestRollKeepLowest(t *testing.T) {
	roller := &sequenceRoller{faces: []int{17, 4}}

	total, err := dice.Simulate(dice.MustParse("2d20kl1+3"), roller)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestRollErrors(t *testing.T) {
	_, err := dice.Roll(nil, &sequenceRoller{})
	assert.Error(t, err)

	_, err = dice.Roll(dice.MustParse("1d6"), &sequenceRoller{err: fmt.Errorf("entropy exhausted")})
	assert.Error(t, err)
}

func TestRollWithinBounds(t *testing.T) {
	expr := dice.MustParse("4d6kh3+2")
	for i := 0; i < 200; i++ {
		total, err := dice.Simulate(expr, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, expr.Minimum())
		assert.LessOrEqual(t, total, expr.Maximum())
	}
}
