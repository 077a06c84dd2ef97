package aoe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/aoe"
)

func TestSquares(t *testing.T) {
	testCases := []struct {
		name     string
		shape    aoe.Shape
		size     int
		expected int
	}{
		{"cone table", aoe.ShapeCone, 15, 6},
		{"cone table 60", aoe.ShapeCone, 60, 78},
		{"cone triangular fallback", aoe.ShapeCone, 20, 10},
		{"sphere table", aoe.ShapeSphere, 20, 52},
		{"sphere fallback", aoe.ShapeSphere, 25, 79},
		{"cube table", aoe.ShapeCube, 15, 9},
		{"cube fallback", aoe.ShapeCube, 40, 64},
		{"line table", aoe.ShapeLine, 100, 20},
		{"line fallback", aoe.ShapeLine, 90, 18},
		{"cylinder table", aoe.ShapeCylinder, 10, 16},
		{"cylinder falls back to sphere", aoe.ShapeCylinder, 40, 200},
		{"cylinder unknown", aoe.ShapeCylinder, 60, 4},
		{"emanation uses sphere table", aoe.ShapeEmanation, 15, 36},
		{"emanation fallback", aoe.ShapeEmanation, 25, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, aoe.Squares(tc.shape, tc.size))
		})
	}
}

func TestTargetsInSquares(t *testing.T) {
	assert.Equal(t, 13, aoe.TargetsInSquares(52, false))
	assert.Equal(t, 26, aoe.TargetsInSquares(52, true))
	assert.Equal(t, 1, aoe.TargetsInSquares(1, false))
	assert.Equal(t, 1, aoe.TargetsInSquares(4, false))
	// 6/4 rounds half away from zero
	assert.Equal(t, 2, aoe.TargetsInSquares(6, false))
}
