// Package aoe estimates how many creatures a spell or effect reaches from
// the wording of its description.
package aoe

import "math"

// Shape is an area of effect template
type Shape string

const (
	ShapeCone     Shape = "cone"
	ShapeSphere   Shape = "sphere"
	ShapeCube     Shape = "cube"
	ShapeLine     Shape = "line"
	ShapeCylinder Shape = "cylinder"
	// ShapeEmanation covers "to a distance of N feet" auras
	ShapeEmanation Shape = "emanation"
)

// Grid squares (5 ft) covered by each template at common sizes. Counts use
// grid distance, so spheres are point-origin squares with the corners
// trimmed rather than Euclidean area.
var squareTable = map[Shape]map[int]int{
	ShapeCone: {
		10: 3,
		15: 6,
		30: 21,
		60: 78,
	},
	ShapeSphere: {
		5:  4,
		10: 16,
		15: 36,
		20: 52,
		30: 120,
		40: 200,
	},
	ShapeCube: {
		5:  1,
		10: 4,
		15: 9,
		20: 16,
		30: 36,
	},
	ShapeLine: {
		30:  6,
		60:  12,
		100: 20,
		120: 24,
	},
	ShapeCylinder: {
		5:  4,
		10: 16,
		20: 52,
		30: 120,
	},
}

// Squares returns the number of grid squares a template of the given size
// covers. Sizes missing from the tables fall back to a formula for the
// shape.
func Squares(shape Shape, sizeFeet int) int {
	if n, ok := squareTable[shape][sizeFeet]; ok {
		return n
	}

	cells := float64(sizeFeet) / 5
	switch shape {
	case ShapeCone:
		// row i of the cone is i squares wide
		n := sizeFeet / 5
		return n * (n + 1) / 2
	case ShapeSphere:
		return int(math.Round(math.Pi * cells * cells))
	case ShapeCube:
		return int(math.Round(cells * cells))
	case ShapeLine:
		return int(math.Round(cells))
	case ShapeCylinder:
		if n, ok := squareTable[ShapeSphere][sizeFeet]; ok {
			return n
		}
		return 4
	case ShapeEmanation:
		if n, ok := squareTable[ShapeSphere][sizeFeet]; ok {
			return n
		}
		return int(math.Round(2 * cells * 2 * cells))
	default:
		return 1
	}
}

const (
	spreadDensity    = 4
	clusteredDensity = 2
)

// TargetsInSquares is the typical number of enemies caught in an area:
// one per four squares, or one per two when enemies are clustered. Never
// less than one.
func TargetsInSquares(squares int, clustered bool) int {
	density := spreadDensity
	if clustered {
		density = clusteredDensity
	}
	return max(1, int(math.Round(float64(squares)/float64(density))))
}
