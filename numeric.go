package softbody

import (
	"math"

	"golang.org/x/exp/constraints"
)

const closeEnough = 0.001

// CloseToEqual reports whether a and b differ by less than 0.001.
func CloseToEqual[F constraints.Float](a, b F) bool {
	return math.Abs(float64(a-b)) < closeEnough
}

func negativeDiff[F constraints.Float](a, b F) bool {
	return a-b < 0
}

func allEqual(conditions ...bool) bool {
	if len(conditions) == 0 {
		return false
	}
	for _, c := range conditions {
		if c != conditions[0] {
			return false
		}
	}
	return true
}
