package tensor

import (
	"math"
	"sync/atomic"
)

// DefaultEpsilon is the initial equality tolerance for floating-point and
// complex elements.
const DefaultEpsilon = 1e-9

var epsilonBits atomic.Uint64

func init() {
	epsilonBits.Store(math.Float64bits(DefaultEpsilon))
}

// Epsilon returns the process-wide tolerance used by Equal and NotEqual.
func Epsilon() float64 {
	return math.Float64frombits(epsilonBits.Load())
}

// SetEpsilon replaces the tolerance and returns the previous value.
// It affects equality comparisons only, never arithmetic.
func SetEpsilon(eps float64) float64 {
	return math.Float64frombits(epsilonBits.Swap(math.Float64bits(eps)))
}
