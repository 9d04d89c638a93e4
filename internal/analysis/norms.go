package analysis

import (
	"math"

	"github.com/san-kum/advect/internal/fv"
)

// Norms holds the discrete error norms of a numerical state against a
// reference, weighted by cell size where the continuous norm demands it:
// L1 = dx*sum|e|, L2 = sqrt(dx*sum e^2), Linf = max|e|.
type Norms struct {
	L1, L2, LInf float64
}

func ErrorNorms(numeric, exact fv.State, dx float64) Norms {
	n := len(numeric)
	if len(exact) < n {
		n = len(exact)
	}

	var sumAbs, sumSq, maxAbs float64
	for i := 0; i < n; i++ {
		e := math.Abs(numeric[i] - exact[i])
		sumAbs += e
		sumSq += e * e
		if e > maxAbs {
			maxAbs = e
		}
	}

	return Norms{
		L1:   sumAbs * dx,
		L2:   math.Sqrt(sumSq * dx),
		LInf: maxAbs,
	}
}

// ObservedOrder estimates the convergence order from errors on two grids
// whose spacing differs by the given refinement ratio (> 1).
func ObservedOrder(coarseErr, fineErr, ratio float64) float64 {
	if coarseErr <= 0 || fineErr <= 0 || ratio <= 1 {
		return math.NaN()
	}
	return math.Log(coarseErr/fineErr) / math.Log(ratio)
}
