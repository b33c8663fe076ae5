package kernels

import "driftwatch/domain/core"

// Wasserstein1 computes the 1-Wasserstein (earth-mover) distance between two
// 1-D samples as the integral of |F1 - F2| over the union of sample supports
// (spec §4.2).
func Wasserstein1(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, core.NewInvalidInput("wasserstein: empty input")
	}

	sx := sortedCopy(x)
	sy := sortedCopy(y)
	support := unionSupport(x, y)
	if len(support) < 2 {
		return 0, nil
	}

	fx := ecdf(sx, support)
	fy := ecdf(sy, support)

	distance := 0.0
	for i := 0; i < len(support)-1; i++ {
		width := support[i+1] - support[i]
		gap := fx[i] - fy[i]
		if gap < 0 {
			gap = -gap
		}
		distance += gap * width
	}
	return distance, nil
}
