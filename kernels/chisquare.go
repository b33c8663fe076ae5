package kernels

import (
	"driftwatch/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareResult is the outcome of a goodness-of-fit chi-square test.
type ChiSquareResult struct {
	Statistic float64
	PValue    float64
	DF        int
}

// ChiSquare compares observed against expected frequency vectors of equal
// length. Any non-positive expected value makes the test ill-defined and
// fails with InvalidInput (spec §4.2).
func ChiSquare(observed, expected []float64) (ChiSquareResult, error) {
	if len(observed) == 0 || len(expected) == 0 {
		return ChiSquareResult{}, core.NewInvalidInput("chi-square: empty input")
	}
	if len(observed) != len(expected) {
		return ChiSquareResult{}, core.NewInvalidInput("chi-square: mismatched vector lengths")
	}

	statistic := 0.0
	for i, e := range expected {
		if e <= 0 {
			return ChiSquareResult{}, core.NewInvalidInput("chi-square: non-positive expected frequency")
		}
		diff := observed[i] - e
		statistic += diff * diff / e
	}

	df := len(observed) - 1
	if df < 1 {
		df = 1
	}

	dist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - dist.CDF(statistic)
	if pValue < 0 {
		pValue = 0
	}

	return ChiSquareResult{Statistic: statistic, PValue: pValue, DF: df}, nil
}
