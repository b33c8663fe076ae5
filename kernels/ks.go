package kernels

import (
	"math"

	"driftwatch/domain/core"
)

// KSResult is the outcome of a Kolmogorov–Smirnov two-sample test.
type KSResult struct {
	Statistic     float64
	PValue        float64
	CriticalValue float64
	Significant   bool
}

// ksCriticalCoefficient maps the documented alpha levels to their c(alpha)
// coefficients (spec §4.2). Callers outside this set fall back to 0.05.
var ksCriticalCoefficient = map[float64]float64{
	0.01: 1.63,
	0.05: 1.36,
	0.10: 1.22,
}

// KSTwoSample computes the two-sample Kolmogorov–Smirnov statistic D, its
// asymptotic p-value and the critical value for the given alpha.
func KSTwoSample(x, y []float64, alpha float64) (KSResult, error) {
	if len(x) == 0 || len(y) == 0 {
		return KSResult{}, core.NewInvalidInput("ks two-sample: empty input")
	}

	sx := sortedCopy(x)
	sy := sortedCopy(y)
	support := unionSupport(x, y)

	fx := ecdf(sx, support)
	fy := ecdf(sy, support)

	d := 0.0
	for i := range support {
		if diff := math.Abs(fx[i] - fy[i]); diff > d {
			d = diff
		}
	}

	n1, n2 := float64(len(x)), float64(len(y))
	lambda := d * math.Sqrt(n1*n2/(n1+n2))
	pValue := kolmogorovAsymptoticP(lambda)

	coeff, ok := ksCriticalCoefficient[alpha]
	if !ok {
		coeff = ksCriticalCoefficient[0.05]
	}
	critical := coeff * math.Sqrt((n1+n2)/(n1*n2))

	return KSResult{
		Statistic:     d,
		PValue:        pValue,
		CriticalValue: critical,
		Significant:   d > critical,
	}, nil
}

// kolmogorovAsymptoticP evaluates the asymptotic Kolmogorov series
// Q(λ) = 2·Σ(-1)^(k-1)·exp(-2k²λ²), summed until a term drops below 1e-12
// or 100 terms have been added (spec §4.2).
func kolmogorovAsymptoticP(lambda float64) float64 {
	if lambda <= 0 {
		return 1.0
	}
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
