package grubbs

import (
	"math"

	"gogrubbs/domain/core"
)

// Calculator computes the Grubbs statistic and its critical value. Both
// computations are pure: the numeric collaborators are injected so the
// formulas can be tested against stub distributions with known quantiles.
type Calculator struct {
	descriptive DescriptiveStatsPort
	quantile    QuantilePort
}

// NewCalculator creates a calculator backed by the given collaborators
func NewCalculator(descriptive DescriptiveStatsPort, quantile QuantilePort) *Calculator {
	return &Calculator{
		descriptive: descriptive,
		quantile:    quantile,
	}
}

// Statistic computes the Grubbs G statistic for the sample under the chosen
// variant. The lower and upper one-sided forms may return a negative value
// when the tested extreme sits on the wrong side of the mean; it then
// trivially fails to exceed any (positive) critical value.
func (c *Calculator) Statistic(sample []float64, variant TestVariant) (float64, error) {
	if err := variant.Validate(); err != nil {
		return 0, err
	}
	if len(sample) < MinSampleSize {
		return 0, core.NewInvalidSampleError(len(sample), "need at least 3 observations")
	}

	mean, err := c.descriptive.Mean(sample)
	if err != nil {
		return 0, core.NewInvalidSampleError(len(sample), err.Error())
	}
	stdDev, err := c.descriptive.StandardDeviation(sample)
	if err != nil {
		return 0, core.NewInvalidSampleError(len(sample), err.Error())
	}
	if stdDev == 0 {
		return 0, core.NewDegenerateSampleError(len(sample))
	}

	switch variant {
	case VariantTwoSided:
		// Max absolute deviation over every element, not just the extremes.
		maxDev := 0.0
		for _, y := range sample {
			if dev := math.Abs(y - mean); dev > maxDev {
				maxDev = dev
			}
		}
		return maxDev / stdDev, nil

	case VariantLower:
		min, err := c.descriptive.Min(sample)
		if err != nil {
			return 0, core.NewInvalidSampleError(len(sample), err.Error())
		}
		return (mean - min) / stdDev, nil

	default: // VariantUpper, validated above
		max, err := c.descriptive.Max(sample)
		if err != nil {
			return 0, core.NewInvalidSampleError(len(sample), err.Error())
		}
		return (max - mean) / stdDev, nil
	}
}

// CriticalValue computes the threshold G must exceed to declare an outlier
// at significance level alpha. The tail probability carries a Bonferroni
// correction for the implicit selection among n candidates:
//
//	one-tailed: p = alpha/n      two-tailed: p = alpha/(2n)
//
// T is the upper-tail Student's t quantile at p with n-2 degrees of freedom,
// and the critical value is ((n-1)/sqrt(n)) * sqrt(T^2 / (n-2+T^2)).
func (c *Calculator) CriticalValue(alpha float64, n int, tails Tails) (float64, error) {
	if err := tails.Validate(); err != nil {
		return 0, err
	}
	if n < MinSampleSize {
		return 0, core.NewInvalidParameterError("n", n, "degrees of freedom n-2 must be positive")
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, core.NewInvalidParameterError("alpha", alpha, "must be in (0, 1)")
	}

	nf := float64(n)
	p := alpha / nf
	if tails == TwoTailed {
		p = alpha / (2 * nf)
	}

	// The quantile port is left-tail, so the upper-tail critical t sits at 1-p.
	t := c.quantile.StudentTQuantile(nf-2, 1-p)
	t2 := t * t

	return ((nf - 1) / math.Sqrt(nf)) * math.Sqrt(t2/(nf-2+t2)), nil
}
