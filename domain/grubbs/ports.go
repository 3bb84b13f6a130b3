package grubbs

// DescriptiveStatsPort supplies the summary statistics the Grubbs
// computations consume. StandardDeviation uses the sample (n-1) convention:
// the published Grubbs reference values assume it.
type DescriptiveStatsPort interface {
	Mean(sample []float64) (float64, error)
	StandardDeviation(sample []float64) (float64, error)
	Min(sample []float64) (float64, error)
	Max(sample []float64) (float64, error)
}

// QuantilePort exposes the Student's t inverse CDF in the left-tail
// convention: StudentTQuantile(df, p) returns t such that P(T <= t) = p.
// Callers needing an upper-tail critical value evaluate at 1-p.
type QuantilePort interface {
	StudentTQuantile(degreesOfFreedom, p float64) float64
}
