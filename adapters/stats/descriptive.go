package stats

import (
	mfstats "github.com/montanaflynn/stats"
)

// MontanaDescriptive implements ports.DescriptiveStatsPort on top of
// montanaflynn/stats.
type MontanaDescriptive struct{}

// NewMontanaDescriptive creates the production descriptive-statistics adapter
func NewMontanaDescriptive() *MontanaDescriptive {
	return &MontanaDescriptive{}
}

func (MontanaDescriptive) Mean(sample []float64) (float64, error) {
	return mfstats.Mean(sample)
}

// StandardDeviation uses the sample (n-1) form. The Grubbs reference values
// are published against it; the population form inflates G on small samples.
func (MontanaDescriptive) StandardDeviation(sample []float64) (float64, error) {
	return mfstats.StandardDeviationSample(sample)
}

func (MontanaDescriptive) Min(sample []float64) (float64, error) {
	return mfstats.Min(sample)
}

func (MontanaDescriptive) Max(sample []float64) (float64, error) {
	return mfstats.Max(sample)
}
