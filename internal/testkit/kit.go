package testkit

import (
	"math"
	"math/rand"
)

// SampleConfig controls deterministic generation of test samples
type SampleConfig struct {
	Seed             int64
	Size             int
	Mean             float64
	StdDev           float64
	OutlierMagnitude float64 // standard deviations above the mean; 0 plants nothing
}

// DefaultSampleConfig returns a clustered sample of 40 points around 100
// with a planted high outlier at 6 sigma.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Seed:             42,
		Size:             40,
		Mean:             100,
		StdDev:           5,
		OutlierMagnitude: 6,
	}
}

// Generate produces a seeded normal-ish sample. When OutlierMagnitude is
// nonzero the last element is replaced with mean + magnitude*stddev, and its
// index is returned; otherwise the returned index is -1.
func Generate(cfg SampleConfig) ([]float64, int) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	sample := make([]float64, cfg.Size)
	for i := range sample {
		sample[i] = cfg.Mean + rng.NormFloat64()*cfg.StdDev
	}

	if cfg.OutlierMagnitude == 0 {
		return sample, -1
	}

	idx := cfg.Size - 1
	sample[idx] = cfg.Mean + cfg.OutlierMagnitude*cfg.StdDev
	// Guarantee the plant is the most extreme point regardless of draws.
	for i, y := range sample[:idx] {
		if math.Abs(y-cfg.Mean) >= math.Abs(cfg.OutlierMagnitude)*cfg.StdDev {
			sample[i] = cfg.Mean + (y-cfg.Mean)*0.5
		}
	}
	return sample, idx
}

// Constant returns a zero-variance sample, useful for degenerate-case tests
func Constant(value float64, size int) []float64 {
	sample := make([]float64, size)
	for i := range sample {
		sample[i] = value
	}
	return sample
}
