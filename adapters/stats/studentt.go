package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// GonumQuantile implements ports.QuantilePort using gonum's Student's t
// distribution. distuv's Quantile is the left-tail inverse CDF, matching the
// port contract.
type GonumQuantile struct{}

// NewGonumQuantile creates the production t-distribution adapter
func NewGonumQuantile() *GonumQuantile {
	return &GonumQuantile{}
}

func (GonumQuantile) StudentTQuantile(degreesOfFreedom, p float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: degreesOfFreedom}
	return dist.Quantile(p)
}
