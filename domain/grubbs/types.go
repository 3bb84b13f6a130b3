package grubbs

import (
	"gogrubbs/domain/core"
)

// MinSampleSize is the smallest sample the test is defined for: the
// statistic needs a standard deviation and the critical value needs
// n-2 > 0 degrees of freedom.
const MinSampleSize = 3

// ============================================================================
// TYPE DEFINITIONS
// ============================================================================

// TestVariant selects which form of the Grubbs statistic is computed
type TestVariant string

const (
	// VariantTwoSided tests the single most extreme observation in either
	// direction: G = max |y_i - mean| / stddev.
	VariantTwoSided TestVariant = "two-sided"
	// VariantLower tests whether the minimum is a low outlier:
	// G = (mean - min) / stddev.
	VariantLower TestVariant = "lower"
	// VariantUpper tests whether the maximum is a high outlier:
	// G = (max - mean) / stddev.
	VariantUpper TestVariant = "upper"
)

// Validate checks the variant is one of the three defined values
func (v TestVariant) Validate() error {
	switch v {
	case VariantTwoSided, VariantLower, VariantUpper:
		return nil
	}
	return core.NewInvalidParameterError("variant", string(v), "must be two-sided, lower, or upper")
}

// ParseVariant converts boundary text into a TestVariant. An empty string
// selects the two-sided default.
func ParseVariant(s string) (TestVariant, error) {
	if s == "" {
		return VariantTwoSided, nil
	}
	v := TestVariant(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Tails selects one-tailed or two-tailed critical-value derivation
type Tails int

const (
	OneTailed Tails = 1
	TwoTailed Tails = 2
)

// Validate checks tails is exactly 1 or 2
func (t Tails) Validate() error {
	if t != OneTailed && t != TwoTailed {
		return core.NewInvalidParameterError("tails", int(t), "must be 1 or 2")
	}
	return nil
}

// ============================================================================
// DETECTION PARAMETERS
// ============================================================================

// DetectionParams bundles the test configuration for a full detection run
type DetectionParams struct {
	Variant TestVariant `json:"variant"`
	Alpha   float64     `json:"alpha"`
	Tails   Tails       `json:"tails"`
}

// DefaultParams returns the conventional configuration: two-sided test at
// the 5% significance level with a two-tailed critical value.
func DefaultParams() DetectionParams {
	return DetectionParams{
		Variant: VariantTwoSided,
		Alpha:   0.05,
		Tails:   TwoTailed,
	}
}

// Validate checks all parameters against their domains
func (p DetectionParams) Validate() error {
	if err := p.Variant.Validate(); err != nil {
		return err
	}
	if err := p.Tails.Validate(); err != nil {
		return err
	}
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return core.NewInvalidParameterError("alpha", p.Alpha, "must be in (0, 1)")
	}
	return nil
}

// ============================================================================
// DOMAIN ARTIFACTS
// ============================================================================

// OutlierReport is the artifact produced by a full detection run: the
// statistic, the threshold it was compared against, and the verdict.
type OutlierReport struct {
	ID            core.ID        `json:"id"`
	SampleSize    int            `json:"sample_size"`
	Variant       TestVariant    `json:"variant"`
	Alpha         float64        `json:"alpha"`
	Tails         Tails          `json:"tails"`
	Statistic     float64        `json:"statistic"`
	CriticalValue float64        `json:"critical_value"`
	IsOutlier     bool           `json:"is_outlier"`
	Suspect       float64        `json:"suspect"`
	SuspectIndex  int            `json:"suspect_index"`
	Mean          float64        `json:"mean"`
	StdDev        float64        `json:"std_dev"`
	ComputedAt    core.Timestamp `json:"computed_at"`
}
