package stats

import (
	"math"
	"testing"

	"gogrubbs/domain/grubbs"
)

func same(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGonumQuantile_MatchesPublishedTables(t *testing.T) {
	q := NewGonumQuantile()

	cases := []struct {
		df   float64
		p    float64
		want float64
	}{
		{10, 0.975, 2.2281},
		{6, 0.95, 1.9432},
		{20, 0.99, 2.5280},
	}

	for _, c := range cases {
		got := q.StudentTQuantile(c.df, c.p)
		if !same(got, c.want, 1e-3) {
			t.Fatalf("t quantile df=%v p=%v: expected %.4f, got %.4f", c.df, c.p, c.want, got)
		}
	}
}

func TestMontanaDescriptive_SampleConvention(t *testing.T) {
	d := NewMontanaDescriptive()

	sample := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean, err := d.Mean(sample)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	if !same(mean, 5.0, 1e-12) {
		t.Fatalf("expected mean 5, got %v", mean)
	}

	sd, err := d.StandardDeviation(sample)
	if err != nil {
		t.Fatalf("stddev: %v", err)
	}
	// Sample form: sqrt(32/7), not the population sqrt(32/8)=2.
	if !same(sd, math.Sqrt(32.0/7.0), 1e-12) {
		t.Fatalf("expected sample stddev %.6f, got %v", math.Sqrt(32.0/7.0), sd)
	}
}

// End-to-end against published Grubbs critical-value tables: 2.032 is the
// one-sided 5% value for n=8, 2.127 the two-sided one (Grubbs 1969).
func TestCriticalValue_PublishedReferences(t *testing.T) {
	calc := grubbs.NewCalculator(NewMontanaDescriptive(), NewGonumQuantile())

	oneSided, err := calc.CriticalValue(0.05, 8, grubbs.OneTailed)
	if err != nil {
		t.Fatalf("one-sided critical value: %v", err)
	}
	if !same(oneSided, 2.0317, 1e-3) {
		t.Fatalf("expected one-sided critical ~2.032, got %.4f", oneSided)
	}

	twoSided, err := calc.CriticalValue(0.05, 8, grubbs.TwoTailed)
	if err != nil {
		t.Fatalf("two-sided critical value: %v", err)
	}
	if !same(twoSided, 2.1274, 2e-3) {
		t.Fatalf("expected two-sided critical ~2.127, got %.4f", twoSided)
	}
}

func TestStatistic_ClassicDatasetWithProductionAdapters(t *testing.T) {
	calc := grubbs.NewCalculator(NewMontanaDescriptive(), NewGonumQuantile())

	sample := []float64{199.31, 199.53, 200.19, 200.82, 201.92, 201.95, 202.18, 245.57}
	g, err := calc.Statistic(sample, grubbs.VariantTwoSided)
	if err != nil {
		t.Fatalf("statistic: %v", err)
	}
	if !same(g, 2.4687, 1e-3) {
		t.Fatalf("expected G ~= 2.4687, got %.4f", g)
	}

	// The statistic clears the one-sided threshold: 245.57 is an outlier.
	crit, err := calc.CriticalValue(0.05, len(sample), grubbs.OneTailed)
	if err != nil {
		t.Fatalf("critical value: %v", err)
	}
	if g <= crit {
		t.Fatalf("expected G %.4f to exceed critical %.4f", g, crit)
	}
}
