package app

import (
	"context"
	"math"
	"sync"

	"gogrubbs/domain/core"
	"gogrubbs/domain/grubbs"
	"gogrubbs/internal"
	apperrors "gogrubbs/internal/errors"
	"gogrubbs/ports"

	"golang.org/x/sync/errgroup"
)

// DetectionService composes the statistic and critical-value computations
// into a single outlier verdict, optionally persisting the report. The
// repository may be nil; detection then runs without persistence.
type DetectionService struct {
	calc        *grubbs.Calculator
	descriptive grubbs.DescriptiveStatsPort
	reports     ports.ReportRepositoryPort
	logger      *internal.Logger
}

// NewDetectionService creates a detection service
func NewDetectionService(calc *grubbs.Calculator, descriptive grubbs.DescriptiveStatsPort, reports ports.ReportRepositoryPort, logger *internal.Logger) *DetectionService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &DetectionService{
		calc:        calc,
		descriptive: descriptive,
		reports:     reports,
		logger:      logger,
	}
}

// Detect runs the full Grubbs test on a sample: statistic, critical value,
// verdict, and the suspect observation. Only the single most extreme point
// is tested; there is no iterative removal.
func (s *DetectionService) Detect(ctx context.Context, sample []float64, params grubbs.DetectionParams) (*grubbs.OutlierReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	statistic, err := s.calc.Statistic(sample, params.Variant)
	if err != nil {
		return nil, err
	}
	critical, err := s.calc.CriticalValue(params.Alpha, len(sample), params.Tails)
	if err != nil {
		return nil, err
	}

	mean, err := s.descriptive.Mean(sample)
	if err != nil {
		return nil, core.NewInvalidSampleError(len(sample), err.Error())
	}
	stdDev, err := s.descriptive.StandardDeviation(sample)
	if err != nil {
		return nil, core.NewInvalidSampleError(len(sample), err.Error())
	}

	suspect, suspectIdx := suspectFor(sample, mean, params.Variant)

	report := &grubbs.OutlierReport{
		ID:            core.NewID(),
		SampleSize:    len(sample),
		Variant:       params.Variant,
		Alpha:         params.Alpha,
		Tails:         params.Tails,
		Statistic:     statistic,
		CriticalValue: critical,
		IsOutlier:     statistic > critical,
		Suspect:       suspect,
		SuspectIndex:  suspectIdx,
		Mean:          mean,
		StdDev:        stdDev,
		ComputedAt:    core.Now(),
	}

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			return nil, apperrors.Wrap(err, "persist outlier report")
		}
	}

	s.logger.Debug("detect: n=%d variant=%s G=%.4f critical=%.4f outlier=%v",
		report.SampleSize, report.Variant, report.Statistic, report.CriticalValue, report.IsOutlier)

	return report, nil
}

// DetectBatch runs Detect over named columns concurrently. Any column
// failing validation fails the whole batch.
func (s *DetectionService) DetectBatch(ctx context.Context, columns map[string][]float64, params grubbs.DetectionParams) (map[string]*grubbs.OutlierReport, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]*grubbs.OutlierReport, len(columns))

	for name, column := range columns {
		name, column := name, column
		g.Go(func() error {
			report, err := s.Detect(ctx, column, params)
			if err != nil {
				return apperrors.Wrapf(err, "column %q", name)
			}
			mu.Lock()
			results[name] = report
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// suspectFor identifies the observation the chosen variant actually tests
func suspectFor(sample []float64, mean float64, variant grubbs.TestVariant) (float64, int) {
	idx := 0
	switch variant {
	case grubbs.VariantLower:
		for i, y := range sample {
			if y < sample[idx] {
				idx = i
			}
		}
	case grubbs.VariantUpper:
		for i, y := range sample {
			if y > sample[idx] {
				idx = i
			}
		}
	default:
		for i, y := range sample {
			if math.Abs(y-mean) > math.Abs(sample[idx]-mean) {
				idx = i
			}
		}
	}
	return sample[idx], idx
}
