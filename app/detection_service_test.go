package app

import (
	"context"
	"testing"

	"gogrubbs/adapters/stats"
	"gogrubbs/domain/core"
	"gogrubbs/domain/grubbs"
	"gogrubbs/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Save(ctx context.Context, report *grubbs.OutlierReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id core.ID) (*grubbs.OutlierReport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*grubbs.OutlierReport), args.Error(1)
}

func (m *MockReportRepository) ListRecent(ctx context.Context, limit int) ([]*grubbs.OutlierReport, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*grubbs.OutlierReport), args.Error(1)
}

func newService(repo *MockReportRepository) *DetectionService {
	descriptive := stats.NewMontanaDescriptive()
	calc := grubbs.NewCalculator(descriptive, stats.NewGonumQuantile())
	if repo == nil {
		return NewDetectionService(calc, descriptive, nil, nil)
	}
	return NewDetectionService(calc, descriptive, repo, nil)
}

func TestDetect_PlantedOutlierIsFlagged(t *testing.T) {
	service := newService(nil)

	sample, plantedIdx := testkit.Generate(testkit.DefaultSampleConfig())
	report, err := service.Detect(context.Background(), sample, grubbs.DefaultParams())

	assert.NoError(t, err)
	assert.True(t, report.IsOutlier, "6-sigma plant should be flagged at alpha=0.05")
	assert.Equal(t, plantedIdx, report.SuspectIndex)
	assert.Equal(t, sample[plantedIdx], report.Suspect)
	assert.Greater(t, report.Statistic, report.CriticalValue)
	assert.False(t, report.ID.IsEmpty())
}

func TestDetect_CleanSampleIsNotFlagged(t *testing.T) {
	service := newService(nil)

	cfg := testkit.DefaultSampleConfig()
	cfg.OutlierMagnitude = 0
	cfg.Size = 200
	sample, _ := testkit.Generate(cfg)

	params := grubbs.DefaultParams()
	params.Alpha = 0.01
	report, err := service.Detect(context.Background(), sample, params)

	assert.NoError(t, err)
	assert.False(t, report.IsOutlier, "clean normal sample should pass; G=%.4f critical=%.4f", report.Statistic, report.CriticalValue)
}

func TestDetect_SuspectTracksVariant(t *testing.T) {
	service := newService(nil)
	sample := []float64{10, 11, 12, 13, 14, 1}

	params := grubbs.DefaultParams()
	params.Variant = grubbs.VariantLower
	report, err := service.Detect(context.Background(), sample, params)

	assert.NoError(t, err)
	assert.Equal(t, 5, report.SuspectIndex)
	assert.Equal(t, 1.0, report.Suspect)
}

func TestDetect_DegenerateSample(t *testing.T) {
	service := newService(nil)

	_, err := service.Detect(context.Background(), testkit.Constant(5, 4), grubbs.DefaultParams())
	assert.True(t, core.IsDegenerateSample(err), "got %v", err)
}

func TestDetect_InvalidParams(t *testing.T) {
	service := newService(nil)
	sample, _ := testkit.Generate(testkit.DefaultSampleConfig())

	params := grubbs.DefaultParams()
	params.Tails = 3
	_, err := service.Detect(context.Background(), sample, params)
	assert.True(t, core.IsInvalidParameter(err), "got %v", err)
}

func TestDetect_PersistsWhenRepositoryConfigured(t *testing.T) {
	repo := new(MockReportRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*grubbs.OutlierReport")).Return(nil)

	service := newService(repo)
	sample, _ := testkit.Generate(testkit.DefaultSampleConfig())

	_, err := service.Detect(context.Background(), sample, grubbs.DefaultParams())

	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestDetectBatch_AllColumns(t *testing.T) {
	service := newService(nil)

	withOutlier, _ := testkit.Generate(testkit.DefaultSampleConfig())
	cleanCfg := testkit.DefaultSampleConfig()
	cleanCfg.OutlierMagnitude = 0
	cleanCfg.Seed = 7
	clean, _ := testkit.Generate(cleanCfg)

	columns := map[string][]float64{
		"pressure":    withOutlier,
		"temperature": clean,
	}

	results, err := service.DetectBatch(context.Background(), columns, grubbs.DefaultParams())

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, results["pressure"].IsOutlier)
}

func TestDetectBatch_FailsOnBadColumn(t *testing.T) {
	service := newService(nil)

	columns := map[string][]float64{
		"ok":        {1, 2, 3, 4, 5},
		"too_short": {1, 2},
	}

	_, err := service.DetectBatch(context.Background(), columns, grubbs.DefaultParams())
	assert.Error(t, err)
	assert.True(t, core.IsInvalidSample(err), "got %v", err)
}
