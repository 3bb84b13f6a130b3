package ports

import (
	"context"

	"gogrubbs/domain/core"
	"gogrubbs/domain/grubbs"
)

// ReportRepositoryPort persists outlier reports. Persistence is optional:
// the detection service tolerates a nil repository.
type ReportRepositoryPort interface {
	Save(ctx context.Context, report *grubbs.OutlierReport) error
	GetByID(ctx context.Context, id core.ID) (*grubbs.OutlierReport, error)
	ListRecent(ctx context.Context, limit int) ([]*grubbs.OutlierReport, error)
}
