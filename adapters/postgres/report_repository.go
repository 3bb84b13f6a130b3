package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gogrubbs/domain/core"
	"gogrubbs/domain/grubbs"

	"github.com/jmoiron/sqlx"
)

// ReportRepository persists outlier reports in Postgres
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// EnsureSchema creates the reports table if it does not exist
func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS outlier_reports (
			id TEXT PRIMARY KEY,
			sample_size INTEGER NOT NULL,
			variant TEXT NOT NULL,
			alpha DOUBLE PRECISION NOT NULL,
			tails INTEGER NOT NULL,
			statistic DOUBLE PRECISION NOT NULL,
			critical_value DOUBLE PRECISION NOT NULL,
			is_outlier BOOLEAN NOT NULL,
			suspect DOUBLE PRECISION NOT NULL,
			suspect_index INTEGER NOT NULL,
			sample_mean DOUBLE PRECISION NOT NULL,
			sample_std_dev DOUBLE PRECISION NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL
		)`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure outlier_reports schema: %w", err)
	}
	return nil
}

type reportRow struct {
	ID            string    `db:"id"`
	SampleSize    int       `db:"sample_size"`
	Variant       string    `db:"variant"`
	Alpha         float64   `db:"alpha"`
	Tails         int       `db:"tails"`
	Statistic     float64   `db:"statistic"`
	CriticalValue float64   `db:"critical_value"`
	IsOutlier     bool      `db:"is_outlier"`
	Suspect       float64   `db:"suspect"`
	SuspectIndex  int       `db:"suspect_index"`
	Mean          float64   `db:"sample_mean"`
	StdDev        float64   `db:"sample_std_dev"`
	ComputedAt    time.Time `db:"computed_at"`
}

func (row reportRow) toDomain() *grubbs.OutlierReport {
	return &grubbs.OutlierReport{
		ID:            core.ID(row.ID),
		SampleSize:    row.SampleSize,
		Variant:       grubbs.TestVariant(row.Variant),
		Alpha:         row.Alpha,
		Tails:         grubbs.Tails(row.Tails),
		Statistic:     row.Statistic,
		CriticalValue: row.CriticalValue,
		IsOutlier:     row.IsOutlier,
		Suspect:       row.Suspect,
		SuspectIndex:  row.SuspectIndex,
		Mean:          row.Mean,
		StdDev:        row.StdDev,
		ComputedAt:    core.NewTimestamp(row.ComputedAt),
	}
}

// Save inserts a report
func (r *ReportRepository) Save(ctx context.Context, report *grubbs.OutlierReport) error {
	query := `
		INSERT INTO outlier_reports (
			id, sample_size, variant, alpha, tails, statistic, critical_value,
			is_outlier, suspect, suspect_index, sample_mean, sample_std_dev, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		report.ID.String(),
		report.SampleSize,
		string(report.Variant),
		report.Alpha,
		int(report.Tails),
		report.Statistic,
		report.CriticalValue,
		report.IsOutlier,
		report.Suspect,
		report.SuspectIndex,
		report.Mean,
		report.StdDev,
		report.ComputedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert outlier report: %w", err)
	}
	return nil
}

// GetByID fetches a single report
func (r *ReportRepository) GetByID(ctx context.Context, id core.ID) (*grubbs.OutlierReport, error) {
	var row reportRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM outlier_reports WHERE id = $1`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %s", core.ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outlier report: %w", err)
	}
	return row.toDomain(), nil
}

// ListRecent returns the most recent reports, newest first
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*grubbs.OutlierReport, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []reportRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM outlier_reports ORDER BY computed_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlier reports: %w", err)
	}

	reports := make([]*grubbs.OutlierReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, row.toDomain())
	}
	return reports, nil
}
