package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	pkgErrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

const (
	healthReportsTable = "health_reports"
	defaultListLimit   = 30
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var summaryColumns = []string{
	"run_id", "account_id", "score", "grade",
	"critical_count", "high_count", "medium_count", "low_count", "created_at",
}

type HealthReportRepository interface {
	Save(ctx context.Context, report *domain.HealthReport) error
	GetLatest(ctx context.Context, accountID string) (*domain.HealthReportSummary, error)
	ListRecent(ctx context.Context, accountID string, limit uint64) ([]*domain.HealthReportSummary, error)
}

type healthReportRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewHealthReportRepository(conn postgres.Queryer) HealthReportRepository {
	return &healthReportRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *healthReportRepository) Save(ctx context.Context, report *domain.HealthReport) error {
	if report == nil {
		return errors.New("relatório nil")
	}

	query, args, err := insertReportQuery(report, uuid.New().String(), r.now())
	if err != nil {
		return pkgErrors.Wrap(err, "falha ao montar insert do relatório")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": report.RunID,
			"error":  err.Error(),
		}).Error("repository: failed to save health report")
		return pkgErrors.Wrap(err, "falha ao salvar relatório")
	}

	return nil
}

func (r *healthReportRepository) GetLatest(ctx context.Context, accountID string) (*domain.HealthReportSummary, error) {
	query, args, err := listReportsQuery(accountID, 1)
	if err != nil {
		return nil, err
	}

	summary, err := scanSummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgErrors.Wrap(err, "falha ao buscar último relatório")
	}

	return summary, nil
}

func (r *healthReportRepository) ListRecent(ctx context.Context, accountID string, limit uint64) ([]*domain.HealthReportSummary, error) {
	query, args, err := listReportsQuery(accountID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "falha ao listar relatórios")
	}
	defer rows.Close()

	summaries := make([]*domain.HealthReportSummary, 0)
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSummary(row scanner) (*domain.HealthReportSummary, error) {
	summary := &domain.HealthReportSummary{}
	if err := row.Scan(
		&summary.RunID,
		&summary.AccountID,
		&summary.Score,
		&summary.Grade,
		&summary.CriticalCount,
		&summary.HighCount,
		&summary.MediumCount,
		&summary.LowCount,
		&summary.CreatedAt,
	); err != nil {
		return nil, err
	}
	return summary, nil
}

func insertReportQuery(report *domain.HealthReport, id string, createdAt time.Time) (string, []interface{}, error) {
	components, err := json.Marshal(report.Score)
	if err != nil {
		return "", nil, err
	}

	issues := report.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	issuesJSON, err := json.Marshal(issues)
	if err != nil {
		return "", nil, err
	}

	counts := report.Summary
	if counts == nil {
		counts = domain.CountBySeverity(report.Issues)
	}

	warnings := report.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	alerted := report.Alerted
	if alerted == nil {
		alerted = []string{}
	}

	return squirrel.
		Insert(healthReportsTable).
		Columns(
			"id", "run_id", "account_id", "account_name", "score", "grade", "status",
			"critical_count", "high_count", "medium_count", "low_count",
			"components", "issues", "warnings", "alerted",
			"started_at", "finished_at", "created_at",
		).
		Values(
			id, report.RunID, report.AccountID, report.AccountName, report.Score.Total, string(report.Score.Grade), report.Score.Status,
			counts[domain.SeverityCritical], counts[domain.SeverityHigh], counts[domain.SeverityMedium], counts[domain.SeverityLow],
			string(components), string(issuesJSON), pq.Array(warnings), pq.Array(alerted),
			report.StartedAt, report.FinishedAt, createdAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listReportsQuery(accountID string, limit uint64) (string, []interface{}, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	builder := squirrel.
		Select(summaryColumns...).
		From(healthReportsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if accountID != "" {
		builder = builder.Where(squirrel.Eq{"account_id": accountID})
	}

	return builder.ToSql()
}
