package auditing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pkgErrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-health-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/alerting"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/classifying"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/scoring"
	"github.com/vfg2006/ads-health-monitor/pkg/utils"
)

var (
	ErrAuditAborted = errors.New("auditoria abortada")
	ErrNoRepository = errors.New("histórico de relatórios desabilitado")
)

type Auditor interface {
	Run(ctx context.Context) (*domain.HealthReport, error)
	Latest() *domain.HealthReport
	History(ctx context.Context, limit uint64) ([]*domain.HealthReportSummary, error)
}

type Options struct {
	AccountID    string
	AnalysisDays int
	RunTimeout   time.Duration
}

type Service struct {
	integrator meta.Integrator
	scorer     scoring.Scorer
	classifier classifying.Classifier
	router     alerting.Router
	repository repository.HealthReportRepository
	opts       Options
	now        func() time.Time
	newRunID   func() (string, error)

	mu     sync.RWMutex
	latest *domain.HealthReport
}

// NewService monta o pipeline. router e repo podem ser nil.
func NewService(
	integrator meta.Integrator,
	scorer scoring.Scorer,
	classifier classifying.Classifier,
	router alerting.Router,
	repo repository.HealthReportRepository,
	opts Options,
) *Service {
	if opts.AnalysisDays < 1 {
		opts.AnalysisDays = domain.DefaultThresholds().AnalysisDays
	}

	return &Service{
		integrator: integrator,
		scorer:     scorer,
		classifier: classifier,
		router:     router,
		repository: repo,
		opts:       opts,
		now:        time.Now,
		newRunID:   utils.GenerateRunID,
	}
}

// Run executa uma auditoria completa: snapshot, score, issues, alertas e persistência.
// Só falhas na montagem do snapshot abortam; alerta e persistência viram avisos no relatório.
func (s *Service) Run(ctx context.Context) (*domain.HealthReport, error) {
	if s.opts.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.RunTimeout)
		defer cancel()
	}

	runID, err := s.newRunID()
	if err != nil {
		return nil, pkgErrors.Wrap(err, "falha ao gerar id da execução")
	}

	startedAt := s.now()
	// janela de dias completos, terminando ontem
	window := domain.NewTrailingWindow(startedAt.AddDate(0, 0, -1), s.opts.AnalysisDays)

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"account_id": s.opts.AccountID,
	})
	logger.WithFields(logrus.Fields{
		"since": window.StartDate.Format(time.DateOnly),
		"until": window.EndDate.Format(time.DateOnly),
	}).Info("auditing: iniciando auditoria")

	snapshot, err := s.integrator.GetAccountSnapshot(ctx, s.opts.AccountID, window)
	if err != nil {
		logger.WithField("error", err.Error()).Error("auditing: failed to build account snapshot")
		return nil, fmt.Errorf("%w: %w", ErrAuditAborted, err)
	}

	score := s.scorer.Calculate(snapshot)
	issues := s.classifier.Classify(snapshot)

	report := &domain.HealthReport{
		RunID:       runID,
		AccountID:   snapshot.ID,
		AccountName: snapshot.Name,
		StartedAt:   startedAt,
		Score:       score,
		Issues:      issues,
		Warnings:    append([]string{}, snapshot.Warnings...),
		Summary:     domain.CountBySeverity(issues),
		Alerted:     []string{},
	}

	if s.router != nil {
		decision, err := s.router.Route(ctx, report)
		for _, channel := range decision.Delivered {
			report.Alerted = append(report.Alerted, string(channel))
		}
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entrega de alertas incompleta: %v", err))
		}
	}

	report.FinishedAt = s.now()

	if s.repository != nil {
		if err := s.repository.Save(ctx, report); err != nil {
			logger.WithField("error", err.Error()).Error("auditing: failed to persist health report")
			report.Warnings = append(report.Warnings, fmt.Sprintf("relatório não persistido: %v", err))
		}
	}

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"score":    score.Total,
		"grade":    score.Grade,
		"issues":   len(issues),
		"critical": report.Summary[domain.SeverityCritical],
		"warnings": len(report.Warnings),
		"alerted":  report.Alerted,
		"duration": report.Duration().String(),
	}).Info("auditing: auditoria concluída")

	return report, nil
}

// Latest retorna o último relatório produzido por este processo
func (s *Service) Latest() *domain.HealthReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Service) History(ctx context.Context, limit uint64) ([]*domain.HealthReportSummary, error) {
	if s.repository == nil {
		return nil, ErrNoRepository
	}
	return s.repository.ListRecent(ctx, s.opts.AccountID, limit)
}
