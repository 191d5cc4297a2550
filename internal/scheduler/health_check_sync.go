package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/auditing"
)

var ErrRunInProgress = errors.New("auditoria já em andamento")

// HealthCheckConfig representa a configuração do agendador de auditorias
type HealthCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// HealthCheckService agenda a auditoria diária e garante uma única execução por vez
type HealthCheckService struct {
	scheduler *gocron.Scheduler
	config    HealthCheckConfig
	auditor   auditing.Auditor
	ctx       context.Context

	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunID          string
	lastScore          int
	lastError          string
}

func NewHealthCheckService(auditor auditing.Auditor, appConfig *config.Config) *HealthCheckService {
	checkConfig := HealthCheckConfig{
		CronSchedule: appConfig.HealthCheck.CronSchedule,
		Enabled:      appConfig.HealthCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de auditoria carregada")

	return &HealthCheckService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    checkConfig,
		auditor:   auditor,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *HealthCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Auditoria agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de auditoria")

	s.ctx = ctx

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrRunInProgress) {
			logrus.WithError(err).Error("Auditoria agendada falhou")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de auditoria")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma auditoria de forma síncrona. Retorna ErrRunInProgress se outra estiver rodando.
func (s *HealthCheckService) RunNow(ctx context.Context) (*domain.HealthReport, error) {
	if !s.tryStart() {
		logrus.Info("Auditoria já em andamento, ignorando")
		return nil, ErrRunInProgress
	}

	report, err := s.auditor.Run(ctx)
	s.finish(report, err)

	return report, err
}

// TriggerManualRun inicia uma auditoria em segundo plano. Retorna false se já houver uma em andamento.
func (s *HealthCheckService) TriggerManualRun() bool {
	if !s.tryStart() {
		logrus.Info("Auditoria já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando auditoria manual")
	go func() {
		report, err := s.auditor.Run(s.ctx)
		if err != nil {
			logrus.WithError(err).Error("Auditoria manual falhou")
		}
		s.finish(report, err)
	}()

	return true
}

func (s *HealthCheckService) tryStart() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	return true
}

func (s *HealthCheckService) finish(report *domain.HealthReport, err error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.running = false
	s.lastRunCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if report != nil {
		s.lastRunID = report.RunID
		s.lastScore = report.Score.Total
	}
}

func (s *HealthCheckService) IsRunning() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *HealthCheckService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"running":              s.running,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunCompletedAt,
		"last_run_id":          s.lastRunID,
		"last_score":           s.lastScore,
		"last_error":           s.lastError,
	}

	if _, next := s.scheduler.NextRun(); !next.IsZero() {
		status["next_run_at"] = next
	}

	return status
}
