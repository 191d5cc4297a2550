package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/auditing/mocks"
	"go.uber.org/mock/gomock"
)

func newHealthCheckService(t *testing.T, enabled bool, cron string) (*HealthCheckService, *mocks.MockAuditor) {
	ctrl := gomock.NewController(t)
	auditor := mocks.NewMockAuditor(ctrl)

	cfg := &config.Config{HealthCheck: config.HealthCheck{CronSchedule: cron, Enabled: enabled}}

	return NewHealthCheckService(auditor, cfg), auditor
}

func TestHealthCheckService_RunNow(t *testing.T) {
	t.Run("Execução bem sucedida atualiza o status", func(t *testing.T) {
		service, auditor := newHealthCheckService(t, false, "0 9 * * *")

		auditor.EXPECT().Run(gomock.Any()).Return(&domain.HealthReport{
			RunID: "run-1",
			Score: domain.HealthScore{Total: 82},
		}, nil)

		report, err := service.RunNow(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "run-1", report.RunID)

		status := service.GetStatus()
		assert.Equal(t, "run-1", status["last_run_id"])
		assert.Equal(t, 82, status["last_score"])
		assert.Equal(t, "", status["last_error"])
		assert.Equal(t, false, status["running"])
	})

	t.Run("Falha fica registrada no status", func(t *testing.T) {
		service, auditor := newHealthCheckService(t, false, "0 9 * * *")

		auditor.EXPECT().Run(gomock.Any()).Return(nil, errors.New("token expirado"))

		_, err := service.RunNow(context.Background())
		assert.Error(t, err)
		assert.Equal(t, "token expirado", service.GetStatus()["last_error"])
	})

	t.Run("Segunda execução concorrente é rejeitada", func(t *testing.T) {
		service, auditor := newHealthCheckService(t, false, "0 9 * * *")

		started := make(chan struct{})
		release := make(chan struct{})
		auditor.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.HealthReport, error) {
			close(started)
			<-release
			return &domain.HealthReport{RunID: "run-1"}, nil
		}).Times(1)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = service.RunNow(context.Background())
		}()

		<-started
		assert.True(t, service.IsRunning())

		_, err := service.RunNow(context.Background())
		assert.ErrorIs(t, err, ErrRunInProgress)
		assert.False(t, service.TriggerManualRun())

		close(release)
		<-done
		assert.False(t, service.IsRunning())
	})
}

func TestHealthCheckService_TriggerManualRun(t *testing.T) {
	service, auditor := newHealthCheckService(t, false, "0 9 * * *")

	finished := make(chan struct{})
	auditor.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.HealthReport, error) {
		defer close(finished)
		return &domain.HealthReport{RunID: "run-2"}, nil
	})

	assert.True(t, service.TriggerManualRun())
	<-finished

	assert.Eventually(t, func() bool {
		return !service.IsRunning()
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "run-2", service.GetStatus()["last_run_id"])
}

func TestHealthCheckService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newHealthCheckService(t, false, "0 9 * * *")

		require.NoError(t, service.Start(context.Background()))
		assert.Len(t, service.scheduler.Jobs(), 0)
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		service, _ := newHealthCheckService(t, true, "not a cron")

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda o job e para quando o contexto é cancelado", func(t *testing.T) {
		service, _ := newHealthCheckService(t, true, "0 9 * * *")

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.Contains(t, service.GetStatus(), "next_run_at")

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, time.Second, 10*time.Millisecond)
	})
}
