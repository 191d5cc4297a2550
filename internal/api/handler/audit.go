package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/scheduler"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/auditing"
	"github.com/vfg2006/ads-health-monitor/pkg/apiErrors"
	"github.com/vfg2006/ads-health-monitor/pkg/log"
	"github.com/vfg2006/ads-health-monitor/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxHistoryLimit = 200

// AuditRunner é a parte do agendador usada pela API. Garante uma execução por vez.
type AuditRunner interface {
	RunNow(ctx context.Context) (*domain.HealthReport, error)
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// RunAudit dispara uma auditoria. Com ?wait=true responde com o relatório, senão 202.
func RunAudit(runner AuditRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}

		wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
		if !wait {
			if !runner.TriggerManualRun() {
				apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Já existe uma auditoria em andamento", nil)
				return
			}

			logger.Info("Auditoria manual iniciada")
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Auditoria iniciada com sucesso",
			})
			return
		}

		report, err := runner.RunNow(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao executar auditoria")

			switch {
			case errors.Is(err, scheduler.ErrRunInProgress):
				apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Já existe uma auditoria em andamento", nil)
			case metaclient.IsTerminal(err):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			case errors.Is(err, auditing.ErrAuditAborted):
				apiErrors.WriteError(w, apiErrors.ErrRunFailed, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar auditoria", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetLatestReport(auditor auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := auditor.Latest()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma auditoria executada desde o início do serviço", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// ListReports devolve o histórico persistido. Aceita ?limit=N (padrão 30, máximo 200).
func ListReports(auditor auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxHistoryLimit)
		}

		reports, err := auditor.History(r.Context(), limit)
		if err != nil {
			if errors.Is(err, auditing.ErrNoRepository) {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Histórico desabilitado (DATABASE_ENABLED=false)", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao listar relatórios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de auditorias", nil)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	})
}
