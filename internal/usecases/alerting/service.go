package alerting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

var ErrDelivery = errors.New("falha na entrega de alertas")

// Channel é um destino de notificação (email, Slack)
type Channel interface {
	Name() domain.AlertChannel
	Send(ctx context.Context, msg *domain.AlertMessage) error
}

type Router interface {
	Route(ctx context.Context, report *domain.HealthReport) (Decision, error)
}

// Decision registra quais canais deveriam disparar e quais de fato entregaram
type Decision struct {
	Channels  []domain.AlertChannel `json:"channels"`
	Reasons   []string              `json:"reasons,omitempty"`
	Delivered []domain.AlertChannel `json:"delivered,omitempty"`
}

func (d Decision) ShouldAlert() bool {
	return len(d.Channels) > 0
}

func (d Decision) Has(channel domain.AlertChannel) bool {
	for _, c := range d.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

type Service struct {
	scoreThreshold int
	email          Channel
	slack          Channel
}

// NewService recebe os canais habilitados; canal nil significa desabilitado
func NewService(scoreThreshold int, email, slack Channel) *Service {
	return &Service{
		scoreThreshold: scoreThreshold,
		email:          email,
		slack:          slack,
	}
}

// Decide aplica as regras de roteamento sem efeitos colaterais
func (s *Service) Decide(report *domain.HealthReport) Decision {
	decision := Decision{
		Channels: make([]domain.AlertChannel, 0, 2),
		Reasons:  make([]string, 0),
	}
	if report == nil {
		return decision
	}

	hasCritical := report.HasSeverity(domain.SeverityCritical)
	hasHigh := report.HasSeverity(domain.SeverityHigh)
	lowScore := report.Score.Total < s.scoreThreshold

	if hasCritical {
		decision.Reasons = append(decision.Reasons, fmt.Sprintf("%d issue(s) crítica(s)", len(report.CriticalIssues())))
	}
	if lowScore {
		decision.Reasons = append(decision.Reasons, fmt.Sprintf("score %d abaixo de %d", report.Score.Total, s.scoreThreshold))
	}

	if s.email != nil && (hasCritical || lowScore) {
		decision.Channels = append(decision.Channels, domain.AlertChannelEmail)
	}
	if s.slack != nil && (hasCritical || hasHigh) {
		decision.Channels = append(decision.Channels, domain.AlertChannelSlack)
	}

	return decision
}

// Route decide e entrega. A falha de um canal não impede os demais; os erros são agregados.
func (s *Service) Route(ctx context.Context, report *domain.HealthReport) (Decision, error) {
	decision := s.Decide(report)
	if !decision.ShouldAlert() {
		logrus.WithFields(logrus.Fields{
			"run_id": runID(report),
		}).Info("alerting: nenhum canal acionado")
		return decision, nil
	}

	msg := BuildMessage(report)

	var errs []error
	for _, name := range decision.Channels {
		channel := s.channel(name)

		if err := channel.Send(ctx, msg); err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id":  report.RunID,
				"channel": name,
				"error":   err.Error(),
			}).Error("alerting: failed to deliver alert")
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		decision.Delivered = append(decision.Delivered, name)
		logrus.WithFields(logrus.Fields{
			"run_id":  report.RunID,
			"channel": name,
		}).Info("alerting: alerta enviado")
	}

	if len(errs) > 0 {
		return decision, fmt.Errorf("%w: %w", ErrDelivery, errors.Join(errs...))
	}

	return decision, nil
}

func (s *Service) channel(name domain.AlertChannel) Channel {
	if name == domain.AlertChannelEmail {
		return s.email
	}
	return s.slack
}

// Subject monta o assunto, prefixado com a contagem de críticas quando houver
func Subject(report *domain.HealthReport) string {
	subject := fmt.Sprintf("Meta Ads Health Check - Score: %d/100", report.Score.Total)
	if critical := len(report.CriticalIssues()); critical > 0 {
		subject = fmt.Sprintf("[%d Critical Issues] %s", critical, subject)
	}
	return subject
}

func BuildMessage(report *domain.HealthReport) *domain.AlertMessage {
	summary := report.Summary
	if summary == nil {
		summary = domain.CountBySeverity(report.Issues)
	}

	return &domain.AlertMessage{
		Subject:        Subject(report),
		RunID:          report.RunID,
		AccountID:      report.AccountID,
		AccountName:    report.AccountName,
		Score:          report.Score.Total,
		Grade:          report.Score.Grade,
		Status:         report.Score.Status,
		CriticalIssues: report.CriticalIssues(),
		HighIssues:     report.HighIssues(),
		Summary:        summary,
		Warnings:       report.Warnings,
	}
}

func runID(report *domain.HealthReport) string {
	if report == nil {
		return ""
	}
	return report.RunID
}
