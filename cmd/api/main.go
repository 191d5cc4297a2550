package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/ads-health-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-health-monitor/infrastructure/notifier"
	"github.com/vfg2006/ads-health-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-health-monitor/internal/api"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/scheduler"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/alerting"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/auditing"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/classifying"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/scoring"
	"github.com/vfg2006/ads-health-monitor/pkg/log"
	"github.com/vfg2006/ads-health-monitor/pkg/utils"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type flags struct {
	once     bool
	migrate  bool
	token    string
	tokenTTL time.Duration
}

func main() {
	var f flags
	pflag.BoolVar(&f.once, "once", false, "executa uma auditoria, imprime o relatório em JSON e encerra")
	pflag.BoolVar(&f.migrate, "migrate", false, "aplica o schema do histórico no PostgreSQL e encerra")
	pflag.StringVar(&f.token, "token", "", "emite um JWT no formato subject:role e encerra")
	pflag.DurationVar(&f.tokenTTL, "token-ttl", authenticating.DefaultTokenTTL, "validade do token emitido por --token")
	pflag.Parse()

	os.Exit(run(f))
}

func run(f flags) int {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return exitFailure
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case f.token != "":
		return issueToken(cfg, f.token, f.tokenTTL)
	case f.migrate:
		return migrate(ctx, cfg)
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Error("Configuração inválida")
		return exitFailure
	}

	var repo repository.HealthReportRepository
	if cfg.Database.Enabled {
		conn, err := pgconn(ctx, cfg.Database)
		if err != nil {
			return exitFailure
		}
		defer conn.Close()

		if err := conn.Migrate(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao aplicar schema do histórico")
			return exitFailure
		}
		repo = repository.NewHealthReportRepository(conn.DB)
	} else {
		logrus.Info("Histórico desabilitado (DATABASE_ENABLED=false)")
	}

	auditor := newAuditor(cfg, repo)

	if f.once {
		return runOnce(ctx, auditor)
	}

	healthCheckService := scheduler.NewHealthCheckService(auditor, cfg)
	if err := healthCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria")
		return exitFailure
	}

	server, err := api.New(cfg, auditor, healthCheckService, authenticating.NewService(cfg.SecretKey))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar servidor")
		return exitFailure
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
		return exitFailure
	}

	return exitOK
}

// newAuditor monta o pipeline completo a partir da configuração
func newAuditor(cfg *config.Config, repo repository.HealthReportRepository) *auditing.Service {
	thresholds := cfg.Thresholds.Domain()

	metaClient := metaclient.NewClient(cfg)
	integrator := meta.New(cfg, metaClient, meta.NewStructureCache(cfg.Fetch.StructureCacheTTL))

	var email, slack alerting.Channel
	if cfg.Notification.EmailEnabled {
		email = notifier.NewEmailChannel(cfg.Notification)
	}
	if cfg.Notification.SlackEnabled {
		slack = notifier.NewSlackChannel(cfg.Notification)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":     cfg.Meta.AdAccountID,
		"days":           thresholds.AnalysisDays,
		"email_enabled":  email != nil,
		"slack_enabled":  slack != nil,
		"extended_rules": cfg.Audit.ExtendedRules,
	}).Info("Pipeline de auditoria configurado")

	return auditing.NewService(
		integrator,
		scoring.NewService(thresholds, cfg.Audit.ConversionTrackingBaseline),
		classifying.NewService(thresholds, cfg.Audit.ExtendedRules),
		alerting.NewService(thresholds.AlertScoreThreshold, email, slack),
		repo,
		auditing.Options{
			AccountID:    cfg.Meta.AdAccountID,
			AnalysisDays: thresholds.AnalysisDays,
			RunTimeout:   cfg.Audit.RunTimeout,
		},
	)
}

func runOnce(ctx context.Context, auditor auditing.Auditor) int {
	report, err := auditor.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Auditoria falhou")
		return exitFailure
	}

	out, err := utils.PrettyJSON(report)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar relatório")
		return exitFailure
	}

	fmt.Println(out)
	return exitOK
}

// issueToken imprime um JWT para chamadas à API. Formato: subject:role
func issueToken(cfg *config.Config, subjectRole string, ttl time.Duration) int {
	subject, role, ok := strings.Cut(subjectRole, ":")
	if !ok {
		logrus.Error("--token deve ter o formato subject:role")
		return exitUsage
	}

	token, err := authenticating.NewService(cfg.SecretKey).GenerateToken(subject, domain.Role(role), ttl)
	if err != nil {
		logrus.WithError(err).Error("Erro ao emitir token")
		return exitUsage
	}

	fmt.Println(token)
	return exitOK
}

func migrate(ctx context.Context, cfg *config.Config) int {
	conn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return exitFailure
	}
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao aplicar schema do histórico")
		return exitFailure
	}

	logrus.Info("Schema do histórico aplicado com sucesso")
	return exitOK
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
