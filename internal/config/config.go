package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

var ErrInvalidConfig = errors.New("configuração inválida")

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Fetch        Fetch        `mapstructure:",squash"`
	Thresholds   Thresholds   `mapstructure:",squash"`
	Audit        Audit        `mapstructure:",squash"`
	Notification Notification `mapstructure:",squash"`
	HealthCheck  HealthCheck  `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
}

// Fetch controla paginação, retentativas e ritmo das chamadas à Graph API
type Fetch struct {
	MaxPages             int           `mapstructure:"meta_max_pages"`
	MaxAttempts          int           `mapstructure:"meta_max_attempts"`
	RetryBaseDelay       time.Duration `mapstructure:"meta_retry_base_delay"`
	RequestsPerSecond    float64       `mapstructure:"meta_requests_per_second"`
	RequestTimeout       time.Duration `mapstructure:"meta_request_timeout"`
	MaxConcurrentFetches int           `mapstructure:"meta_max_concurrent_fetches"`
	StructureCacheTTL    time.Duration `mapstructure:"meta_structure_cache_ttl"`
}

type Thresholds struct {
	FrequencyAlert        float64 `mapstructure:"frequency_alert_threshold"`
	FrequencyCritical     float64 `mapstructure:"frequency_critical_threshold"`
	MinROAS               float64 `mapstructure:"min_roas"`
	MinCTR                float64 `mapstructure:"min_ctr"`
	MinDailySpend         float64 `mapstructure:"min_daily_spend"`
	MinSpendForAnalysis   float64 `mapstructure:"min_spend_for_analysis"`
	CPAThreshold          float64 `mapstructure:"cpa_threshold"`
	DaysToAnalyze         int     `mapstructure:"days_to_analyze"`
	MinCampaignNameLength int     `mapstructure:"min_campaign_name_length"`
	BudgetExhaustionRatio float64 `mapstructure:"budget_exhaustion_ratio"`
	AlertScoreThreshold   int     `mapstructure:"alert_score_threshold"`
}

type Audit struct {
	RunTimeout                 time.Duration `mapstructure:"audit_run_timeout"`
	ExtendedRules              bool          `mapstructure:"audit_extended_rules"`
	ConversionTrackingBaseline int           `mapstructure:"audit_conversion_tracking_baseline"`
}

type Notification struct {
	EmailEnabled      bool     `mapstructure:"email_enabled"`
	SendGridAPIKey    string   `mapstructure:"sendgrid_api_key"`
	EmailFrom         string   `mapstructure:"email_from"`
	EmailFromName     string   `mapstructure:"email_from_name"`
	EmailTo           []string `mapstructure:"email_to"`
	SMTPHost          string   `mapstructure:"smtp_host"`
	SMTPPort          int      `mapstructure:"smtp_port"`
	SMTPUsername      string   `mapstructure:"smtp_username"`
	SMTPPassword      string   `mapstructure:"smtp_password"`
	SlackEnabled      bool     `mapstructure:"slack_enabled"`
	SlackWebhookURL   string   `mapstructure:"slack_webhook_url"`
	RequestsPerMinute int      `mapstructure:"notifier_requests_per_minute"`
}

type HealthCheck struct {
	CronSchedule string `mapstructure:"health_check_cron"`
	Enabled      bool   `mapstructure:"health_check_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_health?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")

	viper.SetDefault("META_MAX_PAGES", 10)
	viper.SetDefault("META_MAX_ATTEMPTS", 3)
	viper.SetDefault("META_RETRY_BASE_DELAY", "1s")
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_MAX_CONCURRENT_FETCHES", 4)
	viper.SetDefault("META_STRUCTURE_CACHE_TTL", "1h")

	viper.SetDefault("FREQUENCY_ALERT_THRESHOLD", 2.5)
	viper.SetDefault("FREQUENCY_CRITICAL_THRESHOLD", 3.5)
	viper.SetDefault("MIN_ROAS", 2.0)
	viper.SetDefault("MIN_CTR", 0.8)
	viper.SetDefault("MIN_DAILY_SPEND", 10)
	viper.SetDefault("MIN_SPEND_FOR_ANALYSIS", 50)
	viper.SetDefault("CPA_THRESHOLD", 50)
	viper.SetDefault("DAYS_TO_ANALYZE", 7)
	viper.SetDefault("MIN_CAMPAIGN_NAME_LENGTH", 3)
	viper.SetDefault("BUDGET_EXHAUSTION_RATIO", 0.95)
	viper.SetDefault("ALERT_SCORE_THRESHOLD", 70)

	viper.SetDefault("AUDIT_RUN_TIMEOUT", "10m")
	viper.SetDefault("AUDIT_EXTENDED_RULES", false)
	viper.SetDefault("AUDIT_CONVERSION_TRACKING_BASELINE", domain.MaxConversionTracking)

	viper.SetDefault("EMAIL_ENABLED", false)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("EMAIL_FROM_NAME", "Ads Health Monitor")
	viper.SetDefault("EMAIL_TO", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 25)
	viper.SetDefault("SLACK_ENABLED", false)
	viper.SetDefault("SLACK_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFIER_REQUESTS_PER_MINUTE", 30)

	viper.SetDefault("HEALTH_CHECK_CRON", "0 9 * * *") // Todos os dias às 9h da manhã
	viper.SetDefault("HEALTH_CHECK_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.finalize()

	return config, nil
}

func (c *Config) finalize() {
	if c.Meta.URL == "" {
		c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)
	}

	c.Notification.EmailTo = trimAll(c.Notification.EmailTo)
	c.Server.AllowedOrigins = trimAll(c.Server.AllowedOrigins)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Domain converte os limites configurados para o tipo usado pelo núcleo
func (t Thresholds) Domain() domain.Thresholds {
	return domain.Thresholds{
		FrequencyWarning:      t.FrequencyAlert,
		FrequencyCritical:     t.FrequencyCritical,
		MinROAS:               t.MinROAS,
		MinCTR:                t.MinCTR,
		MinDailySpend:         t.MinDailySpend,
		MaterialitySpend:      t.MinSpendForAnalysis,
		CPAThreshold:          t.CPAThreshold,
		AnalysisDays:          t.DaysToAnalyze,
		MinCampaignNameLength: t.MinCampaignNameLength,
		BudgetExhaustionRatio: t.BudgetExhaustionRatio,
		AlertScoreThreshold:   t.AlertScoreThreshold,
	}
}

// Validate falha antes de qualquer chamada externa se a configuração não permitir uma execução
func (c *Config) Validate() error {
	problems := make([]string, 0)

	if c.Meta.AdAccountID == "" {
		problems = append(problems, "META_AD_ACCOUNT_ID é obrigatório")
	} else if !strings.HasPrefix(c.Meta.AdAccountID, "act_") {
		problems = append(problems, "META_AD_ACCOUNT_ID deve começar com 'act_'")
	}

	if c.Meta.AccessToken == "" {
		problems = append(problems, "META_ACCESS_TOKEN é obrigatório")
	}

	t := c.Thresholds
	if t.FrequencyAlert <= 0 || t.FrequencyCritical > 10 {
		problems = append(problems, "limites de frequência devem estar entre 0 e 10")
	}
	if t.FrequencyAlert >= t.FrequencyCritical {
		problems = append(problems, "FREQUENCY_ALERT_THRESHOLD deve ser menor que FREQUENCY_CRITICAL_THRESHOLD")
	}
	if t.MinROAS < 0 || t.MinCTR < 0 || t.MinDailySpend < 0 || t.MinSpendForAnalysis < 0 || t.CPAThreshold < 0 {
		problems = append(problems, "limites de ROAS, CTR, gasto e CPA não podem ser negativos")
	}
	if t.DaysToAnalyze < 1 {
		problems = append(problems, "DAYS_TO_ANALYZE deve ser maior que zero")
	}
	if t.BudgetExhaustionRatio <= 0 || t.BudgetExhaustionRatio > 1 {
		problems = append(problems, "BUDGET_EXHAUSTION_RATIO deve estar entre 0 e 1")
	}
	if t.AlertScoreThreshold < 0 || t.AlertScoreThreshold > domain.MaxHealthScore {
		problems = append(problems, "ALERT_SCORE_THRESHOLD deve estar entre 0 e 100")
	}

	if c.Fetch.MaxPages < 1 || c.Fetch.MaxAttempts < 1 {
		problems = append(problems, "META_MAX_PAGES e META_MAX_ATTEMPTS devem ser maiores que zero")
	}

	n := c.Notification
	if n.EmailEnabled && (n.EmailFrom == "" || len(n.EmailTo) == 0) {
		problems = append(problems, "envio de email exige EMAIL_FROM e EMAIL_TO")
	}
	if n.EmailEnabled && n.SendGridAPIKey == "" && n.SMTPHost == "" {
		problems = append(problems, "envio de email exige SENDGRID_API_KEY ou SMTP_HOST")
	}
	if n.SlackEnabled && n.SlackWebhookURL == "" {
		problems = append(problems, "SLACK_WEBHOOK_URL é obrigatório quando SLACK_ENABLED=true")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return trimmed
}
