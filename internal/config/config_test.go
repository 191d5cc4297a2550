package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Meta: Meta{
			BaseURL:     "https://graph.facebook.com",
			Version:     "v22.0",
			AccessToken: "token",
			AdAccountID: "act_123",
		},
		Fetch: Fetch{
			MaxPages:       10,
			MaxAttempts:    3,
			RetryBaseDelay: time.Second,
		},
		Thresholds: Thresholds{
			FrequencyAlert:        2.5,
			FrequencyCritical:     3.5,
			MinROAS:               2.0,
			MinCTR:                0.8,
			MinDailySpend:         10,
			MinSpendForAnalysis:   50,
			CPAThreshold:          50,
			DaysToAnalyze:         7,
			MinCampaignNameLength: 3,
			BudgetExhaustionRatio: 0.95,
			AlertScoreThreshold:   70,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Configuração padrão válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "Conta ausente",
			mutate:  func(c *Config) { c.Meta.AdAccountID = "" },
			wantErr: "META_AD_ACCOUNT_ID é obrigatório",
		},
		{
			name:    "Conta sem prefixo act_",
			mutate:  func(c *Config) { c.Meta.AdAccountID = "123" },
			wantErr: "deve começar com 'act_'",
		},
		{
			name:    "Token ausente",
			mutate:  func(c *Config) { c.Meta.AccessToken = "" },
			wantErr: "META_ACCESS_TOKEN é obrigatório",
		},
		{
			name: "Alerta maior ou igual ao crítico",
			mutate: func(c *Config) {
				c.Thresholds.FrequencyAlert = 3.5
				c.Thresholds.FrequencyCritical = 3.5
			},
			wantErr: "deve ser menor que FREQUENCY_CRITICAL_THRESHOLD",
		},
		{
			name:    "Frequência crítica acima de 10",
			mutate:  func(c *Config) { c.Thresholds.FrequencyCritical = 12 },
			wantErr: "entre 0 e 10",
		},
		{
			name:    "Janela de análise zerada",
			mutate:  func(c *Config) { c.Thresholds.DaysToAnalyze = 0 },
			wantErr: "DAYS_TO_ANALYZE",
		},
		{
			name: "Email habilitado sem destinatários",
			mutate: func(c *Config) {
				c.Notification.EmailEnabled = true
				c.Notification.SendGridAPIKey = "key"
				c.Notification.EmailFrom = "alerts@example.com"
			},
			wantErr: "EMAIL_TO",
		},
		{
			name: "Email habilitado sem SendGrid nem SMTP",
			mutate: func(c *Config) {
				c.Notification.EmailEnabled = true
				c.Notification.EmailFrom = "alerts@example.com"
				c.Notification.EmailTo = []string{"ops@example.com"}
			},
			wantErr: "SENDGRID_API_KEY ou SMTP_HOST",
		},
		{
			name: "Email via SMTP sem chave do SendGrid",
			mutate: func(c *Config) {
				c.Notification.EmailEnabled = true
				c.Notification.SMTPHost = "smtp.loja.com"
				c.Notification.SMTPPort = 587
				c.Notification.EmailFrom = "alerts@example.com"
				c.Notification.EmailTo = []string{"ops@example.com"}
			},
		},
		{
			name:    "Slack habilitado sem webhook",
			mutate:  func(c *Config) { c.Notification.SlackEnabled = true },
			wantErr: "SLACK_WEBHOOK_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestThresholds_Domain(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, domain.DefaultThresholds(), cfg.Thresholds.Domain())
}

func TestConfig_finalize(t *testing.T) {
	cfg := validConfig()
	cfg.Meta.BaseURL = "https://graph.facebook.com/"
	cfg.Notification.EmailTo = []string{" ops@example.com ", "", "ads@example.com"}
	cfg.Database = Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/ads"}

	cfg.finalize()

	assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Meta.URL)
	assert.Equal(t, []string{"ops@example.com", "ads@example.com"}, cfg.Notification.EmailTo)
	assert.Equal(t, "postgres://u:p@db:5432/ads", cfg.Database.DSN)
}
