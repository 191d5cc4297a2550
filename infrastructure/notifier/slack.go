package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"golang.org/x/time/rate"
)

const slackTimeout = 10 * time.Second

type SlackMessage struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks,omitempty"`
}

type SlackBlock struct {
	Type   string      `json:"type"`
	Text   *SlackText  `json:"text,omitempty"`
	Fields []SlackText `json:"fields,omitempty"`
}

type SlackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type SlackChannel struct {
	client     *resty.Client
	webhookURL string
	limiter    *rate.Limiter
}

func NewSlackChannel(cfg config.Notification) *SlackChannel {
	client := resty.New().SetTimeout(slackTimeout)
	client.JSONMarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
	client.JSONUnmarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal

	return &SlackChannel{
		client:     client,
		webhookURL: cfg.SlackWebhookURL,
		limiter:    NewLimiter(cfg.RequestsPerMinute),
	}
}

func (c *SlackChannel) Name() domain.AlertChannel {
	return domain.AlertChannelSlack
}

func (c *SlackChannel) Send(ctx context.Context, msg *domain.AlertMessage) error {
	if err := wait(ctx, c.limiter); err != nil {
		return err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(BuildSlackMessage(msg)).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("slack webhook respondeu status %d: %s", resp.StatusCode(), resp.String())
	}

	logrus.WithField("run_id", msg.RunID).Debug("notifier: mensagem enviada ao Slack")

	return nil
}

func BuildSlackMessage(msg *domain.AlertMessage) SlackMessage {
	payload := SlackMessage{
		Text: msg.Subject,
		Blocks: []SlackBlock{
			{
				Type: "header",
				Text: &SlackText{Type: "plain_text", Text: msg.Subject},
			},
			{
				Type: "section",
				Fields: []SlackText{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Account:*\n%s", msg.AccountName)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Grade:*\n%s (%s)", msg.Grade, msg.Status)},
				},
			},
			{Type: "divider"},
		},
	}

	issues := msg.Issues()
	if len(issues) == 0 {
		return payload
	}

	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, fmt.Sprintf("*[%s]* %s\n_%s_", issue.Severity, issue.Description, issue.Recommendation))
	}
	payload.Blocks = append(payload.Blocks, SlackBlock{
		Type: "section",
		Text: &SlackText{Type: "mrkdwn", Text: strings.Join(lines, "\n")},
	})

	return payload
}
