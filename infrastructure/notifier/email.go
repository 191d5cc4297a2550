package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"golang.org/x/time/rate"
)

var ErrNoRecipients = errors.New("nenhum destinatário de email configurado")

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

var emailTemplate = template.Must(template.New("email-html").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<h1>Meta Ads Health Check</h1>
<p><strong>Account:</strong> {{.AccountName}} ({{.AccountID}})</p>
<p style="font-size: 32px; font-weight: bold;">{{.Score}}/100 ({{.Grade}} - {{.Status}})</p>
<p>Critical: {{index .Summary "CRITICAL"}} | High: {{index .Summary "HIGH"}} | Medium: {{index .Summary "MEDIUM"}} | Low: {{index .Summary "LOW"}}</p>
{{if .Issues}}<h2>Issues Detected</h2>
{{range .Issues}}<div style="border-left: 4px solid #dc3545; padding: 8px; margin: 8px 0;">
<strong>[{{.Severity}}] {{.Category}}: {{.Description}}</strong><br/>
<span style="color: #666;">{{.Recommendation}}</span>
</div>
{{end}}{{end}}{{if .Warnings}}<h3>Warnings</h3>
<ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>{{end}}
<p style="font-size: 12px; color: #666;">Run {{.RunID}}</p>
</body>
</html>`))

type smtpSendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// smtpTransport é o envio alternativo quando não há chave do SendGrid
type smtpTransport struct {
	addr string
	auth smtp.Auth
	send smtpSendFunc
}

func newSMTPTransport(cfg config.Notification) *smtpTransport {
	port := cfg.SMTPPort
	if port == 0 {
		port = 25
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &smtpTransport{
		addr: net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(port)),
		auth: auth,
		send: smtp.SendMail,
	}
}

type emailView struct {
	*domain.AlertMessage
	Issues  []domain.Issue
	Summary map[string]int
}

// EmailChannel envia pelo SendGrid e cai para SMTP quando não há chave configurada
type EmailChannel struct {
	sender  mailSender
	smtp    *smtpTransport
	from    *mail.Email
	to      []string
	limiter *rate.Limiter
}

func NewEmailChannel(cfg config.Notification) *EmailChannel {
	channel := &EmailChannel{
		from:    mail.NewEmail(cfg.EmailFromName, cfg.EmailFrom),
		to:      cfg.EmailTo,
		limiter: NewLimiter(cfg.RequestsPerMinute),
	}

	if cfg.SendGridAPIKey != "" {
		channel.sender = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		channel.smtp = newSMTPTransport(cfg)
	}

	return channel
}

func (c *EmailChannel) Name() domain.AlertChannel {
	return domain.AlertChannelEmail
}

func (c *EmailChannel) Send(ctx context.Context, msg *domain.AlertMessage) error {
	if len(c.to) == 0 {
		return ErrNoRecipients
	}

	html, err := RenderEmailHTML(msg)
	if err != nil {
		return err
	}

	if err := wait(ctx, c.limiter); err != nil {
		return err
	}

	if c.sender == nil {
		return c.sendSMTP(msg, html)
	}

	message := c.buildMail(msg.Subject, RenderText(msg), html)
	response, err := c.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid respondeu status %d: %s", response.StatusCode, response.Body)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     msg.RunID,
		"recipients": len(c.to),
		"status":     response.StatusCode,
	}).Debug("notifier: email enviado")

	return nil
}

func (c *EmailChannel) sendSMTP(msg *domain.AlertMessage, html string) error {
	if c.smtp == nil {
		return errors.New("nenhum transporte de email configurado")
	}

	if err := c.smtp.send(c.smtp.addr, c.smtp.auth, c.from.Address, c.to, buildMIME(c.from, c.to, msg.Subject, html)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     msg.RunID,
		"recipients": len(c.to),
		"addr":       c.smtp.addr,
	}).Debug("notifier: email enviado via SMTP")

	return nil
}

func buildMIME(from *mail.Email, to []string, subject, html string) []byte {
	sender := from.Address
	if from.Name != "" {
		sender = fmt.Sprintf("%s <%s>", from.Name, from.Address)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", sender)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	buf.WriteString(html)
	return buf.Bytes()
}

func (c *EmailChannel) buildMail(subject, text, html string) *mail.SGMailV3 {
	if len(c.to) == 1 {
		return mail.NewSingleEmail(c.from, subject, mail.NewEmail("", c.to[0]), text, html)
	}

	message := mail.NewV3Mail()
	message.SetFrom(c.from)
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, to := range c.to {
		personalization.AddTos(mail.NewEmail("", to))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", text), mail.NewContent("text/html", html))

	return message
}

func RenderEmailHTML(msg *domain.AlertMessage) (string, error) {
	summary := make(map[string]int, len(msg.Summary))
	for severity, count := range msg.Summary {
		summary[string(severity)] = count
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, emailView{AlertMessage: msg, Issues: msg.Issues(), Summary: summary}); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

// RenderText é a versão texto usada no corpo alternativo do email e no Slack
func RenderText(msg *domain.AlertMessage) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Account: %s (%s)\n", msg.AccountName, msg.AccountID)
	fmt.Fprintf(&buf, "Score: %d/100 (%s - %s)\n", msg.Score, msg.Grade, msg.Status)
	for _, issue := range msg.Issues() {
		fmt.Fprintf(&buf, "- [%s] %s\n  %s\n", issue.Severity, issue.Description, issue.Recommendation)
	}
	return buf.String()
}
