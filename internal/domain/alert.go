package domain

type AlertChannel string

const (
	AlertChannelEmail AlertChannel = "email"
	AlertChannelSlack AlertChannel = "slack"
)

// AlertMessage é o conteúdo entregue aos canais de notificação
type AlertMessage struct {
	Subject        string           `json:"subject"`
	RunID          string           `json:"run_id"`
	AccountID      string           `json:"account_id"`
	AccountName    string           `json:"account_name"`
	Score          int              `json:"score"`
	Grade          Grade            `json:"grade"`
	Status         string           `json:"status"`
	CriticalIssues []Issue          `json:"critical_issues"`
	HighIssues     []Issue          `json:"high_issues"`
	Summary        map[Severity]int `json:"summary"`
	Warnings       []string         `json:"warnings,omitempty"`
}

// Issues retorna críticas seguidas das de severidade alta
func (m *AlertMessage) Issues() []Issue {
	issues := make([]Issue, 0, len(m.CriticalIssues)+len(m.HighIssues))
	issues = append(issues, m.CriticalIssues...)
	return append(issues, m.HighIssues...)
}
