package domain

import "time"

type HealthReport struct {
	RunID       string           `json:"run_id"`
	AccountID   string           `json:"account_id"`
	AccountName string           `json:"account_name"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
	Score       HealthScore      `json:"score"`
	Issues      []Issue          `json:"issues"`
	Warnings    []string         `json:"warnings,omitempty"`
	Summary     map[Severity]int `json:"summary"`
	Alerted     []string         `json:"alerted,omitempty"`
}

func (r *HealthReport) CriticalIssues() []Issue {
	return FilterBySeverity(r.Issues, SeverityCritical)
}

func (r *HealthReport) HighIssues() []Issue {
	return FilterBySeverity(r.Issues, SeverityHigh)
}

func (r *HealthReport) HasSeverity(s Severity) bool {
	for _, issue := range r.Issues {
		if issue.Severity == s {
			return true
		}
	}
	return false
}

func (r *HealthReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// HealthReportSummary é a linha persistida no histórico de execuções
type HealthReportSummary struct {
	RunID         string    `json:"run_id"`
	AccountID     string    `json:"account_id"`
	Score         int       `json:"score"`
	Grade         Grade     `json:"grade"`
	CriticalCount int       `json:"critical_count"`
	HighCount     int       `json:"high_count"`
	MediumCount   int       `json:"medium_count"`
	LowCount      int       `json:"low_count"`
	CreatedAt     time.Time `json:"created_at"`
}
