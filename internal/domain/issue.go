package domain

import "sort"

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Severities em ordem decrescente
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Rank define a ordem total CRITICAL > HIGH > MEDIUM > LOW. Valores desconhecidos ficam abaixo de LOW.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

type IssueType string

const (
	IssueCriticalFrequency  IssueType = "critical_frequency"
	IssueHighFrequency      IssueType = "high_frequency"
	IssueDisapprovedAds     IssueType = "disapproved_ads"
	IssueLowROAS            IssueType = "low_roas"
	IssueUnderspending      IssueType = "underspending"
	IssueNoPixel            IssueType = "no_pixel"
	IssuePixelNotFiring     IssueType = "pixel_not_firing"
	IssueBudgetExhausted    IssueType = "budget_exhausted"
	IssueHighCPA            IssueType = "high_cpa"
	IssueInsightUnavailable IssueType = "insight_unavailable"
)

type IssueCategory string

const (
	IssueCategoryCreativeFatigue IssueCategory = "Creative Fatigue"
	IssueCategoryCompliance      IssueCategory = "Compliance"
	IssueCategoryPerformance     IssueCategory = "Performance"
	IssueCategoryBudget          IssueCategory = "Budget"
	IssueCategoryTracking        IssueCategory = "Tracking"
	IssueCategoryData            IssueCategory = "Data"
	IssueCategoryOther           IssueCategory = "Other"
)

type IssueStatus string

const IssueStatusOpen IssueStatus = "OPEN"

type Issue struct {
	Severity       Severity      `json:"severity"`
	Type           IssueType     `json:"type"`
	Category       IssueCategory `json:"category"`
	EntityName     string        `json:"entity_name,omitempty"`
	Description    string        `json:"description"`
	Recommendation string        `json:"recommendation"`
	Status         IssueStatus   `json:"status"`
}

// SortIssues ordena por severidade decrescente preservando a ordem de entrada entre iguais
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() > issues[j].Severity.Rank()
	})
}

func FilterBySeverity(issues []Issue, severities ...Severity) []Issue {
	filtered := make([]Issue, 0)
	for _, issue := range issues {
		for _, s := range severities {
			if issue.Severity == s {
				filtered = append(filtered, issue)
				break
			}
		}
	}
	return filtered
}

func CountBySeverity(issues []Issue) map[Severity]int {
	counts := make(map[Severity]int, len(Severities))
	for _, s := range Severities {
		counts[s] = 0
	}
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
