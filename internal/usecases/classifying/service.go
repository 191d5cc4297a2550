package classifying

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

type Classifier interface {
	Classify(snapshot *domain.AccountSnapshot) []domain.Issue
}

type rule struct {
	severity       domain.Severity
	category       domain.IssueCategory
	recommendation string
}

var catalog = map[domain.IssueType]rule{
	domain.IssueCriticalFrequency: {
		severity:       domain.SeverityCritical,
		category:       domain.IssueCategoryCreativeFatigue,
		recommendation: "Refresh creative immediately",
	},
	domain.IssueHighFrequency: {
		severity:       domain.SeverityHigh,
		category:       domain.IssueCategoryCreativeFatigue,
		recommendation: "Prepare new creative variants",
	},
	domain.IssueDisapprovedAds: {
		severity:       domain.SeverityCritical,
		category:       domain.IssueCategoryCompliance,
		recommendation: "Review ad content against Meta policies and resubmit",
	},
	domain.IssueLowROAS: {
		severity:       domain.SeverityHigh,
		category:       domain.IssueCategoryPerformance,
		recommendation: "Optimize targeting, creative, or bid strategy to improve returns",
	},
	domain.IssueUnderspending: {
		severity:       domain.SeverityMedium,
		category:       domain.IssueCategoryBudget,
		recommendation: "Check delivery issues, increase bids, or expand targeting",
	},
	domain.IssueNoPixel: {
		severity:       domain.SeverityCritical,
		category:       domain.IssueCategoryTracking,
		recommendation: "Install Meta Pixel to track conversions and optimize delivery",
	},
	domain.IssuePixelNotFiring: {
		severity:       domain.SeverityCritical,
		category:       domain.IssueCategoryTracking,
		recommendation: "Check pixel implementation - no recent events detected",
	},
	domain.IssueBudgetExhausted: {
		severity:       domain.SeverityHigh,
		category:       domain.IssueCategoryBudget,
		recommendation: "Increase budget or pause low-performing campaigns",
	},
	domain.IssueHighCPA: {
		severity:       domain.SeverityHigh,
		category:       domain.IssueCategoryPerformance,
		recommendation: "Review targeting, creative, or pause campaign if CPA remains high",
	},
	domain.IssueInsightUnavailable: {
		severity:       domain.SeverityLow,
		category:       domain.IssueCategoryData,
		recommendation: "Re-run the health check and verify API access for this entity",
	},
}

func newIssue(issueType domain.IssueType, entityName, description string) domain.Issue {
	r, ok := catalog[issueType]
	if !ok {
		r = rule{severity: domain.SeverityLow, category: domain.IssueCategoryOther}
	}

	return domain.Issue{
		Severity:       r.severity,
		Type:           issueType,
		Category:       r.category,
		EntityName:     entityName,
		Description:    description,
		Recommendation: r.recommendation,
		Status:         domain.IssueStatusOpen,
	}
}

type Service struct {
	thresholds    domain.Thresholds
	extendedRules bool
}

func NewService(thresholds domain.Thresholds, extendedRules bool) *Service {
	return &Service{
		thresholds:    thresholds,
		extendedRules: extendedRules,
	}
}

// Classify percorre anúncios e depois campanhas e devolve as issues ordenadas por severidade.
// Entidades cujo insight falhou não passam pelas regras de métricas.
func (s *Service) Classify(snapshot *domain.AccountSnapshot) []domain.Issue {
	issues := make([]domain.Issue, 0)
	if snapshot == nil {
		return issues
	}

	if s.extendedRules {
		issues = append(issues, classifyPixels(snapshot)...)
	}

	for _, ad := range snapshot.Ads {
		if ad == nil {
			continue
		}
		issues = append(issues, s.classifyAd(ad)...)
	}

	days := snapshot.AnalysisDays
	if days < 1 {
		days = s.thresholds.AnalysisDays
	}
	for _, c := range snapshot.Campaigns {
		if c == nil {
			continue
		}
		issues = append(issues, s.classifyCampaign(c, days)...)
	}

	domain.SortIssues(issues)

	logrus.WithFields(logrus.Fields{
		"account_id": snapshot.ID,
		"issues":     len(issues),
		"extended":   s.extendedRules,
	}).Debug("classifying: issues classificadas")

	return issues
}

func (s *Service) classifyAd(ad *domain.Ad) []domain.Issue {
	issues := make([]domain.Issue, 0)

	if ad.Insight.Failed() {
		if s.extendedRules {
			issues = append(issues, newIssue(domain.IssueInsightUnavailable, ad.Name,
				fmt.Sprintf("Ad '%s' insights could not be fetched: %v", ad.Name, ad.Insight.Err)))
		}
	} else {
		switch {
		case ad.Frequency > s.thresholds.FrequencyCritical:
			issues = append(issues, newIssue(domain.IssueCriticalFrequency, ad.Name,
				fmt.Sprintf("Ad '%s' has critical frequency: %.2f", ad.Name, ad.Frequency)))
		case ad.Frequency > s.thresholds.FrequencyWarning:
			issues = append(issues, newIssue(domain.IssueHighFrequency, ad.Name,
				fmt.Sprintf("Ad '%s' has high frequency: %.2f", ad.Name, ad.Frequency)))
		}
	}

	// reprovação vem da estrutura e independe do insight
	if ad.EffectiveStatus == domain.ReviewStatusDisapproved {
		issues = append(issues, newIssue(domain.IssueDisapprovedAds, ad.Name,
			fmt.Sprintf("Ad '%s' was disapproved", ad.Name)))
	}

	return issues
}

func (s *Service) classifyCampaign(c *domain.Campaign, days int) []domain.Issue {
	issues := make([]domain.Issue, 0)

	if c.Insight.Failed() {
		if s.extendedRules {
			issues = append(issues, newIssue(domain.IssueInsightUnavailable, c.Name,
				fmt.Sprintf("Campaign '%s' insights could not be fetched: %v", c.Name, c.Insight.Err)))
		}
		return issues
	}

	if !c.IsActive() {
		return issues
	}

	if c.Spend >= s.thresholds.MaterialitySpend && c.ROAS < s.thresholds.MinROAS {
		issues = append(issues, newIssue(domain.IssueLowROAS, c.Name,
			fmt.Sprintf("Campaign '%s' has low ROAS: %.2f", c.Name, c.ROAS)))
	}

	floor := s.thresholds.UnderspendFloor(days)
	if c.Spend < floor {
		issues = append(issues, newIssue(domain.IssueUnderspending, c.Name,
			fmt.Sprintf("Campaign '%s' spent %.2f in the last %d days (expected at least %.2f)", c.Name, c.Spend, days, floor)))
	}

	if !s.extendedRules {
		return issues
	}

	if c.Budget.Kind == domain.BudgetKindDaily && c.Budget.IsSet() {
		capacity := c.Budget.Amount * float64(days)
		if c.Spend >= s.thresholds.BudgetExhaustionRatio*capacity {
			issues = append(issues, newIssue(domain.IssueBudgetExhausted, c.Name,
				fmt.Sprintf("Campaign '%s' used %.0f%% of its daily budget", c.Name, c.Spend/capacity*100)))
		}
	}

	if c.Conversions > 0 && c.CPA > s.thresholds.CPAThreshold {
		issues = append(issues, newIssue(domain.IssueHighCPA, c.Name,
			fmt.Sprintf("Campaign '%s' has high CPA: %.2f", c.Name, c.CPA)))
	}

	return issues
}

func classifyPixels(snapshot *domain.AccountSnapshot) []domain.Issue {
	issues := make([]domain.Issue, 0)

	if !snapshot.HasPixel {
		return append(issues, newIssue(domain.IssueNoPixel, snapshot.Name,
			fmt.Sprintf("Account '%s' has no Meta Pixel installed", accountLabel(snapshot))))
	}

	for _, p := range snapshot.Pixels {
		if p.IsUnavailable {
			issues = append(issues, newIssue(domain.IssuePixelNotFiring, p.Name,
				fmt.Sprintf("Pixel '%s' is not firing", p.Name)))
		}
	}

	return issues
}

func accountLabel(snapshot *domain.AccountSnapshot) string {
	if snapshot.Name != "" {
		return snapshot.Name
	}
	return snapshot.ID
}
