package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

// Pesos das verificações binárias de cada categoria
const (
	accountActivePoints   = 5
	accountCurrencyPoints = 5
	accountTimezonePoints = 5

	activeCampaignPoints = 10
	campaignNamePoints   = 5
	campaignBudgetPoints = 5
)

type Scorer interface {
	Calculate(snapshot *domain.AccountSnapshot) domain.HealthScore
}

type Service struct {
	thresholds         domain.Thresholds
	conversionBaseline int
}

func NewService(thresholds domain.Thresholds, conversionBaseline int) *Service {
	return &Service{
		thresholds:         thresholds,
		conversionBaseline: clamp(conversionBaseline, 0, domain.MaxConversionTracking),
	}
}

// Calculate é total: qualquer snapshot bem formado produz um score, métricas ausentes contam como zero.
func (s *Service) Calculate(snapshot *domain.AccountSnapshot) domain.HealthScore {
	if snapshot == nil {
		snapshot = &domain.AccountSnapshot{}
	}

	score := domain.HealthScore{
		AccountSetup:       s.accountSetup(snapshot),
		CampaignStructure:  s.campaignStructure(snapshot),
		CreativeHealth:     s.creativeHealth(snapshot),
		AudienceQuality:    s.audienceQuality(snapshot),
		ConversionTracking: s.conversionBaseline,
		Performance:        s.performance(snapshot),
	}

	score.Total = clamp(score.Sum(), 0, domain.MaxHealthScore)
	score.Grade = domain.GradeFor(score.Total)
	score.Status = score.Grade.Status()

	logrus.WithFields(logrus.Fields{
		"account_id":          snapshot.ID,
		"account_setup":       score.AccountSetup,
		"campaign_structure":  score.CampaignStructure,
		"creative_health":     score.CreativeHealth,
		"audience_quality":    score.AudienceQuality,
		"conversion_tracking": score.ConversionTracking,
		"performance":         score.Performance,
		"total":               score.Total,
		"grade":               score.Grade,
	}).Debug("scoring: health score calculado")

	return score
}

func (s *Service) accountSetup(snapshot *domain.AccountSnapshot) int {
	points := 0
	if snapshot.Status == domain.AccountStatusActive {
		points += accountActivePoints
	}
	if strings.TrimSpace(snapshot.Currency) != "" {
		points += accountCurrencyPoints
	}
	if strings.TrimSpace(snapshot.Timezone) != "" {
		points += accountTimezonePoints
	}
	return points
}

// campaignStructure aplica tudo-ou-nada por verificação. Com zero campanhas as verificações
// universais (nome e orçamento) valem por vacuidade.
func (s *Service) campaignStructure(snapshot *domain.AccountSnapshot) int {
	points := 0

	if len(snapshot.ActiveCampaigns()) > 0 {
		points += activeCampaignPoints
	}

	allNamed, allBudgeted := true, true
	for _, c := range snapshot.Campaigns {
		if c == nil {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < s.thresholds.MinCampaignNameLength {
			allNamed = false
		}
		if !c.Budget.IsSet() {
			allBudgeted = false
		}
	}

	if allNamed {
		points += campaignNamePoints
	}
	if allBudgeted {
		points += campaignBudgetPoints
	}

	return points
}

func (s *Service) creativeHealth(snapshot *domain.AccountSnapshot) int {
	if len(snapshot.Ads) == 0 {
		return domain.MaxCreativeHealth
	}

	fatigued := 0
	for _, ad := range snapshot.Ads {
		if ad != nil && ad.Frequency > s.thresholds.FrequencyCritical {
			fatigued++
		}
	}

	ratio := float64(fatigued) / float64(len(snapshot.Ads))
	return clamp(int(math.Round(float64(domain.MaxCreativeHealth)*(1-ratio))), 0, domain.MaxCreativeHealth)
}

func (s *Service) audienceQuality(snapshot *domain.AccountSnapshot) int {
	if len(snapshot.ActiveAdSets()) > 0 {
		return domain.MaxAudienceQuality
	}
	return 0
}

func (s *Service) performance(snapshot *domain.AccountSnapshot) int {
	active := snapshot.ActiveCampaigns()

	performing := 0
	for _, c := range active {
		if c.ROAS >= s.thresholds.MinROAS && c.CTR >= s.thresholds.MinCTR {
			performing++
		}
	}

	denominator := len(active)
	if denominator < 1 {
		denominator = 1
	}

	ratio := float64(performing) / float64(denominator)
	return clamp(int(math.Round(float64(domain.MaxPerformance)*ratio)), 0, domain.MaxPerformance)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
