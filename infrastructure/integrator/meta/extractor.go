package meta

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/pkg/utils"
)

// Formato de data usado pela Graph API em created_time e last_fired_time
const graphTimeLayout = "2006-01-02T15:04:05-0700"

// ParseFloat converte números que a Graph API envia como string. Ausente ou inválido vira 0.
func ParseFloat(value, field string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to float")
		return 0
	}

	return f
}

// ParseInt aceita inteiros e decimais ("12" ou "12.0"). Ausente ou inválido vira 0.
func ParseInt(value, field string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if i, err := strconv.Atoi(value); err == nil {
		return i
	}

	return int(ParseFloat(value, field))
}

func parseGraphTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{graphTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithField("value", value).Debug("insights: unparseable graph timestamp")
	return nil
}

// ExtractActionCount soma as ocorrências de um action_type
func ExtractActionCount(actions []domain.Action, actionType string) float64 {
	var total float64
	for _, a := range actions {
		if a.ActionType == actionType {
			total += a.Value
		}
	}
	return total
}

// extractPurchase usa o primeiro tipo de compra presente, sem somar tipos diferentes
// (omni_purchase já inclui as compras do pixel).
func extractPurchase(actions []domain.Action) float64 {
	for _, actionType := range metadomain.PurchaseActionTypes {
		for _, a := range actions {
			if a.ActionType == actionType {
				return ExtractActionCount(actions, actionType)
			}
		}
	}
	return 0
}

func ExtractPurchaseCount(actions []domain.Action) float64 {
	return extractPurchase(actions)
}

func ExtractPurchaseValue(actionValues []domain.Action) float64 {
	return extractPurchase(actionValues)
}

func factoryActions(raw []metadomain.Action) []domain.Action {
	actions := make([]domain.Action, 0, len(raw))
	for _, a := range raw {
		actions = append(actions, domain.Action{
			ActionType: a.ActionType,
			Value:      ParseFloat(a.Value, "action:"+a.ActionType),
		})
	}
	return actions
}

// FactoryInsight converte o registro cru. Um registro nil representa ausência de entrega.
func FactoryInsight(raw *metadomain.Insight) *domain.Insight {
	if raw == nil {
		return &domain.Insight{
			Actions:      []domain.Action{},
			ActionValues: []domain.Action{},
		}
	}

	insight := &domain.Insight{
		Spend:        ParseFloat(raw.Spend, "spend"),
		Impressions:  ParseInt(raw.Impressions, "impressions"),
		Reach:        ParseInt(raw.Reach, "reach"),
		Clicks:       ParseInt(raw.Clicks, "clicks"),
		Frequency:    ParseFloat(raw.Frequency, "frequency"),
		CPC:          ParseFloat(raw.CPC, "cpc"),
		Actions:      factoryActions(raw.Actions),
		ActionValues: factoryActions(raw.ActionValues),
	}

	if strings.TrimSpace(raw.CTR) != "" {
		insight.CTR = ParseFloat(raw.CTR, "ctr")
	} else if insight.Impressions > 0 {
		insight.CTR = float64(insight.Clicks) / float64(insight.Impressions) * 100
	}

	if insight.CPC == 0 && insight.Clicks > 0 {
		insight.CPC = utils.RoundWithTwoDecimalPlace(insight.Spend / float64(insight.Clicks))
	}

	if insight.Frequency == 0 && insight.Reach > 0 {
		insight.Frequency = float64(insight.Impressions) / float64(insight.Reach)
	}

	return insight
}

func FactoryAccountStatus(code int) domain.AccountStatus {
	switch code {
	case metadomain.AccountStatusActive:
		return domain.AccountStatusActive
	case metadomain.AccountStatusDisabled,
		metadomain.AccountStatusUnsettled,
		metadomain.AccountStatusPendingRiskReview,
		metadomain.AccountStatusPendingSettlement,
		metadomain.AccountStatusInGracePeriod,
		metadomain.AccountStatusPendingClosure,
		metadomain.AccountStatusClosed,
		metadomain.AccountStatusAnyClosed:
		return domain.AccountStatusDisabled
	default:
		return domain.AccountStatusUnknown
	}
}

// FactoryBudget converte o orçamento de centavos para a unidade da moeda. Diário tem precedência.
func FactoryBudget(daily, lifetime string) domain.Budget {
	if amount := ParseFloat(daily, "daily_budget"); amount > 0 {
		return domain.Budget{Kind: domain.BudgetKindDaily, Amount: amount / 100}
	}
	if amount := ParseFloat(lifetime, "lifetime_budget"); amount > 0 {
		return domain.Budget{Kind: domain.BudgetKindLifetime, Amount: amount / 100}
	}
	return domain.Budget{}
}

func FactoryCampaign(raw metadomain.Campaign) *domain.Campaign {
	return &domain.Campaign{
		ID:        raw.ID,
		Name:      raw.Name,
		Objective: raw.Objective,
		Status:    domain.ParseLifecycleStatus(raw.Status),
		Budget:    FactoryBudget(raw.DailyBudget, raw.LifetimeBudget),
		Insight:   domain.InsightFailed(domain.ErrInsightNotFetched),
	}
}

func FactoryAdSet(raw metadomain.AdSet) *domain.AdSet {
	return &domain.AdSet{
		ID:               raw.ID,
		Name:             raw.Name,
		Status:           domain.ParseLifecycleStatus(raw.Status),
		CampaignID:       raw.CampaignID,
		OptimizationGoal: raw.OptimizationGoal,
	}
}

func FactoryAd(raw metadomain.Ad) *domain.Ad {
	ad := &domain.Ad{
		ID:              raw.ID,
		Name:            raw.Name,
		Status:          domain.ParseLifecycleStatus(raw.Status),
		EffectiveStatus: domain.ParseReviewStatus(raw.EffectiveStatus),
		AdSetID:         raw.AdSetID,
		CampaignID:      raw.CampaignID,
		Insight:         domain.InsightFailed(domain.ErrInsightNotFetched),
	}

	if raw.Creative != nil {
		ad.CreativeFormat = strings.ToLower(raw.Creative.ObjectType)
	}
	if created := parseGraphTime(raw.CreatedTime); created != nil {
		ad.CreatedTime = *created
	}

	return ad
}

func FactoryPixel(raw metadomain.AdsPixel) domain.Pixel {
	return domain.Pixel{
		ID:            raw.ID,
		Name:          raw.Name,
		IsUnavailable: raw.IsUnavailable,
		LastFiredTime: parseGraphTime(raw.LastFiredTime),
	}
}

// ApplyCampaignInsight copia as métricas da janela para a campanha. Com falha na busca as
// métricas ficam zeradas e o resultado carrega o erro.
func ApplyCampaignInsight(c *domain.Campaign, result domain.InsightResult) {
	c.Insight = result
	if result.Failed() || result.Insight == nil {
		return
	}

	insight := result.Insight
	c.Spend = insight.Spend
	c.Impressions = insight.Impressions
	c.Clicks = insight.Clicks
	c.CTR = insight.CTR
	c.CPC = insight.CPC
	c.Frequency = insight.Frequency
	c.Conversions = int(ExtractPurchaseCount(insight.Actions))
	c.ConversionValue = ExtractPurchaseValue(insight.ActionValues)

	if c.Spend > 0 {
		c.ROAS = c.ConversionValue / c.Spend
	}
	if c.Conversions > 0 {
		c.CPA = c.Spend / float64(c.Conversions)
	}
}

func ApplyAdInsight(a *domain.Ad, result domain.InsightResult) {
	a.Insight = result
	if result.Failed() || result.Insight == nil {
		return
	}

	insight := result.Insight
	a.Frequency = insight.Frequency
	a.CTR = insight.CTR
	a.Impressions = insight.Impressions
	a.Reach = insight.Reach
	a.Spend = insight.Spend
}
