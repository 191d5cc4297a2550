package meta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func TestParseFloatAndInt(t *testing.T) {
	assert.Equal(t, 12.34, ParseFloat("12.34", "spend"))
	assert.Equal(t, 0.0, ParseFloat("", "spend"))
	assert.Equal(t, 0.0, ParseFloat("abc", "spend"))
	assert.Equal(t, 1500, ParseInt("1500", "impressions"))
	assert.Equal(t, 12, ParseInt("12.0", "impressions"))
	assert.Equal(t, 0, ParseInt("n/a", "impressions"))
}

func TestExtractPurchase_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		actions []domain.Action
		want    float64
	}{
		{
			name: "purchase tem precedência",
			actions: []domain.Action{
				{ActionType: "omni_purchase", Value: 9},
				{ActionType: "purchase", Value: 3},
			},
			want: 3,
		},
		{
			name: "pixel purchase quando não há purchase",
			actions: []domain.Action{
				{ActionType: "link_click", Value: 40},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: 5},
				{ActionType: "omni_purchase", Value: 7},
			},
			want: 5,
		},
		{
			name:    "omni_purchase como último recurso",
			actions: []domain.Action{{ActionType: "omni_purchase", Value: 7}},
			want:    7,
		},
		{
			name:    "sem compras",
			actions: []domain.Action{{ActionType: "link_click", Value: 40}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPurchaseCount(tt.actions))
		})
	}
}

func TestFactoryInsight(t *testing.T) {
	t.Run("Converte strings e calcula CTR ausente", func(t *testing.T) {
		insight := FactoryInsight(&metadomain.Insight{
			Spend:        "200.00",
			Impressions:  "10000",
			Reach:        "4000",
			Clicks:       "150",
			Actions:      []metadomain.Action{{ActionType: "purchase", Value: "4"}},
			ActionValues: []metadomain.Action{{ActionType: "purchase", Value: "600.00"}},
		})

		assert.Equal(t, 200.0, insight.Spend)
		assert.Equal(t, 10000, insight.Impressions)
		assert.InDelta(t, 1.5, insight.CTR, 0.0001)
		assert.InDelta(t, 1.33, insight.CPC, 0.0001)
		assert.InDelta(t, 2.5, insight.Frequency, 0.0001)
		assert.Len(t, insight.Actions, 1)
	})

	t.Run("Registro nil é entrega zero", func(t *testing.T) {
		insight := FactoryInsight(nil)
		require.NotNil(t, insight)
		assert.Zero(t, insight.Spend)
		assert.Empty(t, insight.Actions)
	})
}

func TestFactoryBudget(t *testing.T) {
	assert.Equal(t, domain.Budget{Kind: domain.BudgetKindDaily, Amount: 50}, FactoryBudget("5000", ""))
	assert.Equal(t, domain.Budget{Kind: domain.BudgetKindLifetime, Amount: 1200.5}, FactoryBudget("", "120050"))
	assert.Equal(t, domain.Budget{Kind: domain.BudgetKindDaily, Amount: 10}, FactoryBudget("1000", "90000"))
	assert.False(t, FactoryBudget("", "0").IsSet())
}

func TestFactoryStatuses(t *testing.T) {
	assert.Equal(t, domain.AccountStatusActive, FactoryAccountStatus(1))
	assert.Equal(t, domain.AccountStatusDisabled, FactoryAccountStatus(2))
	assert.Equal(t, domain.AccountStatusUnknown, FactoryAccountStatus(0))

	ad := FactoryAd(metadomain.Ad{
		ID:              "ad1",
		Status:          "ACTIVE",
		EffectiveStatus: "SOMETHING_NEW",
		CreatedTime:     "2026-10-01T10:00:00-0300",
		Creative:        &metadomain.Creative{ObjectType: "VIDEO"},
	})
	assert.Equal(t, domain.LifecycleStatusActive, ad.Status)
	assert.Equal(t, domain.ReviewStatusUnknown, ad.EffectiveStatus)
	assert.Equal(t, "video", ad.CreativeFormat)
	assert.False(t, ad.CreatedTime.IsZero())

	campaign := FactoryCampaign(metadomain.Campaign{ID: "c1", Status: "WEIRD"})
	assert.Equal(t, domain.LifecycleStatusUnknown, campaign.Status)
	assert.True(t, campaign.Insight.Failed())
}

func TestApplyCampaignInsight(t *testing.T) {
	t.Run("Calcula ROAS e CPA a partir das compras", func(t *testing.T) {
		c := &domain.Campaign{ID: "c1"}
		ApplyCampaignInsight(c, domain.InsightOK(&domain.Insight{
			Spend:        100,
			CTR:          1.2,
			Actions:      []domain.Action{{ActionType: "purchase", Value: 4}},
			ActionValues: []domain.Action{{ActionType: "purchase", Value: 250}},
		}))

		assert.Equal(t, 4, c.Conversions)
		assert.Equal(t, 250.0, c.ConversionValue)
		assert.Equal(t, 2.5, c.ROAS)
		assert.Equal(t, 25.0, c.CPA)
	})

	t.Run("Gasto zero resulta em ROAS zero", func(t *testing.T) {
		c := &domain.Campaign{ID: "c1"}
		ApplyCampaignInsight(c, domain.InsightOK(&domain.Insight{
			ActionValues: []domain.Action{{ActionType: "purchase", Value: 250}},
		}))
		assert.Zero(t, c.ROAS)
	})

	t.Run("Falha mantém métricas zeradas e preserva o erro", func(t *testing.T) {
		c := &domain.Campaign{ID: "c1"}
		fetchErr := errors.New("boom")
		ApplyCampaignInsight(c, domain.InsightFailed(fetchErr))

		assert.Zero(t, c.Spend)
		assert.True(t, c.Insight.Failed())
		assert.ErrorIs(t, c.Insight.Err, fetchErr)
	})
}
