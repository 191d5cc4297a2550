package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func newScorer() *Service {
	return NewService(domain.DefaultThresholds(), domain.MaxConversionTracking)
}

func healthySnapshot() *domain.AccountSnapshot {
	return &domain.AccountSnapshot{
		ID:       "act_1",
		Status:   domain.AccountStatusActive,
		Currency: "USD",
		Timezone: "America/New_York",
		Campaigns: []*domain.Campaign{
			{ID: "c1", Name: "Prospecting", Status: domain.LifecycleStatusActive, Budget: domain.Budget{Kind: domain.BudgetKindDaily, Amount: 50}, ROAS: 3, CTR: 1.2},
			{ID: "c2", Name: "Retargeting", Status: domain.LifecycleStatusActive, Budget: domain.Budget{Kind: domain.BudgetKindLifetime, Amount: 900}, ROAS: 2.5, CTR: 0.9},
		},
		AdSets: []*domain.AdSet{{ID: "s1", Status: domain.LifecycleStatusActive}},
		Ads: []*domain.Ad{
			{ID: "a1", Frequency: 1.5},
			{ID: "a2", Frequency: 2.0},
		},
	}
}

func TestService_Calculate_HealthyAccount(t *testing.T) {
	score := newScorer().Calculate(healthySnapshot())

	assert.Equal(t, 15, score.AccountSetup)
	assert.Equal(t, 20, score.CampaignStructure)
	assert.Equal(t, 25, score.CreativeHealth)
	assert.Equal(t, 15, score.AudienceQuality)
	assert.Equal(t, 15, score.ConversionTracking)
	assert.Equal(t, 10, score.Performance)
	assert.Equal(t, 100, score.Total)
	assert.Equal(t, domain.GradeA, score.Grade)
	assert.Equal(t, "Excellent", score.Status)
}

func TestService_Calculate_Categories(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *domain.AccountSnapshot)
		validate func(t *testing.T, score domain.HealthScore)
	}{
		{
			name: "Conta desativada e sem fuso perde 10 pontos de configuração",
			mutate: func(s *domain.AccountSnapshot) {
				s.Status = domain.AccountStatusDisabled
				s.Timezone = ""
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 5, score.AccountSetup)
			},
		},
		{
			name: "Uma campanha com nome curto zera a verificação de nomes",
			mutate: func(s *domain.AccountSnapshot) {
				s.Campaigns[1].Name = "ab"
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 15, score.CampaignStructure)
			},
		},
		{
			name: "Uma campanha sem orçamento zera a verificação de orçamento",
			mutate: func(s *domain.AccountSnapshot) {
				s.Campaigns[0].Budget = domain.Budget{}
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 15, score.CampaignStructure)
			},
		},
		{
			name: "Sem campanhas as verificações universais valem por vacuidade",
			mutate: func(s *domain.AccountSnapshot) {
				s.Campaigns = nil
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 10, score.CampaignStructure)
				assert.Equal(t, 0, score.Performance)
			},
		},
		{
			name: "Metade dos anúncios fadigados arredonda para 13",
			mutate: func(s *domain.AccountSnapshot) {
				s.Ads[0].Frequency = 4.0
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 13, score.CreativeHealth)
			},
		},
		{
			name: "Frequência igual ao limite crítico não conta como fadiga",
			mutate: func(s *domain.AccountSnapshot) {
				s.Ads[0].Frequency = 3.5
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 25, score.CreativeHealth)
			},
		},
		{
			name: "Sem anúncios a saúde criativa é máxima",
			mutate: func(s *domain.AccountSnapshot) {
				s.Ads = nil
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 25, score.CreativeHealth)
			},
		},
		{
			name: "Sem conjunto ativo a audiência zera",
			mutate: func(s *domain.AccountSnapshot) {
				s.AdSets[0].Status = domain.LifecycleStatusPaused
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 0, score.AudienceQuality)
			},
		},
		{
			name: "Uma de duas campanhas ativas com CTR baixo rende 5 pontos",
			mutate: func(s *domain.AccountSnapshot) {
				s.Campaigns[1].CTR = 0.5
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 5, score.Performance)
			},
		},
		{
			name: "Campanhas pausadas não entram no denominador de performance",
			mutate: func(s *domain.AccountSnapshot) {
				s.Campaigns[1].Status = domain.LifecycleStatusPaused
				s.Campaigns[1].ROAS = 0
			},
			validate: func(t *testing.T, score domain.HealthScore) {
				assert.Equal(t, 10, score.Performance)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := healthySnapshot()
			tt.mutate(snapshot)

			score := newScorer().Calculate(snapshot)

			tt.validate(t, score)
			assert.Equal(t, score.Sum(), score.Total)
		})
	}
}

func TestService_Calculate_EmptyAndNilSnapshots(t *testing.T) {
	for _, snapshot := range []*domain.AccountSnapshot{nil, {}} {
		score := newScorer().Calculate(snapshot)

		assert.Equal(t, 0, score.AccountSetup)
		assert.Equal(t, 10, score.CampaignStructure)
		assert.Equal(t, 25, score.CreativeHealth)
		assert.Equal(t, 0, score.AudienceQuality)
		assert.Equal(t, 15, score.ConversionTracking)
		assert.Equal(t, 0, score.Performance)
		assert.Equal(t, 50, score.Total)
		assert.Equal(t, domain.GradeF, score.Grade)
	}
}

func TestService_Calculate_ConversionBaselineIsClamped(t *testing.T) {
	assert.Equal(t, 15, NewService(domain.DefaultThresholds(), 40).Calculate(nil).ConversionTracking)
	assert.Equal(t, 0, NewService(domain.DefaultThresholds(), -3).Calculate(nil).ConversionTracking)
	assert.Equal(t, 8, NewService(domain.DefaultThresholds(), 8).Calculate(nil).ConversionTracking)
}

func TestService_Calculate_BoundsAndDeterminism(t *testing.T) {
	frequencies := []float64{0, 1, 2.5, 3.5, 3.6, 10}
	scorer := newScorer()

	for i := range frequencies {
		snapshot := healthySnapshot()
		for j := 0; j <= i; j++ {
			snapshot.Ads = append(snapshot.Ads, &domain.Ad{ID: "x", Frequency: frequencies[j]})
		}

		first := scorer.Calculate(snapshot)
		second := scorer.Calculate(snapshot)

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first.Total, 0)
		assert.LessOrEqual(t, first.Total, 100)
		assert.Equal(t, first.Sum(), first.Total)
	}
}
