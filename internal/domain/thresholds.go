package domain

// Thresholds são os limites de negócio usados pelo cálculo de score e pela classificação de issues.
// Sempre injetados via configuração.
type Thresholds struct {
	FrequencyWarning      float64
	FrequencyCritical     float64
	MinROAS               float64
	MinCTR                float64
	MinDailySpend         float64
	MaterialitySpend      float64
	CPAThreshold          float64
	AnalysisDays          int
	MinCampaignNameLength int
	BudgetExhaustionRatio float64
	AlertScoreThreshold   int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		FrequencyWarning:      2.5,
		FrequencyCritical:     3.5,
		MinROAS:               2.0,
		MinCTR:                0.8,
		MinDailySpend:         10,
		MaterialitySpend:      50,
		CPAThreshold:          50,
		AnalysisDays:          7,
		MinCampaignNameLength: 3,
		BudgetExhaustionRatio: 0.95,
		AlertScoreThreshold:   70,
	}
}

// UnderspendFloor é o gasto mínimo esperado em uma janela de "days" dias.
// days < 1 usa a janela configurada.
func (t Thresholds) UnderspendFloor(days int) float64 {
	if days < 1 {
		days = t.AnalysisDays
	}
	if days < 1 {
		days = 1
	}
	return t.MinDailySpend * float64(days)
}
