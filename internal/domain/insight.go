package domain

import (
	"errors"
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Days      int
}

// NewTrailingWindow cria o filtro da janela de análise terminando em "until" (inclusive)
func NewTrailingWindow(until time.Time, days int) *InsightFilters {
	if days < 1 {
		days = 1
	}
	end := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, until.Location())
	start := end.AddDate(0, 0, -(days - 1))
	return &InsightFilters{
		StartDate: &start,
		EndDate:   &end,
		Days:      days,
	}
}

// AnalysisDays conta os dias de calendário da janela, inclusive nas pontas.
// Semanas com troca de horário de verão não têm 24h por dia, então a conta é por data.
func (f *InsightFilters) AnalysisDays() int {
	if f == nil {
		return 0
	}
	if f.Days > 0 {
		return f.Days
	}
	if f.StartDate == nil || f.EndDate == nil {
		return 0
	}

	start := civilDate(*f.StartDate)
	end := civilDate(*f.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Action struct {
	ActionType string  `json:"action_type"`
	Value      float64 `json:"value"`
}

// Insight é o pacote de métricas de uma janela de tempo. Vive apenas durante o cálculo.
type Insight struct {
	Spend        float64  `json:"spend"`
	Impressions  int      `json:"impressions"`
	Reach        int      `json:"reach"`
	Clicks       int      `json:"clicks"`
	Frequency    float64  `json:"frequency"`
	CTR          float64  `json:"ctr"`
	CPC          float64  `json:"cpc"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

var ErrInsightNotFetched = errors.New("insight not fetched")

// InsightResult distingue "sem engajamento" (Insight zerado ou nil) de "falha na busca" (Err != nil)
type InsightResult struct {
	Insight *Insight
	Err     error
}

func InsightOK(insight *Insight) InsightResult {
	if insight == nil {
		insight = &Insight{}
	}
	return InsightResult{Insight: insight}
}

func InsightFailed(err error) InsightResult {
	if err == nil {
		err = ErrInsightNotFetched
	}
	return InsightResult{Err: err}
}

func (r InsightResult) OK() bool {
	return r.Err == nil
}

func (r InsightResult) Failed() bool {
	return r.Err != nil
}
