package domain

type LifecycleStatus string

const (
	LifecycleStatusActive   LifecycleStatus = "ACTIVE"
	LifecycleStatusPaused   LifecycleStatus = "PAUSED"
	LifecycleStatusArchived LifecycleStatus = "ARCHIVED"
	LifecycleStatusDeleted  LifecycleStatus = "DELETED"
	LifecycleStatusUnknown  LifecycleStatus = "UNKNOWN"
)

// ParseLifecycleStatus converte o status textual da API. Valores desconhecidos viram UNKNOWN.
func ParseLifecycleStatus(s string) LifecycleStatus {
	switch LifecycleStatus(s) {
	case LifecycleStatusActive, LifecycleStatusPaused, LifecycleStatusArchived, LifecycleStatusDeleted:
		return LifecycleStatus(s)
	default:
		return LifecycleStatusUnknown
	}
}

type BudgetKind string

const (
	BudgetKindNone     BudgetKind = ""
	BudgetKindDaily    BudgetKind = "DAILY"
	BudgetKindLifetime BudgetKind = "LIFETIME"
)

// Budget é diário ou vitalício, nunca os dois. Amount já está na unidade da moeda (não em centavos).
type Budget struct {
	Kind   BudgetKind `json:"kind"`
	Amount float64    `json:"amount"`
}

func (b Budget) IsSet() bool {
	return b.Kind != BudgetKindNone && b.Amount > 0
}

type Campaign struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Objective       string          `json:"objective"`
	Status          LifecycleStatus `json:"status"`
	Budget          Budget          `json:"budget"`
	Spend           float64         `json:"spend"`
	Impressions     int             `json:"impressions"`
	Clicks          int             `json:"clicks"`
	CTR             float64         `json:"ctr"`
	CPC             float64         `json:"cpc"`
	CPA             float64         `json:"cpa"`
	Conversions     int             `json:"conversions"`
	ConversionValue float64         `json:"conversion_value"`
	ROAS            float64         `json:"roas"`
	Frequency       float64         `json:"frequency"`
	Insight         InsightResult   `json:"-"`
}

func (c *Campaign) IsActive() bool {
	return c.Status == LifecycleStatusActive
}
