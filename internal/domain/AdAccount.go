package domain

import "time"

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusDisabled AccountStatus = "DISABLED"
	AccountStatusUnknown  AccountStatus = "UNKNOWN"
)

// AccountSnapshot é a fotografia da conta de anúncios obtida em uma única execução.
// Não deve ser alterada depois de montada pelo integrador.
type AccountSnapshot struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Timezone     string        `json:"timezone"`
	Status       AccountStatus `json:"status"`
	HasPixel     bool          `json:"has_pixel"`
	Pixels       []Pixel       `json:"pixels"`
	Campaigns    []*Campaign   `json:"campaigns"`
	AdSets       []*AdSet      `json:"adsets"`
	Ads          []*Ad         `json:"ads"`
	Warnings     []string      `json:"warnings,omitempty"`
	FetchedAt    time.Time     `json:"fetched_at"`
	AnalysisDays int           `json:"analysis_days"`
}

type Pixel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	IsUnavailable bool       `json:"is_unavailable"`
	LastFiredTime *time.Time `json:"last_fired_time,omitempty"`
}

// ActiveCampaigns retorna as campanhas com status ACTIVE, preservando a ordem de entrada
func (s *AccountSnapshot) ActiveCampaigns() []*Campaign {
	active := make([]*Campaign, 0, len(s.Campaigns))
	for _, c := range s.Campaigns {
		if c != nil && c.Status == LifecycleStatusActive {
			active = append(active, c)
		}
	}
	return active
}

// ActiveAdSets retorna os conjuntos de anúncios com status ACTIVE
func (s *AccountSnapshot) ActiveAdSets() []*AdSet {
	active := make([]*AdSet, 0, len(s.AdSets))
	for _, a := range s.AdSets {
		if a != nil && a.Status == LifecycleStatusActive {
			active = append(active, a)
		}
	}
	return active
}
