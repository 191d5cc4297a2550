package metadomain

// Valores de account_status da Graph API
const (
	AccountStatusActive            = 1
	AccountStatusDisabled          = 2
	AccountStatusUnsettled         = 3
	AccountStatusPendingRiskReview = 7
	AccountStatusPendingSettlement = 8
	AccountStatusInGracePeriod     = 9
	AccountStatusPendingClosure    = 100
	AccountStatusClosed            = 101
	AccountStatusAnyActive         = 201
	AccountStatusAnyClosed         = 202
)

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

type AdsPixel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsUnavailable bool   `json:"is_unavailable"`
	LastFiredTime string `json:"last_fired_time,omitempty"`
}
