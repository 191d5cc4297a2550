package metadomain

// Action representa um item de "actions" ou "action_values". O valor vem como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é o registro cru retornado pelo endpoint /insights. Números chegam como string.
type Insight struct {
	AccountID    string   `json:"account_id,omitempty"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	AdID         string   `json:"ad_id,omitempty"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Clicks       string   `json:"clicks"`
	Frequency    string   `json:"frequency"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// Tipos de ação de compra, em ordem de preferência
var PurchaseActionTypes = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
	"omni_purchase",
}

// Campos solicitados por família de recurso
var (
	AccountFields  = []string{"id", "account_id", "name", "account_status", "currency", "timezone_name"}
	CampaignFields = []string{"id", "name", "objective", "status", "daily_budget", "lifetime_budget"}
	AdSetFields    = []string{"id", "name", "status", "campaign_id", "optimization_goal"}
	AdFields       = []string{"id", "name", "status", "effective_status", "adset_id", "campaign_id", "created_time", "creative{id,object_type}"}
	InsightFields  = []string{"spend", "impressions", "reach", "clicks", "frequency", "ctr", "cpc", "actions", "action_values"}
	PixelFields    = []string{"id", "name", "is_unavailable", "last_fired_time"}
)
