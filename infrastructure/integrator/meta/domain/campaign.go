package metadomain

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Objective      string `json:"objective"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
}

type AdSet struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal"`
}

type Creative struct {
	ID         string `json:"id"`
	ObjectType string `json:"object_type"`
}

type Ad struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	AdSetID         string    `json:"adset_id"`
	CampaignID      string    `json:"campaign_id"`
	CreatedTime     string    `json:"created_time"`
	Creative        *Creative `json:"creative,omitempty"`
}
