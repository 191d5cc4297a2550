package domain

type AdSet struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Status           LifecycleStatus `json:"status"`
	CampaignID       string          `json:"campaign_id"`
	OptimizationGoal string          `json:"optimization_goal"`
}
