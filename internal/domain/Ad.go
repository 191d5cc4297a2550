package domain

import "time"

// ReviewStatus é o effective_status do anúncio, distinto do status definido pelo usuário
type ReviewStatus string

const (
	ReviewStatusActive         ReviewStatus = "ACTIVE"
	ReviewStatusPaused         ReviewStatus = "PAUSED"
	ReviewStatusDeleted        ReviewStatus = "DELETED"
	ReviewStatusArchived       ReviewStatus = "ARCHIVED"
	ReviewStatusPendingReview  ReviewStatus = "PENDING_REVIEW"
	ReviewStatusDisapproved    ReviewStatus = "DISAPPROVED"
	ReviewStatusPreapproved    ReviewStatus = "PREAPPROVED"
	ReviewStatusPendingBilling ReviewStatus = "PENDING_BILLING_INFO"
	ReviewStatusCampaignPaused ReviewStatus = "CAMPAIGN_PAUSED"
	ReviewStatusAdSetPaused    ReviewStatus = "ADSET_PAUSED"
	ReviewStatusInProcess      ReviewStatus = "IN_PROCESS"
	ReviewStatusWithIssues     ReviewStatus = "WITH_ISSUES"
	ReviewStatusUnknown        ReviewStatus = "UNKNOWN"
)

var knownReviewStatuses = map[ReviewStatus]struct{}{
	ReviewStatusActive:         {},
	ReviewStatusPaused:         {},
	ReviewStatusDeleted:        {},
	ReviewStatusArchived:       {},
	ReviewStatusPendingReview:  {},
	ReviewStatusDisapproved:    {},
	ReviewStatusPreapproved:    {},
	ReviewStatusPendingBilling: {},
	ReviewStatusCampaignPaused: {},
	ReviewStatusAdSetPaused:    {},
	ReviewStatusInProcess:      {},
	ReviewStatusWithIssues:     {},
}

func ParseReviewStatus(s string) ReviewStatus {
	if _, ok := knownReviewStatuses[ReviewStatus(s)]; ok {
		return ReviewStatus(s)
	}
	return ReviewStatusUnknown
}

type Ad struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          LifecycleStatus `json:"status"`
	EffectiveStatus ReviewStatus    `json:"effective_status"`
	AdSetID         string          `json:"adset_id"`
	CampaignID      string          `json:"campaign_id"`
	CreativeFormat  string          `json:"creative_format"`
	CreatedTime     time.Time       `json:"created_time"`
	Frequency       float64         `json:"frequency"`
	CTR             float64         `json:"ctr"`
	Impressions     int             `json:"impressions"`
	Reach           int             `json:"reach"`
	Spend           float64         `json:"spend"`
	Insight         InsightResult   `json:"-"`
}
