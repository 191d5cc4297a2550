package domain

type ScoreCategory string

const (
	CategoryAccountSetup       ScoreCategory = "account_setup"
	CategoryCampaignStructure  ScoreCategory = "campaign_structure"
	CategoryCreativeHealth     ScoreCategory = "creative_health"
	CategoryAudienceQuality    ScoreCategory = "audience_quality"
	CategoryConversionTracking ScoreCategory = "conversion_tracking"
	CategoryPerformance        ScoreCategory = "performance"
)

// Pontuação máxima de cada categoria. A soma precisa ser 100.
const (
	MaxAccountSetup       = 15
	MaxCampaignStructure  = 20
	MaxCreativeHealth     = 25
	MaxAudienceQuality    = 15
	MaxConversionTracking = 15
	MaxPerformance        = 10

	MaxHealthScore = MaxAccountSetup + MaxCampaignStructure + MaxCreativeHealth +
		MaxAudienceQuality + MaxConversionTracking + MaxPerformance
)

// ScoreCategories lista as categorias na ordem em que são exibidas
var ScoreCategories = []ScoreCategory{
	CategoryAccountSetup,
	CategoryCampaignStructure,
	CategoryCreativeHealth,
	CategoryAudienceQuality,
	CategoryConversionTracking,
	CategoryPerformance,
}

func (c ScoreCategory) Max() int {
	switch c {
	case CategoryAccountSetup:
		return MaxAccountSetup
	case CategoryCampaignStructure:
		return MaxCampaignStructure
	case CategoryCreativeHealth:
		return MaxCreativeHealth
	case CategoryAudienceQuality:
		return MaxAudienceQuality
	case CategoryConversionTracking:
		return MaxConversionTracking
	case CategoryPerformance:
		return MaxPerformance
	default:
		return 0
	}
}

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor mapeia o total para a nota. As faixas são contíguas e não se sobrepõem.
func GradeFor(total int) Grade {
	switch {
	case total >= 90:
		return GradeA
	case total >= 80:
		return GradeB
	case total >= 70:
		return GradeC
	case total >= 60:
		return GradeD
	default:
		return GradeF
	}
}

func (g Grade) Status() string {
	switch g {
	case GradeA:
		return "Excellent"
	case GradeB:
		return "Good"
	case GradeC:
		return "Fair"
	case GradeD:
		return "Poor"
	default:
		return "Critical"
	}
}

type HealthScore struct {
	AccountSetup       int    `json:"account_setup"`
	CampaignStructure  int    `json:"campaign_structure"`
	CreativeHealth     int    `json:"creative_health"`
	AudienceQuality    int    `json:"audience_quality"`
	ConversionTracking int    `json:"conversion_tracking"`
	Performance        int    `json:"performance"`
	Total              int    `json:"total"`
	Grade              Grade  `json:"grade"`
	Status             string `json:"status"`
}

func (h HealthScore) Sum() int {
	return h.AccountSetup + h.CampaignStructure + h.CreativeHealth +
		h.AudienceQuality + h.ConversionTracking + h.Performance
}
