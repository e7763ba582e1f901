package ports

import (
	"context"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// FarmerOverview is the headline block of the farmer dashboard.
type FarmerOverview struct {
	TotalAreaAcres    float64                `json:"total_area_acres"`
	ActiveCrops       int                    `json:"active_crops"`
	HarvestedCrops    int                    `json:"harvested_crops"`
	AvgPredictedYield float64                `json:"avg_predicted_yield"`
	WaterEfficiency   float64                `json:"water_efficiency"`
	Crops             []domain.Crop          `json:"crops"`
	Predictions       []domain.Prediction    `json:"predictions"`
	YieldTrend        []domain.YieldPoint    `json:"yield_trend"`
	Resources         []domain.ResourceUsage `json:"resources"`
}

// GovernmentOverview is the headline block of the government dashboard.
type GovernmentOverview struct {
	TotalFarms          int                    `json:"total_farms"`
	TotalAreaAcres      float64                `json:"total_area_acres"`
	NationalAvgYield    float64                `json:"national_avg_yield"`
	HighSecurityRegions int                    `json:"high_security_regions"`
	AvgClimateRisk      float64                `json:"avg_climate_risk"`
	Regions             []domain.Region        `json:"regions"`
	ClimateFactors      []domain.ClimateFactor `json:"climate_factors"`
	YieldTrend          []domain.YieldPoint    `json:"yield_trend"`
}

// DemandBreakdown counts market quotes per demand level.
type DemandBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// BusinessOverview is the headline block of the business dashboard.
type BusinessOverview struct {
	AvgPriceChangePct float64              `json:"avg_price_change_pct"`
	TopGainer         string               `json:"top_gainer"`
	Demand            DemandBreakdown      `json:"demand"`
	DeficitCrops      int                  `json:"deficit_crops"`
	Quotes            []domain.MarketQuote `json:"quotes"`
}

// AnalyticsService computes the per-role dashboard aggregates from the
// underlying datasets. All computation is trivial: sums, averages, counts.
type AnalyticsService interface {
	FarmerOverview(ctx context.Context) (*FarmerOverview, error)
	GovernmentOverview(ctx context.Context) (*GovernmentOverview, error)
	BusinessOverview(ctx context.Context) (*BusinessOverview, error)
	Weather(ctx context.Context) ([]domain.Weather, error)
	MarketQuotes(ctx context.Context) ([]domain.MarketQuote, error)
	Regions(ctx context.Context) ([]domain.Region, error)
}
