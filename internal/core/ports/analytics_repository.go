package ports

import (
	"context"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// AnalyticsRepository is the read-side source of crop, weather, market and
// regional data. The current implementation serves fixed in-memory datasets.
type AnalyticsRepository interface {
	Crops(ctx context.Context) ([]domain.Crop, error)
	PredictionForCrop(ctx context.Context, cropID string) (*domain.Prediction, error)
	Weather(ctx context.Context) ([]domain.Weather, error)
	Regions(ctx context.Context) ([]domain.Region, error)
	MarketQuotes(ctx context.Context) ([]domain.MarketQuote, error)
	YieldTrend(ctx context.Context) ([]domain.YieldPoint, error)
	ClimateFactors(ctx context.Context) ([]domain.ClimateFactor, error)
	ResourceUsage(ctx context.Context) ([]domain.ResourceUsage, error)
}
