// Package agridata serves the portal's fixed demonstration datasets. It
// implements ports.AnalyticsRepository entirely in memory; nothing here
// touches disk or network.
package agridata

import (
	"context"
	"math/rand"
	"time"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// weatherSeed fixes the generated weather series so repeated reads (and
// tests) observe identical data for the lifetime of the process.
const weatherSeed = 20240601

// Store holds the datasets. All slices are built once at construction and
// returned as copies, so callers can never mutate the backing data.
type Store struct {
	crops       []domain.Crop
	predictions map[string]domain.Prediction
	weather     []domain.Weather
	regions     []domain.Region
	market      []domain.MarketQuote
	yieldTrend  []domain.YieldPoint
	climate     []domain.ClimateFactor
	resources   []domain.ResourceUsage
}

// NewStore builds the demonstration datasets. now anchors the 30-day
// weather window; pass a fixed time in tests.
func NewStore(now time.Time) *Store {
	return &Store{
		crops:       seedCrops(),
		predictions: seedPredictions(),
		weather:     generateWeather(now),
		regions:     seedRegions(),
		market:      seedMarket(),
		yieldTrend:  seedYieldTrend(),
		climate:     seedClimate(),
		resources:   seedResources(),
	}
}

func (s *Store) Crops(_ context.Context) ([]domain.Crop, error) {
	return clone(s.crops), nil
}

func (s *Store) PredictionForCrop(_ context.Context, cropID string) (*domain.Prediction, error) {
	p, ok := s.predictions[cropID]
	if !ok {
		return nil, domain.ErrCropNotFound
	}
	out := p
	return &out, nil
}

func (s *Store) Weather(_ context.Context) ([]domain.Weather, error) {
	return clone(s.weather), nil
}

func (s *Store) Regions(_ context.Context) ([]domain.Region, error) {
	return clone(s.regions), nil
}

func (s *Store) MarketQuotes(_ context.Context) ([]domain.MarketQuote, error) {
	return clone(s.market), nil
}

func (s *Store) YieldTrend(_ context.Context) ([]domain.YieldPoint, error) {
	return clone(s.yieldTrend), nil
}

func (s *Store) ClimateFactors(_ context.Context) ([]domain.ClimateFactor, error) {
	return clone(s.climate), nil
}

func (s *Store) ResourceUsage(_ context.Context) ([]domain.ResourceUsage, error) {
	return clone(s.resources), nil
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedCrops() []domain.Crop {
	return []domain.Crop{
		{
			ID:              "1",
			CropType:        "Wheat",
			Variety:         "HD-2967",
			PlantingDate:    date(2024, time.November, 15),
			ExpectedHarvest: date(2025, time.April, 15),
			CurrentStage:    "Tillering",
			HealthStatus:    domain.HealthExcellent,
			PredictedYield:  45.2,
			Location:        "Punjab, India",
			AreaAcres:       25.5,
			Verified:        true,
		},
		{
			ID:              "2",
			CropType:        "Rice",
			Variety:         "Basmati-370",
			PlantingDate:    date(2024, time.June, 20),
			ExpectedHarvest: date(2024, time.November, 20),
			CurrentStage:    domain.StageHarvested,
			HealthStatus:    domain.HealthGood,
			PredictedYield:  38.7,
			ActualYield:     36.2,
			Location:        "Haryana, India",
			AreaAcres:       18.3,
			Verified:        true,
		},
		{
			ID:              "3",
			CropType:        "Corn",
			Variety:         "Pioneer-3394",
			PlantingDate:    date(2024, time.March, 10),
			ExpectedHarvest: date(2024, time.August, 15),
			CurrentStage:    domain.StageHarvested,
			HealthStatus:    domain.HealthFair,
			PredictedYield:  42.1,
			ActualYield:     39.8,
			Location:        "Uttar Pradesh, India",
			AreaAcres:       12.7,
			Verified:        false,
		},
	}
}

func seedPredictions() map[string]domain.Prediction {
	return map[string]domain.Prediction{
		"1": {
			CropID:          "1",
			Confidence:      92,
			YieldPrediction: 45.2,
			RiskFactors:     []string{"Late season frost risk", "Rust disease potential"},
			Recommendations: []string{
				"Apply nitrogen fertilizer in next 10 days",
				"Monitor for rust symptoms",
				"Ensure adequate irrigation during grain filling",
			},
			Optimizations: domain.ResourceLevels{Water: 85, Fertilizer: 78, Pesticide: 65},
		},
		"2": {
			CropID:          "2",
			Confidence:      87,
			YieldPrediction: 38.7,
			RiskFactors:     []string{"Brown planthopper pressure", "Water shortage"},
			Recommendations: []string{
				"Implement IPM for brown planthopper",
				"Optimize water usage during flowering",
				"Apply potash for grain quality",
			},
			Optimizations: domain.ResourceLevels{Water: 92, Fertilizer: 88, Pesticide: 72},
		},
	}
}

// generateWeather produces the trailing 30-day field-condition series ending
// at now. Values are pseudo-random within agronomically plausible ranges.
func generateWeather(now time.Time) []domain.Weather {
	rng := rand.New(rand.NewSource(weatherSeed))
	days := make([]domain.Weather, 0, 30)
	start := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -29)

	for i := 0; i < 30; i++ {
		var rainfall float64
		if rng.Float64() < 0.3 {
			rainfall = rng.Float64() * 25
		}
		days = append(days, domain.Weather{
			Date:         start.AddDate(0, 0, i),
			Temperature:  18 + rng.Float64()*15,
			Humidity:     45 + rng.Float64()*40,
			RainfallMM:   rainfall,
			SoilMoisture: 30 + rng.Float64()*40,
			UVIndex:      3 + rng.Float64()*5,
		})
	}
	return days
}

func seedRegions() []domain.Region {
	return []domain.Region{
		{
			Region:       "Punjab",
			TotalFarms:   1247,
			TotalArea:    45890,
			AvgYield:     42.8,
			MajorCrops:   []string{"Wheat", "Rice", "Cotton"},
			FoodSecurity: domain.FoodSecurityHigh,
			ClimateRisk:  0.35,
		},
		{
			Region:       "Haryana",
			TotalFarms:   987,
			TotalArea:    38450,
			AvgYield:     41.2,
			MajorCrops:   []string{"Wheat", "Rice", "Sugarcane"},
			FoodSecurity: domain.FoodSecurityHigh,
			ClimateRisk:  0.28,
		},
		{
			Region:       "Uttar Pradesh",
			TotalFarms:   2156,
			TotalArea:    67234,
			AvgYield:     38.9,
			MajorCrops:   []string{"Wheat", "Rice", "Corn", "Sugarcane"},
			FoodSecurity: domain.FoodSecurityMedium,
			ClimateRisk:  0.52,
		},
		{
			Region:       "Rajasthan",
			TotalFarms:   1543,
			TotalArea:    52678,
			AvgYield:     32.4,
			MajorCrops:   []string{"Wheat", "Bajra", "Mustard"},
			FoodSecurity: domain.FoodSecurityMedium,
			ClimateRisk:  0.68,
		},
	}
}

func seedMarket() []domain.MarketQuote {
	return []domain.MarketQuote{
		{
			Crop:           "Wheat",
			CurrentPrice:   2150,
			PriceChangePct: 5.2,
			Demand:         domain.DemandHigh,
			Supply:         domain.SupplyBalanced,
			Forecast:       []float64{2150, 2180, 2205, 2190, 2220, 2240},
		},
		{
			Crop:           "Rice",
			CurrentPrice:   3450,
			PriceChangePct: -2.1,
			Demand:         domain.DemandMedium,
			Supply:         domain.SupplySurplus,
			Forecast:       []float64{3450, 3420, 3380, 3410, 3390, 3370},
		},
		{
			Crop:           "Corn",
			CurrentPrice:   1890,
			PriceChangePct: 8.7,
			Demand:         domain.DemandHigh,
			Supply:         domain.SupplyDeficit,
			Forecast:       []float64{1890, 1920, 1950, 1980, 2010, 2040},
		},
		{
			Crop:           "Cotton",
			CurrentPrice:   5670,
			PriceChangePct: 12.3,
			Demand:         domain.DemandHigh,
			Supply:         domain.SupplyDeficit,
			Forecast:       []float64{5670, 5720, 5780, 5850, 5920, 5980},
		},
	}
}

func seedYieldTrend() []domain.YieldPoint {
	return []domain.YieldPoint{
		{Month: "Jan", Yield: 38.2, Predicted: 40.1},
		{Month: "Feb", Yield: 39.1, Predicted: 41.2},
		{Month: "Mar", Yield: 41.5, Predicted: 42.8},
		{Month: "Apr", Yield: 43.2, Predicted: 44.1},
		{Month: "May", Yield: 42.8, Predicted: 43.9},
		{Month: "Jun", Yield: 40.3, Predicted: 41.7},
		{Month: "Jul", Yield: 38.9, Predicted: 39.8},
		{Month: "Aug", Yield: 37.6, Predicted: 38.2},
		{Month: "Sep", Yield: 39.4, Predicted: 40.1},
		{Month: "Oct", Yield: 41.7, Predicted: 42.3},
		{Month: "Nov", Yield: 43.1, Predicted: 44.2},
		{Month: "Dec", Yield: 44.8, Predicted: 45.6},
	}
}

func seedClimate() []domain.ClimateFactor {
	return []domain.ClimateFactor{
		{Factor: "Temperature", Impact: 75, Trend: "increasing"},
		{Factor: "Rainfall", Impact: 60, Trend: "decreasing"},
		{Factor: "Humidity", Impact: 45, Trend: "stable"},
		{Factor: "Soil Health", Impact: 70, Trend: "improving"},
		{Factor: "Pest Pressure", Impact: 55, Trend: "increasing"},
	}
}

func seedResources() []domain.ResourceUsage {
	return []domain.ResourceUsage{
		{Resource: "water", Current: 850, Optimized: 720, SavingsPct: 15.3, Unit: "liters/acre"},
		{Resource: "fertilizer", Current: 125, Optimized: 98, SavingsPct: 21.6, Unit: "kg/acre"},
		{Resource: "seeds", Current: 45, Optimized: 42, SavingsPct: 6.7, Unit: "kg/acre"},
		{Resource: "energy", Current: 180, Optimized: 145, SavingsPct: 19.4, Unit: "kWh/acre"},
	}
}
