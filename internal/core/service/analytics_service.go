package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/agriportal/analytics-api/internal/core/domain"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

// waterEfficiencyPct is the headline irrigation efficiency figure shown on
// the farmer dashboard.
const waterEfficiencyPct = 85

type AnalyticsService struct {
	repo   ports.AnalyticsRepository
	logger zerolog.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, logger: logger}
}

// FarmerOverview aggregates the farmer's crop portfolio: total area, active
// vs harvested counts and the average predicted yield across all cycles.
func (s *AnalyticsService) FarmerOverview(ctx context.Context) (*ports.FarmerOverview, error) {
	crops, err := s.repo.Crops(ctx)
	if err != nil {
		return nil, err
	}

	out := &ports.FarmerOverview{
		Crops:           crops,
		WaterEfficiency: waterEfficiencyPct,
	}

	var totalYield float64
	for _, c := range crops {
		out.TotalAreaAcres += c.AreaAcres
		totalYield += c.PredictedYield
		if c.Active() {
			out.ActiveCrops++
		} else {
			out.HarvestedCrops++
		}
	}
	out.TotalAreaAcres = round1(out.TotalAreaAcres)
	if len(crops) > 0 {
		out.AvgPredictedYield = round1(totalYield / float64(len(crops)))
	}

	for _, c := range crops {
		p, err := s.repo.PredictionForCrop(ctx, c.ID)
		if err != nil {
			// Not every cycle has a model run yet.
			continue
		}
		out.Predictions = append(out.Predictions, *p)
	}

	if out.YieldTrend, err = s.repo.YieldTrend(ctx); err != nil {
		return nil, err
	}
	if out.Resources, err = s.repo.ResourceUsage(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// GovernmentOverview rolls the regional dataset up to national figures.
func (s *AnalyticsService) GovernmentOverview(ctx context.Context) (*ports.GovernmentOverview, error) {
	regions, err := s.repo.Regions(ctx)
	if err != nil {
		return nil, err
	}

	out := &ports.GovernmentOverview{Regions: regions}

	var yieldSum, riskSum float64
	for _, r := range regions {
		out.TotalFarms += r.TotalFarms
		out.TotalAreaAcres += r.TotalArea
		yieldSum += r.AvgYield
		riskSum += r.ClimateRisk
		if r.FoodSecurity == domain.FoodSecurityHigh {
			out.HighSecurityRegions++
		}
	}
	if len(regions) > 0 {
		out.NationalAvgYield = round1(yieldSum / float64(len(regions)))
		out.AvgClimateRisk = round2(riskSum / float64(len(regions)))
	}

	if out.ClimateFactors, err = s.repo.ClimateFactors(ctx); err != nil {
		return nil, err
	}
	if out.YieldTrend, err = s.repo.YieldTrend(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// BusinessOverview summarises the market quotes: average movement, the top
// gaining commodity and the demand/supply breakdown.
func (s *AnalyticsService) BusinessOverview(ctx context.Context) (*ports.BusinessOverview, error) {
	quotes, err := s.repo.MarketQuotes(ctx)
	if err != nil {
		return nil, err
	}

	out := &ports.BusinessOverview{Quotes: quotes}

	var changeSum, bestChange float64
	bestChange = math.Inf(-1)
	for _, q := range quotes {
		changeSum += q.PriceChangePct
		if q.PriceChangePct > bestChange {
			bestChange = q.PriceChangePct
			out.TopGainer = q.Crop
		}
		switch q.Demand {
		case domain.DemandHigh:
			out.Demand.High++
		case domain.DemandMedium:
			out.Demand.Medium++
		case domain.DemandLow:
			out.Demand.Low++
		}
		if q.Supply == domain.SupplyDeficit {
			out.DeficitCrops++
		}
	}
	if len(quotes) > 0 {
		out.AvgPriceChangePct = round1(changeSum / float64(len(quotes)))
	}
	return out, nil
}

func (s *AnalyticsService) Weather(ctx context.Context) ([]domain.Weather, error) {
	return s.repo.Weather(ctx)
}

func (s *AnalyticsService) MarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	return s.repo.MarketQuotes(ctx)
}

func (s *AnalyticsService) Regions(ctx context.Context) ([]domain.Region, error) {
	return s.repo.Regions(ctx)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
