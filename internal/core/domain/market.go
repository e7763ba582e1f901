package domain

// DemandLevel and SupplyLevel grade market pressure for a commodity.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "high"
	DemandMedium DemandLevel = "medium"
	DemandLow    DemandLevel = "low"
)

type SupplyLevel string

const (
	SupplySurplus  SupplyLevel = "surplus"
	SupplyBalanced SupplyLevel = "balanced"
	SupplyDeficit  SupplyLevel = "deficit"
)

// MarketQuote is the current mandi price for a commodity plus a short-range
// price forecast (₹/quintal).
type MarketQuote struct {
	Crop           string      `json:"crop"`
	CurrentPrice   float64     `json:"current_price"`
	PriceChangePct float64     `json:"price_change_pct"`
	Demand         DemandLevel `json:"demand"`
	Supply         SupplyLevel `json:"supply"`
	Forecast       []float64   `json:"forecast"`
}

// FoodSecurity grades a region's food security level.
type FoodSecurity string

const (
	FoodSecurityHigh   FoodSecurity = "high"
	FoodSecurityMedium FoodSecurity = "medium"
	FoodSecurityLow    FoodSecurity = "low"
)

// Region aggregates farm statistics for one administrative region.
type Region struct {
	Region       string       `json:"region"`
	TotalFarms   int          `json:"total_farms"`
	TotalArea    float64      `json:"total_area"`
	AvgYield     float64      `json:"avg_yield"`
	MajorCrops   []string     `json:"major_crops"`
	FoodSecurity FoodSecurity `json:"food_security"`
	ClimateRisk  float64      `json:"climate_risk"`
}

// YieldPoint is one month of observed vs predicted yield (quintals/acre).
type YieldPoint struct {
	Month     string  `json:"month"`
	Yield     float64 `json:"yield"`
	Predicted float64 `json:"predicted"`
}

// ResourceUsage compares current and optimized consumption of one farm input.
type ResourceUsage struct {
	Resource   string  `json:"resource"`
	Current    float64 `json:"current"`
	Optimized  float64 `json:"optimized"`
	SavingsPct float64 `json:"savings_pct"`
	Unit       string  `json:"unit"`
}
