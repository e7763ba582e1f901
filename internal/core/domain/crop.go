package domain

import "time"

// HealthStatus grades the current condition of a crop cycle.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// StageHarvested marks a finished crop cycle; everything else counts as active.
const StageHarvested = "Harvested"

// Crop is a single monitored crop cycle on a farm.
type Crop struct {
	ID              string       `json:"id"`
	CropType        string       `json:"crop_type"`
	Variety         string       `json:"variety"`
	PlantingDate    time.Time    `json:"planting_date"`
	ExpectedHarvest time.Time    `json:"expected_harvest"`
	CurrentStage    string       `json:"current_stage"`
	HealthStatus    HealthStatus `json:"health_status"`
	PredictedYield  float64      `json:"predicted_yield"`
	ActualYield     float64      `json:"actual_yield,omitempty"`
	Location        string       `json:"location"`
	AreaAcres       float64      `json:"area_acres"`
	Verified        bool         `json:"verified"`
}

// Active reports whether the crop cycle is still in the ground.
func (c Crop) Active() bool {
	return c.CurrentStage != StageHarvested
}

// ResourceLevels are optimization scores as percentages of the recommended
// application rate.
type ResourceLevels struct {
	Water      float64 `json:"water"`
	Fertilizer float64 `json:"fertilizer"`
	Pesticide  float64 `json:"pesticide"`
}

// Prediction is the model output attached to a crop cycle.
type Prediction struct {
	CropID          string         `json:"crop_id"`
	Confidence      float64        `json:"confidence"`
	YieldPrediction float64        `json:"yield_prediction"`
	RiskFactors     []string       `json:"risk_factors"`
	Recommendations []string       `json:"recommendations"`
	Optimizations   ResourceLevels `json:"optimizations"`
}
