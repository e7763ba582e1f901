package domain

import "time"

// Weather is one day of field conditions.
type Weather struct {
	Date         time.Time `json:"date"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	RainfallMM   float64   `json:"rainfall_mm"`
	SoilMoisture float64   `json:"soil_moisture"`
	UVIndex      float64   `json:"uv_index"`
}

// ClimateFactor scores the impact of one climate variable on regional yield.
type ClimateFactor struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
	Trend  string  `json:"trend"`
}
