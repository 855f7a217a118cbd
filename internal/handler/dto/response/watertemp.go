package response

import (
	"time"

	"famboard/internal/usecase/queries"
)

// CurrentTemperatureResponse has null fields when the sensor feed has no data
// for today yet.
type CurrentTemperatureResponse struct {
	Temperature *float64   `json:"temperature"`
	Timestamp   *time.Time `json:"timestamp"`
}

func FromCurrentTemperature(rm *queries.CurrentTemperature) *CurrentTemperatureResponse {
	return &CurrentTemperatureResponse{
		Temperature: rm.Temperature,
		Timestamp:   rm.Timestamp,
	}
}
