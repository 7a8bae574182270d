package dtos

import gormModels "airdemo/bookings/internal/models/gorm"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// PageResponse carries one page of a natural-order listing.
type PageResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NearbyAirport pairs an airport with its geodesic distance from the search
// point.
type NearbyAirport struct {
	gormModels.Airport
	DistanceKm float64 `db:"distance_km" json:"distance_km"`
}

type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

type NextBoardingNumberResponse struct {
	FlightID       int64 `json:"flight_id"`
	NextBoardingNo int   `json:"next_boarding_no"`
}

type OccupiedSeatsResponse struct {
	FlightID int64    `json:"flight_id"`
	Seats    []string `json:"seats"`
}
