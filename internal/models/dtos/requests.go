package dtos

import (
	"time"

	"airdemo/bookings/internal/constants"
)

type FlightStatusRequest struct {
	Status constants.FlightStatus `json:"status"`
}

type ActualTimesRequest struct {
	ActualDeparture *time.Time `json:"actual_departure"`
	ActualArrival   *time.Time `json:"actual_arrival"`
}
