package gorm

import (
	"time"

	"airdemo/bookings/internal/constants"
)

// Flight is one scheduled leg. ID is generated by the store.
type Flight struct {
	ID                 int64                  `gorm:"column:flight_id;primaryKey;autoIncrement" json:"flight_id"`
	FlightNo           string                 `gorm:"column:flight_no;type:character(6);not null;uniqueIndex:flights_flight_no_scheduled_departure_key,priority:1" json:"flight_no" validate:"required,len=6"`
	ScheduledDeparture time.Time              `gorm:"column:scheduled_departure;not null;uniqueIndex:flights_flight_no_scheduled_departure_key,priority:2;index:flights_scheduled_departure_idx" json:"scheduled_departure" validate:"required"`
	ScheduledArrival   time.Time              `gorm:"column:scheduled_arrival;not null;check:flights_check,scheduled_arrival > scheduled_departure" json:"scheduled_arrival" validate:"required,gtfield=ScheduledDeparture"`
	DepartureAirport   string                 `gorm:"column:departure_airport;type:character(3);not null;index:flights_departure_airport_idx" json:"departure_airport" validate:"required,len=3"`
	ArrivalAirport     string                 `gorm:"column:arrival_airport;type:character(3);not null;index:flights_arrival_airport_idx" json:"arrival_airport" validate:"required,len=3"`
	Status             constants.FlightStatus `gorm:"column:status;type:varchar(20);not null;index:flights_status_idx;check:flights_status_check,status IN ('Scheduled', 'On Time', 'Delayed', 'Departed', 'Arrived', 'Cancelled')" json:"status" validate:"flight_status"`
	AircraftCode       string                 `gorm:"column:aircraft_code;type:character(3);not null" json:"aircraft_code" validate:"required,len=3"`
	ActualDeparture    *time.Time             `gorm:"column:actual_departure" json:"actual_departure,omitempty"`
	ActualArrival      *time.Time             `gorm:"column:actual_arrival;check:flights_check1,actual_arrival IS NULL OR (actual_departure IS NOT NULL AND actual_arrival > actual_departure)" json:"actual_arrival,omitempty"`

	Departure *Airport  `gorm:"foreignKey:DepartureAirport;references:Code" json:"-" validate:"-"`
	Arrival   *Airport  `gorm:"foreignKey:ArrivalAirport;references:Code" json:"-" validate:"-"`
	Aircraft  *Aircraft `gorm:"foreignKey:AircraftCode;references:Code" json:"-" validate:"-"`
}

func (Flight) TableName() string {
	return "flights"
}
