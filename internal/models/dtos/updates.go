package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/models"
)

// Update structs carry only the fields a caller wants to change. A nil
// pointer or nil map leaves the column untouched.

type AircraftUpdate struct {
	Model models.LocalizedText `json:"model,omitempty" validate:"omitempty,min=1"`
	Range *int                 `json:"range,omitempty" validate:"omitempty,gt=0"`
}

func (u AircraftUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Model != nil {
		cols["model"] = u.Model
	}
	if u.Range != nil {
		cols["range"] = *u.Range
	}
	return cols
}

// Coordinates move an airport. Longitude and latitude always change together.
type Coordinates struct {
	Longitude float64 `json:"longitude" validate:"longitude"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
}

type AirportUpdate struct {
	Name     models.LocalizedText `json:"airport_name,omitempty" validate:"omitempty,min=1"`
	City     models.LocalizedText `json:"city,omitempty" validate:"omitempty,min=1"`
	Location *Coordinates         `json:"location,omitempty" validate:"omitempty"`
	Timezone *string              `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

func (u AirportUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["airport_name"] = u.Name
	}
	if u.City != nil {
		cols["city"] = u.City
	}
	if u.Location != nil {
		cols["longitude"] = u.Location.Longitude
		cols["latitude"] = u.Location.Latitude
	}
	if u.Timezone != nil {
		cols["timezone"] = *u.Timezone
	}
	return cols
}

type SeatUpdate struct {
	FareConditions *constants.FareClass `json:"fare_conditions,omitempty" validate:"omitempty,fare_class"`
}

func (u SeatUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.FareConditions != nil {
		cols["fare_conditions"] = *u.FareConditions
	}
	return cols
}

type BookingUpdate struct {
	BookDate    *time.Time       `json:"book_date,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
}

func (u BookingUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.BookDate != nil {
		cols["book_date"] = u.BookDate.UTC()
	}
	if u.TotalAmount != nil {
		cols["total_amount"] = *u.TotalAmount
	}
	return cols
}

type FlightUpdate struct {
	FlightNo           *string                 `json:"flight_no,omitempty" validate:"omitempty,len=6"`
	ScheduledDeparture *time.Time              `json:"scheduled_departure,omitempty"`
	ScheduledArrival   *time.Time              `json:"scheduled_arrival,omitempty"`
	DepartureAirport   *string                 `json:"departure_airport,omitempty" validate:"omitempty,len=3"`
	ArrivalAirport     *string                 `json:"arrival_airport,omitempty" validate:"omitempty,len=3"`
	Status             *constants.FlightStatus `json:"status,omitempty" validate:"omitempty,flight_status"`
	AircraftCode       *string                 `json:"aircraft_code,omitempty" validate:"omitempty,len=3"`
	ActualDeparture    *time.Time              `json:"actual_departure,omitempty"`
	ActualArrival      *time.Time              `json:"actual_arrival,omitempty"`
}

func (u FlightUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.FlightNo != nil {
		cols["flight_no"] = *u.FlightNo
	}
	if u.ScheduledDeparture != nil {
		cols["scheduled_departure"] = u.ScheduledDeparture.UTC()
	}
	if u.ScheduledArrival != nil {
		cols["scheduled_arrival"] = u.ScheduledArrival.UTC()
	}
	if u.DepartureAirport != nil {
		cols["departure_airport"] = *u.DepartureAirport
	}
	if u.ArrivalAirport != nil {
		cols["arrival_airport"] = *u.ArrivalAirport
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.AircraftCode != nil {
		cols["aircraft_code"] = *u.AircraftCode
	}
	if u.ActualDeparture != nil {
		cols["actual_departure"] = u.ActualDeparture.UTC()
	}
	if u.ActualArrival != nil {
		cols["actual_arrival"] = u.ActualArrival.UTC()
	}
	return cols
}

type TicketUpdate struct {
	BookRef       *string            `json:"book_ref,omitempty" validate:"omitempty,len=6"`
	PassengerID   *string            `json:"passenger_id,omitempty" validate:"omitempty,min=1,max=20"`
	PassengerName *string            `json:"passenger_name,omitempty" validate:"omitempty,min=1"`
	ContactData   models.ContactData `json:"contact_data,omitempty"`
}

func (u TicketUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.BookRef != nil {
		cols["book_ref"] = *u.BookRef
	}
	if u.PassengerID != nil {
		cols["passenger_id"] = *u.PassengerID
	}
	if u.PassengerName != nil {
		cols["passenger_name"] = *u.PassengerName
	}
	if u.ContactData != nil {
		cols["contact_data"] = u.ContactData
	}
	return cols
}

type TicketFlightUpdate struct {
	FareConditions *constants.FareClass `json:"fare_conditions,omitempty" validate:"omitempty,fare_class"`
	Amount         *decimal.Decimal     `json:"amount,omitempty" validate:"omitempty,gte=0"`
}

func (u TicketFlightUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.FareConditions != nil {
		cols["fare_conditions"] = *u.FareConditions
	}
	if u.Amount != nil {
		cols["amount"] = *u.Amount
	}
	return cols
}

type BoardingPassUpdate struct {
	BoardingNo *int    `json:"boarding_no,omitempty" validate:"omitempty,gt=0"`
	SeatNo     *string `json:"seat_no,omitempty" validate:"omitempty,min=1,max=4"`
}

func (u BoardingPassUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.BoardingNo != nil {
		cols["boarding_no"] = *u.BoardingNo
	}
	if u.SeatNo != nil {
		cols["seat_no"] = *u.SeatNo
	}
	return cols
}
