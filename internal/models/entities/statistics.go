package entities

import (
	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
)

// FareClassStatistics aggregates the segments sold in one fare class of a flight.
type FareClassStatistics struct {
	FareConditions constants.FareClass `db:"fare_conditions" json:"fare_conditions"`
	TicketCount    int64               `db:"ticket_count" json:"ticket_count"`
	TotalAmount    decimal.Decimal     `db:"total_amount" json:"total_amount"`
	AvgAmount      decimal.Decimal     `db:"avg_amount" json:"avg_amount"`
	MinAmount      decimal.Decimal     `db:"min_amount" json:"min_amount"`
	MaxAmount      decimal.Decimal     `db:"max_amount" json:"max_amount"`
}

type BookingStatistics struct {
	TicketCount int64 `db:"ticket_count" json:"ticket_count"`
	// Passengers joins passenger names in ticket order with ", ".
	Passengers string `db:"passengers" json:"passengers"`
}

type TicketStatistics struct {
	FlightCount int64           `db:"flight_count" json:"flight_count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	AvgAmount   decimal.Decimal `db:"avg_amount" json:"avg_amount"`
}

type PassengerFlightHistory struct {
	TicketNo      string          `db:"ticket_no" json:"ticket_no"`
	BookRef       string          `db:"book_ref" json:"book_ref"`
	PassengerName string          `db:"passenger_name" json:"passenger_name"`
	FlightCount   int64           `db:"flight_count" json:"flight_count"`
	TotalSpent    decimal.Decimal `db:"total_spent" json:"total_spent"`
}
