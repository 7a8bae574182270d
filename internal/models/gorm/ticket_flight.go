package gorm

import (
	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
)

// TicketFlight is one flight segment sold on a ticket.
type TicketFlight struct {
	TicketNo       string              `gorm:"column:ticket_no;type:character(13);primaryKey" json:"ticket_no" validate:"required,len=13"`
	FlightID       int64               `gorm:"column:flight_id;primaryKey;autoIncrement:false;index:ticket_flights_flight_id_idx" json:"flight_id" validate:"gt=0"`
	FareConditions constants.FareClass `gorm:"column:fare_conditions;type:varchar(10);not null;check:ticket_flights_fare_conditions_check,fare_conditions IN ('Economy', 'Comfort', 'Business')" json:"fare_conditions" validate:"fare_class"`
	Amount         decimal.Decimal     `gorm:"column:amount;type:numeric(10,2);not null;check:ticket_flights_amount_check,amount >= 0" json:"amount" validate:"gte=0"`

	Ticket *Ticket `gorm:"foreignKey:TicketNo;references:No" json:"-" validate:"-"`
	Flight *Flight `gorm:"foreignKey:FlightID;references:ID" json:"-" validate:"-"`
}

func (TicketFlight) TableName() string {
	return "ticket_flights"
}
