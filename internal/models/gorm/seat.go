package gorm

import "airdemo/bookings/internal/constants"

// Seat is a seat in an aircraft cabin layout. Removing the aircraft removes
// its seats.
type Seat struct {
	AircraftCode   string              `gorm:"column:aircraft_code;type:character(3);primaryKey" json:"aircraft_code" validate:"required,len=3"`
	SeatNo         string              `gorm:"column:seat_no;type:varchar(4);primaryKey" json:"seat_no" validate:"required,max=4"`
	FareConditions constants.FareClass `gorm:"column:fare_conditions;type:varchar(10);not null;check:seats_fare_conditions_check,fare_conditions IN ('Economy', 'Comfort', 'Business')" json:"fare_conditions" validate:"fare_class"`

	Aircraft *Aircraft `gorm:"foreignKey:AircraftCode;references:Code;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Seat) TableName() string {
	return "seats"
}
