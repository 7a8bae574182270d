package gorm

import "airdemo/bookings/internal/models"

// Aircraft is a fleet type keyed by its three character IATA code
type Aircraft struct {
	Code  string               `gorm:"column:aircraft_code;type:character(3);primaryKey" db:"aircraft_code" json:"aircraft_code" validate:"required,len=3"`
	Model models.LocalizedText `gorm:"column:model;type:jsonb;not null" db:"model" json:"model" validate:"required,min=1,dive,keys,required,endkeys,required"`
	// Range is the flight range in kilometres.
	Range int `gorm:"column:range;not null;check:aircrafts_range_check,\"range\" > 0" db:"range" json:"range" validate:"gt=0"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircrafts_data"
}
