package gorm

import "airdemo/bookings/internal/models"

// Airport represents an airport record with geographic coordinates
type Airport struct {
	Code      string               `gorm:"column:airport_code;type:character(3);primaryKey" db:"airport_code" json:"airport_code" validate:"required,len=3"`
	Name      models.LocalizedText `gorm:"column:airport_name;type:jsonb;not null" db:"airport_name" json:"airport_name" validate:"required,min=1"`
	City      models.LocalizedText `gorm:"column:city;type:jsonb;not null" db:"city" json:"city" validate:"required,min=1"`
	Longitude float64              `gorm:"column:longitude;type:double precision;not null;index:airports_data_lat_lon_idx,priority:2;check:airports_data_longitude_check,longitude BETWEEN -180 AND 180" db:"longitude" json:"longitude" validate:"longitude"`
	Latitude  float64              `gorm:"column:latitude;type:double precision;not null;index:airports_data_lat_lon_idx,priority:1;check:airports_data_latitude_check,latitude BETWEEN -90 AND 90" db:"latitude" json:"latitude" validate:"latitude"`
	Timezone  string               `gorm:"column:timezone;type:text;not null" db:"timezone" json:"timezone" validate:"required,timezone"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports_data"
}
