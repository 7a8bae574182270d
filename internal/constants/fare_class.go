package constants

import (
	"database/sql/driver"
	"fmt"
)

// FareClass mirrors the CHECK domain of seats and ticket_flights
type FareClass string

const (
	FareEconomy  FareClass = "Economy"
	FareComfort  FareClass = "Comfort"
	FareBusiness FareClass = "Business"
)

// FareClasses lists the classes in the order statistics are reported.
func FareClasses() []FareClass {
	return []FareClass{FareBusiness, FareComfort, FareEconomy}
}

func (c FareClass) String() string { return string(c) }

func (c FareClass) Valid() bool {
	switch c {
	case FareEconomy, FareComfort, FareBusiness:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface
func (c *FareClass) Scan(src interface{}) error {
	if src == nil {
		*c = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*c = FareClass(v)
	case []byte:
		*c = FareClass(v)
	default:
		return fmt.Errorf("FareClass: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (c FareClass) Value() (driver.Value, error) { return string(c), nil }
