package constants

import (
	"database/sql/driver"
	"fmt"
)

// FlightStatus mirrors the CHECK domain of flights.status
type FlightStatus string

const (
	FlightScheduled FlightStatus = "Scheduled"
	FlightOnTime    FlightStatus = "On Time"
	FlightDelayed   FlightStatus = "Delayed"
	FlightDeparted  FlightStatus = "Departed"
	FlightArrived   FlightStatus = "Arrived"
	FlightCancelled FlightStatus = "Cancelled"
)

// FlightStatuses lists every accepted status in schedule order.
func FlightStatuses() []FlightStatus {
	return []FlightStatus{
		FlightScheduled,
		FlightOnTime,
		FlightDelayed,
		FlightDeparted,
		FlightArrived,
		FlightCancelled,
	}
}

func (s FlightStatus) String() string { return string(s) }

func (s FlightStatus) Valid() bool {
	for _, v := range FlightStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (s *FlightStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FlightStatus(v)
	case []byte:
		*s = FlightStatus(v)
	default:
		return fmt.Errorf("FlightStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s FlightStatus) Value() (driver.Value, error) { return string(s), nil }
