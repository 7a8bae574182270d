package repositories

import (
	"context"
	"errors"
	"fmt"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/logging"
	"airdemo/bookings/internal/metrics"
)

// Repositories bundles one repository per table over a shared connection.
type Repositories struct {
	Aircraft      *AircraftRepository
	Airports      *AirportRepository
	Seats         *SeatRepository
	Bookings      *BookingRepository
	Flights       *FlightRepository
	Tickets       *TicketRepository
	TicketFlights *TicketFlightRepository
	BoardingPass  *BoardingPassRepository
}

func New(conn *db.Connection, m *metrics.MetricsRegistry) *Repositories {
	return &Repositories{
		Aircraft:      NewAircraftRepository(conn, m),
		Airports:      NewAirportRepository(conn, m),
		Seats:         NewSeatRepository(conn, m),
		Bookings:      NewBookingRepository(conn, m),
		Flights:       NewFlightRepository(conn, m),
		Tickets:       NewTicketRepository(conn, m),
		TicketFlights: NewTicketFlightRepository(conn, m),
		BoardingPass:  NewBoardingPassRepository(conn, m),
	}
}

type schemaOwner interface {
	EnsureSchema(ctx context.Context) error
}

// EnsureSchemas creates every missing table, referenced tables first. A
// table that fails is logged and skipped; the joined failures are returned.
func (r *Repositories) EnsureSchemas(ctx context.Context) error {
	owners := []struct {
		name  string
		owner schemaOwner
	}{
		{"aircrafts_data", r.Aircraft},
		{"airports_data", r.Airports},
		{"seats", r.Seats},
		{"bookings", r.Bookings},
		{"flights", r.Flights},
		{"tickets", r.Tickets},
		{"ticket_flights", r.TicketFlights},
		{"boarding_passes", r.BoardingPass},
	}

	var errs []error
	for _, o := range owners {
		if err := o.owner.EnsureSchema(ctx); err != nil {
			logging.Error("table setup failed, continuing", "table", o.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", o.name, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	logging.Info("Schema ready", "tables", len(owners))
	return nil
}
