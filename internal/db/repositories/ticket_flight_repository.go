package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	"airdemo/bookings/internal/models/entities"
	gormModels "airdemo/bookings/internal/models/gorm"
	"airdemo/bookings/internal/validation"
)

// TicketFlightRepository handles ticket_flights table operations
type TicketFlightRepository struct {
	base
}

func NewTicketFlightRepository(conn *db.Connection, m *metrics.MetricsRegistry) *TicketFlightRepository {
	return &TicketFlightRepository{base: newBase(conn, m, "ticket_flight")}
}

func (r *TicketFlightRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.TicketFlight{})
}

// FareClasses lists the accepted fare classes.
func (r *TicketFlightRepository) FareClasses() []constants.FareClass {
	return constants.FareClasses()
}

func (r *TicketFlightRepository) Create(ctx context.Context, tf *gormModels.TicketFlight) (err error) {
	defer r.observe("create", time.Now(), &err)
	if tf == nil {
		return r.missing("create")
	}
	return r.create(ctx, "create", tf, "ticket_no", tf.TicketNo, "flight_id", tf.FlightID)
}

func (r *TicketFlightRepository) Get(ctx context.Context, ticketNo string, flightID int64) (_ *gormModels.TicketFlight, err error) {
	defer r.observe("get", time.Now(), &err)
	var tf gormModels.TicketFlight
	found, err := r.first(ctx, "get", &tf, "ticket_no = ? AND flight_id = ?", ticketNo, flightID)
	if err != nil || !found {
		return nil, err
	}
	return &tf, nil
}

func (r *TicketFlightRepository) List(ctx context.Context) (_ []gormModels.TicketFlight, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.TicketFlight{}
	err = r.find(ctx, "list", &out, "flight_id, ticket_no", "")
	return out, err
}

func (r *TicketFlightRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.TicketFlight, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.TicketFlight{}
	total, err := r.paginate(ctx, "list_page", &gormModels.TicketFlight{}, &out, "flight_id, ticket_no", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *TicketFlightRepository) ListByTicket(ctx context.Context, ticketNo string) (_ []gormModels.TicketFlight, err error) {
	defer r.observe("list_by_ticket", time.Now(), &err)
	out := []gormModels.TicketFlight{}
	err = r.find(ctx, "list_by_ticket", &out, "flight_id", "ticket_no = ?", ticketNo)
	return out, err
}

func (r *TicketFlightRepository) ListByFlight(ctx context.Context, flightID int64) (_ []gormModels.TicketFlight, err error) {
	defer r.observe("list_by_flight", time.Now(), &err)
	out := []gormModels.TicketFlight{}
	err = r.find(ctx, "list_by_flight", &out, "ticket_no", "flight_id = ?", flightID)
	return out, err
}

func (r *TicketFlightRepository) ListByFareClass(ctx context.Context, class constants.FareClass) (_ []gormModels.TicketFlight, err error) {
	defer r.observe("list_by_fare_class", time.Now(), &err)
	if !class.Valid() {
		return nil, r.fail("list_by_fare_class", validation.Fail("fare_conditions", "fare_class"), "fare_conditions", class)
	}
	out := []gormModels.TicketFlight{}
	err = r.find(ctx, "list_by_fare_class", &out, "flight_id, ticket_no", "fare_conditions = ?", class)
	return out, err
}

func (r *TicketFlightRepository) Update(ctx context.Context, ticketNo string, flightID int64, u dtos.TicketFlightUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "ticket_no", ticketNo, "flight_id", flightID); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.TicketFlight{}, u.Columns(),
		"ticket_no = ? AND flight_id = ?", ticketNo, flightID)
}

func (r *TicketFlightRepository) UpdateFareClass(ctx context.Context, ticketNo string, flightID int64, class constants.FareClass) error {
	return r.Update(ctx, ticketNo, flightID, dtos.TicketFlightUpdate{FareConditions: &class})
}

func (r *TicketFlightRepository) UpdateAmount(ctx context.Context, ticketNo string, flightID int64, amount decimal.Decimal) error {
	return r.Update(ctx, ticketNo, flightID, dtos.TicketFlightUpdate{Amount: &amount})
}

func (r *TicketFlightRepository) Delete(ctx context.Context, ticketNo string, flightID int64) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.TicketFlight{}, "ticket_no = ? AND flight_id = ?", ticketNo, flightID)
}

// FlightStatistics groups the segments sold on a flight by fare class,
// Business first. A flight with no sales yields an empty slice.
func (r *TicketFlightRepository) FlightStatistics(ctx context.Context, flightID int64) (_ []entities.FareClassStatistics, err error) {
	defer r.observe("flight_statistics", time.Now(), &err)
	out := []entities.FareClassStatistics{}
	if err := r.conn.Select(ctx, &out, constants.FlightFareStatistics, flightID); err != nil {
		return nil, r.fail("flight_statistics", err, "flight_id", flightID)
	}
	for i := range out {
		out[i].AvgAmount = out[i].AvgAmount.Round(2)
	}
	return out, nil
}

// TicketStatistics sums the segments of one ticket.
func (r *TicketFlightRepository) TicketStatistics(ctx context.Context, ticketNo string) (_ *entities.TicketStatistics, err error) {
	defer r.observe("ticket_statistics", time.Now(), &err)
	var stats entities.TicketStatistics
	if err := r.conn.Get(ctx, &stats, constants.TicketFareStatistics, ticketNo); err != nil {
		return nil, r.fail("ticket_statistics", err, "ticket_no", ticketNo)
	}
	stats.AvgAmount = stats.AvgAmount.Round(2)
	return &stats, nil
}
