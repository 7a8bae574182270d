package repositories

import (
	"context"
	"time"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
	"airdemo/bookings/internal/validation"
)

const flightOrder = "scheduled_departure DESC, flight_id DESC"

// FlightRepository handles flights table operations
type FlightRepository struct {
	base
}

func NewFlightRepository(conn *db.Connection, m *metrics.MetricsRegistry) *FlightRepository {
	return &FlightRepository{base: newBase(conn, m, "flight")}
}

func (r *FlightRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.Flight{})
}

// Statuses lists the accepted flight statuses.
func (r *FlightRepository) Statuses() []constants.FlightStatus {
	return constants.FlightStatuses()
}

// Create inserts f and stores the generated id in f.ID.
func (r *FlightRepository) Create(ctx context.Context, f *gormModels.Flight) (err error) {
	defer r.observe("create", time.Now(), &err)
	if f == nil {
		return r.missing("create")
	}
	keyvals := []any{"flight_no", f.FlightNo, "scheduled_departure", f.ScheduledDeparture}
	if err := validation.FlightActualTimes(f.ActualDeparture, f.ActualArrival); err != nil {
		return r.fail("create", err, keyvals...)
	}

	f.ScheduledDeparture = f.ScheduledDeparture.UTC()
	f.ScheduledArrival = f.ScheduledArrival.UTC()
	f.ActualDeparture = utcPtr(f.ActualDeparture)
	f.ActualArrival = utcPtr(f.ActualArrival)

	if err := r.create(ctx, "create", f, keyvals...); err != nil {
		return err
	}
	r.log.Infow("flight created", "flight_id", f.ID, "flight_no", f.FlightNo)
	return nil
}

// GetByID returns nil when the flight does not exist
func (r *FlightRepository) GetByID(ctx context.Context, id int64) (_ *gormModels.Flight, err error) {
	defer r.observe("get", time.Now(), &err)
	var f gormModels.Flight
	found, err := r.first(ctx, "get", &f, "flight_id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

// List returns every flight, latest scheduled departure first.
func (r *FlightRepository) List(ctx context.Context) (_ []gormModels.Flight, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Flight{}
	err = r.find(ctx, "list", &out, flightOrder, "")
	return out, err
}

func (r *FlightRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Flight, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Flight{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Flight{}, &out, flightOrder, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *FlightRepository) ListByFlightNo(ctx context.Context, flightNo string) (_ []gormModels.Flight, err error) {
	defer r.observe("list_by_flight_no", time.Now(), &err)
	out := []gormModels.Flight{}
	err = r.find(ctx, "list_by_flight_no", &out, flightOrder, "flight_no = ?", flightNo)
	return out, err
}

// ListByAirport returns flights departing from or arriving at the airport.
func (r *FlightRepository) ListByAirport(ctx context.Context, airportCode string) (_ []gormModels.Flight, err error) {
	defer r.observe("list_by_airport", time.Now(), &err)
	out := []gormModels.Flight{}
	err = r.find(ctx, "list_by_airport", &out, flightOrder,
		"departure_airport = ? OR arrival_airport = ?", airportCode, airportCode)
	return out, err
}

func (r *FlightRepository) ListByStatus(ctx context.Context, status constants.FlightStatus) (_ []gormModels.Flight, err error) {
	defer r.observe("list_by_status", time.Now(), &err)
	if !status.Valid() {
		return nil, r.fail("list_by_status", validation.Fail("status", "flight_status"), "status", status)
	}
	out := []gormModels.Flight{}
	err = r.find(ctx, "list_by_status", &out, flightOrder, "status = ?", status)
	return out, err
}

// ListByDateRange returns flights scheduled to depart within [start, end],
// earliest first.
func (r *FlightRepository) ListByDateRange(ctx context.Context, start, end time.Time) (_ []gormModels.Flight, err error) {
	defer r.observe("list_by_date_range", time.Now(), &err)
	if end.Before(start) {
		return nil, r.fail("list_by_date_range", validation.Fail("end", "gtefield"), "start", start, "end", end)
	}
	out := []gormModels.Flight{}
	err = r.find(ctx, "list_by_date_range", &out, "scheduled_departure, flight_id",
		"scheduled_departure BETWEEN ? AND ?", start.UTC(), end.UTC())
	return out, err
}

// Update applies the supplied fields. Scheduled and actual time pairs are
// checked when both halves are given; the store checks the rest.
func (r *FlightRepository) Update(ctx context.Context, id int64, u dtos.FlightUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	return r.apply(ctx, "update", id, u)
}

// UpdateStatus sets the status. No transition order is enforced.
func (r *FlightRepository) UpdateStatus(ctx context.Context, id int64, status constants.FlightStatus) (err error) {
	defer r.observe("update_status", time.Now(), &err)
	if !status.Valid() {
		return r.fail("update_status", validation.Fail("status", "flight_status"), "flight_id", id, "status", status)
	}
	return r.apply(ctx, "update_status", id, dtos.FlightUpdate{Status: &status})
}

// UpdateActualTimes sets either or both actual times.
func (r *FlightRepository) UpdateActualTimes(ctx context.Context, id int64, departure, arrival *time.Time) (err error) {
	defer r.observe("update_actual_times", time.Now(), &err)
	if err := validation.ActualTimes(departure, arrival); err != nil {
		return r.fail("update_actual_times", err, "flight_id", id)
	}
	return r.apply(ctx, "update_actual_times", id, dtos.FlightUpdate{ActualDeparture: departure, ActualArrival: arrival})
}

// UpdateScheduledTimes sets either or both scheduled times. A single time is
// checked against the stored one by the flights_check constraint.
func (r *FlightRepository) UpdateScheduledTimes(ctx context.Context, id int64, departure, arrival *time.Time) (err error) {
	defer r.observe("update_scheduled_times", time.Now(), &err)
	if departure == nil && arrival == nil {
		return r.fail("update_scheduled_times", validation.Fail("scheduled_departure", "required_without_all"), "flight_id", id)
	}
	return r.apply(ctx, "update_scheduled_times", id, dtos.FlightUpdate{ScheduledDeparture: departure, ScheduledArrival: arrival})
}

func (r *FlightRepository) apply(ctx context.Context, op string, id int64, u dtos.FlightUpdate) error {
	if err := r.validate(op, u, "flight_id", id); err != nil {
		return err
	}
	if u.ScheduledDeparture != nil && u.ScheduledArrival != nil && !u.ScheduledArrival.After(*u.ScheduledDeparture) {
		return r.fail(op, validation.Fail("scheduled_arrival", "gtfield"), "flight_id", id)
	}
	if u.ActualDeparture != nil && u.ActualArrival != nil && !u.ActualArrival.After(*u.ActualDeparture) {
		return r.fail(op, validation.Fail("actual_arrival", "gtfield"), "flight_id", id)
	}
	return r.update(ctx, op, &gormModels.Flight{}, u.Columns(), "flight_id = ?", id)
}

func (r *FlightRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Flight{}, "flight_id = ?", id)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
