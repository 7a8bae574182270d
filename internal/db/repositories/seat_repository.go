package repositories

import (
	"context"
	"time"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

type SeatRepository struct {
	base
}

func NewSeatRepository(conn *db.Connection, m *metrics.MetricsRegistry) *SeatRepository {
	return &SeatRepository{base: newBase(conn, m, "seat")}
}

func (r *SeatRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.Seat{})
}

// Create fails with ErrConstraint when the aircraft does not exist or the
// seat number is taken.
func (r *SeatRepository) Create(ctx context.Context, s *gormModels.Seat) (err error) {
	defer r.observe("create", time.Now(), &err)
	if s == nil {
		return r.missing("create")
	}
	return r.create(ctx, "create", s, "aircraft_code", s.AircraftCode, "seat_no", s.SeatNo)
}

func (r *SeatRepository) Get(ctx context.Context, aircraftCode, seatNo string) (_ *gormModels.Seat, err error) {
	defer r.observe("get", time.Now(), &err)
	var s gormModels.Seat
	found, err := r.first(ctx, "get", &s, "aircraft_code = ? AND seat_no = ?", aircraftCode, seatNo)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (r *SeatRepository) List(ctx context.Context) (_ []gormModels.Seat, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Seat{}
	err = r.find(ctx, "list", &out, "aircraft_code, seat_no", "")
	return out, err
}

func (r *SeatRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Seat, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Seat{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Seat{}, &out, "aircraft_code, seat_no", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByAircraft returns the cabin layout of one aircraft ordered by seat number
func (r *SeatRepository) ListByAircraft(ctx context.Context, aircraftCode string) (_ []gormModels.Seat, err error) {
	defer r.observe("list_by_aircraft", time.Now(), &err)
	out := []gormModels.Seat{}
	err = r.find(ctx, "list_by_aircraft", &out, "seat_no", "aircraft_code = ?", aircraftCode)
	return out, err
}

func (r *SeatRepository) Update(ctx context.Context, aircraftCode, seatNo string, u dtos.SeatUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "aircraft_code", aircraftCode, "seat_no", seatNo); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.Seat{}, u.Columns(),
		"aircraft_code = ? AND seat_no = ?", aircraftCode, seatNo)
}

func (r *SeatRepository) UpdateFareClass(ctx context.Context, aircraftCode, seatNo string, class constants.FareClass) error {
	return r.Update(ctx, aircraftCode, seatNo, dtos.SeatUpdate{FareConditions: &class})
}

func (r *SeatRepository) Delete(ctx context.Context, aircraftCode, seatNo string) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Seat{}, "aircraft_code = ? AND seat_no = ?", aircraftCode, seatNo)
}
