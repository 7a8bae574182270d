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

// BoardingPassRepository handles boarding_passes table operations
type BoardingPassRepository struct {
	base
}

func NewBoardingPassRepository(conn *db.Connection, m *metrics.MetricsRegistry) *BoardingPassRepository {
	return &BoardingPassRepository{base: newBase(conn, m, "boarding_pass")}
}

func (r *BoardingPassRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.BoardingPass{})
}

// Create fails with ErrConstraint when the boarding number or the seat is
// already taken on the flight.
func (r *BoardingPassRepository) Create(ctx context.Context, bp *gormModels.BoardingPass) (err error) {
	defer r.observe("create", time.Now(), &err)
	if bp == nil {
		return r.missing("create")
	}
	return r.create(ctx, "create", bp,
		"ticket_no", bp.TicketNo, "flight_id", bp.FlightID, "boarding_no", bp.BoardingNo, "seat_no", bp.SeatNo)
}

func (r *BoardingPassRepository) Get(ctx context.Context, ticketNo string, flightID int64) (_ *gormModels.BoardingPass, err error) {
	defer r.observe("get", time.Now(), &err)
	var bp gormModels.BoardingPass
	found, err := r.first(ctx, "get", &bp, "ticket_no = ? AND flight_id = ?", ticketNo, flightID)
	if err != nil || !found {
		return nil, err
	}
	return &bp, nil
}

func (r *BoardingPassRepository) GetByBoardingNo(ctx context.Context, flightID int64, boardingNo int) (_ *gormModels.BoardingPass, err error) {
	defer r.observe("get_by_boarding_no", time.Now(), &err)
	var bp gormModels.BoardingPass
	found, err := r.first(ctx, "get_by_boarding_no", &bp, "flight_id = ? AND boarding_no = ?", flightID, boardingNo)
	if err != nil || !found {
		return nil, err
	}
	return &bp, nil
}

func (r *BoardingPassRepository) List(ctx context.Context) (_ []gormModels.BoardingPass, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.BoardingPass{}
	err = r.find(ctx, "list", &out, "flight_id, boarding_no", "")
	return out, err
}

func (r *BoardingPassRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.BoardingPass, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.BoardingPass{}
	total, err := r.paginate(ctx, "list_page", &gormModels.BoardingPass{}, &out, "flight_id, boarding_no", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *BoardingPassRepository) ListByFlight(ctx context.Context, flightID int64) (_ []gormModels.BoardingPass, err error) {
	defer r.observe("list_by_flight", time.Now(), &err)
	out := []gormModels.BoardingPass{}
	err = r.find(ctx, "list_by_flight", &out, "boarding_no", "flight_id = ?", flightID)
	return out, err
}

func (r *BoardingPassRepository) Update(ctx context.Context, ticketNo string, flightID int64, u dtos.BoardingPassUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "ticket_no", ticketNo, "flight_id", flightID); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.BoardingPass{}, u.Columns(),
		"ticket_no = ? AND flight_id = ?", ticketNo, flightID)
}

func (r *BoardingPassRepository) UpdateSeat(ctx context.Context, ticketNo string, flightID int64, seatNo string) error {
	return r.Update(ctx, ticketNo, flightID, dtos.BoardingPassUpdate{SeatNo: &seatNo})
}

func (r *BoardingPassRepository) UpdateBoardingNo(ctx context.Context, ticketNo string, flightID int64, boardingNo int) error {
	return r.Update(ctx, ticketNo, flightID, dtos.BoardingPassUpdate{BoardingNo: &boardingNo})
}

func (r *BoardingPassRepository) Delete(ctx context.Context, ticketNo string, flightID int64) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.BoardingPass{}, "ticket_no = ? AND flight_id = ?", ticketNo, flightID)
}

// OccupiedSeats lists the seats already assigned on the flight, sorted.
func (r *BoardingPassRepository) OccupiedSeats(ctx context.Context, flightID int64) (_ []string, err error) {
	defer r.observe("occupied_seats", time.Now(), &err)
	out := []string{}
	if err := r.conn.Select(ctx, &out, constants.OccupiedSeats, flightID); err != nil {
		return nil, r.fail("occupied_seats", err, "flight_id", flightID)
	}
	return out, nil
}

// NextBoardingNumber suggests one past the highest boarding number issued
// on the flight, or 1. The number is not reserved: two callers can read the
// same value and the second Create then fails on the unique key.
func (r *BoardingPassRepository) NextBoardingNumber(ctx context.Context, flightID int64) (_ int, err error) {
	defer r.observe("next_boarding_no", time.Now(), &err)
	var next int
	if err := r.conn.Get(ctx, &next, constants.NextBoardingNumber, flightID); err != nil {
		return 0, r.fail("next_boarding_no", err, "flight_id", flightID)
	}
	return next, nil
}
