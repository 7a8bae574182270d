package repositories

import (
	"context"
	"strings"
	"time"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models"
	"airdemo/bookings/internal/models/dtos"
	"airdemo/bookings/internal/models/entities"
	gormModels "airdemo/bookings/internal/models/gorm"
	"airdemo/bookings/internal/validation"
)

// TicketRepository handles tickets table operations
type TicketRepository struct {
	base
}

func NewTicketRepository(conn *db.Connection, m *metrics.MetricsRegistry) *TicketRepository {
	return &TicketRepository{base: newBase(conn, m, "ticket")}
}

func (r *TicketRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.Ticket{})
}

// Create fails with ErrConstraint when the booking does not exist.
func (r *TicketRepository) Create(ctx context.Context, t *gormModels.Ticket) (err error) {
	defer r.observe("create", time.Now(), &err)
	if t == nil {
		return r.missing("create")
	}
	return r.create(ctx, "create", t, "ticket_no", t.No, "book_ref", t.BookRef)
}

// GetByNo returns nil when the ticket does not exist
func (r *TicketRepository) GetByNo(ctx context.Context, ticketNo string) (_ *gormModels.Ticket, err error) {
	defer r.observe("get", time.Now(), &err)
	var t gormModels.Ticket
	found, err := r.first(ctx, "get", &t, "ticket_no = ?", ticketNo)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) List(ctx context.Context) (_ []gormModels.Ticket, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Ticket{}
	err = r.find(ctx, "list", &out, "book_ref, ticket_no", "")
	return out, err
}

func (r *TicketRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Ticket, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Ticket{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Ticket{}, &out, "book_ref, ticket_no", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *TicketRepository) ListByBooking(ctx context.Context, bookRef string) (_ []gormModels.Ticket, err error) {
	defer r.observe("list_by_booking", time.Now(), &err)
	out := []gormModels.Ticket{}
	err = r.find(ctx, "list_by_booking", &out, "ticket_no", "book_ref = ?", bookRef)
	return out, err
}

// ListByPassengerID returns the passenger's tickets, latest booking reference first.
func (r *TicketRepository) ListByPassengerID(ctx context.Context, passengerID string) (_ []gormModels.Ticket, err error) {
	defer r.observe("list_by_passenger", time.Now(), &err)
	out := []gormModels.Ticket{}
	err = r.find(ctx, "list_by_passenger", &out, "book_ref DESC, ticket_no", "passenger_id = ?", passengerID)
	return out, err
}

// SearchByPassengerName matches a case-insensitive substring of the name.
func (r *TicketRepository) SearchByPassengerName(ctx context.Context, fragment string) (_ []gormModels.Ticket, err error) {
	defer r.observe("search_by_name", time.Now(), &err)
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, r.fail("search_by_name", validation.Fail("name", "required"))
	}
	out := []gormModels.Ticket{}
	err = r.find(ctx, "search_by_name", &out, "passenger_name, book_ref DESC",
		`LOWER(passenger_name) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(fragment)+"%")
	return out, err
}

func (r *TicketRepository) Update(ctx context.Context, ticketNo string, u dtos.TicketUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "ticket_no", ticketNo); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.Ticket{}, u.Columns(), "ticket_no = ?", ticketNo)
}

// UpdatePassengerInfo changes any of name, passenger id and contacts; nil
// arguments are left as they are.
func (r *TicketRepository) UpdatePassengerInfo(ctx context.Context, ticketNo string, name, passengerID *string, contact models.ContactData) error {
	return r.Update(ctx, ticketNo, dtos.TicketUpdate{
		PassengerName: name,
		PassengerID:   passengerID,
		ContactData:   contact,
	})
}

// UpdateBookingRef moves the ticket to another booking.
func (r *TicketRepository) UpdateBookingRef(ctx context.Context, ticketNo, bookRef string) error {
	return r.Update(ctx, ticketNo, dtos.TicketUpdate{BookRef: &bookRef})
}

func (r *TicketRepository) Delete(ctx context.Context, ticketNo string) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Ticket{}, "ticket_no = ?", ticketNo)
}

// DeleteByBooking removes every ticket of a booking and reports how many
// went. A booking without tickets is not an error.
func (r *TicketRepository) DeleteByBooking(ctx context.Context, bookRef string) (_ int64, err error) {
	defer r.observe("delete_by_booking", time.Now(), &err)
	res := r.orm(ctx).Where("book_ref = ?", bookRef).Delete(&gormModels.Ticket{})
	if res.Error != nil {
		return 0, r.fail("delete_by_booking", res.Error, "book_ref", bookRef)
	}
	r.log.Infow("deleted", "op", "delete_by_booking", "book_ref", bookRef, "rows", res.RowsAffected)
	return res.RowsAffected, nil
}

// BookingStatistics counts the tickets of a booking and joins the
// passenger names in ticket order.
func (r *TicketRepository) BookingStatistics(ctx context.Context, bookRef string) (_ *entities.BookingStatistics, err error) {
	defer r.observe("booking_statistics", time.Now(), &err)
	query := constants.BookingStatisticsPostgres
	if r.conn.Dialect() == db.DialectSQLite {
		query = constants.BookingStatisticsSQLite
	}
	var stats entities.BookingStatistics
	if err := r.conn.Get(ctx, &stats, query, bookRef); err != nil {
		return nil, r.fail("booking_statistics", err, "book_ref", bookRef)
	}
	return &stats, nil
}

// PassengerFlightHistory lists each ticket of the passenger with the number
// of flights on it and the amount spent.
func (r *TicketRepository) PassengerFlightHistory(ctx context.Context, passengerID string) (_ []entities.PassengerFlightHistory, err error) {
	defer r.observe("passenger_history", time.Now(), &err)
	out := []entities.PassengerFlightHistory{}
	if err := r.conn.Select(ctx, &out, constants.PassengerFlightHistory, passengerID); err != nil {
		return nil, r.fail("passenger_history", err, "passenger_id", passengerID)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
