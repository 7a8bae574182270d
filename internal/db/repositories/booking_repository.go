package repositories

import (
	"context"
	"time"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

type BookingRepository struct {
	base
}

func NewBookingRepository(conn *db.Connection, m *metrics.MetricsRegistry) *BookingRepository {
	return &BookingRepository{base: newBase(conn, m, "booking")}
}

func (r *BookingRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.Booking{})
}

func (r *BookingRepository) Create(ctx context.Context, b *gormModels.Booking) (err error) {
	defer r.observe("create", time.Now(), &err)
	if b == nil {
		return r.missing("create")
	}
	b.BookDate = b.BookDate.UTC()
	return r.create(ctx, "create", b, "book_ref", b.Ref)
}

// GetByRef returns nil when the booking does not exist
func (r *BookingRepository) GetByRef(ctx context.Context, ref string) (_ *gormModels.Booking, err error) {
	defer r.observe("get", time.Now(), &err)
	var b gormModels.Booking
	found, err := r.first(ctx, "get", &b, "book_ref = ?", ref)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) (_ []gormModels.Booking, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Booking{}
	err = r.find(ctx, "list", &out, "book_date, book_ref", "")
	return out, err
}

func (r *BookingRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Booking, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Booking{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Booking{}, &out, "book_date, book_ref", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update changes the total amount and/or the booking date.
func (r *BookingRepository) Update(ctx context.Context, ref string, u dtos.BookingUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "book_ref", ref); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.Booking{}, u.Columns(), "book_ref = ?", ref)
}

// Delete fails with ErrConstraint while tickets still reference the booking.
func (r *BookingRepository) Delete(ctx context.Context, ref string) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Booking{}, "book_ref = ?", ref)
}
