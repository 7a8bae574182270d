package repositories

import (
	"context"
	"time"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

// AircraftRepository handles aircrafts_data table operations
type AircraftRepository struct {
	base
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(conn *db.Connection, m *metrics.MetricsRegistry) *AircraftRepository {
	return &AircraftRepository{base: newBase(conn, m, "aircraft")}
}

func (r *AircraftRepository) EnsureSchema(ctx context.Context) error {
	return r.migrate(ctx, &gormModels.Aircraft{})
}

func (r *AircraftRepository) Create(ctx context.Context, a *gormModels.Aircraft) (err error) {
	defer r.observe("create", time.Now(), &err)
	if a == nil {
		return r.missing("create")
	}
	return r.create(ctx, "create", a, "aircraft_code", a.Code)
}

// GetByCode returns nil when no aircraft has the code
func (r *AircraftRepository) GetByCode(ctx context.Context, code string) (_ *gormModels.Aircraft, err error) {
	defer r.observe("get", time.Now(), &err)
	var a gormModels.Aircraft
	found, err := r.first(ctx, "get", &a, "aircraft_code = ?", code)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (r *AircraftRepository) List(ctx context.Context) (_ []gormModels.Aircraft, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Aircraft{}
	err = r.find(ctx, "list", &out, "aircraft_code", "")
	return out, err
}

func (r *AircraftRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Aircraft, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Aircraft{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Aircraft{}, &out, "aircraft_code", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update changes the model name and/or range.
func (r *AircraftRepository) Update(ctx context.Context, code string, u dtos.AircraftUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "aircraft_code", code); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.Aircraft{}, u.Columns(), "aircraft_code = ?", code)
}

// Delete removes the aircraft and, through the store cascade, its seats.
func (r *AircraftRepository) Delete(ctx context.Context, code string) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Aircraft{}, "aircraft_code = ?", code)
}
