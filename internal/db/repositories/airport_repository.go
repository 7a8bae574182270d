package repositories

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/geo"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
	"airdemo/bookings/internal/validation"
)

const (
	postgisUnknown int32 = iota
	postgisAvailable
	postgisAbsent
)

// AirportRepository handles airports_data table operations
type AirportRepository struct {
	base
	postgis atomic.Int32
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(conn *db.Connection, m *metrics.MetricsRegistry) *AirportRepository {
	return &AirportRepository{base: newBase(conn, m, "airport")}
}

// EnsureSchema creates airports_data. On Postgres it also enables PostGIS
// and a geography index when the extension can be installed; otherwise the
// nearby search falls back to the (latitude, longitude) index.
func (r *AirportRepository) EnsureSchema(ctx context.Context) error {
	if err := r.migrate(ctx, &gormModels.Airport{}); err != nil {
		return err
	}
	if r.conn.Dialect() != db.DialectPostgres {
		return nil
	}

	if _, err := r.conn.Exec(ctx, constants.CreatePostGISExtension); err != nil {
		r.log.Infow("PostGIS unavailable, nearby search runs in the application", "error", err)
		r.postgis.Store(postgisAbsent)
		return nil
	}
	if _, err := r.conn.Exec(ctx, constants.CreateAirportGeographyIndex); err != nil {
		r.log.Warnw("geography index not created", "error", err)
	}
	r.postgis.Store(postgisAvailable)
	return nil
}

func (r *AirportRepository) Create(ctx context.Context, a *gormModels.Airport) (err error) {
	defer r.observe("create", time.Now(), &err)
	if a == nil {
		return r.missing("create")
	}
	a.Code = strings.ToUpper(a.Code)
	return r.create(ctx, "create", a, "airport_code", a.Code)
}

// GetByCode returns nil when no airport has the code. Codes are matched
// upper case.
func (r *AirportRepository) GetByCode(ctx context.Context, code string) (_ *gormModels.Airport, err error) {
	defer r.observe("get", time.Now(), &err)
	var a gormModels.Airport
	found, err := r.first(ctx, "get", &a, "airport_code = ?", strings.ToUpper(code))
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (r *AirportRepository) List(ctx context.Context) (_ []gormModels.Airport, err error) {
	defer r.observe("list", time.Now(), &err)
	out := []gormModels.Airport{}
	err = r.find(ctx, "list", &out, "airport_code", "")
	return out, err
}

func (r *AirportRepository) ListPage(ctx context.Context, offset, limit int) (_ []gormModels.Airport, _ int64, err error) {
	defer r.observe("list_page", time.Now(), &err)
	out := []gormModels.Airport{}
	total, err := r.paginate(ctx, "list_page", &gormModels.Airport{}, &out, "airport_code", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update changes name, city, location and/or timezone.
func (r *AirportRepository) Update(ctx context.Context, code string, u dtos.AirportUpdate) (err error) {
	defer r.observe("update", time.Now(), &err)
	if err := r.validate("update", u, "airport_code", code); err != nil {
		return err
	}
	return r.update(ctx, "update", &gormModels.Airport{}, u.Columns(), "airport_code = ?", strings.ToUpper(code))
}

func (r *AirportRepository) Delete(ctx context.Context, code string) (err error) {
	defer r.observe("delete", time.Now(), &err)
	return r.remove(ctx, "delete", &gormModels.Airport{}, "airport_code = ?", strings.ToUpper(code))
}

// FindNearby returns the airports within radiusKm of (lon, lat), nearest
// first. Distance is geodesic on the WGS84 ellipsoid and an airport is
// included when its distance is at most radiusKm.
func (r *AirportRepository) FindNearby(ctx context.Context, lon, lat, radiusKm float64) (_ []dtos.NearbyAirport, err error) {
	defer r.observe("find_nearby", time.Now(), &err)

	keyvals := []any{"lon", lon, "lat", lat, "radius_km", radiusKm}
	if err := r.validate("find_nearby", dtos.Coordinates{Longitude: lon, Latitude: lat}, keyvals...); err != nil {
		return nil, err
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, r.fail("find_nearby", validation.Fail("radius_km", "gte"), keyvals...)
	}

	if r.geographyEnabled(ctx) {
		out := []dtos.NearbyAirport{}
		if err := r.conn.Select(ctx, &out, constants.NearbyAirportsPostGIS, lon, lat, lon, lat, radiusKm); err != nil {
			return nil, r.fail("find_nearby", err, keyvals...)
		}
		return out, nil
	}
	return r.findNearbyInApp(ctx, geo.Point{Lon: lon, Lat: lat}, radiusKm, keyvals)
}

// findNearbyInApp narrows candidates with a bounding box on the indexed
// columns and keeps those within the exact geodesic radius.
func (r *AirportRepository) findNearbyInApp(ctx context.Context, center geo.Point, radiusKm float64, keyvals []any) ([]dtos.NearbyAirport, error) {
	box := geo.BoundingBox(center, radiusKm)
	tx := r.orm(ctx).Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat)
	if !box.WrapsLon {
		tx = tx.Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon)
	}

	var candidates []gormModels.Airport
	if err := tx.Find(&candidates).Error; err != nil {
		return nil, r.fail("find_nearby", err, keyvals...)
	}

	out := []dtos.NearbyAirport{}
	for _, a := range candidates {
		d := geo.DistanceKm(center, geo.Point{Lon: a.Longitude, Lat: a.Latitude})
		if d <= radiusKm {
			out = append(out, dtos.NearbyAirport{Airport: a, DistanceKm: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (r *AirportRepository) geographyEnabled(ctx context.Context) bool {
	if r.conn.Dialect() != db.DialectPostgres {
		return false
	}
	switch r.postgis.Load() {
	case postgisAvailable:
		return true
	case postgisAbsent:
		return false
	}

	var n int
	if err := r.conn.Get(ctx, &n, constants.PostGISInstalled); err != nil {
		r.log.Warnw("could not probe for PostGIS", "error", err)
		return false
	}
	if n > 0 {
		r.postgis.Store(postgisAvailable)
		return true
	}
	r.postgis.Store(postgisAbsent)
	return false
}
