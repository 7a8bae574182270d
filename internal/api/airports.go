package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/constants"
	gormModels "airdemo/bookings/internal/models/gorm"
)

// ListAirportsHandler handles GET /api/v1/airports?offset=&limit=
func (h *Handlers) ListAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		offset, limit, err := pagination(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		items, total, err := h.deps.Repo.Airports.ListPage(r.Context(), offset, limit)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airports fetched", pageOf(items, total, offset, limit))
	}
}

// GetAirportHandler handles GET /api/v1/airports/{code}
func (h *Handlers) GetAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		a, err := h.deps.Repo.Airports.GetByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if a == nil {
			respondNotFound(w, initTime, "Airport")
			return
		}
		common.RespondSuccess(w, initTime, "Airport fetched", a)
	}
}

// CreateAirportHandler handles POST /api/v1/airports
func (h *Handlers) CreateAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var a gormModels.Airport
		if err := decodeBody(w, r, &a); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Airports.Create(r.Context(), &a); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airport created", a, http.StatusCreated)
	}
}

// DeleteAirportHandler handles DELETE /api/v1/airports/{code}
func (h *Handlers) DeleteAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		if err := h.deps.Repo.Airports.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airport deleted", nil)
	}
}

// NearbyAirportsHandler handles GET /api/v1/airports/nearby?lon=&lat=&radius_km=
// radius_km defaults to 100.
func (h *Handlers) NearbyAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		if errLon != nil || errLat != nil {
			common.RespondError(w, initTime, nil, "lon and lat must be numbers", http.StatusBadRequest)
			return
		}

		radius := constants.DefaultNearbyRadiusKm
		if v := q.Get("radius_km"); v != "" {
			var err error
			if radius, err = strconv.ParseFloat(v, 64); err != nil {
				common.RespondError(w, initTime, nil, "radius_km must be a number", http.StatusBadRequest)
				return
			}
		}

		airports, err := h.deps.Repo.Airports.FindNearby(r.Context(), lon, lat, radius)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Nearby airports fetched", airports)
	}
}

// ImportAirportsHandler handles POST /api/v1/airports/import
// The body is an airport document keyed by code.
func (h *Handlers) ImportAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		result, err := h.deps.Services.AirportLoader.LoadFromJSON(r.Context(), body)
		if err != nil {
			if result.Total == 0 {
				common.RespondError(w, initTime, err, "", http.StatusBadRequest)
				return
			}
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airports imported", result)
	}
}
