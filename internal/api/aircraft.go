package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

// ListAircraftHandler handles GET /api/v1/aircraft?offset=&limit=
func (h *Handlers) ListAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		offset, limit, err := pagination(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		items, total, err := h.deps.Repo.Aircraft.ListPage(r.Context(), offset, limit)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft fetched", pageOf(items, total, offset, limit))
	}
}

// GetAircraftHandler handles GET /api/v1/aircraft/{code}
func (h *Handlers) GetAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		a, err := h.deps.Repo.Aircraft.GetByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if a == nil {
			respondNotFound(w, initTime, "Aircraft")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft fetched", a)
	}
}

// CreateAircraftHandler handles POST /api/v1/aircraft
func (h *Handlers) CreateAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var a gormModels.Aircraft
		if err := decodeBody(w, r, &a); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Aircraft.Create(r.Context(), &a); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft created", a, http.StatusCreated)
	}
}

// UpdateAircraftHandler handles PATCH /api/v1/aircraft/{code}
func (h *Handlers) UpdateAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var u dtos.AircraftUpdate
		if err := decodeBody(w, r, &u); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		code := chi.URLParam(r, "code")
		if err := h.deps.Repo.Aircraft.Update(r.Context(), code, u); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		a, err := h.deps.Repo.Aircraft.GetByCode(r.Context(), code)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft updated", a)
	}
}

// DeleteAircraftHandler handles DELETE /api/v1/aircraft/{code}
func (h *Handlers) DeleteAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		if err := h.deps.Repo.Aircraft.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft deleted", nil)
	}
}

// ListSeatsHandler handles GET /api/v1/seats/{aircraft}
func (h *Handlers) ListSeatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		seats, err := h.deps.Repo.Seats.ListByAircraft(r.Context(), chi.URLParam(r, "aircraft"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Seats fetched", seats)
	}
}
