package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"airdemo/bookings/internal/common"
	gormModels "airdemo/bookings/internal/models/gorm"
)

// ListBookingsHandler handles GET /api/v1/bookings?offset=&limit=
func (h *Handlers) ListBookingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		offset, limit, err := pagination(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		items, total, err := h.deps.Repo.Bookings.ListPage(r.Context(), offset, limit)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Bookings fetched", pageOf(items, total, offset, limit))
	}
}

// GetBookingHandler handles GET /api/v1/bookings/{ref}
func (h *Handlers) GetBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		b, err := h.deps.Repo.Bookings.GetByRef(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if b == nil {
			respondNotFound(w, initTime, "Booking")
			return
		}
		common.RespondSuccess(w, initTime, "Booking fetched", b)
	}
}

// CreateBookingHandler handles POST /api/v1/bookings
func (h *Handlers) CreateBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var b gormModels.Booking
		if err := decodeBody(w, r, &b); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Bookings.Create(r.Context(), &b); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Booking created", b, http.StatusCreated)
	}
}

// BookingStatisticsHandler handles GET /api/v1/bookings/{ref}/statistics
func (h *Handlers) BookingStatisticsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		stats, err := h.deps.Repo.Tickets.BookingStatistics(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Booking statistics fetched", stats)
	}
}

// BookingTicketsHandler handles GET /api/v1/bookings/{ref}/tickets
func (h *Handlers) BookingTicketsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		tickets, err := h.deps.Repo.Tickets.ListByBooking(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tickets fetched", tickets)
	}
}
