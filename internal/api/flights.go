package api

import (
	"net/http"
	"time"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

// ListFlightsHandler handles GET /api/v1/flights?offset=&limit=
// Flights come latest scheduled departure first.
func (h *Handlers) ListFlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		offset, limit, err := pagination(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		items, total, err := h.deps.Repo.Flights.ListPage(r.Context(), offset, limit)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flights fetched", pageOf(items, total, offset, limit))
	}
}

// FlightStatusesHandler handles GET /api/v1/flights/statuses
func (h *Handlers) FlightStatusesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondSuccess(w, time.Now(), "Flight statuses", h.deps.Repo.Flights.Statuses())
	}
}

// GetFlightHandler handles GET /api/v1/flights/{id}
func (h *Handlers) GetFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		f, err := h.deps.Repo.Flights.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if f == nil {
			respondNotFound(w, initTime, "Flight")
			return
		}
		common.RespondSuccess(w, initTime, "Flight fetched", f)
	}
}

// CreateFlightHandler handles POST /api/v1/flights
func (h *Handlers) CreateFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var f gormModels.Flight
		if err := decodeBody(w, r, &f); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		f.ID = 0
		if err := h.deps.Repo.Flights.Create(r.Context(), &f); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight created", f, http.StatusCreated)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{id}
func (h *Handlers) DeleteFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Flights.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

// UpdateFlightStatusHandler handles PATCH /api/v1/flights/{id}/status
func (h *Handlers) UpdateFlightStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		var req dtos.FlightStatusRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Flights.UpdateStatus(r.Context(), id, req.Status); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		h.respondFlight(w, r, initTime, id, "Flight status updated")
	}
}

// UpdateActualTimesHandler handles PATCH /api/v1/flights/{id}/actual-times
func (h *Handlers) UpdateActualTimesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		var req dtos.ActualTimesRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.Flights.UpdateActualTimes(r.Context(), id, req.ActualDeparture, req.ActualArrival); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		h.respondFlight(w, r, initTime, id, "Flight times updated")
	}
}

func (h *Handlers) respondFlight(w http.ResponseWriter, r *http.Request, initTime time.Time, id int64, message string) {
	f, err := h.deps.Repo.Flights.GetByID(r.Context(), id)
	if err != nil {
		respondRepoError(w, initTime, err)
		return
	}
	common.RespondSuccess(w, initTime, message, f)
}

// FlightStatisticsHandler handles GET /api/v1/flights/{id}/statistics
func (h *Handlers) FlightStatisticsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		stats, err := h.deps.Repo.TicketFlights.FlightStatistics(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Flight statistics fetched", stats)
	}
}

// FlightBoardingPassesHandler handles GET /api/v1/flights/{id}/boarding-passes
func (h *Handlers) FlightBoardingPassesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		passes, err := h.deps.Repo.BoardingPass.ListByFlight(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Boarding passes fetched", passes)
	}
}

// NextBoardingNumberHandler handles GET /api/v1/flights/{id}/next-boarding-number
// The number is a suggestion and is not reserved.
func (h *Handlers) NextBoardingNumberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		next, err := h.deps.Repo.BoardingPass.NextBoardingNumber(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Next boarding number",
			dtos.NextBoardingNumberResponse{FlightID: id, NextBoardingNo: next})
	}
}

// OccupiedSeatsHandler handles GET /api/v1/flights/{id}/occupied-seats
func (h *Handlers) OccupiedSeatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, err := flightIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		seats, err := h.deps.Repo.BoardingPass.OccupiedSeats(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Occupied seats fetched",
			dtos.OccupiedSeatsResponse{FlightID: id, Seats: seats})
	}
}

// CreateBoardingPassHandler handles POST /api/v1/boarding-passes
func (h *Handlers) CreateBoardingPassHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var bp gormModels.BoardingPass
		if err := decodeBody(w, r, &bp); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}
		if err := h.deps.Repo.BoardingPass.Create(r.Context(), &bp); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Boarding pass created", bp, http.StatusCreated)
	}
}
