package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/constants"
	"airdemo/bookings/internal/db/repositories"
	"airdemo/bookings/internal/models/dtos"
)

const maxBodyBytes = 8 << 20

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

// respondRepoError maps a repository failure kind to an HTTP status.
func respondRepoError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case errors.Is(err, repositories.ErrValidation):
		common.RespondError(w, initTime, err, constants.MsgInvalidRequest, http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNoChanges):
		common.RespondError(w, initTime, err, constants.MsgNoChanges, http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		common.RespondError(w, initTime, err, constants.MsgNotFound, http.StatusNotFound)
	case errors.Is(err, repositories.ErrConstraint):
		common.RespondError(w, initTime, err, constants.MsgConflict, http.StatusConflict)
	case errors.Is(err, repositories.ErrConnectivity):
		common.RespondError(w, initTime, nil, constants.MsgStoreUnavailable, http.StatusServiceUnavailable)
	default:
		common.RespondError(w, initTime, nil, constants.MsgInternal, http.StatusInternalServerError)
	}
}

func respondNotFound(w http.ResponseWriter, initTime time.Time, what string) {
	common.RespondError(w, initTime, nil, what+" not found", http.StatusNotFound)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%s: %w", constants.MsgInvalidBody, err)
	}
	return nil
}

// pagination reads offset and limit. Missing values fall back to 0 and the
// default page size; limits above the maximum are capped.
func pagination(r *http.Request) (offset, limit int, err error) {
	offset, limit = 0, constants.DefaultPageLimit
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("offset must be an integer")
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("limit must be an integer")
		}
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	return offset, limit, nil
}

func pageOf[T any](items []T, total int64, offset, limit int) dtos.PageResponse[T] {
	return dtos.PageResponse[T]{Items: items, Total: total, Offset: offset, Limit: limit}
}

func flightIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("flight id must be a positive integer")
	}
	return id, nil
}
