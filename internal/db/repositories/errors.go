package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/validation"
)

// Failure kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConstraint   = errors.New("constraint violation")
	ErrNotFound     = errors.New("not found")
	ErrConnectivity = errors.New("store unreachable")
	ErrNoChanges    = errors.New("no fields to update")
)

// RepoError is returned by every failing repository call.
type RepoError struct {
	Kind   error
	Entity string
	Op     string
	Err    error
}

func (e *RepoError) Error() string {
	var b strings.Builder
	b.WriteString(e.Entity)
	b.WriteString(" ")
	b.WriteString(e.Op)
	if e.Kind != nil {
		b.WriteString(": ")
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RepoError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// classify maps a store or validation error to its failure kind. Unknown
// errors return nil.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return ErrValidation
	}

	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrConstraint),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConnectivity),
		errors.Is(err, ErrNoChanges):
		return kindOf(err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrConstraint
	case errors.Is(err, db.ErrDisconnected),
		errors.Is(err, db.ErrConnection),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn):
		return ErrConnectivity
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23", "22":
			return ErrConstraint
		case "08", "57":
			return ErrConnectivity
		}
		return nil
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return ErrConstraint
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
			return ErrConnectivity
		}
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrConnectivity
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrConstraint
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "database is closed"):
		return ErrConnectivity
	}
	return nil
}

func kindOf(err error) error {
	for _, k := range []error{ErrValidation, ErrConstraint, ErrNotFound, ErrConnectivity, ErrNoChanges} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, ErrConstraint):
		return metrics.OutcomeConstraint
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrConnectivity):
		return metrics.OutcomeConnectivity
	case errors.Is(err, ErrNoChanges):
		return metrics.OutcomeNoChanges
	}
	return metrics.OutcomeError
}

func notFound(key any) error {
	return fmt.Errorf("no row for key %v", key)
}
