package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/validation"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"validation", validation.Fail("range", "gt"), ErrValidation},
		{"wrapped validation", fmt.Errorf("create: %w", validation.Fail("code", "len")), ErrValidation},
		{"duplicate key", gorm.ErrDuplicatedKey, ErrConstraint},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrConstraint},
		{"check", gorm.ErrCheckConstraintViolated, ErrConstraint},
		{"pq unique", &pq.Error{Code: "23505"}, ErrConstraint},
		{"pq check", &pq.Error{Code: "23514"}, ErrConstraint},
		{"pq bad datetime", &pq.Error{Code: "22007"}, ErrConstraint},
		{"pq connection failure", &pq.Error{Code: "08006"}, ErrConnectivity},
		{"pq admin shutdown", &pq.Error{Code: "57P01"}, ErrConnectivity},
		{"pq syntax", &pq.Error{Code: "42601"}, nil},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ErrConstraint},
		{"sqlite cannot open", sqlite3.Error{Code: sqlite3.ErrCantOpen}, ErrConnectivity},
		{"disconnected", db.ErrDisconnected, ErrConnectivity},
		{"connection", fmt.Errorf("%w: refused", db.ErrConnection), ErrConnectivity},
		{"conn done", sql.ErrConnDone, ErrConnectivity},
		{"bad conn", driver.ErrBadConn, ErrConnectivity},
		{"message unique", errors.New("UNIQUE constraint failed: aircrafts_data.aircraft_code"), ErrConstraint},
		{"message refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ErrConnectivity},
		{"unknown", errors.New("something odd"), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.err); got != c.want {
				t.Errorf("classify(%v) = %v, expected %v", c.err, got, c.want)
			}
		})
	}
}

func TestRepoError(t *testing.T) {
	cause := &pq.Error{Code: "23505", Message: "duplicate key"}
	err := error(&RepoError{Kind: ErrConstraint, Entity: "flight", Op: "create", Err: cause})

	if !errors.Is(err, ErrConstraint) {
		t.Error("Expected the kind to match")
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		t.Error("Expected the driver error to stay reachable")
	}
	if got := err.Error(); got != "flight create: constraint violation: pq: duplicate key" {
		t.Errorf("Unexpected message %q", got)
	}
	if outcomeOf(err) != metrics.OutcomeConstraint {
		t.Errorf("Expected constraint outcome, got %s", outcomeOf(err))
	}
	if outcomeOf(errors.New("x")) != metrics.OutcomeError || outcomeOf(nil) != metrics.OutcomeOK {
		t.Error("Unexpected outcome for plain or nil error")
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Errorf("Unexpected escape %q", got)
	}
}
