package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
)

type sample struct {
	Code     string                 `json:"code" validate:"required,len=3"`
	Status   constants.FlightStatus `json:"status" validate:"flight_status"`
	Class    constants.FareClass    `json:"class" validate:"fare_class"`
	Amount   decimal.Decimal        `json:"amount" validate:"gte=0"`
	Timezone string                 `json:"timezone" validate:"timezone"`
}

func validSample() sample {
	return sample{
		Code:     "SVO",
		Status:   constants.FlightScheduled,
		Class:    constants.FareEconomy,
		Amount:   decimal.RequireFromString("1200.50"),
		Timezone: "Europe/Moscow",
	}
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(validSample()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestStruct_ReportsEveryField(t *testing.T) {
	s := validSample()
	s.Code = "SVOX"
	s.Status = "Boarding"
	s.Class = "First"
	s.Amount = decimal.NewFromInt(-1)
	s.Timezone = "Mars/Olympus"

	err := Struct(s)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *Error, got %T (%v)", err, err)
	}

	want := map[string]string{
		"code":     "len",
		"status":   "flight_status",
		"class":    "fare_class",
		"amount":   "gte",
		"timezone": "timezone",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Expected %d field errors, got %v", len(want), verr.Fields)
	}
	for _, f := range verr.Fields {
		if want[f.Field] != f.Rule {
			t.Errorf("Unexpected failure %s", f)
		}
	}
}

func TestStruct_NilIsValidationError(t *testing.T) {
	var verr *Error
	if err := Struct(nil); !errors.As(err, &verr) {
		t.Fatalf("Expected *Error for nil input, got %v", err)
	}
}

func TestActualTimes(t *testing.T) {
	dep := time.Date(2017, 8, 15, 10, 0, 0, 0, time.UTC)
	arr := dep.Add(2 * time.Hour)

	if err := ActualTimes(&dep, &arr); err != nil {
		t.Errorf("Expected ordered pair to pass, got %v", err)
	}
	if err := ActualTimes(&dep, nil); err != nil {
		t.Errorf("Expected departure alone to pass, got %v", err)
	}
	if err := ActualTimes(nil, &arr); err != nil {
		t.Errorf("Expected arrival alone to pass, got %v", err)
	}
	if err := ActualTimes(nil, nil); err == nil {
		t.Error("Expected an error when neither time is given")
	}
	if err := ActualTimes(&arr, &dep); err == nil {
		t.Error("Expected an error when arrival precedes departure")
	}
	if err := ActualTimes(&dep, &dep); err == nil {
		t.Error("Expected an error when arrival equals departure")
	}
}

func TestFlightActualTimes(t *testing.T) {
	dep := time.Date(2017, 8, 15, 10, 0, 0, 0, time.UTC)
	arr := dep.Add(time.Hour)

	if err := FlightActualTimes(nil, nil); err != nil {
		t.Errorf("Expected no actual times to pass, got %v", err)
	}
	if err := FlightActualTimes(&dep, nil); err != nil {
		t.Errorf("Expected departure only to pass, got %v", err)
	}
	if err := FlightActualTimes(nil, &arr); err == nil {
		t.Error("Expected arrival without departure to fail")
	}
	if err := FlightActualTimes(&arr, &dep); err == nil {
		t.Error("Expected arrival before departure to fail")
	}
}

func TestPagination(t *testing.T) {
	cases := []struct {
		offset, limit int
		ok            bool
	}{
		{0, 1, true},
		{10, 50, true},
		{-1, 10, false},
		{0, 0, false},
		{0, -5, false},
	}
	for _, c := range cases {
		err := Pagination(c.offset, c.limit)
		if (err == nil) != c.ok {
			t.Errorf("Pagination(%d, %d) error = %v, expected ok=%v", c.offset, c.limit, err, c.ok)
		}
	}
}
