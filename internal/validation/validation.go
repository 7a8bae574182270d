// Package validation checks entity values before they reach the store.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/constants"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the bookings tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				fl, _ := d.Float64()
				return fl
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("flight_status", func(fl validator.FieldLevel) bool {
			return constants.FlightStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("fare_class", func(fl validator.FieldLevel) bool {
			return constants.FareClass(fl.Field().String()).Valid()
		})

		instance = v
	})
	return instance
}

// FieldError names one failed rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s failed %s", f.Field, f.Rule)
}

// Error lists every field that failed validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Struct validates s. Failures come back as *Error.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return Fail("value", "required")
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Fail builds an *Error for a single rule checked outside struct tags.
func Fail(field, rule string) error {
	return &Error{Fields: []FieldError{{Field: field, Rule: rule}}}
}

// ActualTimes checks a supplied pair of actual times. Either may be nil; when
// both are given the arrival must follow the departure.
func ActualTimes(departure, arrival *time.Time) error {
	if departure == nil && arrival == nil {
		return Fail("actual_departure", "required_without_all")
	}
	if departure != nil && arrival != nil && !arrival.After(*departure) {
		return &Error{Fields: []FieldError{{Field: "actual_arrival", Rule: "gtfield", Param: "actual_departure"}}}
	}
	return nil
}

// FlightActualTimes checks the actual times stored on a flight: an arrival
// needs a departure before it.
func FlightActualTimes(departure, arrival *time.Time) error {
	if arrival == nil {
		return nil
	}
	if departure == nil {
		return &Error{Fields: []FieldError{{Field: "actual_arrival", Rule: "required_with", Param: "actual_departure"}}}
	}
	if !arrival.After(*departure) {
		return &Error{Fields: []FieldError{{Field: "actual_arrival", Rule: "gtfield", Param: "actual_departure"}}}
	}
	return nil
}

// Pagination rejects negative offsets and non-positive limits.
func Pagination(offset, limit int) error {
	var fields []FieldError
	if offset < 0 {
		fields = append(fields, FieldError{Field: "offset", Rule: "gte", Param: "0"})
	}
	if limit <= 0 {
		fields = append(fields, FieldError{Field: "limit", Rule: "gt", Param: "0"})
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
