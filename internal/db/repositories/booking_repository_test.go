package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

func TestBooking_CreateAndRead(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	msk := time.FixedZone("MSK", 3*60*60)
	booked := time.Date(2017, 7, 5, 3, 12, 45, 0, msk)
	mustCreate(t, r.Bookings.Create(ctx, &gormModels.Booking{
		Ref: "0002D8", BookDate: booked, TotalAmount: decimal.RequireFromString("23400.55"),
	}))
	mustCreate(t, r.Bookings.Create(ctx, &gormModels.Booking{
		Ref: "000068", BookDate: booked, TotalAmount: decimal.RequireFromString("18100.00"),
	}))

	got, err := r.Bookings.GetByRef(ctx, "0002D8")
	if err != nil || got == nil {
		t.Fatalf("Expected booking, got %v, %v", got, err)
	}
	if !got.BookDate.Equal(booked) || got.BookDate.Location() != time.UTC {
		t.Errorf("Expected book date %v in UTC, got %v", booked.UTC(), got.BookDate)
	}
	if !got.TotalAmount.Equal(decimal.RequireFromString("23400.55")) {
		t.Errorf("Expected total 23400.55, got %s", got.TotalAmount)
	}

	whole, _ := r.Bookings.GetByRef(ctx, "000068")
	if whole == nil || !whole.TotalAmount.Equal(decimal.NewFromInt(18100)) {
		t.Errorf("Expected total 18100, got %+v", whole)
	}

	missing, err := r.Bookings.GetByRef(ctx, "ZZZZZZ")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for unknown booking, got %v, %v", missing, err)
	}
}

func TestBooking_CreateRejectsInvalid(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()
	booked := time.Date(2017, 7, 5, 0, 0, 0, 0, time.UTC)

	assertKind(t, r.Bookings.Create(ctx, nil), ErrValidation)
	assertKind(t, r.Bookings.Create(ctx, &gormModels.Booking{Ref: "00F", BookDate: booked}), ErrValidation)
	assertKind(t, r.Bookings.Create(ctx, &gormModels.Booking{Ref: "00000A"}), ErrValidation)
	assertKind(t, r.Bookings.Create(ctx, &gormModels.Booking{
		Ref: "00000A", BookDate: booked, TotalAmount: decimal.NewFromInt(-1),
	}), ErrValidation)

	mustCreate(t, r.Bookings.Create(ctx, &gormModels.Booking{Ref: "00000A", BookDate: booked, TotalAmount: decimal.NewFromInt(100)}))
	assertKind(t, r.Bookings.Create(ctx, &gormModels.Booking{Ref: "00000A", BookDate: booked, TotalAmount: decimal.NewFromInt(100)}), ErrConstraint)
}

func TestBooking_ListOrderedByDateThenRef(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()
	day := time.Date(2017, 7, 1, 12, 0, 0, 0, time.UTC)

	bookings := []gormModels.Booking{
		{Ref: "00000C", BookDate: day.AddDate(0, 0, 2), TotalAmount: decimal.NewFromInt(300)},
		{Ref: "00000B", BookDate: day, TotalAmount: decimal.NewFromInt(200)},
		{Ref: "00000A", BookDate: day.AddDate(0, 0, 2), TotalAmount: decimal.NewFromInt(100)},
	}
	for i := range bookings {
		mustCreate(t, r.Bookings.Create(ctx, &bookings[i]))
	}

	all, err := r.Bookings.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []string{"00000B", "00000A", "00000C"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d bookings, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i].Ref != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, all[i].Ref)
		}
	}

	var paged []string
	for offset := 0; offset < 4; offset += 2 {
		page, total, err := r.Bookings.ListPage(ctx, offset, 2)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if total != 3 {
			t.Errorf("Expected total 3, got %d", total)
		}
		for i := range page {
			paged = append(paged, page[i].Ref)
		}
	}
	if len(paged) != 3 || paged[0] != want[0] || paged[1] != want[1] || paged[2] != want[2] {
		t.Errorf("Expected pages to concatenate to %v, got %v", want, paged)
	}

	_, _, err = r.Bookings.ListPage(ctx, -1, 2)
	assertKind(t, err, ErrValidation)
	_, _, err = r.Bookings.ListPage(ctx, 0, 0)
	assertKind(t, err, ErrValidation)
}

func TestBooking_Update(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)
	ctx := context.Background()

	amount := decimal.RequireFromString("99.90")
	if err := r.Bookings.Update(ctx, "00000F", dtos.BookingUpdate{TotalAmount: &amount}); err != nil {
		t.Fatalf("Expected amount update to succeed, got %v", err)
	}
	got, _ := r.Bookings.GetByRef(ctx, "00000F")
	if !got.TotalAmount.Equal(amount) {
		t.Errorf("Expected total 99.90, got %s", got.TotalAmount)
	}
	if !got.BookDate.Equal(time.Date(2017, 7, 5, 0, 12, 0, 0, time.UTC)) {
		t.Errorf("Expected book date untouched, got %v", got.BookDate)
	}

	rebooked := time.Date(2017, 7, 6, 9, 30, 0, 0, time.UTC)
	if err := r.Bookings.Update(ctx, "00000F", dtos.BookingUpdate{BookDate: &rebooked}); err != nil {
		t.Fatalf("Expected date update to succeed, got %v", err)
	}
	got, _ = r.Bookings.GetByRef(ctx, "00000F")
	if !got.BookDate.Equal(rebooked) || !got.TotalAmount.Equal(amount) {
		t.Errorf("Expected only the date to change, got %+v", got)
	}

	negative := decimal.NewFromInt(-5)
	assertKind(t, r.Bookings.Update(ctx, "00000F", dtos.BookingUpdate{TotalAmount: &negative}), ErrValidation)
	assertKind(t, r.Bookings.Update(ctx, "00000F", dtos.BookingUpdate{}), ErrNoChanges)
	assertKind(t, r.Bookings.Update(ctx, "ZZZZZZ", dtos.BookingUpdate{TotalAmount: &amount}), ErrNotFound)
}

func TestBooking_DeleteWhileTicketsReferenceIt(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)
	ctx := context.Background()

	assertKind(t, r.Bookings.Delete(ctx, "00000F"), ErrConstraint)
	if b, _ := r.Bookings.GetByRef(ctx, "00000F"); b == nil {
		t.Fatal("Expected booking to survive a rejected delete")
	}

	if _, err := r.Tickets.DeleteByBooking(ctx, "00000F"); err != nil {
		t.Fatalf("Expected tickets to be removed, got %v", err)
	}
	if err := r.Bookings.Delete(ctx, "00000F"); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}
	assertKind(t, r.Bookings.Delete(ctx, "00000F"), ErrNotFound)
}
