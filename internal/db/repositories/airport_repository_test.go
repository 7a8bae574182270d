package repositories

import (
	"context"
	"testing"

	"airdemo/bookings/internal/models/dtos"
	gormModels "airdemo/bookings/internal/models/gorm"
)

func TestAirport_CodesAreUpperCase(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	mustCreate(t, r.Airports.Create(ctx, &gormModels.Airport{
		Code: "svo", Name: text("Sheremetyevo"), City: text("Moscow"),
		Longitude: svoPoint[0], Latitude: svoPoint[1], Timezone: "Europe/Moscow",
	}))

	a, err := r.Airports.GetByCode(ctx, "Svo")
	if err != nil || a == nil {
		t.Fatalf("Expected SVO, got %v, %v", a, err)
	}
	if a.Code != "SVO" || a.Longitude != svoPoint[0] || a.Latitude != svoPoint[1] {
		t.Errorf("Expected stored values back, got %+v", a)
	}

	if err := r.Airports.Delete(ctx, "svo"); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}
}

func TestAirport_CreateRejectsBadLocation(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	cases := []gormModels.Airport{
		{Code: "AAA", Name: text("A"), City: text("A"), Longitude: 181, Latitude: 0, Timezone: "UTC"},
		{Code: "BBB", Name: text("B"), City: text("B"), Longitude: 0, Latitude: -91, Timezone: "UTC"},
		{Code: "CCC", Name: text("C"), City: text("C"), Longitude: 0, Latitude: 0, Timezone: "Nowhere/Atlantis"},
	}
	for i := range cases {
		assertKind(t, r.Airports.Create(ctx, &cases[i]), ErrValidation)
	}
}

func TestAirport_UpdateMovesBothCoordinates(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)
	ctx := context.Background()

	err := r.Airports.Update(ctx, "DME", dtos.AirportUpdate{Location: &dtos.Coordinates{Longitude: 37.9, Latitude: 55.41}})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}
	a, _ := r.Airports.GetByCode(ctx, "DME")
	if a.Longitude != 37.9 || a.Latitude != 55.41 {
		t.Errorf("Expected moved airport, got %+v", a)
	}

	err = r.Airports.Update(ctx, "DME", dtos.AirportUpdate{Location: &dtos.Coordinates{Longitude: 200, Latitude: 0}})
	assertKind(t, err, ErrValidation)
}

func TestAirport_DeleteReferencedIsConstraint(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)

	assertKind(t, r.Airports.Delete(context.Background(), "SVO"), ErrConstraint)
}

func TestAirport_FindNearby(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)
	ctx := context.Background()

	got, err := r.Airports.FindNearby(ctx, svoPoint[0], svoPoint[1], 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected SVO and DME within 100 km, got %+v", got)
	}
	if got[0].Code != "SVO" || got[0].DistanceKm != 0 {
		t.Errorf("Expected SVO first at distance 0, got %s at %f", got[0].Code, got[0].DistanceKm)
	}
	if got[1].Code != "DME" || got[1].DistanceKm <= 0 || got[1].DistanceKm > 100 {
		t.Errorf("Expected DME second within radius, got %s at %f", got[1].Code, got[1].DistanceKm)
	}
}

func TestAirport_FindNearbyZeroRadius(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)

	got, err := r.Airports.FindNearby(context.Background(), svoPoint[0], svoPoint[1], 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Code != "SVO" {
		t.Errorf("Expected only the airport at the point itself, got %+v", got)
	}
}

func TestAirport_FindNearbyGrowsWithRadius(t *testing.T) {
	r, _ := newTestRepos(t)
	seed(t, r)
	ctx := context.Background()

	prev := map[string]bool{}
	for _, radius := range []float64{0, 10, 100, 700, 5000} {
		got, err := r.Airports.FindNearby(ctx, svoPoint[0], svoPoint[1], radius)
		if err != nil {
			t.Fatalf("radius %.0f: expected no error, got %v", radius, err)
		}
		cur := map[string]bool{}
		for i, a := range got {
			cur[a.Code] = true
			if a.DistanceKm > radius {
				t.Errorf("radius %.0f: %s is %f km away", radius, a.Code, a.DistanceKm)
			}
			if i > 0 && got[i-1].DistanceKm > a.DistanceKm {
				t.Errorf("radius %.0f: results not ordered by distance", radius)
			}
		}
		for code := range prev {
			if !cur[code] {
				t.Errorf("radius %.0f: lost %s found at a smaller radius", radius, code)
			}
		}
		prev = cur
	}
	if len(prev) != 3 {
		t.Errorf("Expected all three airports within 5000 km, got %v", prev)
	}
}

func TestAirport_FindNearbyRejectsBadInput(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := r.Airports.FindNearby(ctx, 0, 0, -1)
	assertKind(t, err, ErrValidation)
	_, err = r.Airports.FindNearby(ctx, 190, 0, 10)
	assertKind(t, err, ErrValidation)
	_, err = r.Airports.FindNearby(ctx, 0, 95, 10)
	assertKind(t, err, ErrValidation)
}
