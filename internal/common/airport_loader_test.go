package common

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"airdemo/bookings/internal/db/repositories"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models/gorm"
)

type fakeCreator struct {
	seen  map[string]bool
	codes []string
	fail  error
}

func (f *fakeCreator) Create(_ context.Context, a *gorm.Airport) error {
	if f.fail != nil {
		return f.fail
	}
	if len(a.Code) != 3 {
		return &repositories.RepoError{Kind: repositories.ErrValidation, Entity: "airport", Op: "create"}
	}
	if f.seen[a.Code] {
		return &repositories.RepoError{Kind: repositories.ErrConstraint, Entity: "airport", Op: "create"}
	}
	f.seen[a.Code] = true
	f.codes = append(f.codes, a.Code)
	return nil
}

const airportDoc = `{
	"svo": {"name": {"en": "Sheremetyevo"}, "city": {"en": "Moscow"}, "lon": 37.4146, "lat": 55.9726, "tz": "Europe/Moscow"},
	"LED": {"code": "led", "name": {"en": "Pulkovo"}, "city": {"en": "St. Petersburg"}, "lon": 30.2625, "lat": 59.8003, "tz": "Europe/Moscow"},
	"XXXX": {"name": {"en": "Broken"}, "city": {"en": "Nowhere"}, "lon": 0, "lat": 0, "tz": "UTC"}
}`

func TestLoadFromJSON(t *testing.T) {
	repo := &fakeCreator{seen: map[string]bool{}}
	m := metrics.NewMetricsRegistryWith(prometheus.NewRegistry())
	loader := NewAirportLoaderService(repo, m)

	res, err := loader.LoadFromJSON(context.Background(), strings.NewReader(airportDoc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Total != 3 || res.Created != 2 || res.Skipped != 1 {
		t.Errorf("Unexpected result %+v", res)
	}
	if len(repo.codes) != 2 || repo.codes[0] != "LED" || repo.codes[1] != "SVO" {
		t.Errorf("Expected upper-case codes in key order, got %v", repo.codes)
	}
	if got := testutil.ToFloat64(m.AirportsImportedTotal.WithLabelValues("created")); got != 2 {
		t.Errorf("Expected 2 created in metrics, got %v", got)
	}

	// A second run only finds duplicates.
	res, err = loader.LoadFromJSON(context.Background(), strings.NewReader(airportDoc))
	if err != nil || res.Created != 0 || res.Skipped != 3 {
		t.Errorf("Expected every airport skipped on reimport, got %+v, %v", res, err)
	}
}

func TestLoadFromJSON_SkipsAirportsWithoutCoordinates(t *testing.T) {
	doc := `{
		"SVO": {"name": {"en": "Sheremetyevo"}, "city": {"en": "Moscow"}, "lon": 37.4146, "lat": 55.9726, "tz": "Europe/Moscow"},
		"KZN": {"name": {"en": "Kazan"}, "city": {"en": "Kazan"}, "tz": "Europe/Moscow"},
		"OVB": {"name": {"en": "Tolmachevo"}, "city": {"en": "Novosibirsk"}, "lon": 82.6507, "tz": "Asia/Novosibirsk"},
		"ACC": {"name": {"en": "Kotoka"}, "city": {"en": "Accra"}, "lon": -0.1668, "lat": 0, "tz": "Africa/Accra"}
	}`
	repo := &fakeCreator{seen: map[string]bool{}}
	m := metrics.NewMetricsRegistryWith(prometheus.NewRegistry())
	loader := NewAirportLoaderService(repo, m)

	res, err := loader.LoadFromJSON(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Total != 4 || res.Created != 2 || res.Skipped != 2 {
		t.Errorf("Expected 2 created and 2 skipped, got %+v", res)
	}
	if len(repo.codes) != 2 || repo.codes[0] != "ACC" || repo.codes[1] != "SVO" {
		t.Errorf("Expected only airports with both coordinates, got %v", repo.codes)
	}
	if got := testutil.ToFloat64(m.AirportsImportedTotal.WithLabelValues("skipped")); got != 2 {
		t.Errorf("Expected 2 skipped in metrics, got %v", got)
	}
}

func TestLoadFromJSON_AbortsWhenStoreIsGone(t *testing.T) {
	down := &repositories.RepoError{Kind: repositories.ErrConnectivity, Entity: "airport", Op: "create"}
	loader := NewAirportLoaderService(&fakeCreator{fail: down}, nil)

	_, err := loader.LoadFromJSON(context.Background(), strings.NewReader(airportDoc))
	if !errors.Is(err, repositories.ErrConnectivity) {
		t.Fatalf("Expected connectivity error, got %v", err)
	}
}

func TestLoadFromJSON_BadDocument(t *testing.T) {
	loader := NewAirportLoaderService(&fakeCreator{seen: map[string]bool{}}, nil)

	if _, err := loader.LoadFromJSON(context.Background(), strings.NewReader("not json")); err == nil {
		t.Error("Expected decode error")
	}
	if _, err := loader.LoadFromJSON(context.Background(), strings.NewReader("{}")); err == nil {
		t.Error("Expected error for an empty document")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.json")
	if err := os.WriteFile(path, []byte(airportDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	repo := &fakeCreator{seen: map[string]bool{}}

	res, err := NewAirportLoaderService(repo, nil).LoadFromFile(context.Background(), path)
	if err != nil || res.Created != 2 {
		t.Errorf("Expected 2 airports from file, got %+v, %v", res, err)
	}

	if _, err := NewAirportLoaderService(repo, nil).LoadFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
