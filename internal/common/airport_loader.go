package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"airdemo/bookings/internal/db/repositories"
	"airdemo/bookings/internal/logging"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/models"
	"airdemo/bookings/internal/models/dtos"
	"airdemo/bookings/internal/models/gorm"
)

// AirportCreator is the part of the airport repository the loader needs.
type AirportCreator interface {
	Create(ctx context.Context, a *gorm.Airport) error
}

// AirportLoaderService handles loading airport data from JSON
type AirportLoaderService struct {
	repo    AirportCreator
	metrics *metrics.MetricsRegistry
}

// RawAirportData represents the structure of airport data from JSON
type RawAirportData struct {
	Code string               `json:"code"`
	Name models.LocalizedText `json:"name"`
	City models.LocalizedText `json:"city"`
	Lon  *float64             `json:"lon"`
	Lat  *float64             `json:"lat"`
	TZ   string               `json:"tz"`
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(repo AirportCreator, m *metrics.MetricsRegistry) *AirportLoaderService {
	return &AirportLoaderService{repo: repo, metrics: m}
}

// LoadFromJSON loads airports from a JSON reader
// Expected format: object keyed by airport code
// Example: {"SVO": {"name": {"en": "Sheremetyevo"}, "city": {"en": "Moscow"}, "lon": 37.41, "lat": 55.97, "tz": "Europe/Moscow"}}
//
// Each airport is inserted on its own. Invalid or already stored airports
// are skipped; losing the store aborts the import.
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (dtos.ImportResult, error) {
	var rawData map[string]RawAirportData
	if err := json.NewDecoder(reader).Decode(&rawData); err != nil {
		return dtos.ImportResult{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if len(rawData) == 0 {
		return dtos.ImportResult{}, fmt.Errorf("no airport data found in JSON")
	}

	log := logging.Named("airport_loader")
	log.Infow("Loaded airports from JSON", "count", len(rawData))

	keys := make([]string, 0, len(rawData))
	for k := range rawData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := dtos.ImportResult{Total: len(rawData)}
	for _, key := range keys {
		raw := rawData[key]
		code := strings.TrimSpace(raw.Code)
		if code == "" {
			code = strings.TrimSpace(key)
		}

		if raw.Lon == nil || raw.Lat == nil {
			result.Skipped++
			s.count("skipped")
			log.Debugw("Skipped airport without coordinates", "code", strings.ToUpper(code))
			continue
		}

		airport := gorm.Airport{
			Code:      strings.ToUpper(code),
			Name:      raw.Name,
			City:      raw.City,
			Longitude: *raw.Lon,
			Latitude:  *raw.Lat,
			Timezone:  strings.TrimSpace(raw.TZ),
		}

		err := s.repo.Create(ctx, &airport)
		switch {
		case err == nil:
			result.Created++
			s.count("created")
		case errors.Is(err, repositories.ErrValidation), errors.Is(err, repositories.ErrConstraint):
			result.Skipped++
			s.count("skipped")
			log.Debugw("Skipped airport", "code", airport.Code, "error", err)
		default:
			return result, fmt.Errorf("failed to insert airport %s: %w", airport.Code, err)
		}
	}

	log.Infow("Airport import finished",
		"created", result.Created,
		"skipped", result.Skipped,
		"total", result.Total,
	)
	return result, nil
}

// LoadFromFile imports the airport document stored at path.
func (s *AirportLoaderService) LoadFromFile(ctx context.Context, path string) (dtos.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return dtos.ImportResult{}, fmt.Errorf("open airport file: %w", err)
	}
	defer f.Close()
	return s.LoadFromJSON(ctx, f)
}

func (s *AirportLoaderService) count(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.AirportsImportedTotal.WithLabelValues(result).Inc()
}
