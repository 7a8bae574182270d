package api

import (
	"airdemo/bookings/internal/common"
	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/db/repositories"
	"airdemo/bookings/internal/metrics"
)

type Services struct {
	AirportLoader *common.AirportLoaderService
}

type Dependencies struct {
	Conn     *db.Connection
	Repo     *repositories.Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies builds the repositories and services over one connection.
func InitDependencies(conn *db.Connection, metricsReg *metrics.MetricsRegistry) *Dependencies {
	repos := repositories.New(conn, metricsReg)
	return &Dependencies{
		Conn: conn,
		Repo: repos,
		Services: &Services{
			AirportLoader: common.NewAirportLoaderService(repos.Airports, metricsReg),
		},
		Metrics: metricsReg,
	}
}
