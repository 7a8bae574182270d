package api

import (
	"encoding/json"
	"net/http"
	"time"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server is running and the database answers.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(conn *db.Connection, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database connected"
		if err := conn.Ping(r.Context()); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		stats := conn.Stats()
		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Pool: &entities.PoolStatus{
				Dialect:         conn.Dialect(),
				OpenConnections: stats.OpenConnections,
				InUse:           stats.InUse,
				Idle:            stats.Idle,
				WaitCount:       stats.WaitCount,
			},
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
