package entities

import "time"

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
	Pool     *PoolStatus              `json:"pool,omitempty"`
}

// PoolStatus is a snapshot of the shared connection pool.
type PoolStatus struct {
	Dialect         string `json:"dialect"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
}
