package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

const (
	// DefaultNearbyRadiusKm is used when a nearby search gives no radius.
	DefaultNearbyRadiusKm = 100.0

	DefaultPageLimit = 50
	MaxPageLimit     = 500

	// DefaultSchema holds every bookings table on Postgres.
	DefaultSchema = "bookings"
)
