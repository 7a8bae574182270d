package constants

// Statements run through sqlx. Placeholders are written as ? and rebound per
// driver; table names are unqualified and resolve through search_path.
const (
	FlightFareStatistics = `
	SELECT
		fare_conditions,
		COUNT(*) AS ticket_count,
		SUM(amount) AS total_amount,
		AVG(amount) AS avg_amount,
		MIN(amount) AS min_amount,
		MAX(amount) AS max_amount
	FROM ticket_flights
	WHERE flight_id = ?
	GROUP BY fare_conditions
	ORDER BY
		CASE fare_conditions
			WHEN 'Business' THEN 1
			WHEN 'Comfort' THEN 2
			WHEN 'Economy' THEN 3
		END
	`

	TicketFareStatistics = `
	SELECT
		COUNT(*) AS flight_count,
		COALESCE(SUM(amount), 0) AS total_amount,
		COALESCE(AVG(amount), 0) AS avg_amount
	FROM ticket_flights
	WHERE ticket_no = ?
	`

	BookingStatisticsPostgres = `
	SELECT
		COUNT(*) AS ticket_count,
		COALESCE(STRING_AGG(passenger_name, ', ' ORDER BY ticket_no), '') AS passengers
	FROM tickets
	WHERE book_ref = ?
	`

	BookingStatisticsSQLite = `
	SELECT
		COUNT(*) AS ticket_count,
		COALESCE(GROUP_CONCAT(passenger_name, ', '), '') AS passengers
	FROM (
		SELECT passenger_name FROM tickets WHERE book_ref = ? ORDER BY ticket_no
	)
	`

	PassengerFlightHistory = `
	SELECT
		t.ticket_no,
		t.book_ref,
		t.passenger_name,
		COUNT(tf.flight_id) AS flight_count,
		COALESCE(SUM(tf.amount), 0) AS total_spent
	FROM tickets t
	LEFT JOIN ticket_flights tf ON t.ticket_no = tf.ticket_no
	WHERE t.passenger_id = ?
	GROUP BY t.ticket_no, t.book_ref, t.passenger_name
	ORDER BY t.book_ref DESC, t.ticket_no
	`

	NextBoardingNumber = `
	SELECT COALESCE(MAX(boarding_no), 0) + 1 AS next_boarding_no
	FROM boarding_passes
	WHERE flight_id = ?
	`

	OccupiedSeats = `
	SELECT seat_no FROM boarding_passes
	WHERE flight_id = ?
	ORDER BY seat_no
	`
)

// PostGIS support for the airport nearby search.
const (
	PostGISInstalled = `
	SELECT COUNT(*) FROM pg_extension WHERE extname = 'postgis'
	`

	CreatePostGISExtension = `CREATE EXTENSION IF NOT EXISTS postgis`

	CreateAirportGeographyIndex = `
	CREATE INDEX IF NOT EXISTS airports_data_geog_idx ON airports_data
	USING GIST ((ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography))
	`

	NearbyAirportsPostGIS = `
	SELECT
		airport_code, airport_name, city, longitude, latitude, timezone,
		ST_Distance(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		) / 1000 AS distance_km
	FROM airports_data
	WHERE ST_DWithin(
		ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
		ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		CAST(? AS double precision) * 1000
	)
	ORDER BY distance_km, airport_code
	`
)
