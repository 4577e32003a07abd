package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

var ErrNotFound = errors.New("not found")

// Repository persists orders in Postgres. It backs the in-memory order store
// as a write-through target.
type Repository struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

// Connect opens the pool and applies the migrations found under migrationsPath.
func Connect(ctx context.Context, url, migrationsPath string, log logger.ILogger) (*Repository, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := migrate.New("file://"+migrationsPath, url)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("no migrations to apply")
	}

	log.Info("Postgres connected")
	return &Repository{pool: pool, log: log}, nil
}

func (r *Repository) Close() {
	r.pool.Close()
}

// SeedOrders inserts orders whose id is not stored yet. Stored orders whose
// seat still matches the seed get the seed's dates, so the demo flights move
// forward with the clock; orders with a chosen seat keep theirs.
func (r *Repository) SeedOrders(ctx context.Context, orders []models.Order) error {
	query := `
		INSERT INTO orders (id, flight_number, origin, destination, flight_date, departure_time, arrival_time,
		                    passengers, fare_class, price, status, booking_date, seat_codes, seat_placeholder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE
		SET flight_date = EXCLUDED.flight_date, booking_date = EXCLUDED.booking_date, updated_at = NOW()
		WHERE orders.seat_codes = EXCLUDED.seat_codes AND orders.seat_placeholder = EXCLUDED.seat_placeholder
	`
	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(query,
			o.ID, o.FlightNumber, o.Route.Origin, o.Route.Destination, o.Date,
			o.Time.Departure, o.Time.Arrival, o.Passengers, string(o.FareClass), o.Price,
			string(o.Status), o.BookingDate, seatCodes(o.Seat), o.Seat.Placeholder,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range orders {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
	}
	return nil
}

// LoadOrders returns every stored order in insertion order.
func (r *Repository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, flight_number, origin, destination, flight_date, departure_time, arrival_time,
		       passengers, fare_class, price::float8, status, booking_date, seat_codes, seat_placeholder
		FROM orders
		ORDER BY position ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o         models.Order
			fareClass string
			status    string
			codes     []string
		)
		err := rows.Scan(
			&o.ID, &o.FlightNumber, &o.Route.Origin, &o.Route.Destination, &o.Date,
			&o.Time.Departure, &o.Time.Arrival, &o.Passengers, &fareClass, &o.Price,
			&status, &o.BookingDate, &codes, &o.Seat.Placeholder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.FareClass = models.FareClass(fareClass)
		o.Status = models.OrderStatus(status)
		if len(codes) > 0 {
			o.Seat.Codes = codes
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

// SaveSeat implements orders.Persister.
func (r *Repository) SaveSeat(ctx context.Context, orderID string, seat models.SeatAssignment) error {
	query := `
		UPDATE orders
		SET seat_codes = $2, seat_placeholder = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, orderID, seatCodes(seat), seat.Placeholder)
	if err != nil {
		return fmt.Errorf("failed to update seat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return nil
}

func seatCodes(seat models.SeatAssignment) []string {
	if seat.Codes == nil {
		return []string{}
	}
	return seat.Codes
}
