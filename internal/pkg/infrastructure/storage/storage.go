package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrAlreadyExists = errors.New("record already exists")
	ErrHasDependents = errors.New("record has dependent records")
	ErrStoreFailed   = errors.New("could not store data")
	ErrNoID          = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id		TEXT	NOT NULL,
			email		TEXT	NOT NULL,
			data		JSONB	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_users PRIMARY KEY (user_id),
			CONSTRAINT uniq_users_email UNIQUE (email)
		);

		CREATE TABLE IF NOT EXISTS zones (
			zone_id		TEXT	NOT NULL,
			data		JSONB	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_zones PRIMARY KEY (zone_id)
		);

		CREATE TABLE IF NOT EXISTS sensors (
			sensor_id	TEXT	NOT NULL,
			active		BOOLEAN	NOT NULL DEFAULT FALSE,
			data		JSONB	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensors PRIMARY KEY (sensor_id)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id		TEXT	NOT NULL,
			serial_number	TEXT	NOT NULL,
			owner_id		TEXT	NULL,
			zone_id			TEXT	NULL,
			data			JSONB	NOT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (device_id),
			CONSTRAINT uniq_devices_serial_number UNIQUE (serial_number)
		);

		CREATE TABLE IF NOT EXISTS readings (
			reading_id	TEXT	NOT NULL,
			sensor_id	TEXT	NOT NULL,
			time		timestamp with time zone NOT NULL,
			value		DOUBLE PRECISION NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_readings PRIMARY KEY (reading_id)
		);

		CREATE INDEX IF NOT EXISTS devices_owner_idx ON devices (owner_id);
		CREATE INDEX IF NOT EXISTS devices_zone_idx ON devices (zone_id);
		CREATE INDEX IF NOT EXISTS readings_sensor_time_idx ON readings (sensor_id, time DESC);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
