package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddReading(ctx context.Context, reading types.Reading) error {
	var value float64
	if reading.Value != nil {
		value = *reading.Value
	}

	args := pgx.NamedArgs{
		"reading_id": reading.ReadingID,
		"sensor_id":  reading.SensorID,
		"time":       reading.Time,
		"value":      value,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO readings (reading_id, sensor_id, time, value)
		VALUES (@reading_id, @sensor_id, @time, @value)
	`, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) GetReading(ctx context.Context, readingID string) (types.Reading, error) {
	var sensorID string
	var t time.Time
	var value float64

	err := s.pool.QueryRow(ctx, `
		SELECT sensor_id, time, value
		FROM readings
		WHERE reading_id = @reading_id
	`, pgx.NamedArgs{"reading_id": readingID}).Scan(&sensorID, &t, &value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Reading{}, ErrNoRows
		}
		return types.Reading{}, err
	}

	return types.Reading{
		ReadingID: readingID,
		SensorID:  sensorID,
		Time:      t,
		Value:     &value,
	}, nil
}

func (s *Storage) QueryReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Reading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("readings")

	var readingID, sensorID string
	var t time.Time
	var value float64
	var count int64

	query := fmt.Sprintf(`
		SELECT reading_id, sensor_id, time, value, count(*) OVER () AS count
		FROM readings
		%s
		%s
		%s
	`, where, condition.OrderBy("time DESC"), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Reading]{}, err
	}

	readings := make([]types.Reading, 0)

	_, err = pgx.ForEachRow(rows, []any{&readingID, &sensorID, &t, &value, &count}, func() error {
		v := value
		readings = append(readings, types.Reading{
			ReadingID: readingID,
			SensorID:  sensorID,
			Time:      t,
			Value:     &v,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.Reading]{}, err
	}

	return types.Collection[types.Reading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateReading(ctx context.Context, reading types.Reading) error {
	var value float64
	if reading.Value != nil {
		value = *reading.Value
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE readings
		SET sensor_id = @sensor_id, time = @time, value = @value
		WHERE reading_id = @reading_id
	`, pgx.NamedArgs{
		"reading_id": reading.ReadingID,
		"sensor_id":  reading.SensorID,
		"time":       reading.Time,
		"value":      value,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteReading(ctx context.Context, readingID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM readings WHERE reading_id = @reading_id
	`, pgx.NamedArgs{"reading_id": readingID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
