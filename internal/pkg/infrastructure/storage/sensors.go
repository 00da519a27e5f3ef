package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddSensor(ctx context.Context, sensor types.Sensor) error {
	data, _ := json.Marshal(sensor)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")
	delete(m, "isActive")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"sensor_id": sensor.SensorID,
		"active":    sensor.IsActive,
		"data":      string(data),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sensors (sensor_id, active, data)
		VALUES (@sensor_id, @active, @data)
	`, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) GetSensor(ctx context.Context, conditions ...ConditionFunc) (types.Sensor, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("sensors")

	var sensorID string
	var active bool
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT sensor_id, active, data
		FROM sensors
		%s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&sensorID, &active, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Sensor{}, ErrNoRows
		}
		return types.Sensor{}, err
	}

	var sensor types.Sensor
	err = json.Unmarshal(data, &sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	sensor.SensorID = sensorID
	sensor.IsActive = active

	return sensor, nil
}

func (s *Storage) QuerySensors(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Sensor], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("sensors")

	var sensorID string
	var active bool
	var data json.RawMessage
	var count int64

	query := fmt.Sprintf(`
		SELECT sensor_id, active, data, count(*) OVER () AS count
		FROM sensors
		%s
		%s
		%s
	`, where, condition.OrderBy("created_on"), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Sensor]{}, err
	}

	sensors := make([]types.Sensor, 0)

	_, err = pgx.ForEachRow(rows, []any{&sensorID, &active, &data, &count}, func() error {
		var sensor types.Sensor

		err := json.Unmarshal(data, &sensor)
		if err != nil {
			return err
		}

		sensor.SensorID = sensorID
		sensor.IsActive = active
		sensors = append(sensors, sensor)

		return nil
	})
	if err != nil {
		return types.Collection[types.Sensor]{}, err
	}

	return types.Collection[types.Sensor]{
		Data:       sensors,
		Count:      uint64(len(sensors)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateSensor(ctx context.Context, sensor types.Sensor) error {
	data, _ := json.Marshal(sensor)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")
	delete(m, "isActive")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"sensor_id": sensor.SensorID,
		"active":    sensor.IsActive,
		"data":      string(data),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET active = @active, data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DeleteSensor removes the sensor unless any reading still references it.
func (s *Storage) DeleteSensor(ctx context.Context, sensorID string) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var dependents int64

	err = tx.QueryRow(ctx, `
		SELECT count(*) FROM readings WHERE sensor_id = @sensor_id
	`, pgx.NamedArgs{"sensor_id": sensorID}).Scan(&dependents)
	if err != nil {
		return 0, err
	}

	if dependents > 0 {
		return dependents, ErrHasDependents
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM sensors WHERE sensor_id = @sensor_id
	`, pgx.NamedArgs{"sensor_id": sensorID})
	if err != nil {
		return 0, err
	}

	if tag.RowsAffected() == 0 {
		return 0, ErrNoRows
	}

	return 0, tx.Commit(ctx)
}
