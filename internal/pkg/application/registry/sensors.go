package registry

import (
	"context"
	"errors"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
)

func (s *service) CreateSensor(ctx context.Context, sensor types.Sensor) (types.Sensor, error) {
	err := validateSensor(sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	sensor.SensorID = uuid.NewString()

	err = s.storage.AddSensor(ctx, sensor)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.Sensor{}, ErrAlreadyExists
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (s *service) GetSensor(ctx context.Context, sensorID string) (types.Sensor, error) {
	if _, err := uuid.Parse(sensorID); err != nil {
		return types.Sensor{}, ErrInvalidID
	}

	sensor, err := s.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrNotFound
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (s *service) QuerySensors(ctx context.Context, params map[string][]string) (types.Collection[types.Sensor], error) {
	return s.storage.QuerySensors(ctx, storage.ParseConditions(ctx, params)...)
}

func (s *service) UpdateSensor(ctx context.Context, sensorID string, fields map[string]any) (types.Sensor, error) {
	if _, err := uuid.Parse(sensorID); err != nil {
		return types.Sensor{}, ErrInvalidID
	}

	current, err := s.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrNotFound
		}
		return types.Sensor{}, err
	}

	sensor, err := merge(current, fields)
	if err != nil {
		return types.Sensor{}, err
	}

	sensor.SensorID = sensorID

	err = validateSensor(sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	err = s.storage.UpdateSensor(ctx, sensor)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrNotFound
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (s *service) DeleteSensor(ctx context.Context, sensorID string) error {
	if _, err := uuid.Parse(sensorID); err != nil {
		return ErrInvalidID
	}

	return s.guard.DeleteSensor(ctx, sensorID)
}
