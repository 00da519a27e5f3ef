package registry

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
)

func (s *service) CreateReading(ctx context.Context, reading types.Reading) (types.Reading, error) {
	err := validateReading(reading)
	if err != nil {
		return types.Reading{}, err
	}

	err = s.references.CheckActiveSensor(ctx, reading.SensorID)
	if err != nil {
		return types.Reading{}, err
	}

	if reading.Time.IsZero() {
		reading.Time = time.Now().UTC()
	}

	reading.ReadingID = uuid.NewString()

	err = s.storage.AddReading(ctx, reading)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.Reading{}, ErrAlreadyExists
		}
		return types.Reading{}, err
	}

	s.publish(ctx, &types.ReadingCreated{
		ReadingID: reading.ReadingID,
		SensorID:  reading.SensorID,
		Timestamp: time.Now().UTC(),
	})

	return reading, nil
}

func (s *service) GetReading(ctx context.Context, readingID string) (types.Reading, error) {
	if _, err := uuid.Parse(readingID); err != nil {
		return types.Reading{}, ErrInvalidID
	}

	reading, err := s.storage.GetReading(ctx, readingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, ErrNotFound
		}
		return types.Reading{}, err
	}

	return reading, nil
}

func (s *service) QueryReadings(ctx context.Context, params map[string][]string) (types.Collection[types.Reading], error) {
	return s.storage.QueryReadings(ctx, storage.ParseConditions(ctx, params)...)
}

func (s *service) UpdateReading(ctx context.Context, readingID string, fields map[string]any) (types.Reading, error) {
	if _, err := uuid.Parse(readingID); err != nil {
		return types.Reading{}, ErrInvalidID
	}

	current, err := s.storage.GetReading(ctx, readingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, ErrNotFound
		}
		return types.Reading{}, err
	}

	reading, err := merge(current, fields)
	if err != nil {
		return types.Reading{}, err
	}

	reading.ReadingID = readingID

	err = validateReading(reading)
	if err != nil {
		return types.Reading{}, err
	}

	if _, ok := fields["sensorId"]; ok {
		err = s.references.CheckActiveSensor(ctx, reading.SensorID)
		if err != nil {
			return types.Reading{}, err
		}
	}

	err = s.storage.UpdateReading(ctx, reading)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, ErrNotFound
		}
		return types.Reading{}, err
	}

	return reading, nil
}

func (s *service) DeleteReading(ctx context.Context, readingID string) error {
	if _, err := uuid.Parse(readingID); err != nil {
		return ErrInvalidID
	}

	err := s.storage.DeleteReading(ctx, readingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
