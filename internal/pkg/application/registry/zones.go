package registry

import (
	"context"
	"errors"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
)

func (s *service) CreateZone(ctx context.Context, zone types.Zone) (types.Zone, error) {
	err := validateZone(zone)
	if err != nil {
		return types.Zone{}, err
	}

	zone.ZoneID = uuid.NewString()

	err = s.storage.AddZone(ctx, zone)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.Zone{}, ErrAlreadyExists
		}
		return types.Zone{}, err
	}

	return zone, nil
}

func (s *service) GetZone(ctx context.Context, zoneID string) (types.Zone, error) {
	if _, err := uuid.Parse(zoneID); err != nil {
		return types.Zone{}, ErrInvalidID
	}

	zone, err := s.storage.GetZone(ctx, storage.WithZoneID(zoneID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Zone{}, ErrNotFound
		}
		return types.Zone{}, err
	}

	return zone, nil
}

func (s *service) QueryZones(ctx context.Context, params map[string][]string) (types.Collection[types.Zone], error) {
	return s.storage.QueryZones(ctx, storage.ParseConditions(ctx, params)...)
}

func (s *service) UpdateZone(ctx context.Context, zoneID string, fields map[string]any) (types.Zone, error) {
	if _, err := uuid.Parse(zoneID); err != nil {
		return types.Zone{}, ErrInvalidID
	}

	current, err := s.storage.GetZone(ctx, storage.WithZoneID(zoneID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Zone{}, ErrNotFound
		}
		return types.Zone{}, err
	}

	zone, err := merge(current, fields)
	if err != nil {
		return types.Zone{}, err
	}

	zone.ZoneID = zoneID

	err = validateZone(zone)
	if err != nil {
		return types.Zone{}, err
	}

	err = s.storage.UpdateZone(ctx, zone)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Zone{}, ErrNotFound
		}
		return types.Zone{}, err
	}

	return zone, nil
}

func (s *service) DeleteZone(ctx context.Context, zoneID string) error {
	if _, err := uuid.Parse(zoneID); err != nil {
		return ErrInvalidID
	}

	return s.guard.DeleteZone(ctx, zoneID)
}
