package registry

import (
	"context"
	"errors"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/google/uuid"
)

// ReferenceValidator checks that reference fields point at existing
// records before a write is accepted. Checks run in declared order and
// stop at the first failure. References are not re-checked afterwards,
// so a record that passed validation may dangle later on.
type ReferenceValidator struct {
	storage Store
}

func NewReferenceValidator(s Store) *ReferenceValidator {
	return &ReferenceValidator{storage: s}
}

func (v *ReferenceValidator) CheckOwner(ctx context.Context, ownerID string) error {
	if _, err := uuid.Parse(ownerID); err != nil {
		return &ReferenceError{Field: "ownerId", ID: ownerID, Reason: "invalid"}
	}

	_, err := v.storage.GetUser(ctx, storage.WithUserID(ownerID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return &ReferenceError{Field: "ownerId", ID: ownerID, Reason: "unknown"}
		}
		return err
	}

	return nil
}

func (v *ReferenceValidator) CheckZone(ctx context.Context, zoneID string) error {
	if _, err := uuid.Parse(zoneID); err != nil {
		return &ReferenceError{Field: "zoneId", ID: zoneID, Reason: "invalid"}
	}

	_, err := v.storage.GetZone(ctx, storage.WithZoneID(zoneID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return &ReferenceError{Field: "zoneId", ID: zoneID, Reason: "unknown"}
		}
		return err
	}

	return nil
}

func (v *ReferenceValidator) CheckSensors(ctx context.Context, sensorIDs []string) error {
	for _, sensorID := range sensorIDs {
		if _, err := uuid.Parse(sensorID); err != nil {
			return &ReferenceError{Field: "sensors", ID: sensorID, Reason: "invalid"}
		}

		_, err := v.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return &ReferenceError{Field: "sensors", ID: sensorID, Reason: "unknown"}
			}
			return err
		}
	}

	return nil
}

// CheckActiveSensor requires the sensor to exist and to be active.
// Readings may not be recorded against a sensor that has been turned off.
func (v *ReferenceValidator) CheckActiveSensor(ctx context.Context, sensorID string) error {
	if _, err := uuid.Parse(sensorID); err != nil {
		return &ReferenceError{Field: "sensorId", ID: sensorID, Reason: "invalid"}
	}

	sensor, err := v.storage.GetSensor(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return &ReferenceError{Field: "sensorId", ID: sensorID, Reason: "unknown"}
		}
		return err
	}

	if !sensor.IsActive {
		return &ReferenceError{Field: "sensorId", ID: sensorID, Reason: "inactive"}
	}

	return nil
}
