package registry

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// validateDeviceReferences checks the reference fields in declared order
// and stops at the first failure. Empty references are allowed, a device
// does not have to have an owner or a zone.
func (s *service) validateDeviceReferences(ctx context.Context, device types.Device) error {
	if device.OwnerID != "" {
		err := s.references.CheckOwner(ctx, device.OwnerID)
		if err != nil {
			return err
		}
	}

	if device.ZoneID != "" {
		err := s.references.CheckZone(ctx, device.ZoneID)
		if err != nil {
			return err
		}
	}

	if len(device.Sensors) > 0 {
		err := s.references.CheckSensors(ctx, device.Sensors)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) CreateDevice(ctx context.Context, device types.Device) (types.Device, error) {
	if device.Status == "" {
		device.Status = types.DeviceStatusActive
	}

	err := validateDevice(device)
	if err != nil {
		return types.Device{}, err
	}

	err = s.validateDeviceReferences(ctx, device)
	if err != nil {
		return types.Device{}, err
	}

	device.DeviceID = uuid.NewString()

	err = s.storage.AddDevice(ctx, device)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.Device{}, ErrAlreadyExists
		}
		return types.Device{}, err
	}

	s.publish(ctx, &types.DeviceCreated{DeviceID: device.DeviceID, Timestamp: time.Now().UTC()})

	return device, nil
}

func (s *service) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	if _, err := uuid.Parse(deviceID); err != nil {
		return types.Device{}, ErrInvalidID
	}

	device, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s *service) QueryDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error) {
	return s.storage.QueryDevices(ctx, storage.ParseConditions(ctx, params)...)
}

func (s *service) UpdateDevice(ctx context.Context, deviceID string, fields map[string]any) (types.Device, error) {
	if _, err := uuid.Parse(deviceID); err != nil {
		return types.Device{}, ErrInvalidID
	}

	current, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrNotFound
		}
		return types.Device{}, err
	}

	device, err := merge(current, fields)
	if err != nil {
		return types.Device{}, err
	}

	device.DeviceID = deviceID

	err = validateDevice(device)
	if err != nil {
		return types.Device{}, err
	}

	// only references touched by this update are re-checked, the rest
	// were checked when they were written
	touched := types.Device{}
	if _, ok := fields["ownerId"]; ok {
		touched.OwnerID = device.OwnerID
	}
	if _, ok := fields["zoneId"]; ok {
		touched.ZoneID = device.ZoneID
	}
	if _, ok := fields["sensors"]; ok {
		touched.Sensors = device.Sensors
	}

	err = s.validateDeviceReferences(ctx, touched)
	if err != nil {
		return types.Device{}, err
	}

	err = s.storage.UpdateDevice(ctx, device)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.Device{}, ErrAlreadyExists
		}
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrNotFound
		}
		return types.Device{}, err
	}

	s.publish(ctx, &types.DeviceUpdated{DeviceID: deviceID, Timestamp: time.Now().UTC()})

	return device, nil
}

func (s *service) DeleteDevice(ctx context.Context, deviceID string) error {
	if _, err := uuid.Parse(deviceID); err != nil {
		return ErrInvalidID
	}

	err := s.storage.DeleteDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	s.publish(ctx, &types.DeviceDeleted{DeviceID: deviceID, Timestamp: time.Now().UTC()})

	return nil
}

func (s *service) publish(ctx context.Context, msg messaging.TopicMessage) {
	if s.messenger == nil {
		return
	}

	err := s.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
