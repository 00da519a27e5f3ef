package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func deviceArgs(device types.Device) pgx.NamedArgs {
	data, _ := json.Marshal(device)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")
	delete(m, "serialNumber")
	delete(m, "ownerId")
	delete(m, "zoneId")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"device_id":     device.DeviceID,
		"serial_number": device.SerialNumber,
		"owner_id":      nil,
		"zone_id":       nil,
		"data":          string(data),
	}

	if device.OwnerID != "" {
		args["owner_id"] = device.OwnerID
	}
	if device.ZoneID != "" {
		args["zone_id"] = device.ZoneID
	}

	return args
}

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, serial_number, owner_id, zone_id, data)
		VALUES (@device_id, @serial_number, @owner_id, @zone_id, @data)
	`, deviceArgs(device))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("devices")

	var deviceID, serialNumber string
	var ownerID, zoneID *string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT device_id, serial_number, owner_id, zone_id, data
		FROM devices
		%s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&deviceID, &serialNumber, &ownerID, &zoneID, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	var device types.Device
	err = json.Unmarshal(data, &device)
	if err != nil {
		return types.Device{}, err
	}

	device.DeviceID = deviceID
	device.SerialNumber = serialNumber
	if ownerID != nil {
		device.OwnerID = *ownerID
	}
	if zoneID != nil {
		device.ZoneID = *zoneID
	}

	return device, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("devices")

	var deviceID, serialNumber string
	var ownerID, zoneID *string
	var data json.RawMessage
	var count int64

	query := fmt.Sprintf(`
		SELECT device_id, serial_number, owner_id, zone_id, data, count(*) OVER () AS count
		FROM devices
		%s
		%s
		%s
	`, where, condition.OrderBy("serial_number"), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{&deviceID, &serialNumber, &ownerID, &zoneID, &data, &count}, func() error {
		var device types.Device

		err := json.Unmarshal(data, &device)
		if err != nil {
			return err
		}

		device.DeviceID = deviceID
		device.SerialNumber = serialNumber
		if ownerID != nil {
			device.OwnerID = *ownerID
		}
		if zoneID != nil {
			device.ZoneID = *zoneID
		}
		devices = append(devices, device)

		return nil
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateDevice(ctx context.Context, device types.Device) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET serial_number = @serial_number, owner_id = @owner_id, zone_id = @zone_id, data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, deviceArgs(device))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteDevice(ctx context.Context, deviceID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM devices WHERE device_id = @device_id
	`, pgx.NamedArgs{"device_id": deviceID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
