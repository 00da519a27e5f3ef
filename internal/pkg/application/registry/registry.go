package registry

import (
	"context"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-asset-registry/registry")

//go:generate moq -rm -out storage_mock.go . Store
type Store interface {
	AddUser(ctx context.Context, user types.User) error
	GetUser(ctx context.Context, conditions ...storage.ConditionFunc) (types.User, error)
	QueryUsers(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.User], error)
	UpdateUser(ctx context.Context, user types.User) error
	DeleteUser(ctx context.Context, userID string) (int64, error)

	AddZone(ctx context.Context, zone types.Zone) error
	GetZone(ctx context.Context, conditions ...storage.ConditionFunc) (types.Zone, error)
	QueryZones(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Zone], error)
	UpdateZone(ctx context.Context, zone types.Zone) error
	DeleteZone(ctx context.Context, zoneID string) (int64, error)

	AddSensor(ctx context.Context, sensor types.Sensor) error
	GetSensor(ctx context.Context, conditions ...storage.ConditionFunc) (types.Sensor, error)
	QuerySensors(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Sensor], error)
	UpdateSensor(ctx context.Context, sensor types.Sensor) error
	DeleteSensor(ctx context.Context, sensorID string) (int64, error)

	AddDevice(ctx context.Context, device types.Device) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	UpdateDevice(ctx context.Context, device types.Device) error
	DeleteDevice(ctx context.Context, deviceID string) error

	AddReading(ctx context.Context, reading types.Reading) error
	GetReading(ctx context.Context, readingID string) (types.Reading, error)
	QueryReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Reading], error)
	UpdateReading(ctx context.Context, reading types.Reading) error
	DeleteReading(ctx context.Context, readingID string) error
}

//go:generate moq -rm -out assetregistry_mock.go . AssetRegistry
type AssetRegistry interface {
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	GetUser(ctx context.Context, userID string) (types.User, error)
	QueryUsers(ctx context.Context, params map[string][]string) (types.Collection[types.User], error)
	UpdateUser(ctx context.Context, userID string, fields map[string]any) (types.User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreateZone(ctx context.Context, zone types.Zone) (types.Zone, error)
	GetZone(ctx context.Context, zoneID string) (types.Zone, error)
	QueryZones(ctx context.Context, params map[string][]string) (types.Collection[types.Zone], error)
	UpdateZone(ctx context.Context, zoneID string, fields map[string]any) (types.Zone, error)
	DeleteZone(ctx context.Context, zoneID string) error

	CreateSensor(ctx context.Context, sensor types.Sensor) (types.Sensor, error)
	GetSensor(ctx context.Context, sensorID string) (types.Sensor, error)
	QuerySensors(ctx context.Context, params map[string][]string) (types.Collection[types.Sensor], error)
	UpdateSensor(ctx context.Context, sensorID string, fields map[string]any) (types.Sensor, error)
	DeleteSensor(ctx context.Context, sensorID string) error

	CreateDevice(ctx context.Context, device types.Device) (types.Device, error)
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	QueryDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error)
	UpdateDevice(ctx context.Context, deviceID string, fields map[string]any) (types.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error

	CreateReading(ctx context.Context, reading types.Reading) (types.Reading, error)
	GetReading(ctx context.Context, readingID string) (types.Reading, error)
	QueryReadings(ctx context.Context, params map[string][]string) (types.Collection[types.Reading], error)
	UpdateReading(ctx context.Context, readingID string, fields map[string]any) (types.Reading, error)
	DeleteReading(ctx context.Context, readingID string) error
}

type service struct {
	storage    Store
	messenger  messaging.MsgContext
	references *ReferenceValidator
	guard      *DeletionGuard
}

func New(storage Store, messenger messaging.MsgContext) AssetRegistry {
	return &service{
		storage:    storage,
		messenger:  messenger,
		references: NewReferenceValidator(storage),
		guard:      NewDeletionGuard(storage),
	}
}
