package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
	"golang.org/x/crypto/bcrypt"
)

func condition(conditions ...storage.ConditionFunc) *storage.Condition {
	c := &storage.Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

// newInMemStore returns a StoreMock backed by maps that behaves like the
// real storage layer, including the guarded deletes.
func newInMemStore() *StoreMock {
	users := map[string]types.User{}
	zones := map[string]types.Zone{}
	sensors := map[string]types.Sensor{}
	devices := map[string]types.Device{}
	readings := map[string]types.Reading{}

	return &StoreMock{
		AddUserFunc: func(ctx context.Context, user types.User) error {
			for _, u := range users {
				if u.Email == user.Email {
					return storage.ErrAlreadyExists
				}
			}
			users[user.UserID] = user
			return nil
		},
		GetUserFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.User, error) {
			c := condition(conditions...)
			for _, u := range users {
				if c.UserID != "" && u.UserID != c.UserID {
					continue
				}
				if c.Email != "" && u.Email != c.Email {
					continue
				}
				return u, nil
			}
			return types.User{}, storage.ErrNoRows
		},
		QueryUsersFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.User], error) {
			c := condition(conditions...)
			matches := []types.User{}
			for _, u := range users {
				if c.Email != "" && u.Email != c.Email {
					continue
				}
				matches = append(matches, u)
			}
			return types.Collection[types.User]{Data: matches, Count: uint64(len(matches)), TotalCount: uint64(len(matches))}, nil
		},
		UpdateUserFunc: func(ctx context.Context, user types.User) error {
			if _, ok := users[user.UserID]; !ok {
				return storage.ErrNoRows
			}
			users[user.UserID] = user
			return nil
		},
		DeleteUserFunc: func(ctx context.Context, userID string) (int64, error) {
			var dependents int64
			for _, d := range devices {
				if d.OwnerID == userID {
					dependents++
				}
			}
			if dependents > 0 {
				return dependents, storage.ErrHasDependents
			}
			if _, ok := users[userID]; !ok {
				return 0, storage.ErrNoRows
			}
			delete(users, userID)
			return 0, nil
		},
		AddZoneFunc: func(ctx context.Context, zone types.Zone) error {
			zones[zone.ZoneID] = zone
			return nil
		},
		GetZoneFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Zone, error) {
			c := condition(conditions...)
			for _, z := range zones {
				if c.ZoneID != "" && z.ZoneID != c.ZoneID {
					continue
				}
				if c.Name != "" && z.Name != c.Name {
					continue
				}
				return z, nil
			}
			return types.Zone{}, storage.ErrNoRows
		},
		QueryZonesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Zone], error) {
			c := condition(conditions...)
			matches := []types.Zone{}
			for _, z := range zones {
				if c.Name != "" && z.Name != c.Name {
					continue
				}
				matches = append(matches, z)
			}
			return types.Collection[types.Zone]{Data: matches, Count: uint64(len(matches)), TotalCount: uint64(len(matches))}, nil
		},
		UpdateZoneFunc: func(ctx context.Context, zone types.Zone) error {
			if _, ok := zones[zone.ZoneID]; !ok {
				return storage.ErrNoRows
			}
			zones[zone.ZoneID] = zone
			return nil
		},
		DeleteZoneFunc: func(ctx context.Context, zoneID string) (int64, error) {
			var dependents int64
			for _, d := range devices {
				if d.ZoneID == zoneID {
					dependents++
				}
			}
			if dependents > 0 {
				return dependents, storage.ErrHasDependents
			}
			if _, ok := zones[zoneID]; !ok {
				return 0, storage.ErrNoRows
			}
			delete(zones, zoneID)
			return 0, nil
		},
		AddSensorFunc: func(ctx context.Context, sensor types.Sensor) error {
			sensors[sensor.SensorID] = sensor
			return nil
		},
		GetSensorFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Sensor, error) {
			c := condition(conditions...)
			for _, sn := range sensors {
				if c.SensorID != "" && sn.SensorID != c.SensorID {
					continue
				}
				if c.Model != "" && sn.Model != c.Model {
					continue
				}
				return sn, nil
			}
			return types.Sensor{}, storage.ErrNoRows
		},
		QuerySensorsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Sensor], error) {
			c := condition(conditions...)
			matches := []types.Sensor{}
			for _, sn := range sensors {
				if c.Model != "" && sn.Model != c.Model {
					continue
				}
				matches = append(matches, sn)
			}
			return types.Collection[types.Sensor]{Data: matches, Count: uint64(len(matches)), TotalCount: uint64(len(matches))}, nil
		},
		UpdateSensorFunc: func(ctx context.Context, sensor types.Sensor) error {
			if _, ok := sensors[sensor.SensorID]; !ok {
				return storage.ErrNoRows
			}
			sensors[sensor.SensorID] = sensor
			return nil
		},
		DeleteSensorFunc: func(ctx context.Context, sensorID string) (int64, error) {
			var dependents int64
			for _, r := range readings {
				if r.SensorID == sensorID {
					dependents++
				}
			}
			if dependents > 0 {
				return dependents, storage.ErrHasDependents
			}
			if _, ok := sensors[sensorID]; !ok {
				return 0, storage.ErrNoRows
			}
			delete(sensors, sensorID)
			return 0, nil
		},
		AddDeviceFunc: func(ctx context.Context, device types.Device) error {
			for _, d := range devices {
				if d.SerialNumber == device.SerialNumber {
					return storage.ErrAlreadyExists
				}
			}
			devices[device.DeviceID] = device
			return nil
		},
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			c := condition(conditions...)
			for _, d := range devices {
				if c.DeviceID != "" && d.DeviceID != c.DeviceID {
					continue
				}
				if c.SerialNumber != "" && d.SerialNumber != c.SerialNumber {
					continue
				}
				return d, nil
			}
			return types.Device{}, storage.ErrNoRows
		},
		QueryDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			c := condition(conditions...)
			matches := []types.Device{}
			for _, d := range devices {
				if c.SerialNumber != "" && d.SerialNumber != c.SerialNumber {
					continue
				}
				if c.OwnerID != "" && d.OwnerID != c.OwnerID {
					continue
				}
				if c.ZoneID != "" && d.ZoneID != c.ZoneID {
					continue
				}
				matches = append(matches, d)
			}
			return types.Collection[types.Device]{Data: matches, Count: uint64(len(matches)), TotalCount: uint64(len(matches))}, nil
		},
		UpdateDeviceFunc: func(ctx context.Context, device types.Device) error {
			if _, ok := devices[device.DeviceID]; !ok {
				return storage.ErrNoRows
			}
			devices[device.DeviceID] = device
			return nil
		},
		DeleteDeviceFunc: func(ctx context.Context, deviceID string) error {
			if _, ok := devices[deviceID]; !ok {
				return storage.ErrNoRows
			}
			delete(devices, deviceID)
			return nil
		},
		AddReadingFunc: func(ctx context.Context, reading types.Reading) error {
			readings[reading.ReadingID] = reading
			return nil
		},
		GetReadingFunc: func(ctx context.Context, readingID string) (types.Reading, error) {
			r, ok := readings[readingID]
			if !ok {
				return types.Reading{}, storage.ErrNoRows
			}
			return r, nil
		},
		QueryReadingsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Reading], error) {
			c := condition(conditions...)
			matches := []types.Reading{}
			for _, r := range readings {
				if c.SensorID != "" && r.SensorID != c.SensorID {
					continue
				}
				matches = append(matches, r)
			}
			return types.Collection[types.Reading]{Data: matches, Count: uint64(len(matches)), TotalCount: uint64(len(matches))}, nil
		},
		UpdateReadingFunc: func(ctx context.Context, reading types.Reading) error {
			if _, ok := readings[reading.ReadingID]; !ok {
				return storage.ErrNoRows
			}
			readings[reading.ReadingID] = reading
			return nil
		},
		DeleteReadingFunc: func(ctx context.Context, readingID string) error {
			if _, ok := readings[readingID]; !ok {
				return storage.ErrNoRows
			}
			delete(readings, readingID)
			return nil
		},
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	created, err := svc.CreateUser(ctx, types.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "s3cret123",
	})
	is.NoErr(err)
	is.True(created.Password != "s3cret123")

	stored := store.AddUserCalls()[0].User
	err = bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret123"))
	is.NoErr(err)
}

func TestCreateUserDefaultsRoleToViewer(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	created, err := svc.CreateUser(ctx, types.User{Name: "A", Email: "a@example.com", Password: "secret"})
	is.NoErr(err)
	is.Equal(types.RoleViewer, created.Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.CreateUser(ctx, types.User{Name: "A", Email: "a@example.com", Password: "secret", Role: "superuser"})

	var validationErr *ValidationError
	is.True(errors.As(err, &validationErr))
	is.Equal("role", validationErr.Field)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.CreateUser(ctx, types.User{Name: "A", Email: "a@example.com", Password: "secret"})
	is.NoErr(err)

	_, err = svc.CreateUser(ctx, types.User{Name: "B", Email: "A@Example.com ", Password: "secret"})
	is.True(errors.Is(err, ErrAlreadyExists))
}

func TestGetUserInvalidID(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.GetUser(ctx, "not-a-uuid")
	is.True(errors.Is(err, ErrInvalidID))
}

func TestCreateSensorRejectsUnknownType(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.CreateSensor(ctx, types.Sensor{Type: "pressure"})

	var validationErr *ValidationError
	is.True(errors.As(err, &validationErr))
	is.Equal("type", validationErr.Field)
}

func TestCreateDeviceRejectsUnknownOwner(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.CreateDevice(ctx, types.Device{
		SerialNumber: "DEV-0001",
		OwnerID:      uuid.NewString(),
	})

	var refErr *ReferenceError
	is.True(errors.As(err, &refErr))
	is.Equal("ownerId", refErr.Field)
	is.Equal("unknown", refErr.Reason)
}

func TestCreateDeviceChecksOwnerBeforeZone(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	_, err := svc.CreateDevice(ctx, types.Device{
		SerialNumber: "DEV-0001",
		OwnerID:      uuid.NewString(),
		ZoneID:       uuid.NewString(),
	})

	var refErr *ReferenceError
	is.True(errors.As(err, &refErr))
	is.Equal("ownerId", refErr.Field)
	is.Equal(0, len(store.GetZoneCalls()))
}

func TestCreateDeviceRejectsMalformedReference(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	_, err := svc.CreateDevice(ctx, types.Device{
		SerialNumber: "DEV-0001",
		OwnerID:      "not-a-uuid",
	})

	var refErr *ReferenceError
	is.True(errors.As(err, &refErr))
	is.Equal("invalid", refErr.Reason)
	is.Equal(0, len(store.GetUserCalls()))
}

func TestCreateDeviceDefaultsStatus(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	created, err := svc.CreateDevice(ctx, types.Device{SerialNumber: "DEV-0001"})
	is.NoErr(err)
	is.Equal(types.DeviceStatusActive, created.Status)
}

func TestUpdateDeviceRevalidatesOnlyTouchedReferences(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	owner, err := svc.CreateUser(ctx, types.User{Name: "Owner", Email: "o@example.com", Password: "secret"})
	is.NoErr(err)

	device, err := svc.CreateDevice(ctx, types.Device{SerialNumber: "DEV-0001", OwnerID: owner.UserID})
	is.NoErr(err)

	lookups := len(store.GetUserCalls())

	updated, err := svc.UpdateDevice(ctx, device.DeviceID, map[string]any{"model": "GW-2"})
	is.NoErr(err)
	is.Equal("GW-2", updated.Model)
	is.Equal(owner.UserID, updated.OwnerID)

	// the untouched owner reference must not be looked up again
	is.Equal(lookups, len(store.GetUserCalls()))
}

func TestUpdateDeviceRejectsDanglingZone(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	device, err := svc.CreateDevice(ctx, types.Device{SerialNumber: "DEV-0001"})
	is.NoErr(err)

	_, err = svc.UpdateDevice(ctx, device.DeviceID, map[string]any{"zoneId": uuid.NewString()})

	var refErr *ReferenceError
	is.True(errors.As(err, &refErr))
	is.Equal("zoneId", refErr.Field)
	is.Equal("unknown", refErr.Reason)
}

func TestCreateReadingRejectsInactiveSensor(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	sensor, err := svc.CreateSensor(ctx, types.Sensor{Type: types.SensorTypeTemperature, IsActive: false})
	is.NoErr(err)

	v := 21.5
	_, err = svc.CreateReading(ctx, types.Reading{SensorID: sensor.SensorID, Value: &v})

	var refErr *ReferenceError
	is.True(errors.As(err, &refErr))
	is.Equal("inactive", refErr.Reason)
}

func TestCreateReadingDefaultsTime(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	sensor, err := svc.CreateSensor(ctx, types.Sensor{Type: types.SensorTypeTemperature, IsActive: true})
	is.NoErr(err)

	v := 21.5
	created, err := svc.CreateReading(ctx, types.Reading{SensorID: sensor.SensorID, Value: &v})
	is.NoErr(err)
	is.True(!created.Time.IsZero())
	is.True(time.Since(created.Time) < time.Minute)
}

func TestCreateReadingRequiresValue(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	_, err := svc.CreateReading(ctx, types.Reading{SensorID: uuid.NewString()})

	var validationErr *ValidationError
	is.True(errors.As(err, &validationErr))
	is.Equal("value", validationErr.Field)
}

func TestDeleteUserWithDependents(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	owner, err := svc.CreateUser(ctx, types.User{Name: "Owner", Email: "o@example.com", Password: "secret"})
	is.NoErr(err)

	_, err = svc.CreateDevice(ctx, types.Device{SerialNumber: "DEV-0001", OwnerID: owner.UserID})
	is.NoErr(err)
	_, err = svc.CreateDevice(ctx, types.Device{SerialNumber: "DEV-0002", OwnerID: owner.UserID})
	is.NoErr(err)

	err = svc.DeleteUser(ctx, owner.UserID)

	var depErr *DependentsError
	is.True(errors.As(err, &depErr))
	is.Equal(int64(2), depErr.Count)
}

func TestDeleteZoneNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	err := svc.DeleteZone(ctx, uuid.NewString())
	is.True(errors.Is(err, ErrNotFound))
}

func TestGuardedDeleteScenario(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(newInMemStore(), nil)

	zone, err := svc.CreateZone(ctx, types.Zone{Name: "Zona A", IsActive: true})
	is.NoErr(err)

	owner, err := svc.CreateUser(ctx, types.User{Name: "Tech", Email: "tech@example.com", Password: "secret", Role: types.RoleTechnician})
	is.NoErr(err)

	sensor, err := svc.CreateSensor(ctx, types.Sensor{Type: types.SensorTypeTemperature, Model: "T1000", IsActive: true})
	is.NoErr(err)

	device, err := svc.CreateDevice(ctx, types.Device{
		SerialNumber: "DEV-1",
		OwnerID:      owner.UserID,
		ZoneID:       zone.ZoneID,
		Sensors:      []string{sensor.SensorID},
	})
	is.NoErr(err)

	err = svc.DeleteZone(ctx, zone.ZoneID)
	var depErr *DependentsError
	is.True(errors.As(err, &depErr))
	is.Equal(int64(1), depErr.Count)

	err = svc.DeleteDevice(ctx, device.DeviceID)
	is.NoErr(err)

	err = svc.DeleteZone(ctx, zone.ZoneID)
	is.NoErr(err)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	created, err := svc.CreateUser(ctx, types.User{Name: "A", Email: "a@example.com", Password: "first"})
	is.NoErr(err)

	updated, err := svc.UpdateUser(ctx, created.UserID, map[string]any{"password": "second"})
	is.NoErr(err)

	err = bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("second"))
	is.NoErr(err)
}
