package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestAddGetUser(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	u := types.User{
		UserID:   uuid.NewString(),
		Name:     "Test User",
		Email:    uuid.NewString() + "@example.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Role:     types.RoleViewer,
	}

	err := s.AddUser(ctx, u)
	is.NoErr(err)

	stored, err := s.GetUser(ctx, WithUserID(u.UserID))
	is.NoErr(err)
	is.Equal(u.Email, stored.Email)
	is.Equal(u.Role, stored.Role)
}

func TestAddUserDuplicateEmail(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	email := uuid.NewString() + "@example.com"

	err := s.AddUser(ctx, types.User{UserID: uuid.NewString(), Name: "A", Email: email})
	is.NoErr(err)

	err = s.AddUser(ctx, types.User{UserID: uuid.NewString(), Name: "B", Email: email})
	is.True(errors.Is(err, ErrAlreadyExists))
}

func TestDeleteUserWithDependents(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	u := types.User{UserID: uuid.NewString(), Name: "Owner", Email: uuid.NewString() + "@example.com"}
	err := s.AddUser(ctx, u)
	is.NoErr(err)

	d := types.Device{
		DeviceID:     uuid.NewString(),
		SerialNumber: uuid.NewString(),
		OwnerID:      u.UserID,
	}
	err = s.AddDevice(ctx, d)
	is.NoErr(err)

	count, err := s.DeleteUser(ctx, u.UserID)
	is.True(errors.Is(err, ErrHasDependents))
	is.Equal(int64(1), count)

	err = s.DeleteDevice(ctx, d.DeviceID)
	is.NoErr(err)

	_, err = s.DeleteUser(ctx, u.UserID)
	is.NoErr(err)
}

func TestDeleteZoneWithDependents(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	z := types.Zone{ZoneID: uuid.NewString(), Name: "Zone", IsActive: true}
	err := s.AddZone(ctx, z)
	is.NoErr(err)

	d := types.Device{
		DeviceID:     uuid.NewString(),
		SerialNumber: uuid.NewString(),
		ZoneID:       z.ZoneID,
	}
	err = s.AddDevice(ctx, d)
	is.NoErr(err)

	count, err := s.DeleteZone(ctx, z.ZoneID)
	is.True(errors.Is(err, ErrHasDependents))
	is.Equal(int64(1), count)

	err = s.DeleteDevice(ctx, d.DeviceID)
	is.NoErr(err)

	_, err = s.DeleteZone(ctx, z.ZoneID)
	is.NoErr(err)
}

func TestDeleteSensorWithDependents(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := types.Sensor{SensorID: uuid.NewString(), Type: types.SensorTypeTemperature, IsActive: true}
	err := s.AddSensor(ctx, sensor)
	is.NoErr(err)

	v := 21.5
	r := types.Reading{
		ReadingID: uuid.NewString(),
		SensorID:  sensor.SensorID,
		Time:      time.Now().UTC(),
		Value:     &v,
	}
	err = s.AddReading(ctx, r)
	is.NoErr(err)

	count, err := s.DeleteSensor(ctx, sensor.SensorID)
	is.True(errors.Is(err, ErrHasDependents))
	is.Equal(int64(1), count)

	err = s.DeleteReading(ctx, r.ReadingID)
	is.NoErr(err)

	_, err = s.DeleteSensor(ctx, sensor.SensorID)
	is.NoErr(err)
}

func TestQueryDevicesByOwner(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	u := types.User{UserID: uuid.NewString(), Name: "Owner", Email: uuid.NewString() + "@example.com"}
	err := s.AddUser(ctx, u)
	is.NoErr(err)

	err = s.AddDevice(ctx, types.Device{
		DeviceID:     uuid.NewString(),
		SerialNumber: uuid.NewString(),
		OwnerID:      u.UserID,
		Status:       types.DeviceStatusActive,
	})
	is.NoErr(err)

	c, err := s.QueryDevices(ctx, WithOwnerID(u.UserID))
	is.NoErr(err)
	is.Equal(uint64(1), c.TotalCount)
	is.Equal(u.UserID, c.Data[0].OwnerID)
}

func TestQueryReadingsBySensorSortedByTimeDesc(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensor := types.Sensor{SensorID: uuid.NewString(), Type: types.SensorTypeHumidity, IsActive: true}
	err := s.AddSensor(ctx, sensor)
	is.NoErr(err)

	now := time.Now().UTC()
	for i, v := range []float64{40.0, 41.0, 42.0} {
		value := v
		err = s.AddReading(ctx, types.Reading{
			ReadingID: uuid.NewString(),
			SensorID:  sensor.SensorID,
			Time:      now.Add(time.Duration(i) * time.Minute),
			Value:     &value,
		})
		is.NoErr(err)
	}

	c, err := s.QueryReadings(ctx, WithSensorID(sensor.SensorID))
	is.NoErr(err)
	is.Equal(uint64(3), c.TotalCount)
	is.Equal(42.0, *c.Data[0].Value)
	is.True(c.Data[0].Time.After(c.Data[1].Time))
}

func TestUpdateDeviceClearsZone(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	d := types.Device{
		DeviceID:     uuid.NewString(),
		SerialNumber: uuid.NewString(),
		Status:       types.DeviceStatusActive,
	}
	err := s.AddDevice(ctx, d)
	is.NoErr(err)

	z := types.Zone{ZoneID: uuid.NewString(), Name: "Zone", IsActive: true}
	err = s.AddZone(ctx, z)
	is.NoErr(err)

	d.ZoneID = z.ZoneID
	err = s.UpdateDevice(ctx, d)
	is.NoErr(err)

	stored, err := s.GetDevice(ctx, WithDeviceID(d.DeviceID))
	is.NoErr(err)
	is.Equal(z.ZoneID, stored.ZoneID)

	d.ZoneID = ""
	err = s.UpdateDevice(ctx, d)
	is.NoErr(err)

	stored, err = s.GetDevice(ctx, WithDeviceID(d.DeviceID))
	is.NoErr(err)
	is.Equal("", stored.ZoneID)
}

func TestGetDeviceNotFound(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetDevice(ctx, WithDeviceID(uuid.NewString()))
	is.True(errors.Is(err, ErrNoRows))
}
