package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const seedYaml = `
users:
  - name: Admin
    email: admin@example.com
    password: admin123
    role: admin
  - name: Tech
    email: tech@example.com
    password: tech123
    role: technician
zones:
  - name: Zona A
    description: Planta baja
    isActive: true
  - name: Zona B
    description: Primer piso
    isActive: true
sensors:
  - type: temperature
    unit: C
    model: T1000
    isActive: true
  - type: humidity
    unit: "%"
    model: H2000
    isActive: true
readings:
  - sensor: T1000
    value: 21.5
  - sensor: H2000
    value: 40
devices:
  - serialNumber: DEV-0001
    model: GW-1
    status: active
    owner: admin@example.com
    zone: Zona A
    sensors: [T1000, H2000]
  - serialNumber: DEV-0002
    model: GW-1
    status: maintenance
    owner: tech@example.com
    zone: Zona B
`

func TestSeed(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	err := Seed(ctx, svc, strings.NewReader(seedYaml))
	is.NoErr(err)

	is.Equal(2, len(store.AddUserCalls()))
	is.Equal(2, len(store.AddZoneCalls()))
	is.Equal(2, len(store.AddSensorCalls()))
	is.Equal(2, len(store.AddDeviceCalls()))
	is.Equal(2, len(store.AddReadingCalls()))

	// device references were resolved to ids
	device := store.AddDeviceCalls()[0].Device
	is.True(device.OwnerID != "admin@example.com")
	is.Equal(2, len(device.Sensors))
}

func TestSeedIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newInMemStore()
	svc := New(store, nil)

	err := Seed(ctx, svc, strings.NewReader(seedYaml))
	is.NoErr(err)

	err = Seed(ctx, svc, strings.NewReader(seedYaml))
	is.NoErr(err)

	is.Equal(2, len(store.AddUserCalls()))
	is.Equal(2, len(store.AddZoneCalls()))
	is.Equal(2, len(store.AddSensorCalls()))
	is.Equal(2, len(store.AddDeviceCalls()))
	is.Equal(2, len(store.AddReadingCalls()))
}
