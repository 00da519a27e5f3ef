package registry

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

type seedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type seedZone struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	IsActive    bool   `yaml:"isActive"`
}

type seedSensor struct {
	Type     string `yaml:"type"`
	Unit     string `yaml:"unit"`
	Model    string `yaml:"model"`
	Location string `yaml:"location"`
	IsActive bool   `yaml:"isActive"`
}

type seedReading struct {
	Sensor string    `yaml:"sensor"`
	Value  float64   `yaml:"value"`
	Time   time.Time `yaml:"time"`
}

type seedDevice struct {
	SerialNumber string   `yaml:"serialNumber"`
	Model        string   `yaml:"model"`
	Status       string   `yaml:"status"`
	Owner        string   `yaml:"owner"`
	Zone         string   `yaml:"zone"`
	Sensors      []string `yaml:"sensors"`
}

type seedFile struct {
	Users    []seedUser    `yaml:"users"`
	Zones    []seedZone    `yaml:"zones"`
	Sensors  []seedSensor  `yaml:"sensors"`
	Devices  []seedDevice  `yaml:"devices"`
	Readings []seedReading `yaml:"readings"`
}

// Seed loads fixture data into an empty or partially seeded registry.
// Records are matched on their natural key (email, zone name, sensor
// model, serial number), so running it twice changes nothing. Device
// references in the fixture use natural keys as well and are resolved
// to ids before the device is created.
func Seed(ctx context.Context, svc AssetRegistry, r io.Reader) error {
	log := logging.GetFromContext(ctx)

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	file := seedFile{}
	err = yaml.Unmarshal(b, &file)
	if err != nil {
		return err
	}

	userIDs := map[string]string{}
	zoneIDs := map[string]string{}
	sensorIDs := map[string]string{}
	newSensors := map[string]bool{}

	for _, u := range file.Users {
		existing, err := svc.QueryUsers(ctx, map[string][]string{"email": {u.Email}})
		if err != nil {
			return err
		}

		if existing.TotalCount > 0 {
			userIDs[u.Email] = existing.Data[0].UserID
			continue
		}

		created, err := svc.CreateUser(ctx, types.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
		})
		if err != nil {
			return fmt.Errorf("could not seed user %s: %w", u.Email, err)
		}

		userIDs[u.Email] = created.UserID
		log.Info("seeded user", "email", u.Email)
	}

	for _, z := range file.Zones {
		existing, err := svc.QueryZones(ctx, map[string][]string{"name": {z.Name}})
		if err != nil {
			return err
		}

		if existing.TotalCount > 0 {
			zoneIDs[z.Name] = existing.Data[0].ZoneID
			continue
		}

		created, err := svc.CreateZone(ctx, types.Zone{
			Name:        z.Name,
			Description: z.Description,
			IsActive:    z.IsActive,
		})
		if err != nil {
			return fmt.Errorf("could not seed zone %s: %w", z.Name, err)
		}

		zoneIDs[z.Name] = created.ZoneID
		log.Info("seeded zone", "name", z.Name)
	}

	for _, sn := range file.Sensors {
		existing, err := svc.QuerySensors(ctx, map[string][]string{"model": {sn.Model}})
		if err != nil {
			return err
		}

		if existing.TotalCount > 0 {
			sensorIDs[sn.Model] = existing.Data[0].SensorID
			continue
		}

		created, err := svc.CreateSensor(ctx, types.Sensor{
			Type:     sn.Type,
			Unit:     sn.Unit,
			Model:    sn.Model,
			Location: sn.Location,
			IsActive: sn.IsActive,
		})
		if err != nil {
			return fmt.Errorf("could not seed sensor %s: %w", sn.Model, err)
		}

		sensorIDs[sn.Model] = created.SensorID
		newSensors[sn.Model] = true
		log.Info("seeded sensor", "model", sn.Model)
	}

	// readings have no natural key, so they are only loaded together with
	// the sensor they belong to
	for _, rd := range file.Readings {
		if !newSensors[rd.Sensor] {
			continue
		}

		sensorID, ok := sensorIDs[rd.Sensor]
		if !ok {
			return fmt.Errorf("reading references unknown sensor %s", rd.Sensor)
		}

		v := rd.Value
		_, err := svc.CreateReading(ctx, types.Reading{
			SensorID: sensorID,
			Time:     rd.Time,
			Value:    &v,
		})
		if err != nil {
			return fmt.Errorf("could not seed reading for sensor %s: %w", rd.Sensor, err)
		}
	}

	for _, d := range file.Devices {
		existing, err := svc.QueryDevices(ctx, map[string][]string{"serialnumber": {d.SerialNumber}})
		if err != nil {
			return err
		}

		if existing.TotalCount > 0 {
			continue
		}

		device := types.Device{
			SerialNumber: d.SerialNumber,
			Model:        d.Model,
			Status:       d.Status,
		}

		if d.Owner != "" {
			ownerID, ok := userIDs[d.Owner]
			if !ok {
				return fmt.Errorf("device %s references unknown owner %s", d.SerialNumber, d.Owner)
			}
			device.OwnerID = ownerID
		}

		if d.Zone != "" {
			zoneID, ok := zoneIDs[d.Zone]
			if !ok {
				return fmt.Errorf("device %s references unknown zone %s", d.SerialNumber, d.Zone)
			}
			device.ZoneID = zoneID
		}

		for _, model := range d.Sensors {
			sensorID, ok := sensorIDs[model]
			if !ok {
				return fmt.Errorf("device %s references unknown sensor %s", d.SerialNumber, model)
			}
			device.Sensors = append(device.Sensors, sensorID)
		}

		_, err = svc.CreateDevice(ctx, device)
		if err != nil {
			return fmt.Errorf("could not seed device %s: %w", d.SerialNumber, err)
		}

		log.Info("seeded device", "serial_number", d.SerialNumber)
	}

	return nil
}
