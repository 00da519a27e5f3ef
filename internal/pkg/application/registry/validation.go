package registry

import (
	"regexp"
	"slices"

	"github.com/diwise/iot-asset-registry/pkg/types"
)

var validRoles = []string{types.RoleAdmin, types.RoleTechnician, types.RoleViewer}
var validSensorTypes = []string{types.SensorTypeTemperature, types.SensorTypeHumidity, types.SensorTypeCO2, types.SensorTypeNoise}
var validDeviceStatuses = []string{types.DeviceStatusActive, types.DeviceStatusMaintenance, types.DeviceStatusOffline}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateUser(user types.User, requirePassword bool) error {
	if user.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if user.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !emailPattern.MatchString(user.Email) {
		return &ValidationError{Field: "email", Reason: "not a valid email address"}
	}
	if requirePassword && user.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	if user.Role != "" && !slices.Contains(validRoles, user.Role) {
		return &ValidationError{Field: "role", Reason: "must be one of admin, technician, viewer"}
	}
	return nil
}

func validateZone(zone types.Zone) error {
	if zone.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	return nil
}

func validateSensor(sensor types.Sensor) error {
	if sensor.Type == "" {
		return &ValidationError{Field: "type", Reason: "required"}
	}
	if !slices.Contains(validSensorTypes, sensor.Type) {
		return &ValidationError{Field: "type", Reason: "must be one of temperature, humidity, co2, noise"}
	}
	return nil
}

func validateDevice(device types.Device) error {
	if device.SerialNumber == "" {
		return &ValidationError{Field: "serialNumber", Reason: "required"}
	}
	if device.Status != "" && !slices.Contains(validDeviceStatuses, device.Status) {
		return &ValidationError{Field: "status", Reason: "must be one of active, maintenance, offline"}
	}
	return nil
}

func validateReading(reading types.Reading) error {
	if reading.SensorID == "" {
		return &ValidationError{Field: "sensorId", Reason: "required"}
	}
	if reading.Value == nil {
		return &ValidationError{Field: "value", Reason: "required"}
	}
	return nil
}
