package types

import (
	"time"
)

const (
	RoleAdmin      string = "admin"
	RoleTechnician string = "technician"
	RoleViewer     string = "viewer"
)

// User is an account that can own devices. Password holds a bcrypt hash
// once the user has been stored and must never be exposed by the API.
type User struct {
	UserID   string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

type Zone struct {
	ZoneID      string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

const (
	SensorTypeTemperature string = "temperature"
	SensorTypeHumidity    string = "humidity"
	SensorTypeCO2         string = "co2"
	SensorTypeNoise       string = "noise"
)

type Sensor struct {
	SensorID string `json:"id"`
	Type     string `json:"type,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Model    string `json:"model,omitempty"`
	Location string `json:"location,omitempty"`
	IsActive bool   `json:"isActive"`
}

const (
	DeviceStatusActive      string = "active"
	DeviceStatusMaintenance string = "maintenance"
	DeviceStatusOffline     string = "offline"
)

// Device references its owner, its zone and its sensors by id only. The
// references are checked at write time and may dangle afterwards.
type Device struct {
	DeviceID     string     `json:"id"`
	SerialNumber string     `json:"serialNumber"`
	Model        string     `json:"model,omitempty"`
	Status       string     `json:"status,omitempty"`
	InstalledAt  *time.Time `json:"installedAt,omitempty"`
	OwnerID      string     `json:"ownerId,omitempty"`
	ZoneID       string     `json:"zoneId,omitempty"`
	Sensors      []string   `json:"sensors,omitempty"`
}

// Reading is a single observed value for a sensor. Value is a pointer so
// that an omitted value can be told apart from an observed zero.
type Reading struct {
	ReadingID string    `json:"id"`
	SensorID  string    `json:"sensorId"`
	Time      time.Time `json:"time"`
	Value     *float64  `json:"value"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
