package types

import (
	"encoding/json"
	"time"
)

type DeviceCreated struct {
	DeviceID  string    `json:"deviceID"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DeviceCreated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceCreated) ContentType() string {
	return "application/json"
}
func (d *DeviceCreated) TopicName() string {
	return "device.created"
}

type DeviceUpdated struct {
	DeviceID  string    `json:"deviceID"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DeviceUpdated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceUpdated) ContentType() string {
	return "application/json"
}
func (d *DeviceUpdated) TopicName() string {
	return "device.updated"
}

type DeviceDeleted struct {
	DeviceID  string    `json:"deviceID"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DeviceDeleted) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceDeleted) ContentType() string {
	return "application/json"
}
func (d *DeviceDeleted) TopicName() string {
	return "device.deleted"
}

type ReadingCreated struct {
	ReadingID string    `json:"readingID"`
	SensorID  string    `json:"sensorID"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *ReadingCreated) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
func (r *ReadingCreated) ContentType() string {
	return "application/json"
}
func (r *ReadingCreated) TopicName() string {
	return "reading.created"
}
