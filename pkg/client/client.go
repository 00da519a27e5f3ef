package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("asset-registry-client")

type AssetRegistryClient interface {
	FindDeviceFromSerialNumber(ctx context.Context, serialNumber string) (types.Device, error)
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	FindSensorReadings(ctx context.Context, sensorID string) ([]types.Reading, error)
}

type registryClient struct {
	url   string
	token string

	httpClient http.Client
}

func New(registryURL, token string) AssetRegistryClient {
	return &registryClient{
		url:   registryURL,
		token: token,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *registryClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (c *registryClient) FindDeviceFromSerialNumber(ctx context.Context, serialNumber string) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "find-device-from-serial-number")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("looking up device", "serial_number", serialNumber)

	body, err := c.get(ctx, c.url+"/api/v0/devices?serialNumber="+serialNumber)
	if err != nil {
		return types.Device{}, err
	}

	devices := []types.Device{}

	err = json.Unmarshal(body, &devices)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Device{}, err
	}

	if len(devices) == 0 {
		err = fmt.Errorf("no device found with serial number %s", serialNumber)
		return types.Device{}, err
	}

	return devices[0], nil
}

func (c *registryClient) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.get(ctx, c.url+"/api/v0/devices/"+deviceID)
	if err != nil {
		return types.Device{}, err
	}

	device := types.Device{}

	err = json.Unmarshal(body, &device)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Device{}, err
	}

	return device, nil
}

func (c *registryClient) FindSensorReadings(ctx context.Context, sensorID string) ([]types.Reading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "find-sensor-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.get(ctx, c.url+"/api/v0/readings?sensorId="+sensorID)
	if err != nil {
		return nil, err
	}

	readings := []types.Reading{}

	err = json.Unmarshal(body, &readings)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return readings, nil
}
