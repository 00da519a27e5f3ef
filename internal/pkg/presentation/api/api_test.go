package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/iot-asset-registry/internal/pkg/application/registry"
	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

const policyMock string = `
package iot.authz

import rego.v1

default allow := false

allow := response if {
	input.token != ""
	response := {"roles": ["admin", "technician", "viewer"]}
}
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := registry.New(&registry.StoreMock{}, nil)

	router, err := RegisterHandlers(ctx, chi.NewRouter(), strings.NewReader(policyMock), svc)
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
}

func TestRouterRequiresToken(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := registry.New(&registry.StoreMock{}, nil)

	router, err := RegisterHandlers(ctx, chi.NewRouter(), strings.NewReader(policyMock), svc)
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestRouterAcceptsToken(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := &registry.StoreMock{
		QueryDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{Data: []types.Device{}}, nil
		},
	}
	svc := registry.New(store, nil)

	router, err := RegisterHandlers(ctx, chi.NewRouter(), strings.NewReader(policyMock), svc)
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal("[]", strings.TrimSpace(res.Body.String()))
}

func TestCreateUserResponseOmitsPassword(t *testing.T) {
	is := is.New(t)

	store := &registry.StoreMock{
		AddUserFunc: func(ctx context.Context, user types.User) error {
			return nil
		},
	}
	svc := registry.New(store, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/users", strings.NewReader(`{"name":"Admin","email":"admin@example.com","password":"s3cret123","role":"admin"}`))
	res := httptest.NewRecorder()

	createUserHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.True(!strings.Contains(res.Body.String(), "password"))
	is.True(!strings.Contains(res.Body.String(), "s3cret123"))
	is.True(strings.Contains(res.Body.String(), "admin@example.com"))
}

func TestCreateUserValidationFailureReturns400(t *testing.T) {
	is := is.New(t)

	svc := registry.New(&registry.StoreMock{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/users", strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	res := httptest.NewRecorder()

	createUserHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.True(strings.Contains(res.Body.String(), "name"))
}

func TestGetDeviceWithMalformedIDReturns400(t *testing.T) {
	is := is.New(t)

	svc := registry.New(&registry.StoreMock{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deviceID", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	res := httptest.NewRecorder()

	getDeviceHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestGetUnknownDeviceReturns404(t *testing.T) {
	is := is.New(t)

	store := &registry.StoreMock{
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{}, storage.ErrNoRows
		},
	}
	svc := registry.New(store, nil)

	deviceID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices/"+deviceID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deviceID", deviceID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	res := httptest.NewRecorder()

	getDeviceHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestCreateDeviceWithDanglingOwnerReturns400(t *testing.T) {
	is := is.New(t)

	store := &registry.StoreMock{
		GetUserFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.User, error) {
			return types.User{}, storage.ErrNoRows
		},
	}
	svc := registry.New(store, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/devices", strings.NewReader(`{"serialNumber":"DEV-0001","ownerId":"`+uuid.NewString()+`"}`))
	res := httptest.NewRecorder()

	createDeviceHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.True(strings.Contains(res.Body.String(), "ownerId"))
}

func TestDeleteZoneWithDependentsReturns409(t *testing.T) {
	is := is.New(t)

	store := &registry.StoreMock{
		DeleteZoneFunc: func(ctx context.Context, zoneID string) (int64, error) {
			return 3, storage.ErrHasDependents
		},
	}
	svc := registry.New(store, nil)

	zoneID := uuid.NewString()

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/zones/"+zoneID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("zoneID", zoneID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	res := httptest.NewRecorder()

	deleteZoneHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
	is.True(strings.Contains(res.Body.String(), `"dependents":3`))
}

func TestDeleteDeviceRespondsWithID(t *testing.T) {
	is := is.New(t)

	store := &registry.StoreMock{
		DeleteDeviceFunc: func(ctx context.Context, deviceID string) error {
			return nil
		},
	}
	svc := registry.New(store, nil)

	deviceID := uuid.NewString()

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/devices/"+deviceID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("deviceID", deviceID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	res := httptest.NewRecorder()

	deleteDeviceHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(strings.Contains(res.Body.String(), deviceID))
}

func TestCreateSensorWithUnknownTypeReturns400(t *testing.T) {
	is := is.New(t)

	svc := registry.New(&registry.StoreMock{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/sensors", strings.NewReader(`{"type":"pressure"}`))
	res := httptest.NewRecorder()

	createSensorHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}
