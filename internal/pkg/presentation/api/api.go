package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/diwise/iot-asset-registry/internal/pkg/application/registry"
	"github.com/diwise/iot-asset-registry/internal/pkg/presentation/api/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-asset-registry/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc registry.AssetRegistry) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	readers := authenticator.RequireRole(auth.AnyRole)
	writers := authenticator.RequireRole("admin", "technician")

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(readers).Get("/", queryUsersHandler(log, svc))
			r.With(readers).Get("/{userID}", getUserHandler(log, svc))
			r.With(writers).Post("/", createUserHandler(log, svc))
			r.With(writers).Patch("/{userID}", patchUserHandler(log, svc))
			r.With(writers).Delete("/{userID}", deleteUserHandler(log, svc))
		})

		r.Route("/zones", func(r chi.Router) {
			r.With(readers).Get("/", queryZonesHandler(log, svc))
			r.With(readers).Get("/{zoneID}", getZoneHandler(log, svc))
			r.With(writers).Post("/", createZoneHandler(log, svc))
			r.With(writers).Patch("/{zoneID}", patchZoneHandler(log, svc))
			r.With(writers).Delete("/{zoneID}", deleteZoneHandler(log, svc))
		})

		r.Route("/sensors", func(r chi.Router) {
			r.With(readers).Get("/", querySensorsHandler(log, svc))
			r.With(readers).Get("/{sensorID}", getSensorHandler(log, svc))
			r.With(writers).Post("/", createSensorHandler(log, svc))
			r.With(writers).Patch("/{sensorID}", patchSensorHandler(log, svc))
			r.With(writers).Delete("/{sensorID}", deleteSensorHandler(log, svc))
		})

		r.Route("/devices", func(r chi.Router) {
			r.With(readers).Get("/", queryDevicesHandler(log, svc))
			r.With(readers).Get("/{deviceID}", getDeviceHandler(log, svc))
			r.With(writers).Post("/", createDeviceHandler(log, svc))
			r.With(writers).Patch("/{deviceID}", patchDeviceHandler(log, svc))
			r.With(writers).Delete("/{deviceID}", deleteDeviceHandler(log, svc))
		})

		r.Route("/readings", func(r chi.Router) {
			r.With(readers).Get("/", queryReadingsHandler(log, svc))
			r.With(readers).Get("/{readingID}", getReadingHandler(log, svc))
			r.With(writers).Post("/", createReadingHandler(log, svc))
			r.With(writers).Patch("/{readingID}", patchReadingHandler(log, svc))
			r.With(writers).Delete("/{readingID}", deleteReadingHandler(log, svc))
		})
	})

	return router, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

type errorResponse struct {
	Error      string `json:"error"`
	Dependents *int64 `json:"dependents,omitempty"`
}

func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	var validationErr *registry.ValidationError
	var refErr *registry.ReferenceError
	var depErr *registry.DependentsError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &refErr), errors.Is(err, registry.ErrInvalidID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, registry.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, registry.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &depErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Dependents: &depErr.Count})
	default:
		log.Error("request failed", "err", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return &registry.ValidationError{Field: "body", Reason: "could not be read"}
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return &registry.ValidationError{Field: "body", Reason: "not valid json"}
	}

	return nil
}

func decodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}
	err := decodeBody(r, &fields)
	if err != nil {
		return nil, err
	}
	return fields, nil
}
