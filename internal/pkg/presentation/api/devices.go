package api

import (
	"log/slog"
	"net/http"

	"github.com/diwise/iot-asset-registry/internal/pkg/application/registry"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func createDeviceHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var device types.Device
		err = decodeBody(r, &device)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		created, err := svc.CreateDevice(ctx, device)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getDeviceHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		device, err := svc.GetDevice(ctx, deviceID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, device)
	}
}

func queryDevicesHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryDevices(ctx, r.URL.Query())
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, collection.Data)
	}
}

func patchDeviceHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "patch-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := decodeFields(r)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		device, err := svc.UpdateDevice(ctx, chi.URLParam(r, "deviceID"), fields)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, device)
	}
}

func deleteDeviceHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")

		err = svc.DeleteDevice(ctx, deviceID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{ID: deviceID})
	}
}
