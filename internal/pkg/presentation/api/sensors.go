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

func createSensorHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var sensor types.Sensor
		err = decodeBody(r, &sensor)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		created, err := svc.CreateSensor(ctx, sensor)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getSensorHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensor, err := svc.GetSensor(ctx, chi.URLParam(r, "sensorID"))
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, sensor)
	}
}

func querySensorsHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QuerySensors(ctx, r.URL.Query())
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, collection.Data)
	}
}

func patchSensorHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "patch-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := decodeFields(r)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		sensor, err := svc.UpdateSensor(ctx, chi.URLParam(r, "sensorID"), fields)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, sensor)
	}
}

func deleteSensorHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")

		err = svc.DeleteSensor(ctx, sensorID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{ID: sensorID})
	}
}
