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

func createZoneHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-zone")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var zone types.Zone
		err = decodeBody(r, &zone)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		created, err := svc.CreateZone(ctx, zone)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getZoneHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-zone")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		zone, err := svc.GetZone(ctx, chi.URLParam(r, "zoneID"))
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, zone)
	}
}

func queryZonesHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-zones")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryZones(ctx, r.URL.Query())
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, collection.Data)
	}
}

func patchZoneHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "patch-zone")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := decodeFields(r)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		zone, err := svc.UpdateZone(ctx, chi.URLParam(r, "zoneID"), fields)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, zone)
	}
}

func deleteZoneHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-zone")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		zoneID := chi.URLParam(r, "zoneID")

		err = svc.DeleteZone(ctx, zoneID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{ID: zoneID})
	}
}
