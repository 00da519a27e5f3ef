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

func createReadingHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var reading types.Reading
		err = decodeBody(r, &reading)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		created, err := svc.CreateReading(ctx, reading)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getReadingHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		reading, err := svc.GetReading(ctx, chi.URLParam(r, "readingID"))
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, reading)
	}
}

func queryReadingsHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryReadings(ctx, r.URL.Query())
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, collection.Data)
	}
}

func patchReadingHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "patch-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := decodeFields(r)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		reading, err := svc.UpdateReading(ctx, chi.URLParam(r, "readingID"), fields)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, reading)
	}
}

func deleteReadingHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		readingID := chi.URLParam(r, "readingID")

		err = svc.DeleteReading(ctx, readingID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{ID: readingID})
	}
}
