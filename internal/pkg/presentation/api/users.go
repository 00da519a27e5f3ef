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

func createUserHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var user types.User
		err = decodeBody(r, &user)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		created, err := svc.CreateUser(ctx, user)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newUserResponse(created))
	}
}

func getUserHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		user, err := svc.GetUser(ctx, chi.URLParam(r, "userID"))
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

func queryUsersHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-users")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryUsers(ctx, r.URL.Query())
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, newUserListResponse(collection))
	}
}

func patchUserHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "patch-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := decodeFields(r)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		user, err := svc.UpdateUser(ctx, chi.URLParam(r, "userID"), fields)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

func deleteUserHandler(log *slog.Logger, svc registry.AssetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		userID := chi.URLParam(r, "userID")

		err = svc.DeleteUser(ctx, userID)
		if err != nil {
			writeError(requestLogger, w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{ID: userID})
	}
}
