package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type rolesContextKey struct{ name string }

var rolesCtxKey = &rolesContextKey{"roles"}

var tracer = otel.Tracer("iot-asset-registry/authz")

type Role string

var AnyRole Role = Role("any")

type Enticator interface {
	RequireRole(roles ...Role) func(http.Handler) http.Handler
}

type impl struct {
	query rego.PreparedEvalQuery
}

func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.iot.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return &impl{query: query}, nil
}

func (a *impl) RequireRole(roles ...Role) func(http.Handler) http.Handler {

	requiredRoles := make([]string, 0, len(roles))
	for _, r := range roles {
		requiredRoles = append(requiredRoles, string(r))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token": token[7:],
				"roles": requiredRoles,
			}

			results, err := a.query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// a failed authz comes back as a single bool
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			anyRoles, ok1 := result["roles"]
			grantedAny, ok2 := anyRoles.([]any)

			if !ok1 || !ok2 {
				err = errors.New("bad response from authz policy engine")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			granted := make([]Role, 0, len(grantedAny))
			for _, g := range grantedAny {
				role, ok := g.(string)
				if !ok {
					logger.Error("rego response type error")
					http.Error(w, "rego error", http.StatusInternalServerError)
					return
				}
				granted = append(granted, Role(role))
			}

			if len(granted) == 0 {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRoles(r.Context(), granted)))
		})
	}
}

func WithRoles(ctx context.Context, roles []Role) context.Context {
	return context.WithValue(ctx, rolesCtxKey, roles)
}

// GetRolesFromContext returns the roles the authz policy granted for the
// current request, or an empty slice outside of an authenticated request.
func GetRolesFromContext(ctx context.Context) []Role {
	roles, ok := ctx.Value(rolesCtxKey).([]Role)
	if !ok {
		return []Role{}
	}
	return roles
}
