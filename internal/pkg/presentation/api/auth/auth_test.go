package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const policy string = `
package iot.authz

import rego.v1

default allow := false

allow := response if {
	input.token == "goodtoken"
	response := {"roles": ["admin", "viewer"]}
}
`

func okHandler(t *testing.T, seenRoles *[]Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seenRoles = GetRolesFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleRejectsMissingHeader(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthenticator(context.Background(), strings.NewReader(policy))
	is.NoErr(err)

	var roles []Role
	handler := a.RequireRole(AnyRole)(okHandler(t, &roles))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestRequireRoleRejectsUnknownToken(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthenticator(context.Background(), strings.NewReader(policy))
	is.NoErr(err)

	var roles []Role
	handler := a.RequireRole(AnyRole)(okHandler(t, &roles))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
	req.Header.Add("Authorization", "Bearer badtoken")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestRequireRoleStoresGrantedRolesInContext(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthenticator(context.Background(), strings.NewReader(policy))
	is.NoErr(err)

	var roles []Role
	handler := a.RequireRole(AnyRole)(okHandler(t, &roles))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/devices", nil)
	req.Header.Add("Authorization", "Bearer goodtoken")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal([]Role{"admin", "viewer"}, roles)
}

func TestNewAuthenticatorRejectsBrokenPolicy(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthenticator(context.Background(), strings.NewReader("not rego at all {"))
	is.True(err != nil)
}
