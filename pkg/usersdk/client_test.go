package usersdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *SDKClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewSDKClient(srv.URL + "/")
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("error response", func(t *testing.T) {
		client := serve(t, http.StatusGone, `{"error":"code_expired","error_description":"expired"}`)

		err := client.VerifyAccount(context.Background(), VerifyRequest{Email: "a@b.c", Code: "123456"})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusGone, apiErr.StatusCode)
		require.Equal(t, ErrorCodeCodeExpired, apiErr.Code)
		require.Equal(t, "expired", apiErr.Description)
	})

	t.Run("validation response keeps details", func(t *testing.T) {
		client := serve(t, http.StatusBadRequest,
			`{"code":"validation_error","message":"invalid request","details":{"code":"must be exactly 6 digits"}}`)

		err := client.VerifyAccount(context.Background(), VerifyRequest{})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, ErrorCodeValidation, apiErr.Code)
		require.Equal(t, "must be exactly 6 digits", apiErr.Details["code"])
	})

	t.Run("unknown body falls back to status", func(t *testing.T) {
		client := serve(t, http.StatusBadGateway, `<html>bad gateway</html>`)

		_, err := client.ListRoles(context.Background())

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, ErrorCodeServerError, apiErr.Code)
		require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Description)
	})
}

func TestAPIErrorWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewAPIError(http.StatusNotFound, ErrorCodeNotFound, "User with id: 7 not found").WriteError(rec)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"not_found","error_description":"User with id: 7 not found"}`, rec.Body.String())
}

func TestCheckVerificationStatusEscapesToken(t *testing.T) {
	t.Parallel()

	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		_, _ = w.Write([]byte(`{"verified":true,"email":"jane@example.com"}`))
	}))
	defer srv.Close()

	status, err := NewSDKClient(srv.URL).CheckVerificationStatus(context.Background(), "a b&c")
	require.NoError(t, err)
	require.Equal(t, "a b&c", gotToken)
	require.True(t, status.Verified)
	require.Equal(t, "jane@example.com", status.Email)
}
