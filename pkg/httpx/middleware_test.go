package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	read := func(body string) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := httpx.ReadJSON(httptest.NewRecorder(), req, &p)
		return p, err
	}

	t.Run("decodes object", func(t *testing.T) {
		p, err := read(`{"email":"jane@example.com"}`)
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", p.Email)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := read("")
		require.ErrorContains(t, err, "empty")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := read(`{"email":"a@b.c","admin":true}`)
		require.Error(t, err)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		_, err := read(`{"email":"a@b.c"}{"email":"d@e.f"}`)
		require.ErrorContains(t, err, "single JSON object")
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		_, err := read(`{"email":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`)
		require.Error(t, err)
	})
}
