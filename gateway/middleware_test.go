package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlbridge/gqlbridge/config"
	"github.com/gqlbridge/gqlbridge/headers"
)

func TestRecoveryMiddleware(t *testing.T) {
	gw := New(config.Default)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("something went very wrong")
	})

	w := httptest.NewRecorder()
	gw.recoveryMiddleware(panicking).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var status apiStatusMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "error", status.Status)
	assert.Equal(t, "Internal server error", status.Message)
	assert.NotContains(t, w.Body.String(), "something went very wrong", "internals must not leak")
}

func TestRequestIDMiddleware(t *testing.T) {
	gw := New(config.Default)

	w := doRequest(gw, http.MethodGet, "/health", "")

	assert.NotEmpty(t, w.Header().Get(headers.XRequestID))
}

func TestCORSMiddleware(t *testing.T) {
	conf := config.Default
	conf.CORS.Enable = true
	conf.CORS.AllowedOrigins = []string{"https://app.example.com"}
	gw := New(conf)

	r := httptest.NewRequest(http.MethodOptions, "/api/graphql", nil)
	r.Header.Set("Origin", "https://app.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	gw.Handler().ServeHTTP(w, r)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisabledByDefault(t *testing.T) {
	gw := New(config.Default)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://app.example.com")

	w := httptest.NewRecorder()
	gw.Handler().ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
