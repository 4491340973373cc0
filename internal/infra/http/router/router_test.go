package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Home(t *testing.T) {
	r := New(Handlers{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "API da aplicação Sua Pizza está funcionando!", rr.Body.String())
	assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Opener-Policy"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := New(Handlers{})

	req := httptest.NewRequest(http.MethodOptions, "/clientes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Opener-Policy"))
}

func TestRouter_UnknownRouteKeepsHeader(t *testing.T) {
	r := New(Handlers{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pizzas", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "same-origin", rr.Header().Get("Cross-Origin-Opener-Policy"))
}

func TestRouter_Metrics(t *testing.T) {
	r := New(Handlers{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_active_connections")
}
