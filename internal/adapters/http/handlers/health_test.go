package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotewall/internal/ports"
)

// fakeChecker is a hand-written fake implementing ports.HealthChecker.
type fakeChecker struct {
	name string
	err  error
}

func (f *fakeChecker) Name() string                  { return f.name }
func (f *fakeChecker) Check(_ context.Context) error { return f.err }

func setupHealthEngine(t *testing.T, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		require.NoError(t, registry.Register(c))
	}

	handler := NewHealthHandler(registry, NewBuildInfo("1.2.3", "abc123", "2026-08-30T00:00:00Z"))

	engine := gin.New()
	handler.RegisterHealthRoutesOnEngine(engine)

	return engine
}

func TestLiveness(t *testing.T) {
	engine := setupHealthEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness_AllHealthy(t *testing.T) {
	engine := setupHealthEngine(t,
		&fakeChecker{name: "static-quotes"},
		&fakeChecker{name: "quote-api"},
	)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Len(t, resp.Checks, 2)
}

func TestReadiness_OneUnhealthy(t *testing.T) {
	engine := setupHealthEngine(t,
		&fakeChecker{name: "static-quotes"},
		&fakeChecker{name: "quote-api", err: errors.New("connection refused")},
	)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, ports.HealthStatusUnhealthy, resp.Checks["quote-api"].Status)
	assert.Equal(t, "connection refused", resp.Checks["quote-api"].Message)
}

func TestBuildInfoEndpoint(t *testing.T) {
	engine := setupHealthEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/build", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestMetricsEndpoint(t *testing.T) {
	engine := setupHealthEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
