package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-health-monitor/internal/api/handler/mocks"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	auditingMocks "github.com/vfg2006/ads-health-monitor/internal/usecases/auditing/mocks"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
)

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(&config.Config{}, nil, nil, nil)
	assert.Error(t, err)
}

func TestServer_MiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}}}

	srv, err := New(cfg, auditingMocks.NewMockAuditor(ctrl), mocks.NewMockAuditRunner(ctrl), authenticating.NewService("segredo"))
	require.NoError(t, err)

	t.Run("Healthcheck público com CORS e correlação", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Rota protegida sem token responde 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/audits", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rota inexistente com token responde 404", func(t *testing.T) {
		token, err := authenticating.NewService("segredo").GenerateToken("ops", "viewer", 0)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/nada", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
