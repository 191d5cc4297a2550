package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/ads-health-monitor/pkg/apiErrors"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	operator := &domain.Claims{Subject: "ops", Role: domain.RoleOperator}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{
			name:       "Healthcheck é público",
			path:       "/healthcheck",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem header é rejeitado",
			path:       "/v1/audits",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem Bearer é rejeitado",
			path:       "/v1/audits",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token expirado usa o código do erro de autenticação",
			path:       "/v1/audits",
			header:     "Bearer abc",
			validator:  fakeValidator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido segue adiante",
			path:       "/v1/audits",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: operator},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Operador pode executar", claims: &domain.Claims{Role: domain.RoleOperator}, wantStatus: http.StatusNoContent},
		{name: "Leitor é barrado", claims: &domain.Claims{Role: domain.RoleViewer}, wantStatus: http.StatusForbidden},
		{name: "Sem claims é não autenticado", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/audits/run", nil)
			if tt.claims != nil {
				req.Header.Set("Authorization", "Bearer x")
			}
			rec := httptest.NewRecorder()

			handler := OperatorOnly()(okHandler())
			if tt.claims != nil {
				handler = AuthMiddleware(fakeValidator{claims: tt.claims})(handler)
			}
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida recebe os headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/audits", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida não recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/audits", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200 sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/audits", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_CorrelationHeader(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(CorrelationHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/audits", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
