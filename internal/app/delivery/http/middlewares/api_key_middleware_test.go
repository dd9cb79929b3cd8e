package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"svitlo-service/internal/app/config"
	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func protectedHandler(apiKey string) http.Handler {
	m := NewMiddlewares(&config.InternalConfig{
		App: config.App{APIKey: apiKey},
	}, zap.NewNop())

	return m.RequireAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("Passes a matching key through", func(t *testing.T) {
		handler := protectedHandler("super-secret")

		req := httptest.NewRequest(http.MethodGet, "/api/cache/regenerate", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "super-secret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("Rejects a missing key", func(t *testing.T) {
		handler := protectedHandler("super-secret")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cache/regenerate", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientNotAuthorized, body.Message)
	})

	t.Run("Rejects a wrong key", func(t *testing.T) {
		handler := protectedHandler("super-secret")

		req := httptest.NewRequest(http.MethodGet, "/api/cache/regenerate", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "not-the-key")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Skips the check when no key is configured", func(t *testing.T) {
		handler := protectedHandler("")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cache/regenerate", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
