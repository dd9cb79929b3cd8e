package middlewares

import (
	"net/http"

	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/exceptions"
	"svitlo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireAPIKey guards the cache administration endpoints. When no key is
// configured the check is skipped entirely, which keeps local development
// friction-free; any configured key must match exactly.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedKey := m.InternalConfig.App.APIKey
		if expectedKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" || apiKey != expectedKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("API key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("user_agent", r.UserAgent()),
		)

		next.ServeHTTP(w, r)
	})
}
