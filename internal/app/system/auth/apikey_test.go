package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func apiKeyTestHandler(key string) http.Handler {
	return APIKeyAuth(key, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAPIKeyAuth(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		header     string
		want       int
	}{
		{"valid key", "secret-key", "Bearer secret-key", http.StatusOK},
		{"wrong key", "secret-key", "Bearer wrong", http.StatusUnauthorized},
		{"missing header", "secret-key", "", http.StatusUnauthorized},
		{"wrong scheme", "secret-key", "Basic secret-key", http.StatusUnauthorized},
		{"case-insensitive scheme", "secret-key", "bearer secret-key", http.StatusOK},
		{"unconfigured key fails closed", "", "Bearer anything", http.StatusUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := apiKeyTestHandler(c.configured)
			req := httptest.NewRequest(http.MethodPost, "/admin-thing", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != c.want {
				t.Errorf("status = %d, want %d", rec.Code, c.want)
			}
		})
	}
}
