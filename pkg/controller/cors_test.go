package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tracker/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		method          string
		origin          string
		wantStatus      int
		wantNext        bool
		wantAllowOrigin string
		wantCredentials string
	}{
		{
			name:            "wildcard preflight",
			method:          http.MethodOptions,
			origin:          "https://shop.example",
			wantStatus:      http.StatusNoContent,
			wantAllowOrigin: "*",
		},
		{
			name:            "wildcard get",
			origins:         []string{"*"},
			method:          http.MethodGet,
			wantStatus:      http.StatusTeapot,
			wantNext:        true,
			wantAllowOrigin: "*",
		},
		{
			name:            "listed origin",
			origins:         []string{"https://shop.example"},
			method:          http.MethodGet,
			origin:          "https://SHOP.example",
			wantStatus:      http.StatusTeapot,
			wantNext:        true,
			wantAllowOrigin: "https://SHOP.example",
			wantCredentials: "true",
		},
		{
			name:       "unlisted origin",
			origins:    []string{"https://shop.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusTeapot,
			wantNext:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tc.method, "/v1/track/1Z999AA10123456784", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			controller.CORS(tc.origins)(next).ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, tc.wantStatus, res.StatusCode)
			require.Equal(t, tc.wantNext, called)
			require.Equal(t, tc.wantAllowOrigin, res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, tc.wantCredentials, res.Header.Get("Access-Control-Allow-Credentials"))
			require.Equal(t, "GET, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
			require.Equal(t, "X-Request-Id", res.Header.Get("Access-Control-Expose-Headers"))
		})
	}
}
