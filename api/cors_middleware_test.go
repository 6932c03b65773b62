package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	service := newTestService(t, nil, nil, nil)

	testCases := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{"AllowedOrigin", http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusOK},
		{"UnknownOrigin", http.MethodGet, "http://evil.example", "", http.StatusOK},
		{"Preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(tc.method, "/ping", nil)
			require.NoError(t, err)
			request.Header.Set("Origin", tc.origin)

			service.router.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantCode, recorder.Code)
			require.Equal(t, tc.wantOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
			require.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestCorsMiddleware_Wildcard(t *testing.T) {
	config := testConfig
	config.AllowedOrigins = []string{"*"}

	service, err := NewService(config, nil, nil, nil, nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	request.Header.Set("Origin", "http://anything.example")

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
