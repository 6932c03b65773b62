package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// helper to create router with middleware wired same way as in setupRouter
func setupUserIDTestRouter(s *Service, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	group := r.Group("/").Use(s.userIDMiddleware())
	group.GET(UsersEmojiSettingsURL, handler)

	return r
}

func TestUserIDMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		id         string
		wantCalled bool
		wantCode   int
	}{
		{"Valid", "123", true, http.StatusOK},
		{"NotANumber", "abc", false, http.StatusBadRequest},
		{"Zero", "0", false, http.StatusBadRequest},
		{"Negative", "-5", false, http.StatusBadRequest},
		{"Overflow", "99999999999999999999", false, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Service{} // we don't need any fields for this middleware

			called := false
			router := setupUserIDTestRouter(s, func(ctx *gin.Context) {
				called = true
				require.Equal(t, int64(123), extractUserIDFromCtx(ctx))
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/"+tc.id+"/emoji-settings", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			require.Equal(t, tc.wantCalled, called)
			require.Equal(t, tc.wantCode, resp.Code)
		})
	}
}
