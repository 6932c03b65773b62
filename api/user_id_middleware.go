package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const userIDKey = "provided_user_id"

// This middleware checks the mandatory user ID parameter in the URL.
func (s *Service) userIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userIDRaw := ctx.Param("id")

		userID, err := strconv.ParseInt(userIDRaw, 10, 64)
		// need to check if user id is a positive integer
		if err != nil || userID <= 0 {
			errField := ErrorField{"id", fmt.Sprintf("Invalid user id: %q", userIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidUserID, errField),
			)
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// Helper function to get the user ID after middleware check.
func extractUserIDFromCtx(ctx *gin.Context) int64 {
	return ctx.MustGet(userIDKey).(int64)
}
