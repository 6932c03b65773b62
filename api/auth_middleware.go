package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationheaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// authMiddleware aborts with 401 unless a valid bearer token is provided.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationheaderKey)
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrMissingAuthHeader))
			return
		}

		payload, err := verifyAuthHeader(tokenMaker, header)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// optionalAuthMiddleware lets anonymous requests through,
// but aborts with 401 if the provided token is invalid.
func optionalAuthMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationheaderKey)
		if header == "" {
			ctx.Next()
			return
		}

		payload, err := verifyAuthHeader(tokenMaker, header)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

func verifyAuthHeader(tokenMaker token.Maker, header string) (*token.Payload, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, ErrInvalidAuthHeader
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != authorizationTypeBearer {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAuthType, authorizationType)
	}

	payload, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return nil, token.ErrTokenExpired
		}
		return nil, token.ErrInvalidToken
	}

	return payload, nil
}

// viewerFromCtx returns the authenticated viewer or nil for anonymous requests.
func viewerFromCtx(ctx *gin.Context) *bbcode.UserRef {
	v, ok := ctx.Get(authorizationPayloadKey)
	if !ok {
		return nil
	}

	payload, ok := v.(*token.Payload)
	if !ok {
		return nil
	}

	return &bbcode.UserRef{ID: payload.UserID, Username: payload.Username}
}
