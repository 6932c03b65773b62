package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// public routes, the viewer is known when the token is provided
	publicGroup := router.Group("/").Use(optionalAuthMiddleware(service.tokenMaker))
	publicGroup.POST(RenderURL, service.render)
	publicGroup.POST(RenderBodyURL, service.renderBody)

	userGroup := router.Group("/").Use(service.userIDMiddleware())
	userGroup.GET(UsersEmojiSettingsURL, service.getEmojiSettings)

	// protected routes
	authGroup := router.Group("/").Use(authMiddleware(service.tokenMaker))
	authGroup.PUT(UpdateEmojiSettingsURL, service.updateEmojiSettings)

	server.Handler = router
	service.router = router
}
