package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/controllers"
	"campus-backend/middleware"
	"campus-backend/services"
)

// SetupRoutes wires every route with its ordered guard chain
func SetupRoutes(
	r *gin.Engine,
	tokens *services.TokenService,
	auth *controllers.AuthController,
	chat *controllers.ChatController,
	images *controllers.ImageController,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/current", middleware.JWTAuthMiddleware(tokens), auth.CurrentUser)
	}

	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.JWTAuthMiddleware(tokens))
	{
		chatGroup.POST("/send", chat.Send)
		chatGroup.GET("/messages", chat.ListMessages)
	}

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(tokens), middleware.AdminOnly())
	{
		admin.POST("/send-image", images.SendImage)
	}

	r.GET("/images", middleware.JWTAuthMiddleware(tokens), images.ListImages)
}
