package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campus-backend/config"
	"campus-backend/controllers"
	"campus-backend/repository"
	"campus-backend/routes"
	"campus-backend/services"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	config.InitLogger()

	if err := config.LoadAWSConfig(); err != nil {
		log.Fatal("Failed to initialize AWS: ", err)
	}

	if err := config.InitMongoDB(); err != nil {
		log.Fatal("Failed to initialize MongoDB: ", err)
	}

	users := repository.NewMongoUserStore(config.MongoDB)
	messages := repository.NewMongoMessageStore(config.MongoDB)
	images := repository.NewMongoImageStore(config.MongoDB)

	tokens, err := services.NewTokenService(config.JWTSecret)
	if err != nil {
		log.Fatal("Failed to initialize token service: ", err)
	}

	authService := services.NewAuthService(users, tokens, config.Log)
	chatService := services.NewChatService(messages, users, config.Log)
	uploader := services.NewS3Uploader(config.AWSConfig, config.AWSBucketName, config.AWSRegion)
	imageService := services.NewImageService(images, users, uploader, config.Log)

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = services.EnsureAdminAccount(bootstrapCtx, users, config.AdminPassword, config.Log)
	cancel()
	if err != nil {
		log.Fatal("Failed to seed administrator account: ", err)
	}

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	trustedProxies := []string{"127.0.0.1", "::1"}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies: ", err)
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")

		if err := config.CloseMongoDB(); err != nil {
			log.Printf("MongoDB shutdown error: %v", err)
		}

		os.Exit(0)
	}()

	authController := controllers.NewAuthController(authService)
	chatController := controllers.NewChatController(chatService)
	imageController := controllers.NewImageController(imageService)

	routes.SetupRoutes(r, tokens, authController, chatController, imageController)

	serverAddr := ":" + config.Port
	log.Printf("Server starting on %s", serverAddr)
	if err := r.Run(serverAddr); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed to start: ", err)
	}
}
