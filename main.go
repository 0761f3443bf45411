package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Neeto7/neetocafebackoffice/config"
	"github.com/Neeto7/neetocafebackoffice/controllers"
	"github.com/Neeto7/neetocafebackoffice/database"
	"github.com/Neeto7/neetocafebackoffice/realtime"
	"github.com/Neeto7/neetocafebackoffice/routes"
	"github.com/Neeto7/neetocafebackoffice/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	hub := realtime.NewHub()
	defer hub.Close()

	store := storage.New(cfg.UploadDir, cfg.BaseURL)
	ctl := controllers.New(db, hub, store, cfg)

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Uploaded objects are served straight from disk
	router.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(router, ctl)

	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
