package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"triroars-proposal/pkg/api"
	"triroars-proposal/pkg/assets"
	"triroars-proposal/pkg/clients/mail"
	"triroars-proposal/pkg/config"
	"triroars-proposal/pkg/middleware"
	"triroars-proposal/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize the mail transport and the fixed developer signature asset
	mailClient := mail.NewClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SenderAddress)
	devSignature := assets.NewDeveloperSignature(cfg.DeveloperSignaturePath)

	// Initialize services
	approvalService := services.NewApprovalService(mailClient, cfg)
	contractService := services.NewContractService(mailClient, devSignature, cfg)

	gin.SetMode(gin.ReleaseMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// The page is served from a different origin than this API
	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	// Contract submissions carry a base64 PDF; cap the body well above it
	router.Use(middleware.BodyLimit())

	// Initialize handlers
	handlers := api.NewHandlers(approvalService, contractService)

	// Register routes
	router.POST("/api/send-approval", handlers.HandleSendApproval)
	router.POST("/api/send-contract", handlers.HandleSendContract)
	router.GET("/api/health", handlers.HealthCheck)

	// Serve the fixed developer signature for the contract page
	router.StaticFile("/sign.jpg", cfg.DeveloperSignaturePath)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
