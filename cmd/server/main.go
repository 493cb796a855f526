package main

import (
	"context"                               // context package is needed for Redis operations
	"donation_platform/internal/api"        // Custom package for API handlers
	"donation_platform/internal/config"     // Custom package for configuration
	"donation_platform/internal/donation"   // Custom package for the donation recorder
	"donation_platform/internal/mail"       // Custom package for receipt transports
	"donation_platform/internal/middleware" // Custom package for middleware
	"log"                                   // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError maps duplicate keys to gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Pick the receipt transport
	var mailer mail.Sender
	if cfg.SMTPConfigured() {
		// Real SMTP submission host
		mailer = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, cfg.DefaultLang)
		logrus.Info("Using configured SMTP transport")
	} else if cfg.IsProd {
		// The preview fallback must never be reachable in production
		logrus.Fatal("SMTP_HOST and SMTP_USER are required in production")
	} else {
		// Development fallback: receipts land in Redis behind a preview URL
		mailer = mail.NewPreviewSender(redisClient, "http://localhost:"+cfg.AppPort, cfg.DefaultLang)
		logrus.Info("SMTP not configured, using preview mail transport")
	}

	// Donation recorder service
	recorder := donation.NewService(db, mailer, cfg.ImpactRatio)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/signup", api.SignupHandler(db))              // Signup endpoint
	r.POST("/auth/login", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Donation routes
	r.POST("/donations", api.DonateHandler(recorder, redisClient))                 // Donate by username or email
	r.POST("/users/:id/donations", api.UserDonationHandler(recorder, redisClient)) // Donate by donor ID

	// Tier routes
	r.GET("/tiers", api.TiersHandler())                           // Static reward ladder
	r.GET("/users/:id/tier", api.GetTierHandler(db, redisClient)) // Per-donor tier progress

	// Mail preview route is only mounted outside production
	if !cfg.IsProd {
		r.GET("/mail/preview/:id", api.MailPreviewHandler(redisClient)) // Stored receipt previews
	}

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient))    // List donors endpoint
	adminGroup.DELETE("/users", api.ResetUsersHandler(db, cfg.IsProd)) // Development bulk reset

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
