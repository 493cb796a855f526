package main

import (
	"errors"  // Sentinel error matching
	"os"      // For environment variable overrides
	"strconv" // For numeric overrides

	"donation_platform/internal/config" // Custom import path (Config)
	"donation_platform/internal/domain" // Custom import path (Models)

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// envOr returns the environment value or a default
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFloatOr returns the environment value as a float or a default
func envFloatOr(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

// Main entry point for seeding a demo donor account
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Demo donor defaults, each overridable from the environment
	username := envOr("SEED_USERNAME", "admin")
	email := envOr("SEED_EMAIL", "admin@shieldofathena.org")
	password := envOr("SEED_PASSWORD", "change-me")
	name := envOr("SEED_NAME", "Zeus Donor")
	totalDonated := envFloatOr("SEED_TOTAL_DONATED", 3750)
	goal := envFloatOr("SEED_GOAL", 5000)
	livesTouched := int64(envFloatOr("SEED_LIVES_TOUCHED", 12))

	// The seed is idempotent: an existing donor (by email or username) is kept
	var existing domain.User
	err = db.Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"username": existing.Username, // Existing username
			"email":    existing.Email,    // Existing email
		}).Info("Demo donor already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Fatalf("seed lookup failed: %v", err)
	}

	// Hash the seed password, never store it raw
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash seed password: %v", err)
	}

	// Create the demo donor with admin role so the admin surface is reachable
	user := domain.User{
		Username:     username,     // Unique username
		Email:        email,        // Unique email
		Name:         name,         // Display name
		Password:     string(hash), // Bcrypt hash
		Role:         "admin",      // Admin role for the demo account
		TotalDonated: totalDonated, // Seeded giving total
		LivesTouched: livesTouched, // Seeded impact counter
		Goal:         goal,         // Personal fundraising target
	}
	if err := db.Create(&user).Error; err != nil {
		logrus.Fatalf("failed to create demo donor: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"id":       user.ID,       // Created donor ID
		"username": user.Username, // Created username
		"email":    user.Email,    // Created email
	}).Info("Created demo donor")
}
