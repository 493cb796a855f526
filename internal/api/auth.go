package api

import (
	"errors"   // Duplicate-key detection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"donation_platform/internal/domain" // Importing domain models
	"donation_platform/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email"`    // Required email address
	Name     string `json:"name"`     // Required display name
	Password string `json:"password"` // Required password, 6 characters minimum
	Username string `json:"username"` // Optional, defaults to the email local part
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username or email
	Password string `json:"password" binding:"required"` // Password must be provided
}

// minPasswordLen is the minimum accepted password length at signup
const minPasswordLen = 6

// SignupHandler creates a donor profile with zeroed donation metrics
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate required fields
		if req.Email == "" || req.Password == "" || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: email, name, and password are required"})
			return
		}
		// Validate password length
		if len(req.Password) < minPasswordLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email)) // Normalize the email
		username := req.Username
		// Default the username to the email local part
		if username == "" {
			username = strings.Split(email, "@")[0]
		}
		// Hash the password and create the donor
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user account"})
			return
		}
		// New donors start with zeroed metrics
		user := domain.User{
			Username: username,     // Unique username
			Email:    email,        // Unique email
			Name:     req.Name,     // Display name
			Password: string(hash), // Bcrypt hash
		}
		// Attempt to create the donor in the database
		if err := db.Create(&user).Error; err != nil {
			// Duplicate username or email maps to conflict
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "Duplicate entry") {
				c.JSON(http.StatusConflict, gin.H{"error": "User with this email or username already exists"})
				return
			}
			// Log the error with context, respond generically
			logrus.WithFields(logrus.Fields{
				"email": email,       // Attempted email
				"error": err.Error(), // Error message
			}).Error("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user account"})
			return
		}
		// Return the created profile (password stripped by serialization)
		c.JSON(http.StatusCreated, user)
	}
}

// LoginHandler authenticates a donor by username or email and returns the
// profile plus a JWT token for the admin surface
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
			return
		}
		var user domain.User // Fetch donor from database
		// Try the identifier as a username first, then as an email
		err := db.Where("username = ?", req.Username).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Where("email = ?", strings.ToLower(req.Username)).First(&user).Error
		}
		if err != nil {
			// Same message whether the donor exists or not
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Username, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the profile and the token
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}
