package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"donation_platform/internal/donation" // Donation recorder service
	"donation_platform/internal/utils"    // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// DonateRequest represents a donation against a username or email
type DonateRequest struct {
	Username string  `json:"username"`                  // Donor username (username XOR email)
	Email    string  `json:"email"`                     // Donor email (username XOR email)
	Amount   float64 `json:"amount" binding:"required"` // Donation amount, must be positive
	Lang     string  `json:"lang"`                      // Optional language code for the receipt
}

// UserDonateRequest represents a donation against a donor ID
type UserDonateRequest struct {
	Amount float64 `json:"amount" binding:"required"` // Donation amount, must be positive
	Lang   string  `json:"lang"`                      // Optional language code for the receipt
}

// donationStatus maps recorder errors to HTTP statuses
func donationStatus(err error) (int, string) {
	switch {
	case errors.Is(err, donation.ErrInvalidAmount):
		return http.StatusBadRequest, donation.ErrInvalidAmount.Error()
	case errors.Is(err, donation.ErrMissingIdentifier):
		return http.StatusBadRequest, donation.ErrMissingIdentifier.Error()
	case errors.Is(err, donation.ErrUserNotFound):
		return http.StatusNotFound, donation.ErrUserNotFound.Error()
	default:
		// Never expose internal error detail to the caller
		return http.StatusInternalServerError, "Failed to record donation"
	}
}

// DonateHandler records a donation identified by username or email
func DonateHandler(svc *donation.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DonateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Record the donation through the recorder service
		user, mailResult, err := svc.Record(c.Request.Context(), donation.Identifier{
			Username: req.Username, // Username identifier, may be empty
			Email:    req.Email,    // Email identifier, may be empty
		}, req.Amount, req.Lang)
		if err != nil {
			status, msg := donationStatus(err) // Map the error kind
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Invalidate cached reads now carrying stale totals
		utils.InvalidateDonorCache(c.Request.Context(), rdb, user.ID)
		// Surface the preview link at the top level for frontend convenience
		var previewURL any // null when no preview transport produced one
		if mailResult != nil && mailResult.PreviewURL != "" {
			previewURL = mailResult.PreviewURL
		}
		c.JSON(http.StatusOK, gin.H{
			"user":            user,       // Updated profile, password stripped
			"emailPreviewUrl": previewURL, // Preview link or null
			"emailResult":     mailResult, // Raw mail result for debugging, null on failure
		})
	}
}

// UserDonationHandler records a donation against a donor ID path parameter
func UserDonationHandler(svc *donation.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse donor ID from path
		if err != nil {
			// Malformed ID, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "User id is required"})
			return
		}
		var req UserDonateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Record the donation through the recorder service
		user, _, err := svc.RecordByID(c.Request.Context(), uint(id), req.Amount, req.Lang)
		if err != nil {
			status, msg := donationStatus(err) // Map the error kind
			c.JSON(status, gin.H{"error": msg})
			return
		}
		// Invalidate cached reads now carrying stale totals
		utils.InvalidateDonorCache(c.Request.Context(), rdb, user.ID)
		c.JSON(http.StatusOK, user) // Updated profile, password stripped
	}
}
