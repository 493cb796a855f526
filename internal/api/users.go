package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"donation_platform/internal/domain" // Importing domain models
	"donation_platform/internal/tier"   // Shared tier ladder
	"donation_platform/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// TierResponse is the donor-facing tier progress view
type TierResponse struct {
	UserID       uint          `json:"userId"`       // Donor ID
	TotalDonated float64       `json:"totalDonated"` // Cumulative total
	Goal         float64       `json:"goal"`         // Personal fundraising target
	Progress     tier.Progress `json:"progress"`     // Current/next tier and percent
	AmountToNext float64       `json:"amountToNext"` // Remaining amount to unlock the next tier
}

// GetTierHandler returns tier progress for a donor, cached for 60 seconds
func GetTierHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse donor ID from path
		if err != nil {
			// Malformed ID, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "User id is required"})
			return
		}
		ctx := c.Request.Context()               // Request-scoped context
		cacheKey := utils.TierCacheKey(uint(id)) // Cache key for tier progress
		var cached TierResponse                  // Struct to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"tier": cached, "cached": true})
			return
		}
		var user domain.User // Fetch donor from database
		if err := db.First(&user, uint(id)).Error; err != nil {
			// Return not found if the donor doesn't exist
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Classify against the shared ladder
		resp := TierResponse{
			UserID:       user.ID,                              // Donor ID
			TotalDonated: user.TotalDonated,                    // Cumulative total
			Goal:         user.Goal,                            // Personal fundraising target
			Progress:     tier.Classify(user.TotalDonated),     // Tier progress
			AmountToNext: tier.AmountToNext(user.TotalDonated), // Remaining to next tier
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"tier": resp, "cached": false})  // Return tier progress
	}
}

// TiersHandler returns the static reward ladder
func TiersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tiers": tier.Ladder()}) // Static table, safe to share
	}
}
