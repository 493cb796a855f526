package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"donation_platform/internal/domain" // Importing domain models
	"donation_platform/internal/tier"   // Shared tier ladder
	"donation_platform/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// DonorAdminResponse represents the donor data returned to admin
type DonorAdminResponse struct {
	ID           uint    `json:"id"`           // Donor ID
	Username     string  `json:"username"`     // Username
	Email        string  `json:"email"`        // Email
	Name         string  `json:"name"`         // Display name
	Role         string  `json:"role"`         // Donor role
	TotalDonated float64 `json:"totalDonated"` // Cumulative total
	LivesTouched int64   `json:"livesTouched"` // Impact counter
	Goal         float64 `json:"goal"`         // Personal fundraising target
	TierName     string  `json:"tierName"`     // Current tier display name
}

// ListUsersHandler returns all donors with their giving totals and tier
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request-scoped context
		// Create a generation-scoped cache key from the pagination parameters
		cacheKey := utils.AdminUsersCacheKey(ctx, rdb, c.DefaultQuery("page", "1"), c.DefaultQuery("page_size", "20"))
		// Try to get cached response
		var cached struct {
			Users      []DonorAdminResponse `json:"users"`       // List of donors
			Page       int                  `json:"page"`        // Current page
			PageSize   int                  `json:"page_size"`   // Page size
			Total      int64                `json:"total"`       // Total number of donors
			TotalPages int                  `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of donors
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of donors
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total donor count
		// Fetch total donor count
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"}) // Return on error
			return
		}
		var users []domain.User // Slice to hold donors
		// Apply offset and limit for pagination, largest givers first
		if err := db.Order("total_donated desc").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"}) // Return on error
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		// Prepare response data
		resp := make([]DonorAdminResponse, len(users))
		// Map donors to response format, classifying against the shared ladder
		for i, u := range users {
			progress := tier.Classify(u.TotalDonated)
			resp[i] = DonorAdminResponse{
				ID:           u.ID,                  // Donor ID
				Username:     u.Username,            // Username
				Email:        u.Email,               // Email
				Name:         u.Name,                // Display name
				Role:         u.Role,                // Donor role
				TotalDonated: u.TotalDonated,        // Cumulative total
				LivesTouched: u.LivesTouched,        // Impact counter
				Goal:         u.Goal,                // Personal fundraising target
				TierName:     progress.Current.Name, // Current tier display name
			}
		}
		// Prepare final response data
		respData := gin.H{
			"users":       resp,       // List of donors
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of donors
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}

// ResetUsersHandler deletes every donor profile. Development-only reset,
// refused outright in production.
func ResetUsersHandler(db *gorm.DB, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Never allow a bulk reset against production data
		if isProd {
			c.JSON(http.StatusForbidden, gin.H{"error": "Bulk reset is disabled in production"})
			return
		}
		// Delete all donor rows
		res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.User{})
		if res.Error != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": res.Error.Error(), // Error message
			}).Error("Bulk reset failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset users"})
			return
		}
		// Log the reset with the affected row count
		logrus.WithFields(logrus.Fields{
			"deleted": res.RowsAffected, // Number of deleted donors
		}).Info("Development bulk reset")
		// Return the deleted count
		c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
	}
}
